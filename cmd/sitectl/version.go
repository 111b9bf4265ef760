package main

import (
	"fmt"

	"github.com/mjbconsultora/website/internal/version"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetBuildInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sitectl %s\n", version.Info())
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
		},
	}
}
