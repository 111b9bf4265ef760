package main

import (
	"fmt"
	"os"

	"github.com/mjbconsultora/website/internal/logging"

	"github.com/spf13/cobra"
)

var logger *logging.Logger

func initLogger(level string) error {
	// The CLI only logs to the terminal
	if err := logging.InitLogger(&logging.Config{Level: level}); err != nil {
		return err
	}
	logger = logging.GetGlobalLogger()
	return nil
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "sitectl",
		Short: "sitectl - maintenance tool for the MJB Consultora website",
		Long: `sitectl checks the site's content files and exercises the contact
pipeline from the command line, using the same configuration as the server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.LevelInfo, "Log level (debug, info, warn, error)")

	reviewsCmd := &cobra.Command{
		Use:   "reviews",
		Short: "Work with the reviews file",
	}
	reviewsCmd.AddCommand(newReviewsValidateCmd())

	contactCmd := &cobra.Command{
		Use:   "contact",
		Short: "Work with the contact form pipeline",
	}
	contactCmd.AddCommand(newContactSendCmd())

	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logger != nil {
		logger.Close()
	}
}
