package main

import (
	"fmt"
	"os"

	"github.com/mjbconsultora/website/internal/api/validation"
	"github.com/mjbconsultora/website/internal/service"

	"github.com/spf13/cobra"
)

const defaultReviewsFile = "assets/data/reseñas.json"

func newReviewsValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check every entry of the reviews file",
		Long: `Parse the reviews file and report each entry the site would skip.
Defaults to $REVIEWS_FILE, then assets/data/reseñas.json.

Exits non-zero when any entry is invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := reviewsPath(args)

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			reviews, issues, err := service.ParseReviews(validation.New(), data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, issue := range issues {
				fmt.Fprintf(out, "❌ %s\n", issue.String())
			}
			fmt.Fprintf(out, "%d valid, %d invalid review(s) in %s\n", len(reviews), len(issues), path)

			if len(issues) > 0 {
				return fmt.Errorf("%d invalid review(s)", len(issues))
			}
			return nil
		},
	}
}

func reviewsPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if p := os.Getenv("REVIEWS_FILE"); p != "" {
		return p
	}
	return defaultReviewsFile
}
