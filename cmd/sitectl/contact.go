package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mjbconsultora/website/internal/config"
	"github.com/mjbconsultora/website/internal/service"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func newContactSendCmd() *cobra.Command {
	sub := &service.Submission{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a test notification through the configured mail provider",
		Long: `Run a submission through validation and delivery exactly as the
contact endpoint would, skipping the CAPTCHA check.

Example:
  sitectl contact send --name Ana --email ana@example.com --message "Hola"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			mailer, err := service.NewMailer(cfg)
			if err != nil {
				return err
			}

			contactService := service.NewContactService(nil, mailer, service.ContactOptions{
				From:    cfg.ContactFrom,
				To:      cfg.ContactTo,
				Timeout: cfg.OutboundTimeout,
			})

			return sendSubmission(cmd, contactService, sub, mailer.Name())
		},
	}

	cmd.Flags().StringVar(&sub.Name, "name", "", "Sender name")
	cmd.Flags().StringVar(&sub.Email, "email", "", "Sender email, used as Reply-To")
	cmd.Flags().StringVar(&sub.Phone, "phone", "", "Sender phone (optional)")
	cmd.Flags().StringVar(&sub.Message, "message", "", "Message body")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

type submitter interface {
	Submit(ctx context.Context, sub *service.Submission) error
}

func sendSubmission(cmd *cobra.Command, contactService submitter, sub *service.Submission, provider string) error {
	sub.RemoteIP = "cli"

	s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Sending via %s...", provider)
	s.Writer = cmd.ErrOrStderr()
	s.Start()
	err := contactService.Submit(cmd.Context(), sub)
	s.Stop()

	if err != nil {
		return fmt.Errorf("failed to send: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Message sent via %s\n", provider)
	return nil
}
