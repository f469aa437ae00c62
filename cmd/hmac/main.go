package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/salesdesk/salesdesk/pkg/forms"
)

func newRootCmd() *cobra.Command {
	var secret string

	cmd := &cobra.Command{
		Use:   "hmac < payload.json",
		Short: "Sign a forms webhook payload for /webhooks/forms",
		Long: "Reads a JSON payload on stdin and prints the webhook-id, webhook-timestamp and\n" +
			"webhook-signature headers as curl flags.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(secret, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("FORMS_WEBHOOK_SECRET"), "webhook secret (defaults to FORMS_WEBHOOK_SECRET)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(secret string, in io.Reader, out io.Writer) error {
	verifier, err := forms.NewVerifier(secret)
	if err != nil {
		return err
	}

	payload, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	headers, err := verifier.Sign("msg_"+uuid.NewString(), time.Now(), payload)
	if err != nil {
		return err
	}

	for _, name := range []string{"webhook-id", "webhook-timestamp", "webhook-signature"} {
		fmt.Fprintf(out, "-H '%s: %s' ", name, headers.Get(name))
	}
	fmt.Fprintln(out)
	return nil
}
