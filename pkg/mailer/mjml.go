package mailer

import (
	"context"
	"fmt"
	"strings"

	mjmlgo "github.com/Boostport/mjml-go"
)

// IsMJML reports whether body is an MJML document
func IsMJML(body string) bool {
	return strings.HasPrefix(strings.TrimSpace(body), "<mjml")
}

// CompileMJML turns an MJML document into email-safe HTML
func CompileMJML(ctx context.Context, source string) (string, error) {
	html, err := mjmlgo.ToHTML(ctx, source, mjmlgo.WithMinify(true))
	if err != nil {
		return "", fmt.Errorf("failed to compile mjml: %w", err)
	}
	return html, nil
}
