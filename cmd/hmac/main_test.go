package main

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/pkg/forms"
)

func TestRun(t *testing.T) {
	secret := "whsec_" + base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

	var out bytes.Buffer
	require.NoError(t, run(secret, strings.NewReader(`{"form_id":"3"}`), &out))

	line := out.String()
	assert.Contains(t, line, "-H 'webhook-id: msg_")
	assert.Contains(t, line, "-H 'webhook-timestamp: ")
	assert.Contains(t, line, "-H 'webhook-signature: v1,")
}

func TestRun_NoSecret(t *testing.T) {
	err := run("", strings.NewReader(`{}`), &bytes.Buffer{})
	assert.ErrorIs(t, err, forms.ErrNotConfigured)
}

func TestRootCmd(t *testing.T) {
	t.Setenv("FORMS_WEBHOOK_SECRET", "")
	secret := "whsec_" + base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--secret", secret})
	cmd.SetIn(strings.NewReader(`{"form_id":"3","entry_id":"9"}`))
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "webhook-signature: v1,")

	cmd = newRootCmd()
	cmd.SetArgs([]string{"unexpected"})
	assert.Error(t, cmd.Execute())
}
