package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		source   string
		data     map[string]interface{}
		expected string
	}{
		{
			name:     "plain text is returned as is",
			source:   "Hello there",
			expected: "Hello there",
		},
		{
			name:     "variable",
			source:   "Hello {{ name }}",
			data:     map[string]interface{}{"name": "Ana"},
			expected: "Hello Ana",
		},
		{
			name:     "missing variable renders empty",
			source:   "Hello {{ name }}",
			expected: "Hello ",
		},
		{
			name:     "filter and condition",
			source:   "{% if amount > 0 %}Total: {{ amount }}{% endif %} {{ company | upcase }}",
			data:     map[string]interface{}{"amount": 1500, "company": "acme"},
			expected: "Total: 1500 ACME",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.source, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	t.Run("syntax error", func(t *testing.T) {
		_, err := r.Render("{% if true %}never closed", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to render template")
	})
}

func TestIsHTML(t *testing.T) {
	assert.True(t, IsHTML("<p>Hello</p>"))
	assert.True(t, IsHTML("Line one<br/>Line two"))
	assert.False(t, IsHTML("Price < 100 and > 50"))
	assert.False(t, IsHTML("Plain message"))
}

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "paragraphs and breaks",
			html:     "<p>Hello <strong>Ana</strong></p><p>Line<br>two</p>",
			expected: "Hello Ana\nLine\ntwo",
		},
		{
			name:     "links keep their target",
			html:     `<p>See <a href="https://example.com/q/1">the quotation</a></p>`,
			expected: "See the quotation (https://example.com/q/1)",
		},
		{
			name:     "scripts and styles are dropped",
			html:     "<html><head><style>p{}</style></head><body><script>x()</script><p>Visible</p></body></html>",
			expected: "Visible",
		},
		{
			name:     "list items",
			html:     "<ul><li>One</li><li>Two</li></ul>",
			expected: "One\nTwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := HTMLToText(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}
