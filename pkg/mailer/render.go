package mailer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/osteele/liquid"
)

// Renderer expands liquid templates in subjects and bodies
type Renderer struct {
	engine *liquid.Engine
}

func NewRenderer() *Renderer {
	return &Renderer{engine: liquid.NewEngine()}
}

// Render expands source with data. A nil map renders with no bindings.
func (r *Renderer) Render(source string, data map[string]interface{}) (string, error) {
	if !strings.Contains(source, "{{") && !strings.Contains(source, "{%") {
		return source, nil
	}
	if data == nil {
		data = map[string]interface{}{}
	}

	out, err := r.engine.ParseAndRenderString(source, data)
	if err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return out, nil
}

var htmlTag = regexp.MustCompile(`(?i)<\s*(html|body|p|div|br|table|a|span|h[1-6]|ul|ol|li|strong|em|b|i)\b`)

// IsHTML reports whether body contains common HTML markup
func IsHTML(body string) bool {
	return htmlTag.MatchString(body)
}

var blockElements = map[string]bool{
	"p": true, "div": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "tr": true, "table": true, "ul": true, "ol": true, "blockquote": true,
}

// HTMLToText renders the visible text of an HTML body with one line per block element
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	var sb strings.Builder
	writeText(&sb, doc.Find("body"))

	lines := strings.Split(sb.String(), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}

	return strings.TrimSpace(strings.Join(out, "\n")), nil
}

func writeText(sb *strings.Builder, s *goquery.Selection) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		switch name := goquery.NodeName(c); name {
		case "#text":
			sb.WriteString(c.Text())
		case "br":
			sb.WriteString("\n")
		case "script", "style", "head", "#comment":
		case "a":
			text := strings.TrimSpace(c.Text())
			href, _ := c.Attr("href")
			sb.WriteString(text)
			if href != "" && href != text {
				fmt.Fprintf(sb, " (%s)", href)
			}
		default:
			writeText(sb, c)
			if blockElements[name] {
				sb.WriteString("\n")
			}
		}
	})
}
