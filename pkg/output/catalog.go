package output

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/sglint/pkg/rules"
	"github.com/charmbracelet/glamour"
)

// CatalogMarkdown renders the rule catalog as a Markdown document.
// Used by `sglint rules` and kept separate from report rendering: the
// catalog describes what could be checked, a report what was found.
func CatalogMarkdown(catalog []rules.Rule) string {
	var out strings.Builder
	out.WriteString("# sglint rules\n\n")

	lastLang := ""
	for _, rule := range catalog {
		lang := string(rule.Language)
		if lang == "" {
			lang = "internal"
		}
		if lang != lastLang {
			out.WriteString(fmt.Sprintf("## %s\n\n", lang))
			lastLang = lang
		}
		status := string(rule.Severity)
		if !rule.Automatable {
			status = "advisory, not enforced"
		}
		out.WriteString(fmt.Sprintf("### `%s` (%s)\n\n%s\n\n", rule.ID, status, rule.Description))
		if rule.Doc != "" {
			out.WriteString(rule.Doc + "\n\n")
		}
	}
	return out.String()
}

// RenderCatalog renders the catalog Markdown for the terminal via
// glamour, falling back to the raw Markdown when the terminal renderer
// cannot be built
func RenderCatalog(catalog []rules.Rule, color bool) string {
	md := CatalogMarkdown(catalog)
	if !color {
		return md
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}
