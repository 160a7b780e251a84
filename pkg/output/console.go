package output

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/sglint/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// ConsoleRenderer renders the human-readable text report
type ConsoleRenderer struct {
	pathStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	ruleStyle    lipgloss.Style
	mutedStyle   lipgloss.Style
	passStyle    lipgloss.Style
}

// NewConsoleRenderer creates the text renderer. With color disabled
// every style degrades to plain text.
func NewConsoleRenderer(color bool) *ConsoleRenderer {
	r := &ConsoleRenderer{}
	if !color {
		return r
	}
	r.pathStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"}).Bold(true)
	r.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"}).Bold(true)
	r.warningStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})
	r.ruleStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "241", Dark: "245"})
	r.mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "242"})
	r.passStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"}).Bold(true)
	return r
}

// Render groups violations by file, one finding per line, followed by
// the per-severity summary
func (r *ConsoleRenderer) Render(rep *types.Report) (string, error) {
	var out strings.Builder

	lastPath := ""
	for _, v := range rep.Violations {
		if v.Path != lastPath {
			if lastPath != "" {
				out.WriteString("\n")
			}
			out.WriteString(r.pathStyle.Render(v.Path) + "\n")
			lastPath = v.Path
		}
		sev := r.warningStyle.Render(string(v.Severity))
		if v.Severity == types.SeverityError {
			sev = r.errorStyle.Render(string(v.Severity))
		}
		out.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			r.mutedStyle.Render(fmt.Sprintf("%d:%d", v.Line, v.Column)),
			sev,
			v.Message,
			r.ruleStyle.Render("["+v.RuleID+"]")))
	}

	if len(rep.Violations) > 0 {
		out.WriteString("\n")
	}
	out.WriteString(r.summary(rep))
	return out.String(), nil
}

func (r *ConsoleRenderer) summary(rep *types.Report) string {
	counts := fmt.Sprintf("%d files, %d errors, %d warnings", rep.Files, rep.Errors(), rep.Warnings())
	if rep.Suppressed > 0 {
		counts += fmt.Sprintf(", %d baselined", rep.Suppressed)
	}
	if rep.Pass {
		return r.passStyle.Render("PASS") + " " + counts + "\n"
	}
	return r.errorStyle.Render("FAIL") + " " + counts + "\n"
}
