// Package output renders the structured Report for people and CI
// systems. Renderers are pure functions of the report: the same report
// renders to the same bytes, color profile aside.
package output

import (
	"os"

	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/arthur-debert/sglint/pkg/types"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer turns a report into one output format
type Renderer interface {
	Render(rep *types.Report) (string, error)
}

// NewRenderer selects a renderer by format name
func NewRenderer(format string, color bool) (Renderer, error) {
	switch format {
	case "text":
		return NewConsoleRenderer(color), nil
	case "json":
		return &JSONRenderer{}, nil
	case "checkstyle":
		return &CheckstyleRenderer{}, nil
	case "sarif":
		return &SarifRenderer{}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format %q", format)
	}
}

// ColorEnabled resolves the output.color setting against the terminal:
// "always" and "never" are taken at face value, "auto" enables color
// only on a capable TTY
func ColorEnabled(setting string) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	default:
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return false
		}
		return termenv.EnvColorProfile() != termenv.Ascii
	}
}
