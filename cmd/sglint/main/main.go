package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sglint/cmd/sglint"
	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := sglint.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Violations are the expected failure mode: the report has
		// already been printed, the exit code is the whole message.
		if errors.IsErrorCode(err, errors.ErrLintFailed) {
			os.Exit(1)
		}

		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"}).Bold(true)
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(2)
	}
}
