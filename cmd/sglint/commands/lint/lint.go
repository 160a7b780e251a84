package lint

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/sglint/pkg/baseline"
	"github.com/arthur-debert/sglint/pkg/config"
	"github.com/arthur-debert/sglint/pkg/core"
	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/arthur-debert/sglint/pkg/output"
	"github.com/arthur-debert/sglint/pkg/paths"
	"github.com/arthur-debert/sglint/pkg/registry"
	"github.com/arthur-debert/sglint/pkg/sources"
	"github.com/arthur-debert/sglint/pkg/types"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// NewCommand creates the lint command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lint [path...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE:    run,
	}

	cmd.Flags().StringP("format", "f", "", "Output format: text, json, checkstyle, or sarif (default from config)")
	cmd.Flags().String("config", "", "Config file (default: .sglint.toml, sglint.toml, then the user config)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("no-baseline", false, "Ignore the baseline file for this run")
	cmd.Flags().Bool("update-baseline", false, "Accept all current findings into the baseline file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(".", configPath)
	if err != nil {
		return err
	}

	core.MustInitialize(cfg.ElmOptions())
	if err := cfg.Validate(func(id string) bool {
		_, ok := registry.LookupRule(id)
		return ok
	}); err != nil {
		return err
	}

	files, err := collectFiles(roots, cfg.Ignore)
	if err != nil {
		return err
	}

	updateBaseline, _ := cmd.Flags().GetBool("update-baseline")
	noBaseline, _ := cmd.Flags().GetBool("no-baseline")
	baselinePath := paths.BaselineFile(".", cfg.Baseline)

	var base *baseline.Baseline
	if !noBaseline && !updateBaseline {
		base, err = baseline.Load(baselinePath)
		if err != nil {
			return err
		}
	}

	runner := core.NewRunner(cfg, base)
	rep, err := runner.Run(cmd.Context(), files)
	if err != nil {
		return err
	}

	if updateBaseline {
		return writeBaseline(cmd, rep, baselinePath)
	}

	format := cfg.Output.Format
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		format = f
	}
	colorSetting := cfg.Output.Color
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		colorSetting = "never"
	}

	renderer, err := output.NewRenderer(format, output.ColorEnabled(colorSetting))
	if err != nil {
		return err
	}
	rendered, err := renderer.Render(rep)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)

	if !rep.Pass {
		return errors.Newf(errors.ErrLintFailed, "%d errors", rep.Errors())
	}
	return nil
}

// collectFiles discovers and reads the inputs, with a progress bar on
// interactive terminals when the file set is large enough to warrant one
func collectFiles(roots []string, ignore []string) ([]*types.SourceFile, error) {
	found, err := sources.Discover(roots, ignore)
	if err != nil {
		return nil, err
	}

	var bar *pterm.ProgressbarPrinter
	if isatty.IsTerminal(os.Stderr.Fd()) && len(found) > 20 {
		bar, _ = pterm.DefaultProgressbar.
			WithTotal(len(found)).
			WithTitle("Scanning").
			WithWriter(os.Stderr).
			Start()
	}

	files := make([]*types.SourceFile, 0, len(found))
	for _, path := range found {
		file, err := sources.Read(path)
		if err != nil {
			if bar != nil {
				_, _ = bar.Stop()
			}
			return nil, err
		}
		files = append(files, file)
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		_, _ = bar.Stop()
	}
	return files, nil
}

// writeBaseline persists every current finding except the engine's own
// internal warnings, which describe the run rather than the code
func writeBaseline(cmd *cobra.Command, rep *types.Report, path string) error {
	var accepted []types.Violation
	for _, v := range rep.Violations {
		if strings.HasPrefix(v.RuleID, "internal/") {
			continue
		}
		accepted = append(accepted, v)
	}
	if err := baseline.FromViolations(accepted).Write(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Baseline updated: %s (%d findings accepted)\n", path, len(accepted))
	return nil
}
