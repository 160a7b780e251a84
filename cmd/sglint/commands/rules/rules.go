package rules

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sglint/pkg/config"
	"github.com/arthur-debert/sglint/pkg/core"
	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/arthur-debert/sglint/pkg/output"
	"github.com/arthur-debert/sglint/pkg/registry"
	rulepkg "github.com/arthur-debert/sglint/pkg/rules"
	"github.com/arthur-debert/sglint/pkg/types"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewCommand creates the rules command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE:    run,
	}

	cmd.Flags().StringP("language", "l", "", "Limit to one language: sql or elm")
	cmd.Flags().Bool("plain", false, "Print raw Markdown without terminal rendering")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".", "")
	if err != nil {
		return err
	}
	core.MustInitialize(cfg.ElmOptions())

	var catalog []rulepkg.Rule
	langFlag, _ := cmd.Flags().GetString("language")
	switch langFlag {
	case "":
		catalog = registry.AllRules()
	case string(types.LangSQL), string(types.LangElm):
		catalog = registry.RulesFor(types.Language(langFlag))
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown language %q; expected sql or elm", langFlag)
	}

	plain, _ := cmd.Flags().GetBool("plain")
	color := !plain && isatty.IsTerminal(os.Stdout.Fd())
	fmt.Fprint(cmd.OutOrStdout(), output.RenderCatalog(catalog, color))
	return nil
}
