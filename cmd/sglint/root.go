package sglint

import (
	"fmt"

	"github.com/arthur-debert/sglint/cmd/sglint/commands/genconfig"
	"github.com/arthur-debert/sglint/cmd/sglint/commands/lint"
	"github.com/arthur-debert/sglint/cmd/sglint/commands/rules"
	"github.com/arthur-debert/sglint/internal/version"
	"github.com/arthur-debert/sglint/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbosity int

// NewRootCmd builds the sglint command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sglint",
		Short: "A style-guide linter for SQL and Elm sources",
		Long: `sglint checks SQL and Elm files against the team style guide:
keyword casing, naming conventions, module namespaces, decoder naming.

It works on coarse token patterns rather than full parse trees, so it is
fast, tolerant of broken input, and honest about which conventions it
can and cannot enforce (run "sglint rules" for the catalog).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(lint.NewCommand())
	rootCmd.AddCommand(rules.NewCommand())
	rootCmd.AddCommand(genconfig.NewCommand())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sglint version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
