package genconfig

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sglint/pkg/config"
	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/spf13/cobra"
)

const configFileName = ".sglint.toml"

// NewCommand creates the gen-config command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE:    run,
	}

	cmd.Flags().BoolP("write", "w", false, "Write to "+configFileName+" instead of stdout")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	data, err := config.GenerateTOML()
	if err != nil {
		return err
	}

	write, _ := cmd.Flags().GetBool("write")
	if !write {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	if _, err := os.Stat(configFileName); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists; edit it or remove it first", configFileName)
	}
	if err := os.WriteFile(configFileName, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", configFileName)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configFileName)
	return nil
}
