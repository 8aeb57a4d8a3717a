package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEqualCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "equal <a> <b>",
		Short: "Compare two programs structurally",
		Long: `Parses both programs and compares their syntax trees. Layout,
blank lines and source positions are ignored. Exits with status 1 when
the programs differ.`,
		Args: exactFiles(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			right, err := a.load(cmd, args[1])
			if err != nil {
				return err
			}

			if a.engine.Equal(left, right) {
				fmt.Fprintln(cmd.OutOrStdout(), a.palette.render(a.palette.ok, "equal"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.palette.render(a.palette.errorLabel, "different"))
			return errDifferent
		},
	}
}
