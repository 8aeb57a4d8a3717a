package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/templa-lang/templa/foundation/core/error"
)

func newParseCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Check the syntax of programs",
		Long: `Parses each file and reports syntax errors with the offending
source line. Every file is checked; the exit status reflects the first
failure.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return mdwerror.New("parse expects at least one file argument").
					WithCode(mdwerror.CodeInvalidInput)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var first error
			for _, path := range args {
				tree, err := a.load(cmd, path)
				if err != nil {
					if !reported(err) {
						printError(cmd.ErrOrStderr(), a.palette, err)
						err = reportedError{err}
					}
					if first == nil {
						first = err
					}
					continue
				}
				if !quiet {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d decls)\n",
						a.palette.render(a.palette.ok, "ok"), path, len(tree.Root().Decls()))
				}
			}
			return first
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report errors")
	return cmd
}
