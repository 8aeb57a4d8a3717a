package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templa-lang/templa/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// no config needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			w := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(w, info.Version)
				return
			}
			fmt.Fprintf(w, "templa v%s\n", info.Version)
			fmt.Fprintf(w, "  Grammar:    %s\n", info.Grammar)
			fmt.Fprintf(w, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(w, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(w, "  OS/Arch:    %s\n", info.Platform)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print the version number only")
	return cmd
}
