package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/templa-lang/templa/foundation/core/error"
	mdwast "github.com/templa-lang/templa/foundation/templa/ast"
)

func newDumpCmd(a *app) *cobra.Command {
	var indent string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the syntax tree of a program",
		Long: `Prints one line per node, children indented one level deeper than
their parent. Leaf values follow the node symbol after a colon.`,
		Args: exactFiles(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			out := a.engine.Dump(tree)
			if cmd.Flags().Changed("indent") {
				if strings.Trim(indent, " \t") != "" || indent == "" {
					return mdwerror.Newf("invalid indent %q: only spaces and tabs allowed", indent).
						WithCode(mdwerror.CodeInvalidInput)
				}
				out = mdwast.DumpWith(tree.Root(), mdwast.DumpOptions{Indent: indent})
			}

			fmt.Fprint(cmd.OutOrStdout(), a.colorizeDump(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&indent, "indent", "", "indentation per level (default: dump.indent from config)")
	return cmd
}

// colorizeDump styles node symbols and leaf values of a dump
func (a *app) colorizeDump(dump string) string {
	p := a.palette
	if !p.enabled {
		return dump
	}

	var b strings.Builder
	for _, line := range strings.SplitAfter(dump, "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		trimmed := strings.TrimLeft(body, " \t")
		b.WriteString(body[:len(body)-len(trimmed)])

		symbol, value, leaf := strings.Cut(trimmed, ": ")
		b.WriteString(p.render(p.label, symbol))
		if leaf {
			b.WriteString(": ")
			b.WriteString(p.render(p.value, value))
		}
		if len(body) < len(line) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
