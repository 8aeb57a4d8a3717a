package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/templa-lang/templa/foundation/core/error"
	"github.com/templa-lang/templa/foundation/templa"
)

// statsReport is the YAML form of templa.Stats
type statsReport struct {
	Source string         `yaml:"source"`
	Decls  int            `yaml:"decls"`
	Nodes  int            `yaml:"nodes"`
	Depth  int            `yaml:"depth"`
	Kinds  map[string]int `yaml:"kinds"`
}

type kindCount struct {
	name  string
	count int
}

func newStatsCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize the syntax tree of a program",
		Args:  exactFiles(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			stats := a.engine.Stats(tree)

			switch output {
			case "text":
				a.writeStats(cmd.OutOrStdout(), args[0], stats)
				return nil
			case "yaml":
				report := statsReport{
					Source: args[0],
					Decls:  stats.Decls,
					Nodes:  stats.Nodes,
					Depth:  stats.Depth,
					Kinds:  make(map[string]int, len(stats.Kinds)),
				}
				for k, n := range stats.Kinds {
					report.Kinds[k.String()] = n
				}
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					return err
				}
				return enc.Close()
			default:
				return mdwerror.Newf("unsupported output format %q", output).
					WithCode(mdwerror.CodeInvalidInput)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, yaml)")
	return cmd
}

func (a *app) writeStats(w io.Writer, source string, stats templa.Stats) {
	p := a.palette
	fmt.Fprintln(w, p.render(p.title, source))
	fmt.Fprintf(w, "  decls: %d\n", stats.Decls)
	fmt.Fprintf(w, "  nodes: %d\n", stats.Nodes)
	fmt.Fprintf(w, "  depth: %d\n", stats.Depth)

	counts := make([]kindCount, 0, len(stats.Kinds))
	for k, n := range stats.Kinds {
		counts = append(counts, kindCount{name: k.String(), count: n})
	}
	// most frequent first, ties by name
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].name < counts[j].name
	})

	fmt.Fprintln(w, "  kinds:")
	for _, c := range counts {
		fmt.Fprintf(w, "    %s %d\n", p.render(p.label, fmt.Sprintf("%-14s", c.name)), c.count)
	}
}
