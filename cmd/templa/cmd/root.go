package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/templa-lang/templa/foundation/core/error"
	mdwlog "github.com/templa-lang/templa/foundation/core/log"
	"github.com/templa-lang/templa/foundation/templa"
	mdwast "github.com/templa-lang/templa/foundation/templa/ast"
	"github.com/templa-lang/templa/pkg/core/config"
	"github.com/templa-lang/templa/pkg/core/logging"
)

// errDifferent signals that compared programs are not equal
var errDifferent = errors.New("programs differ")

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile string
	verbose bool
	color   bool

	cfg       *config.Config
	logger    *mdwlog.Logger
	logCloser io.Closer
	engine    *templa.Engine
	palette   palette
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if a.logCloser != nil {
		a.logCloser.Close()
	}
	if err == nil {
		return 0
	}
	if !errors.Is(err, errDifferent) && !reported(err) {
		printError(stderr, a.palette, err)
	}
	return exitCode(err)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "templa",
		Short: "templa - language front end",
		Long: `templa parses programs of the templa language and inspects the
resulting syntax trees.

Commands:
  parse   - check the syntax of one or more programs
  dump    - print the syntax tree of a program
  equal   - compare two programs structurally
  stats   - summarize the syntax tree of a program
  config  - show the effective configuration
  version - show version information

A file argument of "-" reads the program from stdin.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $TEMPLA_CONFIG or ./templa.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")
	root.PersistentFlags().BoolVar(&a.color, "color", false, "colorize output (overrides dump.color)")

	root.AddCommand(
		newParseCmd(a),
		newDumpCmd(a),
		newEqualCmd(a),
		newStatsCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads the configuration and builds the logger and engine
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if !cmd.Flags().Changed("color") {
		a.color = cfg.Dump.Color
	}
	a.palette = newPalette(a.color)

	logger, closer, err := logging.FromConfig(cfg, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logCloser = closer

	a.engine, err = templa.New(templa.Options{
		Logger:         logger,
		MaxInputLength: cfg.Parser.MaxInputLength,
		DumpOptions:    mdwast.DumpOptions{Indent: cfg.Dump.Indent},
		SlowThreshold:  cfg.Parser.SlowThreshold.Duration,
	})
	return err
}

// loadConfig honours --config, then TEMPLA_CONFIG and the default paths.
// Without any config file the defaults apply.
func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.Load(a.cfgFile)
	}
	cfg, err := config.LoadFromEnv()
	if err != nil && os.Getenv(config.EnvConfigPath) == "" && mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		return config.Default(), nil
	}
	return cfg, err
}

func exitCode(err error) int {
	if errors.Is(err, errDifferent) {
		return 1
	}
	var merr *mdwerror.Error
	if errors.As(err, &merr) {
		return merr.Code().ExitCode()
	}
	// flag and argument errors from cobra
	return 2
}

func printError(w io.Writer, p palette, err error) {
	fmt.Fprintf(w, "%s %v\n", p.render(p.errorLabel, "error:"), err)
}

// exactFiles is cobra.ExactArgs with a coded error
func exactFiles(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return mdwerror.Newf("%s expects %d file argument(s), got %d", cmd.Name(), n, len(args)).
				WithCode(mdwerror.CodeInvalidInput)
		}
		return nil
	}
}
