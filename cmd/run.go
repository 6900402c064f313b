package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clems4ever/kmltools/internal/config"
	"github.com/clems4ever/kmltools/internal/document"
	"github.com/clems4ever/kmltools/internal/logger"
	"github.com/clems4ever/kmltools/internal/track"
	"github.com/clems4ever/kmltools/internal/tree"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 1
	ExitFailure  = 1
	ExitNotFound = 2
	ExitParse    = 3
)

var errNoInput = errors.New("no input file")

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errNoInput):
		return ExitUsage
	case errors.Is(err, document.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, tree.ErrParse):
		return ExitParse
	default:
		return ExitFailure
	}
}

// reportedError marks an error already logged by the command that hit it.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// inputError ties an error to the input file it came from.
type inputError struct {
	path string
	err  error
}

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

// failedInput returns the input err is about. Without a recorded path it is
// the only input of a single-file tool.
func failedInput(err error, inputs []string) string {
	var ie *inputError
	if errors.As(err, &ie) {
		return ie.path
	}
	return inputs[0]
}

// Run executes c with args and returns the exit code. Asking for help
// exits with ExitUsage, the same as giving no input.
func Run(c *cobra.Command, args []string) int {
	helped := false
	help := c.HelpFunc()
	c.SetHelpFunc(func(cc *cobra.Command, a []string) {
		helped = true
		help(cc, a)
	})
	c.SetArgs(args)

	err := c.Execute()
	if err != nil {
		var rep *reportedError
		if !errors.As(err, &rep) && !errors.Is(err, errNoInput) {
			fmt.Fprintf(c.ErrOrStderr(), "Error: %v\n", err)
		}
		return ExitCode(err)
	}
	if helped {
		return ExitUsage
	}
	return ExitOK
}

// globalFlags are registered on every tool command.
type globalFlags struct {
	configPath string
	logLevel   string
}

func (g *globalFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&g.configPath, "config", "", "Path to configuration file (default $XDG_CONFIG_HOME/kmltools/config.yaml)")
	c.Flags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// env is what a tool needs to run one invocation.
type env struct {
	log   *logger.Logger
	write tree.WriteOptions
}

func (g *globalFlags) env(c *cobra.Command) (*env, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	return &env{
		log:   logger.New(c.OutOrStdout(), logger.Options{Level: level, Timestamps: cfg.Timestamps}),
		write: tree.WriteOptions{Indent: cfg.Indent},
	}, nil
}

// tool describes one file transform exposed as a command.
type tool struct {
	short   string
	long    string
	argName string
	multi   bool
	run     func(e *env, inputs []string) error
}

func newToolCommand(use string, t tool) *cobra.Command {
	flags := &globalFlags{}
	args := cobra.MaximumNArgs(1)
	usage := fmt.Sprintf("%s [%s]", use, t.argName)
	if t.multi {
		args = cobra.ArbitraryArgs
		usage += "..."
	}

	c := &cobra.Command{
		Use:           usage,
		Short:         t.short,
		Long:          t.long,
		Args:          args,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, inputs []string) error {
			if len(inputs) == 0 {
				c.Usage()
				return errNoInput
			}
			e, err := flags.env(c)
			if err != nil {
				return err
			}
			if err := t.run(e, inputs); err != nil {
				e.log.OperationFailed(c.Name(), failedInput(err, inputs), err)
				return &reportedError{err: err}
			}
			return nil
		},
	}
	flags.register(c)
	return c
}

// canonical returns the KML tree of doc, converting GPX input first.
func canonical(doc *document.Document) (*tree.Node, error) {
	if doc.Format == document.KML {
		return doc.Root, nil
	}
	return track.FromGPX(doc.Root, doc.Base())
}

func outputPath(doc *document.Document, name string, format document.Format) string {
	return filepath.Join(doc.Dir(), name+format.Ext())
}
