package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/vector/alloc"
	"github.com/npillmayer/vector/inspect"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// session carries the configuration from the root command to its children.
type session struct {
	config *Config
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	s := &session{}
	var configFile string
	root := &cobra.Command{
		Use:   "vectrace",
		Short: "Replay vector operations and watch storage evolve",
		Long: `vectrace replays scripts of vector operations against a vector of integers
and prints the vector's slot layout after every step, together with the
activity of the allocator underneath.

Commands:
  run       Replay a YAML script of operations
  growth    Show how capacity grows under repeated appends`,
		Version:      "0.1.0",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(v, configFile)
			if err != nil {
				return err
			}
			s.config = config
			setupTracing(config.Verbose)
			return nil
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is ./vectrace.yaml)")
	flags.StringP("output", "o", "text", "output format (text, json)")
	flags.Int("quota", 0, "live slot quota of the allocator (0 for none)")
	flags.Int("max-size", 0, "maximum number of elements (0 for unbounded)")
	flags.Int("width", 0, "line width (0 to ask the terminal)")
	flags.BoolP("verbose", "v", false, "enable tracing")
	for key, flag := range map[string]string{
		"output":   "output",
		"quota":    "quota",
		"max_size": "max-size",
		"width":    "width",
		"verbose":  "verbose",
	} {
		v.BindPFlag(key, flags.Lookup(flag))
	}
	root.AddCommand(newRunCmd(s), newGrowthCmd(s))
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupTracing(verbose bool) {
	gtrace.CoreTracer = gologadapter.New()
	if verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}

func (s *session) console() *inspect.Console {
	tc := inspect.ConfigFromTerminal()
	if s.config.Width > 0 {
		tc.LineWidth = s.config.Width
	}
	return inspect.NewConsole(tc, nil)
}

func (s *session) allocator() *alloc.Bounded[int] {
	return alloc.NewBounded[int](nil, s.config.MaxSize, s.config.Quota)
}

// write outputs result as JSON or, for text output, through text.
func (s *session) write(w io.Writer, result interface{}, text func(io.Writer) error) error {
	if s.config.Output == "json" {
		return writeJSON(w, result)
	}
	return text(w)
}
