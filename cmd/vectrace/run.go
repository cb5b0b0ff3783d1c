package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRunCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Replay a YAML script of vector operations",
		Long: `Replay a script of operations against a vector of integers.

Supported operations: push, pop, insert, insert_n, erase, erase_range,
resize, reserve, assign, clear, set. Positions (at, to) are offsets from
the front of the vector.

Examples:
  # Replay with a quota of 8 live slots
  vectrace run examples/insert.yaml --quota 8

  # Emit the trace as JSON
  vectrace run examples/insert.yaml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("cannot open script: %w", err)
			}
			defer f.Close()
			script, err := ParseScript(f)
			if err != nil {
				return err
			}
			trace, err := replay(script, s.config)
			if err != nil {
				return err
			}
			return s.write(cmd.OutOrStdout(), trace, func(w io.Writer) error {
				return trace.writeText(w, s.console())
			})
		},
	}
}
