package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/vector"
	"github.com/npillmayer/vector/inspect"
	"github.com/spf13/cobra"
)

// growthReport is the JSON form of a growth trace.
type growthReport struct {
	Count         int                  `json:"count"`
	Appended      int                  `json:"appended"`
	Reallocations []inspect.GrowthStep `json:"reallocations"`
	Err           string               `json:"error,omitempty"`
}

func newGrowthCmd(s *session) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Show how capacity grows under repeated appends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative, is %d", count)
			}
			v := vector.New(vector.WithAllocator[int](s.allocator()))
			defer v.Release()
			steps, err := inspect.TraceGrowth(v, count, 0)
			report := growthReport{
				Count:         count,
				Appended:      len(steps),
				Reallocations: inspect.Reallocations(steps),
			}
			if err != nil {
				report.Err = err.Error()
			}
			return s.write(cmd.OutOrStdout(), report, func(w io.Writer) error {
				console := s.console()
				if err := console.GrowthTable(steps, w); err != nil {
					return err
				}
				if report.Err != "" {
					fmt.Fprintln(w, console.Alert("stopped after %d appends: %s", report.Appended, report.Err))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 32, "number of appends")
	return cmd
}
