package inspect

import (
	"fmt"
	"io"

	"github.com/npillmayer/vector"
)

// GrowthStep records the shape of a vector after a single append.
type GrowthStep struct {
	Len     int  `json:"len"`
	Cap     int  `json:"cap"`
	Realloc bool `json:"realloc"` // the append had to reallocate storage
}

// TraceGrowth appends n copies of val to v and records the vector's shape
// after every append. If an append fails, the steps so far are returned
// together with the error.
func TraceGrowth[T any](v *vector.Vector[T], n int, val T) ([]GrowthStep, error) {
	steps := make([]GrowthStep, 0, n)
	for i := 0; i < n; i++ {
		before := v.Cap()
		if err := v.PushBack(val); err != nil {
			tracer().Errorf("growth trace stopped after %d appends: %v", i, err)
			return steps, err
		}
		steps = append(steps, GrowthStep{Len: v.Len(), Cap: v.Cap(), Realloc: v.Cap() != before})
	}
	return steps, nil
}

// Reallocations filters the steps which changed the capacity.
func Reallocations(steps []GrowthStep) []GrowthStep {
	var r []GrowthStep
	for _, s := range steps {
		if s.Realloc {
			r = append(r, s)
		}
	}
	return r
}

// GrowthTable writes one row per reallocation in steps: the length which
// triggered it, the new capacity and the growth factor.
func (c *Console) GrowthTable(steps []GrowthStep, w io.Writer) error {
	if _, err := fmt.Fprintln(w, c.palette.Header.Sprintf("%8s %8s %7s", "len", "cap", "factor")); err != nil {
		return err
	}
	prev := 0
	for _, s := range Reallocations(steps) {
		factor := "-"
		if prev > 0 {
			factor = fmt.Sprintf("%.2f", float64(s.Cap)/float64(prev))
		}
		if _, err := fmt.Fprintf(w, "%8d %8s %7s\n", s.Len, c.palette.Live.Sprint(s.Cap), factor); err != nil {
			return err
		}
		prev = s.Cap
	}
	return nil
}
