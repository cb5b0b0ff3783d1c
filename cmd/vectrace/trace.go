package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/vector"
	"github.com/npillmayer/vector/alloc"
	"github.com/npillmayer/vector/inspect"
)

// StepResult is the outcome of a single script step.
type StepResult struct {
	Index         int            `json:"index"`
	Step          Step           `json:"step"`
	Err           string         `json:"error,omitempty"`
	Layout        inspect.Layout `json:"layout"`
	Allocations   int            `json:"allocations"`
	Deallocations int            `json:"deallocations"`
	Failures      int            `json:"failures"`
}

// Trace is the record of a replayed script.
type Trace struct {
	Script string       `json:"script"`
	Steps  []StepResult `json:"steps"`
	Events []string     `json:"events"` // allocator events, in order of delivery
	Stats  alloc.Stats  `json:"stats"`  // allocator counters after the vector has been released
}

// Failed returns the number of steps which reported an error.
func (t *Trace) Failed() int {
	n := 0
	for _, r := range t.Steps {
		if r.Err != "" {
			n++
		}
	}
	return n
}

// eventTimeout bounds the wait for the allocator's event stream to drain.
const eventTimeout = time.Second

// replay runs script against a fresh vector. Failing steps do not stop the
// replay: their errors are recorded and the vector carries on in whatever
// state the failed operation left it.
func replay(script *Script, config *Config) (*Trace, error) {
	obs := alloc.NewObserved[int](alloc.NewBounded[int](nil, config.MaxSize, config.Quota))
	ch, ok := obs.Subscribe(64)
	if !ok {
		return nil, errors.New("cannot subscribe to allocator events")
	}
	events := make(chan []string, 1)
	go func() {
		var evs []string
		for e := range ch {
			evs = append(evs, fmt.Sprint(e))
		}
		events <- evs
	}()
	trace := &Trace{Script: script.Name}
	v := vector.New(vector.WithAllocator[int](obs))
	for i, step := range script.Steps {
		before := obs.Stats()
		err := apply(v, step)
		after := obs.Stats()
		r := StepResult{
			Index:         i + 1,
			Step:          step,
			Layout:        inspect.Snapshot(v),
			Allocations:   after.Allocations - before.Allocations,
			Deallocations: after.Deallocations - before.Deallocations,
			Failures:      after.Failures - before.Failures,
		}
		if err != nil {
			r.Err = err.Error()
			gtrace.CoreTracer.Infof("step %d (%s) failed: %v", r.Index, step, err)
		}
		trace.Steps = append(trace.Steps, r)
	}
	v.Release()
	trace.Stats = obs.Stats()
	obs.Close()
	select {
	case trace.Events = <-events:
	case <-time.After(eventTimeout):
		gtrace.CoreTracer.Errorf("allocator event stream did not drain within %v", eventTimeout)
	}
	return trace, nil
}

// writeText prints a trace step by step, rendering the vector after each step.
func (t *Trace) writeText(w io.Writer, console *inspect.Console) error {
	if _, err := fmt.Fprintf(w, "script %q, %d steps\n", t.Script, len(t.Steps)); err != nil {
		return err
	}
	for _, r := range t.Steps {
		line := fmt.Sprintf("\n#%d %s", r.Index, r.Step)
		if r.Err != "" {
			line += "  " + console.Alert("failed: %s", r.Err)
		}
		fmt.Fprintln(w, line)
		if err := console.Render(r.Layout, w); err != nil {
			return err
		}
		if r.Allocations+r.Deallocations+r.Failures > 0 {
			fmt.Fprintf(w, "allocator: %d allocated, %d deallocated, %d failed\n",
				r.Allocations, r.Deallocations, r.Failures)
		}
	}
	if len(t.Events) > 0 {
		fmt.Fprintf(w, "\nevents: %s\n", strings.Join(t.Events, " "))
	}
	_, err := fmt.Fprintf(w, "totals: %d allocations, %d deallocations, %d failures, peak %d slots\n",
		t.Stats.Allocations, t.Stats.Deallocations, t.Stats.Failures, t.Stats.PeakSlots)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
