package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/vector"
	"gopkg.in/yaml.v3"
)

// Script is a named sequence of operations on a vector of integers.
type Script struct {
	Name  string `yaml:"name" json:"name"`
	Steps []Step `yaml:"steps" json:"steps"`
}

// Step is a single operation. Which fields are used depends on Op.
type Step struct {
	Op     string `yaml:"op" json:"op"`
	At     int    `yaml:"at,omitempty" json:"at,omitempty"`
	To     int    `yaml:"to,omitempty" json:"to,omitempty"`
	N      int    `yaml:"n,omitempty" json:"n,omitempty"`
	Value  int    `yaml:"value,omitempty" json:"value,omitempty"`
	Values []int  `yaml:"values,omitempty" json:"values,omitempty"`
}

func (s Step) String() string {
	switch s.Op {
	case "push":
		if len(s.Values) > 0 {
			return fmt.Sprintf("push %v", s.Values)
		}
		return fmt.Sprintf("push %d", s.Value)
	case "pop", "clear":
		return s.Op
	case "insert":
		if len(s.Values) > 0 {
			return fmt.Sprintf("insert %v at %d", s.Values, s.At)
		}
		return fmt.Sprintf("insert %d at %d", s.Value, s.At)
	case "insert_n":
		return fmt.Sprintf("insert %d×%d at %d", s.N, s.Value, s.At)
	case "erase":
		return fmt.Sprintf("erase at %d", s.At)
	case "erase_range":
		return fmt.Sprintf("erase [%d,%d)", s.At, s.To)
	case "resize":
		return fmt.Sprintf("resize to %d (fill %d)", s.N, s.Value)
	case "reserve":
		return fmt.Sprintf("reserve %d", s.N)
	case "assign":
		if len(s.Values) > 0 {
			return fmt.Sprintf("assign %v", s.Values)
		}
		return fmt.Sprintf("assign %d×%d", s.N, s.Value)
	case "set":
		return fmt.Sprintf("set [%d] = %d", s.At, s.Value)
	}
	return s.Op
}

var errUnknownOp = errors.New("unknown operation")

var knownOps = map[string]bool{
	"push": true, "pop": true, "insert": true, "insert_n": true, "erase": true,
	"erase_range": true, "resize": true, "reserve": true, "assign": true,
	"clear": true, "set": true,
}

// ParseScript reads a script in YAML format. Unknown fields and operations are
// rejected.
func ParseScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var script Script
	if err := dec.Decode(&script); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty script")
		}
		return nil, fmt.Errorf("cannot parse script: %w", err)
	}
	for i, step := range script.Steps {
		if !knownOps[step.Op] {
			return nil, fmt.Errorf("step %d: %w %q", i+1, errUnknownOp, step.Op)
		}
	}
	return &script, nil
}

// apply performs step on v. Positions are offsets from Begin.
func apply(v *vector.Vector[int], step Step) error {
	at := v.Begin().Add(step.At)
	switch step.Op {
	case "push":
		if len(step.Values) == 0 {
			return v.PushBack(step.Value)
		}
		for _, x := range step.Values {
			if err := v.PushBack(x); err != nil {
				return err
			}
		}
	case "pop":
		if v.IsEmpty() {
			return fmt.Errorf("%w: pop from empty vector", vector.ErrOutOfRange)
		}
		v.PopBack()
	case "insert":
		if len(step.Values) > 0 {
			return v.InsertSlice(at, step.Values...)
		}
		_, err := v.Insert(at, step.Value)
		return err
	case "insert_n":
		_, err := v.InsertN(at, step.N, step.Value)
		return err
	case "erase":
		_, err := v.Erase(at)
		return err
	case "erase_range":
		_, err := v.EraseRange(at, v.Begin().Add(step.To))
		return err
	case "resize":
		return v.Resize(step.N, step.Value)
	case "reserve":
		return v.Reserve(step.N)
	case "assign":
		if len(step.Values) > 0 {
			return v.AssignSlice(step.Values...)
		}
		return v.Assign(step.N, step.Value)
	case "clear":
		v.Clear()
	case "set":
		p, err := v.AtRef(step.At)
		if err != nil {
			return err
		}
		*p = step.Value
	default:
		return fmt.Errorf("%w %q", errUnknownOp, step.Op)
	}
	return nil
}
