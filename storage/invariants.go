package storage

import (
	"fmt"
	"reflect"
)

// Check validates the engine invariants:
//
//	0 <= Len <= Cap
//	buffer is nil  <=>  Cap == 0
//	slots [Len, Cap) hold the zero value
//
// Check is strict and intended for tests.
func (e *Engine[T]) Check() error {
	if e == nil {
		return fmt.Errorf("%w: nil engine", ErrCorrupt)
	}
	if e.size < 0 || e.size > len(e.buf) {
		return fmt.Errorf("%w: length %d outside of [0,%d]", ErrCorrupt, e.size, len(e.buf))
	}
	if (e.buf == nil) != (len(e.buf) == 0) {
		return fmt.Errorf("%w: empty buffer retained", ErrCorrupt)
	}
	for i := e.size; i < len(e.buf); i++ {
		if !reflect.ValueOf(&e.buf[i]).Elem().IsZero() {
			return fmt.Errorf("%w: unconstructed slot %d is not empty", ErrCorrupt, i)
		}
	}
	return nil
}
