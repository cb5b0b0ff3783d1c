package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
)

type distancer[I any] interface {
	Sub(other I) int
}

// gather reads [first, last) into a slice if the distance of the range can be
// determined upfront. ok is false for forward-only iterators.
func gather[T any, I InputIterator[T, I]](first, last I) (vals []T, ok bool, err error) {
	d, ok := any(last).(distancer[I])
	if !ok {
		return nil, false, nil
	}
	n := d.Sub(first)
	if n < 0 {
		return nil, true, fmt.Errorf("%w: range of negative length %d", ErrOutOfRange, n)
	}
	vals = make([]T, 0, n)
	for it := first; !it.Equal(last); it = it.Next() {
		vals = append(vals, it.Get())
	}
	return vals, true, nil
}

// FromRange creates a vector holding copies of the elements in [first, last).
// Any iterator type implementing InputIterator is accepted.
func FromRange[T any, I InputIterator[T, I]](first, last I, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if _, err := InsertRange(v, v.End(), first, last); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// FromSeq creates a vector holding the values of seq.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if _, err := v.InsertSeq(v.End(), seq); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// InsertRange inserts copies of the elements in [first, last) before pos and
// returns an iterator to the first inserted element.
//
// If the iterators support distance computation (a Sub method, as with every
// RandomAccessIterator), the range is read first and inserted with a single
// shift, reallocating at most once. The range may then stem from v itself,
// and on failure v is unchanged. Forward-only iterators are inserted one
// element at a time; a failure may leave a prefix of the range inserted.
func InsertRange[T any, I InputIterator[T, I]](v *Vector[T], pos Iterator[T], first, last I) (Iterator[T], error) {
	at, err := v.position(pos, true)
	if err != nil {
		return pos, err
	}
	vals, ok, err := gather[T](first, last)
	if err != nil {
		return pos, err
	}
	if ok {
		if err := v.store.OpenGap(at, len(vals), func(k int) T { return vals[k] }); err != nil {
			return pos, err
		}
		return v.iteratorAt(at), nil
	}
	p := at
	for it := first; !it.Equal(last); it = it.Next() {
		val := it.Get()
		if err = v.store.OpenGap(p, 1, func(int) T { return val }); err != nil {
			break
		}
		p++
	}
	return v.iteratorAt(at), err
}

// AssignRange replaces the contents of v with copies of the elements in
// [first, last). For ranges of known distance the elements are read before v
// is cleared, so the range may stem from v itself.
func AssignRange[T any, I InputIterator[T, I]](v *Vector[T], first, last I) error {
	vals, ok, err := gather[T](first, last)
	if err != nil {
		return err
	}
	if ok {
		return v.AssignSlice(vals...)
	}
	v.Clear()
	_, err = InsertRange(v, v.Begin(), first, last)
	return err
}
