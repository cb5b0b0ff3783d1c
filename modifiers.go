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

// PushBack appends a copy of val. If the vector is full, capacity doubles.
// On failure the vector is unchanged.
func (v *Vector[T]) PushBack(val T) error {
	return v.store.OpenGap(v.Len(), 1, func(int) T { return val })
}

// PopBack destroys the last element. v must not be empty.
func (v *Vector[T]) PopBack() {
	assert(!v.IsEmpty(), "PopBack called on empty vector")
	v.store.Truncate(v.Len() - 1)
}

// Insert inserts a copy of val before pos and returns an iterator to the new
// element. pos must be a current iterator of v in [Begin, End], otherwise
// ErrOutOfRange is returned. On failure the vector is unchanged.
func (v *Vector[T]) Insert(pos Iterator[T], val T) (Iterator[T], error) {
	return v.InsertN(pos, 1, val)
}

// InsertN inserts n copies of val before pos and returns an iterator to the
// first new element (pos itself if n is 0). On failure the vector is unchanged.
func (v *Vector[T]) InsertN(pos Iterator[T], n int, val T) (Iterator[T], error) {
	at, err := v.position(pos, true)
	if err != nil {
		return pos, err
	}
	if n < 0 {
		return pos, fmt.Errorf("%w: negative count %d", ErrLength, n)
	}
	if err := v.store.OpenGap(at, n, func(int) T { return val }); err != nil {
		return pos, err
	}
	return v.iteratorAt(at), nil
}

// InsertSlice inserts copies of vals before pos, reallocating at most once.
// On failure the vector is unchanged.
func (v *Vector[T]) InsertSlice(pos Iterator[T], vals ...T) error {
	at, err := v.position(pos, true)
	if err != nil {
		return err
	}
	return v.store.OpenGap(at, len(vals), func(k int) T { return vals[k] })
}

// InsertSeq inserts the values of seq before pos, one at a time. It returns an
// iterator to the first inserted element.
//
// As the length of seq is not known upfront, a failure may leave a prefix of
// seq inserted.
func (v *Vector[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	at, err := v.position(pos, true)
	if err != nil {
		return pos, err
	}
	p := at
	for val := range seq {
		if err = v.store.OpenGap(p, 1, func(int) T { return val }); err != nil {
			break
		}
		p++
	}
	return v.iteratorAt(at), err
}

// Erase destroys the element at pos and returns an iterator to the element
// which followed it. pos must be a current iterator of v in [Begin, End).
func (v *Vector[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	at, err := v.position(pos, false)
	if err != nil {
		return pos, err
	}
	if err := v.store.Erase(at, at+1); err != nil {
		return pos, err
	}
	return v.iteratorAt(at), nil
}

// EraseRange destroys the elements in [first, last) and returns an iterator
// to the element which followed them.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) (Iterator[T], error) {
	from, err := v.position(first, true)
	if err != nil {
		return first, err
	}
	to, err := v.position(last, true)
	if err != nil {
		return first, err
	}
	if to < from {
		return first, fmt.Errorf("%w: range [%d,%d) is reversed", ErrOutOfRange, from, to)
	}
	if err := v.store.Erase(from, to); err != nil {
		return first, err
	}
	return v.iteratorAt(from), nil
}

// Clear destroys all elements. The capacity is unchanged.
func (v *Vector[T]) Clear() {
	v.store.Clear()
}

// Assign replaces the contents of v with n copies of val.
func (v *Vector[T]) Assign(n int, val T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrLength, n)
	}
	v.Clear()
	_, err := v.InsertN(v.Begin(), n, val)
	return err
}

// AssignSlice replaces the contents of v with copies of vals. vals may be
// the result of v.Values().
func (v *Vector[T]) AssignSlice(vals ...T) error {
	v.Clear()
	return v.InsertSlice(v.Begin(), vals...)
}

// AssignSeq replaces the contents of v with the values of seq. seq is drained
// before v is cleared, so it may read from v itself.
func (v *Vector[T]) AssignSeq(seq iter.Seq[T]) error {
	var vals []T
	for val := range seq {
		vals = append(vals, val)
	}
	return v.AssignSlice(vals...)
}

// Swap exchanges the contents, capacity and allocator of v and other. No
// element is copied. Iterators of both vectors are invalidated.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.store.Swap(&other.store)
}

// position validates an iterator for positional operations on v and returns
// its offset. The end position is accepted only if withEnd is set.
func (v *Vector[T]) position(pos Iterator[T], withEnd bool) (int, error) {
	if pos.v != v {
		return 0, fmt.Errorf("%w: iterator belongs to another vector", ErrOutOfRange)
	}
	if pos.gen != v.store.Generation() {
		return 0, fmt.Errorf("%w: iterator has been invalidated", ErrOutOfRange)
	}
	limit := v.Len()
	if !withEnd {
		limit--
	}
	if pos.pos < 0 || pos.pos > limit {
		return 0, fmt.Errorf("%w: position %d outside of [0,%d]", ErrOutOfRange, pos.pos, limit)
	}
	return pos.pos, nil
}
