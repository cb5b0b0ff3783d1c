package storage

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/vector/alloc"
)

// Engine owns a buffer of element slots and the lifecycle of the elements in it.
//
// The zero Engine is empty and allocates from the Go heap. An Engine must not be
// copied by value once it holds elements: the copy would alias the buffer. Use
// Clone or Assign instead.
type Engine[T any] struct {
	alloc alloc.Allocator[T]
	buf   []T    // len(buf) is the capacity
	size  int    // number of live elements, buf[:size]
	gen   uint64 // incremented whenever elements move or the buffer changes
}

// New creates an empty engine using allocator a. A nil allocator means alloc.Heap.
func New[T any](a alloc.Allocator[T]) Engine[T] {
	return Engine[T]{alloc: a}
}

// Allocator returns the allocator used for all storage and element operations.
func (e *Engine[T]) Allocator() alloc.Allocator[T] {
	if e.alloc == nil {
		e.alloc = alloc.Heap[T]{}
	}
	return e.alloc
}

// Len returns the number of live elements.
func (e *Engine[T]) Len() int {
	return e.size
}

// Cap returns the number of allocated slots.
func (e *Engine[T]) Cap() int {
	return len(e.buf)
}

// IsEmpty reports whether the engine holds no elements.
func (e *Engine[T]) IsEmpty() bool {
	return e.size == 0
}

// MaxSize is the allocator's bound on the number of slots.
func (e *Engine[T]) MaxSize() int {
	return e.Allocator().MaxSize()
}

// Generation identifies the current arrangement of elements in storage.
func (e *Engine[T]) Generation() uint64 {
	return e.gen
}

// Get returns the element at offset i. There is no check against Len.
func (e *Engine[T]) Get(i int) T {
	return e.buf[i]
}

// Ref returns a pointer to the element at offset i. There is no check against Len.
// The pointer is valid until the next reallocation.
func (e *Engine[T]) Ref(i int) *T {
	return &e.buf[i]
}

// Set overwrites the element at offset i with v. There is no check against Len.
func (e *Engine[T]) Set(i int, v T) {
	e.buf[i] = v
}

// ConstructAt copies v into slot i through the allocator.
func (e *Engine[T]) ConstructAt(i int, v T) error {
	assert(i >= 0 && i < len(e.buf), "ConstructAt: slot outside of capacity")
	return e.Allocator().Construct(e.buf, i, v)
}

// DestroyAt empties slot i through the allocator.
func (e *Engine[T]) DestroyAt(i int) {
	assert(i >= 0 && i < len(e.buf), "DestroyAt: slot outside of capacity")
	e.Allocator().Destroy(e.buf, i)
}

// Grow is the growth policy for capacity-driven operations. It returns the
// capacity to allocate when required slots are needed and capacity slots are
// present: capacity doubles, but at least required slots are provided and the
// result never exceeds limit (assuming required <= limit). An empty engine grows
// to exactly required.
func Grow(capacity, required, limit int) int {
	if required <= capacity {
		return capacity
	}
	if capacity == 0 {
		return required
	}
	next := capacity * 2
	if next < capacity || next > limit {
		next = limit
	}
	return max(next, required)
}

func lengthError(n, limit int) error {
	return fmt.Errorf("%w: %d elements requested, maximum is %d", alloc.ErrLength, n, limit)
}

// Reserve makes room for at least n elements. If n exceeds the capacity, a new
// buffer of exactly n slots is allocated and the live elements are copied over.
// On failure the engine is unchanged.
func (e *Engine[T]) Reserve(n int) error {
	if n <= e.Cap() {
		return nil
	}
	if n > e.MaxSize() {
		return lengthError(n, e.MaxSize())
	}
	return e.reallocate(n, e.size, 0, nil)
}

// reallocate moves the live elements into a new buffer of the given capacity,
// leaving a gap of n slots at offset at, filled with fill(0) … fill(n-1).
//
// The gap is constructed first, then the elements before and after it. The old
// buffer is touched only after everything has been copied, so any failure can
// be undone by discarding the new buffer.
func (e *Engine[T]) reallocate(capacity, at, n int, fill func(k int) T) error {
	assert(capacity >= e.size+n, "reallocate: capacity too small")
	a := e.Allocator()
	buf, err := a.Allocate(capacity)
	if err != nil {
		tracer().Debugf("reallocation to %d slots failed: %v", capacity, err)
		return err
	}
	var gap, head, tail int // number of slots constructed per region
	rollback := func(cause error) error {
		for k := 0; k < gap; k++ {
			drop(a, buf, at+k)
		}
		for i := 0; i < head; i++ {
			drop(a, buf, i)
		}
		for i := 0; i < tail; i++ {
			drop(a, buf, at+n+i)
		}
		a.Deallocate(buf, capacity)
		tracer().Errorf("reallocation to %d slots rolled back: %v", capacity, cause)
		return cause
	}
	for ; gap < n; gap++ {
		if err := a.Construct(buf, at+gap, fill(gap)); err != nil {
			return rollback(err)
		}
	}
	for ; head < at; head++ {
		if err := a.Construct(buf, head, e.buf[head]); err != nil {
			return rollback(err)
		}
	}
	for ; tail < e.size-at; tail++ {
		if err := a.Construct(buf, at+n+tail, e.buf[at+tail]); err != nil {
			return rollback(err)
		}
	}
	for i := 0; i < e.size; i++ {
		drop(a, e.buf, i)
	}
	if len(e.buf) > 0 {
		a.Deallocate(e.buf, len(e.buf))
	}
	tracer().Debugf("reallocated storage: %d -> %d slots, %d elements", len(e.buf), capacity, e.size+n)
	e.buf = buf
	e.size += n
	e.gen++
	return nil
}

// drop empties a slot whose value has been copied elsewhere or whose
// construction is being undone. Values produced by alloc.Copier are independent
// and get destroyed; all other values share state with their source and are
// only cleared.
func drop[T any](a alloc.Allocator[T], buf []T, i int) {
	if alloc.IsCopier(buf[i]) {
		a.Destroy(buf, i)
		return
	}
	var zero T
	buf[i] = zero
}

// OpenGap inserts n elements at offset pos, element k being a copy of fill(k).
// Elements at pos and behind move n slots towards the back.
//
// If capacity does not suffice, storage grows according to Grow. On failure the
// engine is unchanged.
func (e *Engine[T]) OpenGap(pos, n int, fill func(k int) T) error {
	if pos < 0 || pos > e.size {
		return fmt.Errorf("%w: gap at %d, length is %d", ErrOutOfRange, pos, e.size)
	}
	if n < 0 || n > e.MaxSize()-e.size {
		return lengthError(e.size+n, e.MaxSize())
	}
	if n == 0 {
		return nil
	}
	if e.size+n > e.Cap() {
		return e.reallocate(Grow(e.Cap(), e.size+n, e.MaxSize()), pos, n, fill)
	}
	a := e.Allocator()
	end := e.size
	copy(e.buf[pos+n:end+n], e.buf[pos:end]) // memmove, safe for overlap
	for k := 0; k < n; k++ {
		if err := a.Construct(e.buf, pos+k, fill(k)); err != nil {
			for j := k - 1; j >= 0; j-- {
				drop(a, e.buf, pos+j)
			}
			copy(e.buf[pos:end], e.buf[pos+n:end+n])
			clear(e.buf[end : end+n])
			tracer().Errorf("insertion of %d elements at %d rolled back: %v", n, pos, err)
			return err
		}
	}
	e.size += n
	if pos < end {
		e.gen++
	}
	return nil
}

// Erase destroys the elements in [first, last) and closes the gap by moving
// the elements behind it towards the front.
func (e *Engine[T]) Erase(first, last int) error {
	if first < 0 || last < first || last > e.size {
		return fmt.Errorf("%w: erase [%d,%d), length is %d", ErrOutOfRange, first, last, e.size)
	}
	if first == last {
		return nil
	}
	for i := first; i < last; i++ {
		e.DestroyAt(i)
	}
	n := last - first
	copy(e.buf[first:], e.buf[last:e.size])
	clear(e.buf[e.size-n : e.size])
	if last < e.size {
		e.gen++
	}
	e.size -= n
	return nil
}

// Truncate destroys the elements in [n, Len), last one first.
func (e *Engine[T]) Truncate(n int) {
	assert(n >= 0, "Truncate: negative length")
	for e.size > n {
		e.DestroyAt(e.size - 1)
		e.size--
	}
}

// Extend grows the engine to n elements by appending copies of v. Storage is
// reserved for exactly n elements if capacity does not suffice.
//
// If copying v fails, the elements appended so far are removed again; the
// capacity may remain enlarged.
func (e *Engine[T]) Extend(n int, v T) error {
	if n <= e.size {
		return nil
	}
	if n > e.MaxSize() {
		return lengthError(n, e.MaxSize())
	}
	if err := e.Reserve(n); err != nil {
		return err
	}
	start := e.size
	for e.size < n {
		if err := e.ConstructAt(e.size, v); err != nil {
			for e.size > start {
				e.size--
				drop(e.Allocator(), e.buf, e.size)
			}
			return err
		}
		e.size++
	}
	return nil
}

// Clear destroys all elements. Capacity is unchanged.
func (e *Engine[T]) Clear() {
	e.Truncate(0)
}

// Clone returns a deep copy of e, sharing e's allocator, with capacity equal
// to Len.
func (e *Engine[T]) Clone() (Engine[T], error) {
	a := e.Allocator()
	buf, err := e.copyOut(a, e.size)
	if err != nil {
		return Engine[T]{}, err
	}
	return Engine[T]{alloc: a, buf: buf, size: e.size}, nil
}

// Assign replaces the elements of e with copies of the elements of src, in
// storage of exactly src.Len() slots. On failure e is unchanged. Assigning an
// engine to itself does nothing.
func (e *Engine[T]) Assign(src *Engine[T]) error {
	if src == e {
		return nil
	}
	a := e.Allocator()
	buf, err := src.copyOut(a, src.size)
	if err != nil {
		return err
	}
	e.Release()
	e.buf, e.size = buf, src.size
	return nil
}

// copyOut copies the live elements into a new buffer from allocator a.
func (e *Engine[T]) copyOut(a alloc.Allocator[T], capacity int) ([]T, error) {
	if capacity == 0 {
		return nil, nil
	}
	buf, err := a.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	for i := 0; i < e.size; i++ {
		if err := a.Construct(buf, i, e.buf[i]); err != nil {
			for j := i - 1; j >= 0; j-- {
				drop(a, buf, j)
			}
			a.Deallocate(buf, capacity)
			tracer().Errorf("copy of %d elements rolled back: %v", e.size, err)
			return nil, err
		}
	}
	return buf, nil
}

// Swap exchanges storage, size and allocator with other, without touching any
// element.
func (e *Engine[T]) Swap(other *Engine[T]) {
	if other == e {
		return
	}
	e.alloc, other.alloc = other.alloc, e.alloc
	e.buf, other.buf = other.buf, e.buf
	e.size, other.size = other.size, e.size
	gen := max(e.gen, other.gen) + 1
	e.gen, other.gen = gen, gen
}

// Release destroys all elements and returns the buffer to the allocator.
func (e *Engine[T]) Release() {
	e.Truncate(0)
	if len(e.buf) > 0 {
		e.Allocator().Deallocate(e.buf, len(e.buf))
	}
	e.buf = nil
	e.gen++
}
