package alloc

import "fmt"

// Bounded restricts another allocator to a maximum buffer size and a quota of
// simultaneously allocated slots.
//
// Bounded is useful to give a container a hard memory budget, and to provoke
// allocation failures deterministically. A Bounded must not be copied after
// first use; share it by pointer.
type Bounded[T any] struct {
	// Base provides the storage. A nil Base means Heap.
	Base Allocator[T]
	// Max caps the size of a single buffer. Zero means Base.MaxSize().
	Max int
	// Quota caps the total number of slots allocated and not yet deallocated.
	// Zero means no quota.
	Quota int
	live  int
}

// NewBounded creates a bounded allocator on top of base.
func NewBounded[T any](base Allocator[T], maxSize, quota int) *Bounded[T] {
	return &Bounded[T]{Base: base, Max: maxSize, Quota: quota}
}

func (b *Bounded[T]) base() Allocator[T] {
	if b.Base == nil {
		return Heap[T]{}
	}
	return b.Base
}

// Allocate forwards to Base if the request fits both bounds.
func (b *Bounded[T]) Allocate(n int) ([]T, error) {
	if n < 0 || n > b.MaxSize() {
		return nil, fmt.Errorf("%w: %d slots requested, maximum is %d", ErrLength, n, b.MaxSize())
	}
	if b.Quota > 0 && b.live+n > b.Quota {
		tracer().Debugf("bounded allocator: quota %d exhausted (%d live, %d requested)", b.Quota, b.live, n)
		return nil, fmt.Errorf("%w: quota of %d slots exhausted", ErrAllocation, b.Quota)
	}
	buf, err := b.base().Allocate(n)
	if err != nil {
		return nil, err
	}
	b.live += n
	return buf, nil
}

// Deallocate returns n slots to the quota.
func (b *Bounded[T]) Deallocate(buf []T, n int) {
	b.base().Deallocate(buf, n)
	b.live -= n
	if b.live < 0 {
		b.live = 0
	}
}

// Construct forwards to Base.
func (b *Bounded[T]) Construct(buf []T, i int, v T) error {
	return b.base().Construct(buf, i, v)
}

// Destroy forwards to Base.
func (b *Bounded[T]) Destroy(buf []T, i int) {
	b.base().Destroy(buf, i)
}

// MaxSize is the smaller of Max and Base.MaxSize().
func (b *Bounded[T]) MaxSize() int {
	m := b.base().MaxSize()
	if b.Max > 0 && b.Max < m {
		return b.Max
	}
	return m
}

// Live returns the number of slots currently allocated.
func (b *Bounded[T]) Live() int {
	return b.live
}

var _ Allocator[int] = (*Bounded[int])(nil)
