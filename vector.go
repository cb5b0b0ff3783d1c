package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"

	"github.com/npillmayer/vector/alloc"
	"github.com/npillmayer/vector/storage"
)

// Vector is a contiguous sequence of elements of type T.
//
// A vector created by
//
//	Vector[T]{}
//
// is a valid object, is empty and allocates from the Go heap.
//
// A Vector must not be copied by value once it holds elements, as the copy
// would share storage with the original. Use Clone or CopyFrom instead.
//
// Complexity of the operations:
//
//	Operation            |   Vector
//	---------------------+----------------------
//	Index, At            |   O(1)
//	PushBack             |   O(1) amortized
//	PopBack              |   O(1)
//	Insert, Erase        |   O(n) (elements behind the position move)
//	Reserve, Clone       |   O(n)
//	Swap                 |   O(1)
type Vector[T any] struct {
	store storage.Engine[T]
}

// Option configures a vector at construction time.
type Option[T any] func(*Vector[T])

// WithAllocator lets a vector obtain its storage from a.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(v *Vector[T]) {
		v.store = storage.New(a)
	}
}

// New creates an empty vector.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewFilled creates a vector of n copies of val, with capacity n.
func NewFilled[T any](n int, val T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if _, err := v.InsertN(v.Begin(), n, val); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice creates a vector holding copies of items, with capacity len(items).
func FromSlice[T any](items []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.InsertSlice(v.Begin(), items...); err != nil {
		return nil, err
	}
	return v, nil
}

// Clone returns a deep copy of v, using v's allocator. The clone's capacity
// equals its length.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	store, err := v.store.Clone()
	if err != nil {
		return nil, err
	}
	return &Vector[T]{store: store}, nil
}

// CopyFrom replaces the contents of v with copies of the elements of other.
// Copying a vector onto itself does nothing. On failure v is unchanged.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if other == v {
		return nil
	}
	return v.store.Assign(&other.store)
}

// Release destroys all elements and returns the storage to the allocator.
// The vector is empty afterwards and may be reused.
func (v *Vector[T]) Release() {
	tracer().Debugf("vector: releasing %d elements, %d slots", v.store.Len(), v.store.Cap())
	v.store.Release()
}

// --- Capacity --------------------------------------------------------------

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.store.Len()
}

// Cap returns the number of elements the vector can hold without reallocating.
func (v *Vector[T]) Cap() int {
	return v.store.Cap()
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.store.IsEmpty()
}

// MaxSize is the allocator's bound on the number of elements.
func (v *Vector[T]) MaxSize() int {
	return v.store.MaxSize()
}

// Allocator returns the allocator the vector uses.
func (v *Vector[T]) Allocator() alloc.Allocator[T] {
	return v.store.Allocator()
}

// Generation identifies the current arrangement of the vector's storage. It
// changes whenever iterators are invalidated.
func (v *Vector[T]) Generation() uint64 {
	return v.store.Generation()
}

// Reserve makes room for at least n elements. If n exceeds the capacity, storage
// is reallocated to exactly n slots. On failure the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	return v.store.Reserve(n)
}

// Resize changes the length to n. Surplus elements are destroyed from the back;
// missing elements are appended as copies of val. Storage is reallocated only
// if n exceeds the capacity.
func (v *Vector[T]) Resize(n int, val T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrLength, n)
	}
	if n < v.Len() {
		v.store.Truncate(n)
		return nil
	}
	return v.store.Extend(n, val)
}

// --- Element access --------------------------------------------------------

// Index returns element n. It does not check n against Len.
func (v *Vector[T]) Index(n int) T {
	return v.store.Get(n)
}

// Ref returns a pointer to element n. It does not check n against Len.
// The pointer must not be used after the vector reallocates.
func (v *Vector[T]) Ref(n int) *T {
	return v.store.Ref(n)
}

// Set replaces element n with val. It does not check n against Len.
func (v *Vector[T]) Set(n int, val T) {
	v.store.Set(n, val)
}

// At returns element n, or ErrOutOfRange if n is not in [0, Len).
func (v *Vector[T]) At(n int) (T, error) {
	if n < 0 || n >= v.Len() {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, n, v.Len())
	}
	return v.store.Get(n), nil
}

// AtRef returns a pointer to element n, or ErrOutOfRange if n is not in [0, Len).
func (v *Vector[T]) AtRef(n int) (*T, error) {
	if n < 0 || n >= v.Len() {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, n, v.Len())
	}
	return v.store.Ref(n), nil
}

// Front returns a pointer to the first element. v must not be empty.
func (v *Vector[T]) Front() *T {
	assert(!v.IsEmpty(), "Front called on empty vector")
	return v.store.Ref(0)
}

// Back returns a pointer to the last element. v must not be empty.
func (v *Vector[T]) Back() *T {
	assert(!v.IsEmpty(), "Back called on empty vector")
	return v.store.Ref(v.Len() - 1)
}

// Values returns a copy of the elements as a slice. The slice never shares
// memory with the vector.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.Len())
	for i := range out {
		out[i] = v.store.Get(i)
	}
	return out
}

// All returns an iterator over index/element pairs, front to back.
//
// The vector must not be modified during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.store.Get(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(i, v.store.Get(i)) {
				return
			}
		}
	}
}

// String returns a short description of the vector's shape, not its elements.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector(len=%d, cap=%d)", v.Len(), v.Cap())
}
