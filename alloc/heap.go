package alloc

import (
	"fmt"
	"math"
	"unsafe"
)

// Heap allocates slots from the Go heap. It is the default allocator of
// package vector. The zero value is ready to use.
//
// Exhausting the Go heap is fatal to the process and cannot be reported as
// ErrAllocation; Heap can only report requests the runtime rejects upfront.
type Heap[T any] struct{}

// Allocate returns a buffer of n zeroed slots.
func (h Heap[T]) Allocate(n int) (buf []T, err error) {
	if n < 0 || n > h.MaxSize() {
		return nil, fmt.Errorf("%w: %d slots requested, maximum is %d", ErrLength, n, h.MaxSize())
	}
	if n == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("heap allocation of %d slots failed: %v", n, r)
			buf, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	buf = make([]T, n)
	return buf, nil
}

// Deallocate drops the buffer's references to let the GC reclaim them.
func (h Heap[T]) Deallocate(buf []T, n int) {
	if n > len(buf) {
		n = len(buf)
	}
	clear(buf[:n])
}

// Construct copies v into buf[i].
func (h Heap[T]) Construct(buf []T, i int, v T) error {
	return ConstructSlot(buf, i, v)
}

// Destroy empties buf[i].
func (h Heap[T]) Destroy(buf []T, i int) {
	DestroySlot(buf, i)
}

// MaxSize is the number of slots of type T addressable by an int-sized length.
func (h Heap[T]) MaxSize() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}

var _ Allocator[int] = Heap[int]{}
