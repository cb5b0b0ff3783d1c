package alloc

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Allocator provides element storage for a container.
//
// A buffer returned by Allocate has exactly n slots, all holding the zero value
// of T. Slots are filled by Construct and emptied by Destroy. Containers must
// return every buffer to the allocator it came from, together with the slot
// count it was requested with.
type Allocator[T any] interface {
	// Allocate returns a buffer of n slots. It fails with ErrLength if n is
	// negative or exceeds MaxSize, and with ErrAllocation if storage cannot be
	// provided. Allocate(0) returns a nil buffer.
	Allocate(n int) ([]T, error)
	// Deallocate releases a buffer obtained from Allocate(n).
	Deallocate(buf []T, n int)
	// Construct stores a copy of v in slot i of buf.
	Construct(buf []T, i int, v T) error
	// Destroy ends the lifetime of the value in slot i of buf and zeroes the slot.
	Destroy(buf []T, i int)
	// MaxSize is the largest slot count Allocate will accept.
	MaxSize() int
}

// Copier is implemented by element types which need more than a Go assignment
// to be copied. Copy may fail; the error is propagated to the container
// operation which triggered the copy.
type Copier[T any] interface {
	Copy() (T, error)
}

// Destroyer is implemented by element types which have to release resources
// when they leave a container.
type Destroyer interface {
	Destroy()
}

// ConstructSlot copies v into buf[i], honouring Copier.
//
// Allocators without special construction needs may delegate to ConstructSlot.
func ConstructSlot[T any](buf []T, i int, v T) error {
	if c, ok := any(v).(Copier[T]); ok {
		cp, err := c.Copy()
		if err != nil {
			return err
		}
		buf[i] = cp
		return nil
	}
	buf[i] = v
	return nil
}

// DestroySlot notifies a Destroyer in buf[i], if any, and zeroes the slot.
func DestroySlot[T any](buf []T, i int) {
	if d, ok := any(buf[i]).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	buf[i] = zero
}

// IsCopier reports whether v will be copied through Copier when constructed.
//
// A value which is not a Copier is copied by plain assignment, which for
// reference-like types shares state between source and copy. Containers use
// this to decide whether a value left behind by a relocation has to be
// destroyed or only cleared.
func IsCopier[T any](v T) bool {
	_, ok := any(v).(Copier[T])
	return ok
}
