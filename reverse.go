package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// ReverseIterator adapts a random-access iterator to traverse a range back to
// front. It holds the position one behind the element it denotes: Get reads
// from base.Prev(). Consequently MakeReverse(End()) denotes the last element
// and MakeReverse(Begin()) is the end of the reversed range.
type ReverseIterator[T any, I RandomAccessIterator[T, I]] struct {
	base I
}

// MakeReverse creates a reverse iterator from base.
func MakeReverse[T any, I RandomAccessIterator[T, I]](base I) ReverseIterator[T, I] {
	return ReverseIterator[T, I]{base: base}
}

// RBegin returns a reverse iterator to the last element.
func (v *Vector[T]) RBegin() ReverseIterator[T, Iterator[T]] {
	return MakeReverse[T](v.End())
}

// REnd returns a reverse iterator to the position before the first element.
func (v *Vector[T]) REnd() ReverseIterator[T, Iterator[T]] {
	return MakeReverse[T](v.Begin())
}

// CRBegin returns a read-only reverse iterator to the last element.
func (v *Vector[T]) CRBegin() ReverseIterator[T, ConstIterator[T]] {
	return MakeReverse[T](v.CEnd())
}

// CREnd returns a read-only reverse iterator to the position before the first
// element.
func (v *Vector[T]) CREnd() ReverseIterator[T, ConstIterator[T]] {
	return MakeReverse[T](v.CBegin())
}

// Base returns the underlying iterator, which is positioned one element
// behind the element r denotes.
func (r ReverseIterator[T, I]) Base() I {
	return r.base
}

// Get returns the element r denotes.
func (r ReverseIterator[T, I]) Get() T {
	return r.base.Prev().Get()
}

// Set replaces the element r denotes. If the underlying iterator does not
// permit writing, ErrConstIterator is returned.
func (r ReverseIterator[T, I]) Set(val T) error {
	w, ok := any(r.base.Prev()).(interface{ Set(T) })
	if !ok {
		return ErrConstIterator
	}
	w.Set(val)
	return nil
}

// Next moves towards the front of the underlying range.
func (r ReverseIterator[T, I]) Next() ReverseIterator[T, I] {
	return ReverseIterator[T, I]{base: r.base.Prev()}
}

// Prev moves towards the back of the underlying range.
func (r ReverseIterator[T, I]) Prev() ReverseIterator[T, I] {
	return ReverseIterator[T, I]{base: r.base.Next()}
}

// Add advances r by n positions in reverse direction.
func (r ReverseIterator[T, I]) Add(n int) ReverseIterator[T, I] {
	return ReverseIterator[T, I]{base: r.base.Add(-n)}
}

// Sub returns the distance from other to r, measured in reverse direction.
func (r ReverseIterator[T, I]) Sub(other ReverseIterator[T, I]) int {
	return other.base.Sub(r.base)
}

// Less reports whether r comes before other in reverse direction.
func (r ReverseIterator[T, I]) Less(other ReverseIterator[T, I]) bool {
	return other.base.Less(r.base)
}

// Equal reports whether r and other denote the same position.
func (r ReverseIterator[T, I]) Equal(other ReverseIterator[T, I]) bool {
	return r.base.Equal(other.base)
}

var _ RandomAccessIterator[int, ReverseIterator[int, Iterator[int]]] = ReverseIterator[int, Iterator[int]]{}
