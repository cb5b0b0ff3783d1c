package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// InputIterator is the minimal iterator accepted by the range functions
// (FromRange, InsertRange, AssignRange). I is the iterator type itself:
// Next returns the successor position, Equal detects the end of a range.
type InputIterator[T any, I any] interface {
	Get() T
	Next() I
	Equal(other I) bool
}

// RandomAccessIterator is an iterator supporting arithmetic. Sub returns the
// distance from other to the receiver, i.e. last.Sub(first) is the length of
// the range [first, last).
type RandomAccessIterator[T any, I any] interface {
	InputIterator[T, I]
	Prev() I
	Add(n int) I
	Sub(other I) int
	Less(other I) bool
}

// Iterator is a random-access position within a vector, permitting reads and
// writes of the element at the position.
//
// An iterator is valid as long as the vector's storage is neither reallocated
// nor rearranged (see Valid). Reading or writing through an invalid iterator
// panics. Iterators are values; arithmetic returns new iterators.
type Iterator[T any] struct {
	v   *Vector[T]
	pos int
	gen uint64
}

func (v *Vector[T]) iteratorAt(pos int) Iterator[T] {
	return Iterator[T]{v: v, pos: pos, gen: v.store.Generation()}
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return v.iteratorAt(0)
}

// End returns an iterator to the position behind the last element.
func (v *Vector[T]) End() Iterator[T] {
	return v.iteratorAt(v.Len())
}

// CBegin returns a read-only iterator to the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return v.Begin().Const()
}

// CEnd returns a read-only iterator to the position behind the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return v.End().Const()
}

// Valid reports whether the iterator still refers to a position within
// [Begin, End] of the storage generation it was created for.
func (it Iterator[T]) Valid() bool {
	return it.v != nil && it.gen == it.v.store.Generation() && it.pos >= 0 && it.pos <= it.v.Len()
}

// Index returns the offset of the iterator from Begin.
func (it Iterator[T]) Index() int {
	return it.pos
}

func (it Iterator[T]) deref() int {
	assert(it.v != nil, "dereferencing an unbound iterator")
	assert(it.gen == it.v.store.Generation(), "dereferencing an invalidated iterator")
	assert(it.pos >= 0 && it.pos < it.v.Len(), "dereferencing an iterator outside of [Begin, End)")
	return it.pos
}

// Get returns the element at the iterator's position.
func (it Iterator[T]) Get() T {
	return it.v.store.Get(it.deref())
}

// Ref returns a pointer to the element at the iterator's position.
func (it Iterator[T]) Ref() *T {
	return it.v.store.Ref(it.deref())
}

// Set replaces the element at the iterator's position.
func (it Iterator[T]) Set(val T) {
	it.v.store.Set(it.deref(), val)
}

// At returns the element n positions away from the iterator.
func (it Iterator[T]) At(n int) T {
	return it.Add(n).Get()
}

// Next returns an iterator to the following position.
func (it Iterator[T]) Next() Iterator[T] {
	it.pos++
	return it
}

// Prev returns an iterator to the preceding position.
func (it Iterator[T]) Prev() Iterator[T] {
	it.pos--
	return it
}

// Add returns an iterator n positions away; n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns the distance from other to it. Both must stem from the same vector.
func (it Iterator[T]) Sub(other Iterator[T]) int {
	assert(it.v == other.v, "subtracting iterators of different vectors")
	return it.pos - other.pos
}

// Less reports whether it is positioned before other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	assert(it.v == other.v, "comparing iterators of different vectors")
	return it.pos < other.pos
}

// Equal reports whether it and other denote the same position of the same vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.pos == other.pos
}

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

func (it Iterator[T]) String() string {
	return fmt.Sprintf("Iterator@%d", it.pos)
}

// ConstIterator is a random-access position within a vector which permits
// reading only. It follows the same validity rules as Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// Valid reports whether the iterator is still valid, see Iterator.Valid.
func (c ConstIterator[T]) Valid() bool { return c.it.Valid() }

// Index returns the offset of the iterator from Begin.
func (c ConstIterator[T]) Index() int { return c.it.pos }

// Get returns the element at the iterator's position.
func (c ConstIterator[T]) Get() T { return c.it.Get() }

// At returns the element n positions away from the iterator.
func (c ConstIterator[T]) At(n int) T { return c.it.At(n) }

// Next returns an iterator to the following position.
func (c ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{it: c.it.Next()} }

// Prev returns an iterator to the preceding position.
func (c ConstIterator[T]) Prev() ConstIterator[T] { return ConstIterator[T]{it: c.it.Prev()} }

// Add returns an iterator n positions away.
func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{it: c.it.Add(n)} }

// Sub returns the distance from other to c.
func (c ConstIterator[T]) Sub(other ConstIterator[T]) int { return c.it.Sub(other.it) }

// Less reports whether c is positioned before other.
func (c ConstIterator[T]) Less(other ConstIterator[T]) bool { return c.it.Less(other.it) }

// Equal reports whether c and other denote the same position.
func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool { return c.it.Equal(other.it) }

// SliceIterator is a random-access iterator over a Go slice, to be used as a
// source for the range functions.
type SliceIterator[T any] struct {
	items []T
	pos   int
}

// SliceRange returns the iterator pair [first, last) spanning items.
func SliceRange[T any](items []T) (first, last SliceIterator[T]) {
	return SliceIterator[T]{items: items}, SliceIterator[T]{items: items, pos: len(items)}
}

// Get returns the item at the iterator's position.
func (s SliceIterator[T]) Get() T { return s.items[s.pos] }

// Next returns an iterator to the following position.
func (s SliceIterator[T]) Next() SliceIterator[T] { s.pos++; return s }

// Prev returns an iterator to the preceding position.
func (s SliceIterator[T]) Prev() SliceIterator[T] { s.pos--; return s }

// Add returns an iterator n positions away.
func (s SliceIterator[T]) Add(n int) SliceIterator[T] { s.pos += n; return s }

// Sub returns the distance from other to s.
func (s SliceIterator[T]) Sub(other SliceIterator[T]) int { return s.pos - other.pos }

// Less reports whether s is positioned before other.
func (s SliceIterator[T]) Less(other SliceIterator[T]) bool { return s.pos < other.pos }

// Equal reports whether s and other denote the same position.
func (s SliceIterator[T]) Equal(other SliceIterator[T]) bool { return s.pos == other.pos }

var (
	_ RandomAccessIterator[int, Iterator[int]]      = Iterator[int]{}
	_ RandomAccessIterator[int, ConstIterator[int]] = ConstIterator[int]{}
	_ RandomAccessIterator[int, SliceIterator[int]] = SliceIterator[int]{}
)
