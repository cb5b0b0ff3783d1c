package vector

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vector/alloc"
)

// cell is a singly linked list, traversable only forward.
type cell struct {
	val  int
	next *cell
}

type listIter struct {
	c     *cell
	steps *int // counts calls to Next
}

func (l listIter) Get() int                  { return l.c.val }
func (l listIter) Next() listIter            { *l.steps++; return listIter{c: l.c.next, steps: l.steps} }
func (l listIter) Equal(other listIter) bool { return l.c == other.c }

func list(vals ...int) (first, last listIter) {
	var head *cell
	for i := len(vals) - 1; i >= 0; i-- {
		head = &cell{val: vals[i], next: head}
	}
	steps := 0
	return listIter{c: head, steps: &steps}, listIter{steps: &steps}
}

func TestFromForwardRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	first, last := list(3, 4, 5)
	v, err := FromRange[int](first, last)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, v, 3, 4, 5)
	if *first.steps != 3 {
		t.Errorf("forward range should be traversed once, took %d steps", *first.steps)
	}
}

func TestInsertForwardRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	v := ints(t, 1, 2)
	first, last := list(7, 8, 9)
	it, err := InsertRange(v, v.Begin().Next(), first, last)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, v, 1, 7, 8, 9, 2)
	if it.Index() != 1 || it.Get() != 7 {
		t.Errorf("expected iterator to first inserted element")
	}
}

func TestInsertRandomAccessRangeReallocatesOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	obs := alloc.NewObserved[int](nil)
	defer obs.Close()
	v := New(WithAllocator[int](obs))
	v.PushBack(1)
	v.PushBack(2)
	before := obs.Stats().Allocations
	first, last := SliceRange([]int{3, 4, 5, 6, 7})
	if _, err := InsertRange(v, v.End(), first, last); err != nil {
		t.Fatal(err)
	}
	expect(t, v, 1, 2, 3, 4, 5, 6, 7)
	if n := obs.Stats().Allocations - before; n != 1 {
		t.Errorf("expected exactly one reallocation, have %d", n)
	}
}

func TestInsertRangeFromSelf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	v := ints(t, 1, 2, 3)
	if _, err := InsertRange(v, v.Begin().Add(1), v.Begin(), v.End()); err != nil {
		t.Fatal(err)
	}
	expect(t, v, 1, 1, 2, 3, 2, 3)
	if err := AssignRange(v, v.CBegin().Add(2), v.CEnd()); err != nil {
		t.Fatal(err)
	}
	expect(t, v, 2, 3, 2, 3)
}

func TestReversedRangeIsRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	v := ints(t, 1, 2, 3)
	if _, err := InsertRange(v, v.End(), v.End(), v.Begin()); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected out-of-range for reversed range, have %v", err)
	}
	expect(t, v, 1, 2, 3)
}

func TestAssignForwardRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	v := ints(t, 1, 2, 3, 4)
	first, last := list(9, 8)
	if err := AssignRange(v, first, last); err != nil {
		t.Fatal(err)
	}
	expect(t, v, 9, 8)
	first, last = list()
	if err := AssignRange(v, first, last); err != nil {
		t.Fatal(err)
	}
	expect(t, v)
}
