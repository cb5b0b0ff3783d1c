package vector

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIteratorArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	v := ints(t, 10, 20, 30, 40)
	b, e := v.Begin(), v.End()
	if e.Sub(b) != v.Len() {
		t.Errorf("expected distance %d between Begin and End, have %d", v.Len(), e.Sub(b))
	}
	if !b.Less(e) || e.Less(b) {
		t.Errorf("Begin should be less than End")
	}
	if it := b.Add(3).Prev(); it.Get() != 30 || it.Index() != 2 {
		t.Errorf("expected 30 at offset 2, have %d at %d", it.Get(), it.Index())
	}
	if b.At(1) != 20 {
		t.Errorf("expected b[1] = 20, is %d", b.At(1))
	}
	if !e.Add(-4).Equal(b) {
		t.Errorf("End-4 should equal Begin")
	}
	var sum int
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		sum += it.Get()
	}
	if sum != 100 {
		t.Errorf("expected sum of 100, have %d", sum)
	}
}

func TestIteratorWrites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	v := ints(t, 1, 2, 3)
	it := v.Begin().Next()
	it.Set(5)
	*it.Next().Ref() += 10
	expect(t, v, 1, 5, 13)
	c := it.Const()
	if c.Get() != 5 || c.Index() != 1 || !c.Valid() {
		t.Errorf("const iterator should see 5 at offset 1")
	}
	if v.CEnd().Sub(v.CBegin()) != 3 || !v.CBegin().Less(c) {
		t.Errorf("const iterators do not span the vector")
	}
}

func TestIteratorInvalidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	v := ints(t, 1, 2, 3)
	v.Reserve(10)
	it := v.Begin().Add(2)
	v.PushBack(4)
	if !it.Valid() {
		t.Errorf("appending without reallocation must keep iterators valid")
	}
	v.Insert(v.Begin(), 0)
	if it.Valid() {
		t.Errorf("insertion before the iterator should invalidate it")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("dereferencing an invalid iterator should panic")
		}
	}()
	_ = it.Get()
}

func TestIteratorAtEndPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	v := ints(t, 1)
	defer func() {
		if recover() == nil {
			t.Errorf("dereferencing End should panic")
		}
	}()
	_ = v.End().Get()
}

func TestReverseIteration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	v := ints(t, 1, 2, 3, 4)
	var got []int
	for r := v.RBegin(); !r.Equal(v.REnd()); r = r.Next() {
		got = append(got, r.Get())
	}
	if !slices.Equal(got, []int{4, 3, 2, 1}) {
		t.Errorf("expected 4,3,2,1, have %v", got)
	}
	r := v.RBegin()
	if v.REnd().Sub(r) != 4 || !r.Less(v.REnd()) {
		t.Errorf("reverse range should have length 4")
	}
	if r.Add(3).Get() != 1 || r.Add(3).Prev().Get() != 2 {
		t.Errorf("reverse arithmetic is broken")
	}
	if !r.Base().Equal(v.End()) {
		t.Errorf("base of RBegin should be End")
	}
	if err := r.Next().Set(30); err != nil {
		t.Fatal(err)
	}
	expect(t, v, 1, 2, 30, 4)
}

func TestConstReverseIteratorRejectsWrites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	v := ints(t, 1, 2)
	cr := v.CRBegin()
	if cr.Get() != 2 || cr.Next().Get() != 1 || !cr.Add(2).Equal(v.CREnd()) {
		t.Errorf("const reverse iteration is broken")
	}
	if err := cr.Set(9); !errors.Is(err, ErrConstIterator) {
		t.Errorf("expected ErrConstIterator, have %v", err)
	}
	expect(t, v, 1, 2)
}

func TestReverseOverSlice(t *testing.T) {
	first, last := SliceRange([]string{"a", "b", "c"})
	rfirst, rlast := MakeReverse[string](last), MakeReverse[string](first)
	v, err := FromRange[string](rfirst, rlast)
	if err != nil {
		t.Fatal(err)
	}
	expect(t, v, "c", "b", "a")
}
