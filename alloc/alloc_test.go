package alloc

import (
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handle struct {
	id       int
	copies   *int
	released *int
	fail     bool
}

func (h handle) Copy() (handle, error) {
	if h.fail {
		return handle{}, errors.New("handle cannot be copied")
	}
	*h.copies++
	return h, nil
}

func (h handle) Destroy() {
	*h.released++
}

func TestHeapAllocate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	var h Heap[string]
	buf, err := h.Allocate(4)
	require.NoError(t, err)
	assert.Len(t, buf, 4)
	assert.Equal(t, "", buf[3])
	buf, err = h.Allocate(0)
	assert.NoError(t, err)
	assert.Nil(t, buf)
	_, err = h.Allocate(-1)
	assert.ErrorIs(t, err, ErrLength)
	_, err = h.Allocate(h.MaxSize() + 1)
	assert.ErrorIs(t, err, ErrLength)
}

func TestHeapAllocationFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	var h Heap[int64]
	buf, err := h.Allocate(h.MaxSize() / 2)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.NotErrorIs(t, err, ErrLength)
	assert.Nil(t, buf)
}

func TestHeapMaxSize(t *testing.T) {
	assert.Greater(t, Heap[byte]{}.MaxSize(), Heap[[64]byte]{}.MaxSize())
	assert.Positive(t, Heap[struct{}]{}.MaxSize())
}

func TestConstructHonoursCopier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	var copies, released int
	var h Heap[handle]
	buf, _ := h.Allocate(2)
	require.NoError(t, h.Construct(buf, 0, handle{id: 1, copies: &copies, released: &released}))
	assert.Equal(t, 1, copies)
	assert.True(t, IsCopier(buf[0]))
	err := h.Construct(buf, 1, handle{id: 2, copies: &copies, released: &released, fail: true})
	assert.Error(t, err)
	assert.Equal(t, handle{}, buf[1], "failed construction must leave the slot empty")
	h.Destroy(buf, 0)
	assert.Equal(t, 1, released)
	assert.Equal(t, handle{}, buf[0])
	assert.False(t, IsCopier(42))
}

func TestBoundedQuota(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	b := NewBounded[int](nil, 8, 10)
	assert.Equal(t, 8, b.MaxSize())
	first, err := b.Allocate(6)
	require.NoError(t, err)
	_, err = b.Allocate(5)
	assert.ErrorIs(t, err, ErrAllocation)
	_, err = b.Allocate(9)
	assert.ErrorIs(t, err, ErrLength)
	assert.Equal(t, 6, b.Live())
	b.Deallocate(first, 6)
	assert.Zero(t, b.Live())
	_, err = b.Allocate(8)
	assert.NoError(t, err)
}

func TestObservedCountsAndPublishes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	o := NewObserved[int](NewBounded[int](nil, 0, 4))
	ch, ok := o.Subscribe(8)
	require.True(t, ok)
	buf, err := o.Allocate(3)
	require.NoError(t, err)
	require.NoError(t, o.Construct(buf, 0, 7))
	o.Destroy(buf, 0)
	_, err = o.Allocate(2)
	assert.ErrorIs(t, err, ErrAllocation)
	o.Deallocate(buf, 3)

	stats := o.Stats()
	assert.Equal(t, Stats{
		Allocations:   1,
		Deallocations: 1,
		Failures:      1,
		Constructs:    1,
		Destroys:      1,
		LiveSlots:     0,
		PeakSlots:     3,
	}, stats)

	var ops []Op
	for len(ops) < 3 {
		select {
		case e := <-ch:
			ops = append(ops, e.(Event).Op)
		case <-time.After(time.Second):
			t.Fatalf("received only %d of 3 events", len(ops))
		}
	}
	assert.Equal(t, []Op{OpAllocate, OpFailure, OpDeallocate}, ops)
	o.Close()
}

func TestObservedUnsubscribe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	o := NewObserved[int](nil)
	defer o.Close()
	ch, ok := o.Subscribe(4)
	require.True(t, ok)
	require.True(t, o.Unsubscribe(ch))
	timeout := time.After(time.Second)
	for closed := false; !closed; {
		select {
		case _, open := <-ch:
			closed = !open
		case <-timeout:
			t.Fatal("channel not closed after unsubscribing")
		}
	}
	buf, err := o.Allocate(2)
	require.NoError(t, err)
	o.Deallocate(buf, 2)
	assert.Equal(t, 1, o.Stats().Allocations, "counting continues without subscribers")
}
