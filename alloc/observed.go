package alloc

import (
	"context"
	"fmt"

	"github.com/guiguan/caster"
)

// Op enumerates the allocator events reported by Observed.
type Op int8

// Allocator events.
const (
	OpAllocate Op = iota
	OpDeallocate
	OpFailure
)

func (op Op) String() string {
	switch op {
	case OpAllocate:
		return "allocate"
	case OpDeallocate:
		return "deallocate"
	case OpFailure:
		return "failure"
	}
	return fmt.Sprintf("Op(%d)", int8(op))
}

// Event is a buffer-level allocator event, published to subscribers of an
// Observed allocator.
type Event struct {
	Op  Op
	N   int   // slot count of the buffer
	Err error // set for OpFailure
}

func (e Event) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s(%d): %v", e.Op, e.N, e.Err)
	}
	return fmt.Sprintf("%s(%d)", e.Op, e.N)
}

// Stats counts allocator activity.
type Stats struct {
	Allocations   int
	Deallocations int
	Failures      int
	Constructs    int
	Destroys      int
	LiveSlots     int // slots allocated and not yet deallocated
	PeakSlots     int
}

// Observed wraps an allocator, counts its activity and publishes buffer events.
//
// Counting happens synchronously on the caller's goroutine. Events are
// broadcast to subscribers asynchronously; a subscriber has to keep reading its
// channel, otherwise publishing blocks once the channel's capacity is used up.
// Element-level operations (construct/destroy) are counted but not published.
type Observed[T any] struct {
	base  Allocator[T]
	stats Stats
	cast  *caster.Caster
}

// NewObserved wraps base. A nil base means Heap.
func NewObserved[T any](base Allocator[T]) *Observed[T] {
	if base == nil {
		base = Heap[T]{}
	}
	return &Observed[T]{
		base: base,
		cast: caster.New(context.Background()),
	}
}

// Subscribe returns a channel receiving Event values. The channel is closed
// when the allocator is closed.
func (o *Observed[T]) Subscribe(capacity uint) (chan interface{}, bool) {
	return o.cast.Sub(context.Background(), capacity)
}

// Unsubscribe cancels a subscription obtained from Subscribe and closes its
// channel.
func (o *Observed[T]) Unsubscribe(ch chan interface{}) bool {
	return o.cast.Unsub(ch)
}

// Close ends the event stream. Counting continues after Close.
func (o *Observed[T]) Close() {
	o.cast.Close()
}

// Stats returns a snapshot of the counters.
func (o *Observed[T]) Stats() Stats {
	return o.stats
}

func (o *Observed[T]) publish(e Event) {
	tracer().Debugf("allocator event %s", e)
	o.cast.Pub(e)
}

// Allocate forwards to the base allocator and reports the outcome.
func (o *Observed[T]) Allocate(n int) ([]T, error) {
	buf, err := o.base.Allocate(n)
	if err != nil {
		o.stats.Failures++
		o.publish(Event{Op: OpFailure, N: n, Err: err})
		return nil, err
	}
	o.stats.Allocations++
	o.stats.LiveSlots += n
	if o.stats.LiveSlots > o.stats.PeakSlots {
		o.stats.PeakSlots = o.stats.LiveSlots
	}
	o.publish(Event{Op: OpAllocate, N: n})
	return buf, nil
}

// Deallocate forwards to the base allocator and reports the release.
func (o *Observed[T]) Deallocate(buf []T, n int) {
	o.base.Deallocate(buf, n)
	o.stats.Deallocations++
	o.stats.LiveSlots -= n
	o.publish(Event{Op: OpDeallocate, N: n})
}

// Construct forwards to the base allocator.
func (o *Observed[T]) Construct(buf []T, i int, v T) error {
	if err := o.base.Construct(buf, i, v); err != nil {
		o.stats.Failures++
		return err
	}
	o.stats.Constructs++
	return nil
}

// Destroy forwards to the base allocator.
func (o *Observed[T]) Destroy(buf []T, i int) {
	o.base.Destroy(buf, i)
	o.stats.Destroys++
}

// MaxSize forwards to the base allocator.
func (o *Observed[T]) MaxSize() int {
	return o.base.MaxSize()
}

var _ Allocator[int] = (*Observed[int])(nil)
