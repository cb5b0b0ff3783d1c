/*
Package alloc defines the allocator collaborator of package vector and ships a
few reference allocators.

An allocator hands out buffers of element slots and is responsible for putting
values into slots (construct) and taking them out again (destroy). Element types
may hook into both steps: a type implementing Copier is copied through its Copy
method whenever a value enters a container, and a type implementing Destroyer is
notified when a value leaves it.

Allocators are not safe for concurrent use, with the exception of the event
stream of Observed, which is delivered through a broadcaster.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package alloc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'vector'
func tracer() tracing.Trace {
	return tracing.Select("vector")
}
