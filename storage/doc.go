/*
Package storage implements the storage engine underneath package vector.

An Engine owns a contiguous buffer of slots obtained from an allocator. Slots
[0, Len) hold live elements, slots [Len, Cap) are allocated but empty. The engine
is the only component which talks to the allocator: every element enters the
buffer through Allocator.Construct and leaves it through Allocator.Destroy.

Operations which may fail while elements are being copied (Reserve, OpenGap,
Clone, Assign) are transactional: if an allocation or an element copy fails, all
work done so far is undone and the engine is left exactly as it was.

Relocating elements inside the engine's own buffer is done by assignment and
never fails. Only values entering from outside, and values transferred to a new
buffer, are copied through the allocator.

Every change of the buffer and every relocation of elements increments the
engine's generation. Clients use it to detect stale positions.

An Engine is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package storage

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'vector'
func tracer() tracing.Trace {
	return tracing.Select("vector")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
