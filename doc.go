/*
Package vector offers a contiguous, growable sequence container with explicit
control over storage allocation.

Vector

Go slices grow behind the scenes whenever append runs out of capacity, and the
growth factor is an implementation detail of the runtime. Type Vector makes
every allocation explicit: storage comes from an allocator (package alloc), it
grows by a fixed doubling policy, and clients decide upfront with Reserve how
much room they want. Element values enter a vector as copies and leave it
through destruction, which gives element types a hook for resource handling
(see alloc.Copier and alloc.Destroyer).

Operations which copy elements are transactional. If PushBack, Insert or
Reserve fail, either because the allocator cannot provide storage or because an
element's Copy method returns an error, the vector is left unchanged.

Positions are expressed by iterators. An iterator remembers the vector it came
from and the storage generation it was created in; every reallocation and
every relocation of elements starts a new generation and invalidates all
iterators of the old one.

_________________________________________________________________________

Unchecked access

Following the tradition of growable arrays, element access comes in two
flavours: Index, Ref, Set, Front and Back are fast and unchecked, At and AtRef
check bounds and report ErrOutOfRange. Calling PopBack, Front or Back on an
empty vector is a programming error and panics.

Vectors are not safe for concurrent use. Callers sharing a vector between
goroutines have to synchronize access themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package vector

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vector/alloc"
	"github.com/npillmayer/vector/storage"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for generic code, where T is shadowed by type parameters.
func tracer() tracing.Trace {
	return T()
}

// VectorError is an error type for the vector module
type VectorError string

func (e VectorError) Error() string {
	return string(e)
}

// ErrConstIterator is flagged when writing through an iterator which only
// permits reading.
const ErrConstIterator = VectorError("iterator does not permit modification")

var (
	// ErrOutOfRange is flagged for indices and positions outside of a vector.
	ErrOutOfRange = storage.ErrOutOfRange
	// ErrLength is flagged whenever a size would exceed the allocator's
	// maximum size, or a size or count is negative.
	ErrLength = alloc.ErrLength
	// ErrAllocation is flagged if the allocator cannot provide storage.
	ErrAllocation = alloc.ErrAllocation
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
