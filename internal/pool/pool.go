// Copyright 2026 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pool provides recycled scratch buffers and a page arena for
// cheap small allocations.
package pool

import (
	"bytes"
	"sync"
)

var buffers = sync.Pool{
	New: func() any {
		return &PooledBuffer{Buffer: &bytes.Buffer{}}
	},
}

// PooledBuffer is a bytes.Buffer drawn from a shared pool.  Close returns
// it for reuse; a closed buffer must not be touched again.
type PooledBuffer struct {
	*bytes.Buffer
}

// NewPooledBuffer obtains an empty buffer from the pool.
func NewPooledBuffer() *PooledBuffer {
	pb, _ := buffers.Get().(*PooledBuffer)
	pb.Reset()

	return pb
}

// Close hands the buffer back to the pool.
func (pb *PooledBuffer) Close() error {
	buffers.Put(pb)

	return nil
}

// PageSize is the granularity of the arena backing Take.
const PageSize = 8192

var arena = struct {
	sync.Mutex
	page []byte
	off  int
}{}

// Take carves an uninitialized n-byte slice out of a shared arena page.
// Requests of half a page or more get their own allocation.  Slices carved
// from the same page share a backing array, so callers must not write past
// their slice length.  Contents are not guaranteed to be zero.
func Take(n int) []byte {
	if n >= PageSize/2 {
		return make([]byte, n)
	}

	arena.Lock()
	defer arena.Unlock()

	if arena.off+n > len(arena.page) {
		arena.page = make([]byte, PageSize)
		arena.off = 0
	}

	p := arena.page[arena.off : arena.off+n : arena.off+n]
	arena.off += n

	return p
}
