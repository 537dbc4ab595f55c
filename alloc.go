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

package bytebuf

import (
	"bytes"

	"bytebuf.io/bytebuf/internal/pool"
)

// MaxLength is the largest permitted buffer size, 2^31-1 bytes.  Sizes are
// capped well below the platform limit so lengths survive 32-bit length
// fields and JavaScript interop.
const MaxLength = 1<<31 - 1

// checkSize validates a requested buffer size against [0, MaxLength].
func checkSize(size int) error {
	if size < 0 || size > MaxLength {
		return newSizeRangeError("size", 0, MaxLength, size)
	}

	return nil
}

// allocOptions provides optional configuration parameters for Alloc.
type allocOptions struct {
	fill     byte     // byte tiled across the new buffer
	pattern  string   // textual pattern tiled across the new buffer
	encoding Encoding // encoding of the textual pattern
	textual  bool     // pattern is set, fill is ignored
}

// AllocOption configures how Alloc fills the new buffer.
type AllocOption func(*allocOptions)

// WithFill lets you set the byte every position is initialized to.
func WithFill(c byte) AllocOption {
	return func(o *allocOptions) {
		o.fill = c
	}
}

// WithFillString lets you set a textual pattern, in the given encoding,
// that is tiled across the new buffer.
func WithFillString(s string, enc Encoding) AllocOption {
	return func(o *allocOptions) {
		o.pattern = s
		o.encoding = enc
		o.textual = true
	}
}

// defaultAllocConfig provides a default configuration for allocations.
var defaultAllocConfig = allocOptions{}

// Alloc returns a zero-filled buffer of the given size, optionally
// initialized through AllocOption values.
func Alloc(size int, opts ...AllocOption) (*Buffer, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	cfg := defaultAllocConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Buffer{data: make([]byte, size)}

	if cfg.textual {
		if err := b.FillString(cfg.pattern, cfg.encoding); err != nil {
			return nil, err
		}

		return b, nil
	}

	if cfg.fill != 0 {
		_ = b.Fill(cfg.fill)
	}

	return b, nil
}

// AllocUnsafe returns an uninitialized buffer of the given size.  Small
// buffers are carved from a shared arena page, so the contents are
// arbitrary until written.  Use Alloc when zeroed memory matters.
func AllocUnsafe(size int) (*Buffer, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	return &Buffer{data: pool.Take(size)}, nil
}

// FromString decodes s in the given encoding into a new buffer.
func FromString(s string, enc Encoding) (*Buffer, error) {
	p, err := enc.decodeString("string", s)
	if err != nil {
		return nil, err
	}

	return &Buffer{data: p}, nil
}

// FromBytes returns a buffer holding a copy of p.
func FromBytes(p []byte) *Buffer {
	return &Buffer{data: bytes.Clone(p)}
}

// Wrap adopts p as the buffer's storage without copying.  The caller must
// not use p afterwards.
func Wrap(p []byte) *Buffer {
	return &Buffer{data: p}
}

// Of returns a buffer holding exactly the given bytes.
func Of(bs ...byte) *Buffer {
	return &Buffer{data: bs}
}

// Concat returns a new buffer holding the contents of the inputs joined in
// order.  Nil inputs are skipped.
func Concat(bufs ...*Buffer) (*Buffer, error) {
	total := 0

	for _, buf := range bufs {
		if buf == nil {
			continue
		}

		total += buf.Len()
	}

	return ConcatLength(total, bufs...)
}

// ConcatLength is like Concat but produces a buffer of exactly the given
// length, truncating the joined inputs or zero-filling the tail as needed.
func ConcatLength(length int, bufs ...*Buffer) (*Buffer, error) {
	if err := checkSize(length); err != nil {
		return nil, err
	}

	out := make([]byte, length)
	at := 0

	for _, buf := range bufs {
		if buf == nil || at == length {
			continue
		}

		at += copy(out[at:], buf.data)
	}

	return &Buffer{data: out}, nil
}
