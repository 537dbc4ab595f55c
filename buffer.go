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

// Package bytebuf implements a fixed-length mutable byte buffer in the style
// of the JavaScript Buffer class: construction from text in a choice of
// encodings, construction by size, bounds-checked binary accessors, and
// typed, structured errors with stable machine-readable categories.
package bytebuf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Buffer is a fixed-length mutable sequence of raw bytes.  The zero value is
// an empty buffer ready to use.  A Buffer is not safe for concurrent
// mutation; callers synchronize.
type Buffer struct {
	data []byte
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the underlying storage.  The slice aliases the buffer:
// mutations are visible both ways.  Use Clone for an independent copy.
func (b *Buffer) Bytes() []byte { return b.data }

// Clone returns a buffer with its own copy of the storage.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{data: bytes.Clone(b.data)}
}

// Slice returns a view over a sub-range of the buffer sharing the same
// storage.  Bounds are optional: none selects the whole buffer, one selects
// from that offset to the end.  Negative bounds count back from the end.
// Bounds are clamped, never rejected; a collapsed range yields an empty
// buffer.
func (b *Buffer) Slice(bounds ...int) *Buffer {
	n := len(b.data)

	lo, hi := 0, n
	if len(bounds) > 0 {
		lo = clampIndex(bounds[0], n)
	}

	if len(bounds) > 1 {
		hi = clampIndex(bounds[1], n)
	}

	if hi < lo {
		hi = lo
	}

	return &Buffer{data: b.data[lo:hi]}
}

// clampIndex resolves a possibly negative index against length n and clamps
// it into [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}

	return min(max(i, 0), n)
}

// Truncate shortens the buffer to its first n bytes in place.  Truncation
// can only shrink; asking for more bytes than the buffer holds is an
// *OutOfRangeError.
func (b *Buffer) Truncate(n int) error {
	if n < 0 || n > len(b.data) {
		return newSizeRangeError("length", 0, len(b.data), n)
	}

	b.data = b.data[:n]

	return nil
}

// Equal reports whether two buffers hold the same bytes.  A nil buffer
// compares as empty.
func (b *Buffer) Equal(o *Buffer) bool {
	if o == nil {
		return len(b.data) == 0
	}

	return bytes.Equal(b.data, o.data)
}

// Compare orders two buffers lexicographically, returning -1, 0 or +1.  A
// nil buffer compares as empty.
func (b *Buffer) Compare(o *Buffer) int {
	if o == nil {
		return bytes.Compare(b.data, nil)
	}

	return bytes.Compare(b.data, o.data)
}

// Contains reports whether needle occurs in the buffer.
func (b *Buffer) Contains(needle []byte) bool {
	return bytes.Contains(b.data, needle)
}

// IndexOf returns the offset of the first occurrence of needle at or after
// from, or -1.  A negative from counts back from the end of the buffer.
func (b *Buffer) IndexOf(needle []byte, from int) int {
	n := len(b.data)

	if from < 0 {
		from = max(from+n, 0)
	}

	if from > n {
		return -1
	}

	i := bytes.Index(b.data[from:], needle)
	if i < 0 {
		return -1
	}

	return from + i
}

// IndexOfByte returns the offset of the first occurrence of c at or after
// from, or -1.
func (b *Buffer) IndexOfByte(c byte, from int) int {
	return b.IndexOf([]byte{c}, from)
}

// IndexOfString locates the encoded form of s, so a hex or base64 needle
// matches the bytes it denotes, not its textual characters.
func (b *Buffer) IndexOfString(s string, from int, enc Encoding) (int, error) {
	needle, err := enc.decodeString("value", s)
	if err != nil {
		return -1, err
	}

	return b.IndexOf(needle, from), nil
}

// LastIndexOf returns the offset of the last occurrence of needle, or -1.
func (b *Buffer) LastIndexOf(needle []byte) int {
	return bytes.LastIndex(b.data, needle)
}

// Text renders the buffer in the textual form of the encoding.  Rendering
// bytes to text never fails; the only possible error is an Encoding value
// that is not one of the defined encodings.
func (b *Buffer) Text(enc Encoding) (string, error) {
	c, err := enc.codec()
	if err != nil {
		return "", err
	}

	return c.EncodeToString(b.data), nil
}

// MustText is like Text but panics when enc is not a defined encoding.  Use
// it with encoding constants.
func (b *Buffer) MustText(enc Encoding) string {
	s, err := b.Text(enc)
	if err != nil {
		panic(err)
	}

	return s
}

// IsASCII reports whether every byte is below 0x80, the fast path for
// encodings that agree with ASCII over that range.
func (b *Buffer) IsASCII() bool {
	p := b.data

	for len(p) >= 8 {
		if binary.LittleEndian.Uint64(p)&0x8080808080808080 != 0 {
			return false
		}

		p = p[8:]
	}

	for _, c := range p {
		if c >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

// inspectMaxBytes caps the hex preview String produces.
const inspectMaxBytes = 50

// String renders an inspection form, "<Buffer 48 65 6c 6c 6f>", eliding
// everything past the first 50 bytes.
func (b *Buffer) String() string {
	var sb strings.Builder

	sb.WriteString("<Buffer ")

	shown := b.data
	if len(shown) > inspectMaxBytes {
		shown = shown[:inspectMaxBytes]
	}

	for i, c := range shown {
		if i > 0 {
			sb.WriteByte(' ')
		}

		fmt.Fprintf(&sb, "%02x", c)
	}

	if rest := len(b.data) - len(shown); rest > 0 {
		fmt.Fprintf(&sb, " ... %d more bytes", rest)
	}

	sb.WriteByte('>')

	return sb.String()
}
