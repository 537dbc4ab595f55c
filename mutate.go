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

// checkBounds validates an optional [offset, end) pair against the buffer.
// Unlike Slice, mutating operations reject bounds outside the buffer rather
// than clamping them.
func (b *Buffer) checkBounds(bounds []int) (int, int, error) {
	n := len(b.data)

	lo, hi := 0, n
	if len(bounds) > 0 {
		lo = bounds[0]
	}

	if len(bounds) > 1 {
		hi = bounds[1]
	}

	if lo < 0 || lo > n {
		return 0, 0, newSizeRangeError("offset", 0, n, lo)
	}

	if hi < lo || hi > n {
		return 0, 0, newSizeRangeError("end", lo, n, hi)
	}

	return lo, hi, nil
}

// Fill sets every byte in the range to c.  Bounds are optional as in Slice
// but are validated, not clamped.
func (b *Buffer) Fill(c byte, bounds ...int) error {
	lo, hi, err := b.checkBounds(bounds)
	if err != nil {
		return err
	}

	for i := lo; i < hi; i++ {
		b.data[i] = c
	}

	return nil
}

// FillString tiles the encoded form of s across the range, truncating the
// final repetition at the range end.  An empty pattern zero-fills.
func (b *Buffer) FillString(s string, enc Encoding, bounds ...int) error {
	lo, hi, err := b.checkBounds(bounds)
	if err != nil {
		return err
	}

	pattern, err := enc.decodeString("value", s)
	if err != nil {
		return err
	}

	if len(pattern) == 0 {
		for i := lo; i < hi; i++ {
			b.data[i] = 0
		}

		return nil
	}

	for at := lo; at < hi; at += len(pattern) {
		copy(b.data[at:hi], pattern)
	}

	return nil
}

// CopyTo copies bytes from the buffer into dst and returns how many were
// copied.  Optional bounds are the destination offset, then the source
// offset and end.  Source bytes that do not fit in dst are dropped, matching
// the semantics of the built-in copy.
func (b *Buffer) CopyTo(dst *Buffer, bounds ...int) (int, error) {
	at := 0
	if len(bounds) > 0 {
		at = bounds[0]
	}

	if at < 0 || at > len(dst.data) {
		return 0, newSizeRangeError("targetStart", 0, len(dst.data), at)
	}

	var src []int
	if len(bounds) > 1 {
		src = bounds[1:]
	}

	lo, hi, err := b.checkBounds(src)
	if err != nil {
		return 0, err
	}

	return copy(dst.data[at:], b.data[lo:hi]), nil
}

// WriteString decodes s and copies the result into the buffer at off,
// returning the number of bytes written.  Bytes that do not fit are
// dropped; the buffer does not grow.
func (b *Buffer) WriteString(s string, off int, enc Encoding) (int, error) {
	if off < 0 || off > len(b.data) {
		return 0, newSizeRangeError("offset", 0, len(b.data), off)
	}

	p, err := enc.decodeString("string", s)
	if err != nil {
		return 0, err
	}

	return copy(b.data[off:], p), nil
}

// Swap16 reverses the buffer byte-pairwise in place, reinterpreting it as
// 16-bit values of the opposite endianness.  The length must be a multiple
// of 2.
func (b *Buffer) Swap16() error {
	if len(b.data)%2 != 0 {
		return &InvalidBufferSizeError{Bits: 16}
	}

	for i := 0; i < len(b.data); i += 2 {
		b.data[i], b.data[i+1] = b.data[i+1], b.data[i]
	}

	return nil
}

// Swap32 reverses the buffer in 4-byte groups in place.  The length must be
// a multiple of 4.
func (b *Buffer) Swap32() error {
	if len(b.data)%4 != 0 {
		return &InvalidBufferSizeError{Bits: 32}
	}

	for i := 0; i < len(b.data); i += 4 {
		b.data[i], b.data[i+3] = b.data[i+3], b.data[i]
		b.data[i+1], b.data[i+2] = b.data[i+2], b.data[i+1]
	}

	return nil
}

// Swap64 reverses the buffer in 8-byte groups in place.  The length must be
// a multiple of 8.
func (b *Buffer) Swap64() error {
	if len(b.data)%8 != 0 {
		return &InvalidBufferSizeError{Bits: 64}
	}

	for i := 0; i < len(b.data); i += 8 {
		for lo, hi := i, i+7; lo < hi; lo, hi = lo+1, hi-1 {
			b.data[lo], b.data[hi] = b.data[hi], b.data[lo]
		}
	}

	return nil
}
