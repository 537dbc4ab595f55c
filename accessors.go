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
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"google.golang.org/protobuf/encoding/protowire"

	"bytebuf.io/bytebuf/internal/pool"
)

// checkAccess validates that width bytes at off lie inside the buffer.
func (b *Buffer) checkAccess(off, width int) error {
	if off < 0 || off+width > len(b.data) {
		return newSizeRangeError("offset", 0, max(len(b.data)-width, 0), off)
	}

	return nil
}

// ReadUint8 returns the byte at off.
func (b *Buffer) ReadUint8(off int) (uint8, error) {
	if err := b.checkAccess(off, 1); err != nil {
		return 0, err
	}

	return b.data[off], nil
}

// ReadInt8 returns the byte at off as a signed value.
func (b *Buffer) ReadInt8(off int) (int8, error) {
	v, err := b.ReadUint8(off)

	return int8(v), err
}

// ReadUint16 returns the 16-bit value at off in the given byte order.
func (b *Buffer) ReadUint16(off int, bo binary.ByteOrder) (uint16, error) {
	if err := b.checkAccess(off, 2); err != nil {
		return 0, err
	}

	return bo.Uint16(b.data[off:]), nil
}

// ReadInt16 returns the 16-bit value at off as a signed value.
func (b *Buffer) ReadInt16(off int, bo binary.ByteOrder) (int16, error) {
	v, err := b.ReadUint16(off, bo)

	return int16(v), err
}

// ReadUint32 returns the 32-bit value at off in the given byte order.
func (b *Buffer) ReadUint32(off int, bo binary.ByteOrder) (uint32, error) {
	if err := b.checkAccess(off, 4); err != nil {
		return 0, err
	}

	return bo.Uint32(b.data[off:]), nil
}

// ReadInt32 returns the 32-bit value at off as a signed value.
func (b *Buffer) ReadInt32(off int, bo binary.ByteOrder) (int32, error) {
	v, err := b.ReadUint32(off, bo)

	return int32(v), err
}

// ReadUint64 returns the 64-bit value at off in the given byte order.
func (b *Buffer) ReadUint64(off int, bo binary.ByteOrder) (uint64, error) {
	if err := b.checkAccess(off, 8); err != nil {
		return 0, err
	}

	return bo.Uint64(b.data[off:]), nil
}

// ReadInt64 returns the 64-bit value at off as a signed value.
func (b *Buffer) ReadInt64(off int, bo binary.ByteOrder) (int64, error) {
	v, err := b.ReadUint64(off, bo)

	return int64(v), err
}

// ReadFloat32 returns the IEEE 754 single-precision value at off.
func (b *Buffer) ReadFloat32(off int, bo binary.ByteOrder) (float32, error) {
	v, err := b.ReadUint32(off, bo)

	return math.Float32frombits(v), err
}

// ReadFloat64 returns the IEEE 754 double-precision value at off.
func (b *Buffer) ReadFloat64(off int, bo binary.ByteOrder) (float64, error) {
	v, err := b.ReadUint64(off, bo)

	return math.Float64frombits(v), err
}

// WriteUint8 stores v at off.
func (b *Buffer) WriteUint8(off int, v uint8) error {
	if err := b.checkAccess(off, 1); err != nil {
		return err
	}

	b.data[off] = v

	return nil
}

// WriteInt8 stores v at off.
func (b *Buffer) WriteInt8(off int, v int8) error {
	return b.WriteUint8(off, uint8(v))
}

// WriteUint16 stores v at off in the given byte order.
func (b *Buffer) WriteUint16(off int, v uint16, bo binary.ByteOrder) error {
	if err := b.checkAccess(off, 2); err != nil {
		return err
	}

	bo.PutUint16(b.data[off:], v)

	return nil
}

// WriteInt16 stores v at off in the given byte order.
func (b *Buffer) WriteInt16(off int, v int16, bo binary.ByteOrder) error {
	return b.WriteUint16(off, uint16(v), bo)
}

// WriteUint32 stores v at off in the given byte order.
func (b *Buffer) WriteUint32(off int, v uint32, bo binary.ByteOrder) error {
	if err := b.checkAccess(off, 4); err != nil {
		return err
	}

	bo.PutUint32(b.data[off:], v)

	return nil
}

// WriteInt32 stores v at off in the given byte order.
func (b *Buffer) WriteInt32(off int, v int32, bo binary.ByteOrder) error {
	return b.WriteUint32(off, uint32(v), bo)
}

// WriteUint64 stores v at off in the given byte order.
func (b *Buffer) WriteUint64(off int, v uint64, bo binary.ByteOrder) error {
	if err := b.checkAccess(off, 8); err != nil {
		return err
	}

	bo.PutUint64(b.data[off:], v)

	return nil
}

// WriteInt64 stores v at off in the given byte order.
func (b *Buffer) WriteInt64(off int, v int64, bo binary.ByteOrder) error {
	return b.WriteUint64(off, uint64(v), bo)
}

// WriteFloat32 stores the IEEE 754 single-precision form of v at off.
func (b *Buffer) WriteFloat32(off int, v float32, bo binary.ByteOrder) error {
	return b.WriteUint32(off, math.Float32bits(v), bo)
}

// WriteFloat64 stores the IEEE 754 double-precision form of v at off.
func (b *Buffer) WriteFloat64(off int, v float64, bo binary.ByteOrder) error {
	return b.WriteUint64(off, math.Float64bits(v), bo)
}

// ReadUvarint decodes the protobuf base 128 varint at off, returning the
// value and the number of bytes it occupied.
func (b *Buffer) ReadUvarint(off int) (uint64, int, error) {
	if err := b.checkAccess(off, 1); err != nil {
		return 0, 0, err
	}

	v, n := protowire.ConsumeVarint(b.data[off:])
	if n < 0 {
		return 0, 0, fmt.Errorf("could not parse varint at offset %d: %w", off, protowire.ParseError(n))
	}

	return v, n, nil
}

// ReadVarint decodes the zig-zag encoded signed varint at off, returning
// the value and the number of bytes it occupied.
func (b *Buffer) ReadVarint(off int) (int64, int, error) {
	v, n, err := b.ReadUvarint(off)
	if err != nil {
		return 0, 0, err
	}

	return protowire.DecodeZigZag(v), n, nil
}

// WriteUvarint stores v at off as a protobuf base 128 varint, returning the
// number of bytes written.
func (b *Buffer) WriteUvarint(off int, v uint64) (int, error) {
	width := protowire.SizeVarint(v)
	if err := b.checkAccess(off, width); err != nil {
		return 0, err
	}

	var scratch [binary.MaxVarintLen64]byte

	return copy(b.data[off:], protowire.AppendVarint(scratch[:0], v)), nil
}

// WriteVarint stores v at off as a zig-zag encoded signed varint, returning
// the number of bytes written.
func (b *Buffer) WriteVarint(off int, v int64) (int, error) {
	return b.WriteUvarint(off, protowire.EncodeZigZag(v))
}

// Numeric is the constraint for fixed-width numeric element types.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// FromSlice packs a slice of fixed-width numeric values into a new buffer
// in the given byte order.  Platform-sized element types, int and uint,
// have no binary form and are rejected.
func FromSlice[E Numeric](vals []E, bo binary.ByteOrder) (*Buffer, error) {
	var e E
	if binary.Size(e) <= 0 {
		return nil, &InvalidArgValueError{
			ArgName: "values",
			Reason:  "has no fixed-width binary form",
			Value:   fmt.Sprintf("%T", vals),
		}
	}

	buf := pool.NewPooledBuffer()
	defer buf.Close()

	if err := binary.Write(buf, bo, vals); err != nil {
		return nil, fmt.Errorf("could not pack %T: %w", vals, err)
	}

	return FromBytes(buf.Bytes()), nil
}

// ToSlice unpacks the buffer into a slice of fixed-width numeric values in
// the given byte order.  The buffer length must be a multiple of the
// element width.
func ToSlice[E Numeric](b *Buffer, bo binary.ByteOrder) ([]E, error) {
	var e E

	width := binary.Size(e)
	if width <= 0 {
		return nil, &InvalidArgValueError{
			ArgName: "element",
			Reason:  "has no fixed-width binary form",
			Value:   fmt.Sprintf("%T", e),
		}
	}

	if b.Len()%width != 0 {
		return nil, &InvalidBufferSizeError{Bits: width * 8}
	}

	out := make([]E, b.Len()/width)
	if err := binary.Read(bytes.NewReader(b.data), bo, out); err != nil {
		return nil, fmt.Errorf("could not unpack %T: %w", out, err)
	}

	return out, nil
}
