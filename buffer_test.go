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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValue(t *testing.T) {
	var b Buffer

	assert.Zero(t, b.Len())
	assert.Empty(t, b.Bytes())
	assert.Equal(t, "<Buffer >", b.String())
}

func TestClone(t *testing.T) {
	orig := Of(1, 2, 3)
	dup := orig.Clone()

	orig.Bytes()[0] = 9

	assert.Equal(t, []byte{1, 2, 3}, dup.Bytes())
}

func TestSlice(t *testing.T) {
	b := Of(0, 1, 2, 3, 4)

	assert.Equal(t, []byte{0, 1, 2, 3, 4}, b.Slice().Bytes())
	assert.Equal(t, []byte{2, 3, 4}, b.Slice(2).Bytes())
	assert.Equal(t, []byte{1, 2}, b.Slice(1, 3).Bytes())
	assert.Equal(t, []byte{3, 4}, b.Slice(-2).Bytes())
	assert.Equal(t, []byte{0, 1, 2, 3}, b.Slice(0, -1).Bytes())

	// Bounds clamp instead of failing.
	assert.Equal(t, []byte{0, 1, 2, 3, 4}, b.Slice(-99, 99).Bytes())
	assert.Zero(t, b.Slice(3, 1).Len())
	assert.Zero(t, b.Slice(99).Len())
}

func TestSliceShares(t *testing.T) {
	b := Of(0, 1, 2, 3)
	view := b.Slice(1, 3)

	view.Bytes()[0] = 9

	assert.Equal(t, []byte{0, 9, 2, 3}, b.Bytes())
}

func TestTruncate(t *testing.T) {
	b := Of(1, 2, 3, 4)

	require.NoError(t, b.Truncate(2))
	assert.Equal(t, []byte{1, 2}, b.Bytes())

	err := b.Truncate(3)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, `The value of "length" is out of range. It must be >= 0 and <= 2. Received 3`,
		err.Error())

	assert.ErrorIs(t, b.Truncate(-1), ErrOutOfRange)
}

func TestEqualCompare(t *testing.T) {
	a := Of('a', 'b')
	b := Of('a', 'b')
	c := Of('a', 'c')

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.True(t, Of().Equal(nil))

	assert.Zero(t, a.Compare(b))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 1, c.Compare(a))
	assert.Equal(t, 1, a.Compare(nil))
}

func TestIndexOf(t *testing.T) {
	b := Of('a', 'b', 'c', 'a', 'b')

	assert.True(t, b.Contains([]byte("bc")))
	assert.False(t, b.Contains([]byte("cb")))

	assert.Equal(t, 0, b.IndexOf([]byte("ab"), 0))
	assert.Equal(t, 3, b.IndexOf([]byte("ab"), 1))
	assert.Equal(t, 3, b.IndexOf([]byte("ab"), -2))
	assert.Equal(t, -1, b.IndexOf([]byte("ab"), 4))
	assert.Equal(t, -1, b.IndexOf([]byte("zz"), 0))
	assert.Equal(t, 0, b.IndexOf([]byte("ab"), -99))

	assert.Equal(t, 1, b.IndexOfByte('b', 0))
	assert.Equal(t, 4, b.IndexOfByte('b', 2))

	assert.Equal(t, 3, b.LastIndexOf([]byte("ab")))
	assert.Equal(t, -1, b.LastIndexOf([]byte("zz")))
}

func TestIndexOfString(t *testing.T) {
	b := Of(0xde, 0xad, 0xbe, 0xef)

	i, err := b.IndexOfString("beef", 0, Hex)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = b.IndexOfString("xx", 0, Hex)
	assert.ErrorIs(t, err, ErrInvalidArgValue)
}

func TestText(t *testing.T) {
	b := Of('h', 'i')

	s, err := b.Text(Hex)
	require.NoError(t, err)
	assert.Equal(t, "6869", s)

	assert.Equal(t, "aGk=", b.MustText(Base64))
	assert.Equal(t, "hi", b.MustText(UTF8))

	_, err = b.Text(Encoding(99))
	assert.ErrorIs(t, err, ErrUnknownEncoding)
	assert.Panics(t, func() { b.MustText(Encoding(99)) })
}

func TestIsASCII(t *testing.T) {
	assert.True(t, Of().IsASCII())
	assert.True(t, FromBytes([]byte(strings.Repeat("ascii only ", 10))).IsASCII())
	assert.False(t, Of('a', 0x80, 'b').IsASCII())

	// Force the high bit past the 8-byte fast path.
	long := append([]byte(strings.Repeat("x", 16)), 0xff)
	assert.False(t, FromBytes(long).IsASCII())
}

func TestString(t *testing.T) {
	assert.Equal(t, "<Buffer 68 65 6c 6c 6f>", Of('h', 'e', 'l', 'l', 'o').String())

	long := FromBytes(make([]byte, 60))
	s := long.String()

	assert.True(t, strings.HasPrefix(s, "<Buffer 00 00"))
	assert.Contains(t, s, "... 10 more bytes")
}
