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

package codec

import (
	"golang.org/x/text/encoding/charmap"
)

type latin1Codec struct{}

// DecodeString returns one byte per rune of s.  Runes above U+00FF are
// masked to their low eight bits, matching the historical "binary" encoding
// rather than failing on unrepresentable characters.
func (latin1Codec) DecodeString(s string) ([]byte, error) {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		b = append(b, byte(r))
	}

	return b, nil
}

// EncodeToString maps each byte of b to the corresponding ISO 8859-1
// character.
func (latin1Codec) EncodeToString(b []byte) string {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// ISO 8859-1 decodes any byte.
		return string(b)
	}

	return string(s)
}

type asciiCodec struct{}

// DecodeString returns one byte per rune of s with the high bit stripped,
// so the result is always 7-bit clean.
func (asciiCodec) DecodeString(s string) ([]byte, error) {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		b = append(b, byte(r)&0x7F)
	}

	return b, nil
}

// EncodeToString renders each byte of b as the ASCII character given by its
// low seven bits.
func (asciiCodec) EncodeToString(b []byte) string {
	masked := make([]byte, len(b))
	for i, c := range b {
		masked[i] = c & 0x7F
	}

	return string(masked)
}
