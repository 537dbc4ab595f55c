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
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// utf16le is little-endian UTF-16 without a byte order mark, the layout JS
// strings expose.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

type utf16Codec struct{}

// DecodeString returns the UTF-16LE byte layout of s.
func (utf16Codec) DecodeString(s string) ([]byte, error) {
	b, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("could not encode utf-16le text: %w", err)
	}

	return b, nil
}

// EncodeToString interprets b as UTF-16LE code units.  A trailing odd byte
// is dropped, it cannot form a code unit.
func (utf16Codec) EncodeToString(b []byte) string {
	b = b[:len(b)&^1]

	s, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}

	return string(s)
}
