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
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

type utf8Codec struct{}

// DecodeString returns the UTF-8 bytes of s.  Ill-formed sequences are
// replaced with U+FFFD rather than rejected, so any string yields a buffer.
func (utf8Codec) DecodeString(s string) ([]byte, error) {
	if utf8.ValidString(s) {
		return []byte(s), nil
	}

	b, err := unicode.UTF8.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("could not encode utf-8 text: %w", err)
	}

	return b, nil
}

// EncodeToString renders b as text, replacing ill-formed sequences with
// U+FFFD.
func (utf8Codec) EncodeToString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	s, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		// The replacing decoder consumes arbitrary input.
		return string(b)
	}

	return string(s)
}
