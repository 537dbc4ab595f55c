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
	"encoding/base64"
	"fmt"
	"strings"
)

type base64Codec struct{}

// DecodeString decodes standard base64, padded or not.  ASCII whitespace is
// ignored so wrapped output from other tools round-trips.
func (base64Codec) DecodeString(s string) ([]byte, error) {
	return decodeBase64(s, base64.StdEncoding, base64.RawStdEncoding)
}

// EncodeToString renders b as padded standard base64.
func (base64Codec) EncodeToString(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

type base64urlCodec struct{}

// DecodeString decodes URL-safe base64, padded or not, ignoring ASCII
// whitespace.
func (base64urlCodec) DecodeString(s string) ([]byte, error) {
	return decodeBase64(s, base64.URLEncoding, base64.RawURLEncoding)
}

// EncodeToString renders b as unpadded URL-safe base64.
func (base64urlCodec) EncodeToString(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodeBase64(s string, padded, raw *base64.Encoding) ([]byte, error) {
	s = stripSpace(s)

	if strings.ContainsRune(s, '=') {
		b, err := padded.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("could not decode base64 input: %w", err)
		}

		return b, nil
	}

	b, err := raw.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("could not decode base64 input: %w", err)
	}

	return b, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			return -1
		default:
			return r
		}
	}, s)
}
