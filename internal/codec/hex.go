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
	"encoding/hex"
	"fmt"
)

type hexCodec struct{}

// DecodeString decodes a hexadecimal string.  Malformed input is rejected
// outright rather than truncated at the first bad digit.
func (hexCodec) DecodeString(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("could not decode hex input: %w", err)
	}

	return b, nil
}

// EncodeToString renders b as lowercase hexadecimal.
func (hexCodec) EncodeToString(b []byte) string {
	return hex.EncodeToString(b)
}
