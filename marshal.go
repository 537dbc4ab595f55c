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
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// bufferJSON is the interchange form JavaScript runtimes produce for
// buffers, an object tagged "Buffer" with the bytes as a number array.
type bufferJSON struct {
	Type string `json:"type"`
	Data []int  `json:"data"`
}

// MarshalJSON renders the buffer as {"type":"Buffer","data":[...]}.
func (b *Buffer) MarshalJSON() ([]byte, error) {
	data := make([]int, len(b.data))
	for i, c := range b.data {
		data[i] = int(c)
	}

	return json.Marshal(bufferJSON{Type: "Buffer", Data: data})
}

// UnmarshalJSON accepts both the tagged object form and a bare number
// array.  Array values are masked to bytes, so 256 round-trips to 0.
func (b *Buffer) UnmarshalJSON(data []byte) error {
	var wrapped bufferJSON
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Type == "Buffer" {
		b.data = maskBytes(wrapped.Data)

		return nil
	}

	var arr []int
	if err := json.Unmarshal(data, &arr); err != nil {
		return &InvalidArgValueError{
			ArgName: "json",
			Reason:  "is neither a Buffer object nor a byte array",
			Value:   string(data),
		}
	}

	b.data = maskBytes(arr)

	return nil
}

func maskBytes(vals []int) []byte {
	out := make([]byte, len(vals))
	for i, v := range vals {
		out[i] = byte(v)
	}

	return out
}

// MarshalCBOR renders the buffer as a CBOR byte string.
func (b *Buffer) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(b.data)
}

// UnmarshalCBOR restores the buffer from a CBOR byte string.
func (b *Buffer) UnmarshalCBOR(data []byte) error {
	var p []byte
	if err := cbor.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("could not decode CBOR byte string: %w", err)
	}

	b.data = p

	return nil
}

var (
	_ json.Marshaler   = (*Buffer)(nil)
	_ json.Unmarshaler = (*Buffer)(nil)
	_ cbor.Marshaler   = (*Buffer)(nil)
	_ cbor.Unmarshaler = (*Buffer)(nil)
)
