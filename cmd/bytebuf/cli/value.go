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

package cli

import (
	"github.com/spf13/pflag"

	"bytebuf.io/bytebuf"
)

// -- bytebuf.Encoding Value
type encodingValue struct {
	value *bytebuf.Encoding
}

// NewEncodingValue creates a pflag Value for a text encoding flag.  Names
// are resolved with the usual aliases, "ucs2" for "utf16le" and so on.
func NewEncodingValue(def bytebuf.Encoding, p *bytebuf.Encoding) pflag.Value {
	ev := &encodingValue{value: p}
	*ev.value = def

	return ev
}

func (e *encodingValue) Set(val string) error {
	enc, err := bytebuf.ParseEncoding(val)
	if err != nil {
		return err
	}

	*e.value = enc

	return nil
}

func (e *encodingValue) Type() string {
	return "encoding"
}

func (e *encodingValue) String() string {
	return (*e.value).Name()
}

// -- bytebuf.Compression Value
type compressionValue struct {
	value *bytebuf.Compression
}

// NewCompressionValue creates a pflag Value for a compression codec flag.
func NewCompressionValue(def bytebuf.Compression, p *bytebuf.Compression) pflag.Value {
	cv := &compressionValue{value: p}
	*cv.value = def

	return cv
}

func (c *compressionValue) Set(val string) error {
	comp, err := bytebuf.ParseCompression(val)
	if err != nil {
		return err
	}

	*c.value = comp

	return nil
}

func (c *compressionValue) Type() string {
	return "codec"
}

func (c *compressionValue) String() string {
	return (*c.value).Name()
}
