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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytebuf.io/bytebuf"
)

func TestEncodingValue(t *testing.T) {
	var enc bytebuf.Encoding

	v := NewEncodingValue(bytebuf.UTF8, &enc)
	assert.Equal(t, "utf8", v.String())
	assert.Equal(t, "encoding", v.Type())

	require.NoError(t, v.Set("UCS-2"))
	assert.Equal(t, bytebuf.UTF16LE, enc)
	assert.Equal(t, "utf16le", v.String())

	assert.Error(t, v.Set("wingdings"))
	assert.Equal(t, bytebuf.UTF16LE, enc)
}

func TestCompressionValue(t *testing.T) {
	var c bytebuf.Compression

	v := NewCompressionValue(bytebuf.CompressionAuto, &c)
	assert.Equal(t, "auto", v.String())
	assert.Equal(t, "codec", v.Type())

	require.NoError(t, v.Set("zstd"))
	assert.Equal(t, bytebuf.CompressionZstd, c)
	assert.Equal(t, "zstd", v.String())

	assert.Error(t, v.Set("snappy"))
}
