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

package compress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var payload = []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 64))

func TestRoundTrip(t *testing.T) {
	for _, a := range []Algorithm{None, Gzip, Zlib, Zstd, Lz4, Xz} {
		t.Run(a.String(), func(t *testing.T) {
			packed, err := a.Compress(payload)
			require.NoError(t, err)

			if a != None {
				assert.Less(t, len(packed), len(payload))
			}

			unpacked, err := a.Decompress(packed)
			require.NoError(t, err)
			assert.Equal(t, payload, unpacked)
		})
	}
}

func TestDetect(t *testing.T) {
	for _, a := range []Algorithm{Gzip, Zlib, Zstd, Lz4, Xz} {
		t.Run(a.String(), func(t *testing.T) {
			packed, err := a.Compress(payload)
			require.NoError(t, err)

			assert.Equal(t, a, Detect(packed))
		})
	}
}

func TestDetectNone(t *testing.T) {
	assert.Equal(t, None, Detect(nil))
	assert.Equal(t, None, Detect([]byte{0x1f}))
	assert.Equal(t, None, Detect(payload))
}

func TestParse(t *testing.T) {
	a, err := Parse("gzip")
	require.NoError(t, err)
	assert.Equal(t, Gzip, a)

	a, err = Parse("ZSTD")
	require.NoError(t, err)
	assert.Equal(t, Zstd, a)

	a, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, None, a)

	_, err = Parse("snappy")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Gzip", Gzip.String())
	assert.Equal(t, "gzip", Gzip.Name())
	assert.Equal(t, "lz4", Lz4.Name())
	assert.True(t, Xz.Valid())
	assert.False(t, Algorithm(42).Valid())
}

func TestUnknownAlgorithmFactories(t *testing.T) {
	_, err := Algorithm(42).NewWriter(nil)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = Algorithm(42).NewReader(nil)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
