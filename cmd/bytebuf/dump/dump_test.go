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

package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDump(t *testing.T) {
	var out bytes.Buffer

	err := runDump(&out, strings.NewReader("hello world!\n"), 8, 0, -1)
	require.NoError(t, err)

	assert.Equal(t,
		"00000000: 6865 6c6c 6f20 776f  hello wo\n"+
			"00000008: 726c 6421 0a         rld!.\n",
		out.String())
}

func TestRunDumpSkipAndLength(t *testing.T) {
	var out bytes.Buffer

	err := runDump(&out, strings.NewReader("0123456789abcdef"), 8, 4, 8)
	require.NoError(t, err)

	assert.Equal(t, "00000004: 3435 3637 3839 6162  456789ab\n", out.String())
}

func TestRunDumpNonPrintable(t *testing.T) {
	var out bytes.Buffer

	err := runDump(&out, bytes.NewReader([]byte{0x00, 0x1f, 0x7f, 0xff, 0x41}), 8, 0, -1)
	require.NoError(t, err)

	assert.Equal(t, "00000000: 001f 7fff 41         ....A\n", out.String())
}

func TestRunDumpSkipPastEnd(t *testing.T) {
	var out bytes.Buffer

	err := runDump(&out, strings.NewReader("tiny"), 8, 99, -1)
	require.NoError(t, err)

	assert.Empty(t, out.String())
}
