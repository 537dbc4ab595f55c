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
	"compress/zlib"
	"io"
)

func newZlibWriter(w io.Writer) io.WriteCloser {
	return zlib.NewWriter(w)
}

func newZlibReader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}

// isZlib checks the RFC 1950 header: deflate method bits and a valid
// check value, FLG making CMF*256+FLG a multiple of 31.
func isZlib(p []byte) bool {
	if len(p) < 2 || p[0]&0x0f != 8 {
		return false
	}

	return (uint16(p[0])<<8|uint16(p[1]))%31 == 0
}
