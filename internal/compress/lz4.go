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
	"io"

	"github.com/pierrec/lz4"
)

var lz4Magic = []byte{0x04, 0x22, 0x4d, 0x18}

func newLz4Writer(w io.Writer) io.WriteCloser {
	return lz4.NewWriter(w)
}

func newLz4Reader(r io.Reader) io.ReadCloser {
	return io.NopCloser(lz4.NewReader(r))
}
