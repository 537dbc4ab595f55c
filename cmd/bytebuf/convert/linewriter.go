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

package convert

import "io"

var nl = []byte{'\n'}

// lineWriter folds everything written through it at a fixed column, the way
// base64 -w does.  The reported count covers payload bytes only, never the
// inserted newlines.
type lineWriter struct {
	w    io.Writer
	cols int
	col  int
}

func newLineWriter(w io.Writer, cols int) *lineWriter {
	return &lineWriter{w: w, cols: cols}
}

func (l *lineWriter) Write(p []byte) (int, error) {
	written := 0

	for len(p) > 0 {
		room := l.cols - l.col
		if room == 0 {
			if _, err := l.w.Write(nl); err != nil {
				return written, err
			}
			l.col = 0

			continue
		}

		n := min(room, len(p))

		m, err := l.w.Write(p[:n])
		written += m
		l.col += m
		if err != nil {
			return written, err
		}

		p = p[n:]
	}

	return written, nil
}

// Flush terminates the final partial line.
func (l *lineWriter) Flush() error {
	if l.col == 0 {
		return nil
	}

	l.col = 0

	_, err := l.w.Write(nl)

	return err
}
