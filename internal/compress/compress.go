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

// Package compress provides the compression codecs buffer contents can be
// passed through, selected by name or sniffed from leading magic bytes.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"bytebuf.io/bytebuf/internal/pool"
)

//go:generate stringer -type=Algorithm

// Algorithm identifies a compression codec.
type Algorithm int

// Auto is not a codec: it asks the consumer to sniff the codec from the
// stream with Detect.  Only valid where documented.
const Auto Algorithm = -1

const (
	// None passes bytes through untouched.
	None Algorithm = iota

	// Gzip is the RFC 1952 gzip format.
	Gzip

	// Zlib is the RFC 1950 zlib format.
	Zlib

	// Zstd is the Zstandard frame format.
	Zstd

	// Lz4 is the LZ4 frame format.
	Lz4

	// Xz is the xz container around LZMA2.
	Xz
)

// ErrUnknownAlgorithm is returned when a name or byte stream matches no
// known codec.
var ErrUnknownAlgorithm = errors.New("unknown compression algorithm")

var names = map[string]Algorithm{
	"auto": Auto,
	"none": None,
	"gzip": Gzip,
	"zlib": Zlib,
	"zstd": Zstd,
	"lz4":  Lz4,
	"xz":   Xz,
}

// Parse resolves a codec name.  Matching is case-insensitive and the empty
// name means None.
func Parse(name string) (Algorithm, error) {
	if name == "" {
		return None, nil
	}

	a, ok := names[strings.ToLower(name)]
	if !ok {
		return None, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return a, nil
}

// Name returns the lowercase codec name Parse accepts.
func (a Algorithm) Name() string {
	if a == Auto {
		return "auto"
	}

	return strings.ToLower(a.String())
}

// Valid reports whether a is one of the defined codecs.
func (a Algorithm) Valid() bool {
	return a >= None && a <= Xz
}

// NewWriter wraps w so that bytes written are compressed with a.  Close
// must be called to flush the codec trailer.
func (a Algorithm) NewWriter(w io.Writer) (io.WriteCloser, error) {
	switch a {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return newGzipWriter(w), nil
	case Zlib:
		return newZlibWriter(w), nil
	case Zstd:
		return newZstdWriter(w)
	case Lz4:
		return newLz4Writer(w), nil
	case Xz:
		return newXzWriter(w)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
}

// NewReader wraps r so that bytes read are decompressed with a.
func (a Algorithm) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch a {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		return newGzipReader(r)
	case Zlib:
		return newZlibReader(r)
	case Zstd:
		return newZstdReader(r)
	case Lz4:
		return newLz4Reader(r), nil
	case Xz:
		return newXzReader(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
}

// Compress runs p through the codec and returns the compressed bytes.
func (a Algorithm) Compress(p []byte) ([]byte, error) {
	buf := pool.NewPooledBuffer()
	defer buf.Close()

	w, err := a.NewWriter(buf)
	if err != nil {
		return nil, err
	}

	if _, err = w.Write(p); err != nil {
		return nil, fmt.Errorf("could not compress: %w", err)
	}

	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("could not close writer: %w", err)
	}

	return bytes.Clone(buf.Bytes()), nil
}

// Decompress runs p through the codec and returns the expanded bytes.
func (a Algorithm) Decompress(p []byte) ([]byte, error) {
	r, err := a.NewReader(bytes.NewReader(p))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	buf := pool.NewPooledBuffer()
	defer buf.Close()

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("could not decompress: %w", err)
	}

	return bytes.Clone(buf.Bytes()), nil
}

// Detect sniffs the codec from the leading bytes of p.  Streams matching no
// known magic are reported as None; the zlib header has no magic proper and
// is checked last.
func Detect(p []byte) Algorithm {
	switch {
	case bytes.HasPrefix(p, gzipMagic):
		return Gzip
	case bytes.HasPrefix(p, zstdMagic):
		return Zstd
	case bytes.HasPrefix(p, lz4Magic):
		return Lz4
	case bytes.HasPrefix(p, xzMagic):
		return Xz
	case isZlib(p):
		return Zlib
	default:
		return None
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
