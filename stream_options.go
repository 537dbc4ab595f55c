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
	"io"
	"runtime"

	"bytebuf.io/bytebuf/internal/compress"
)

// Compression selects a codec a transcoded stream is packed or unpacked
// with.
type Compression = compress.Algorithm

// The compression codecs a stream can pass through.  CompressionAuto sniffs
// the codec from the input's magic bytes and is only valid for input.
const (
	CompressionAuto Compression = compress.Auto
	CompressionNone Compression = compress.None
	CompressionGzip Compression = compress.Gzip
	CompressionZlib Compression = compress.Zlib
	CompressionZstd Compression = compress.Zstd
	CompressionLz4  Compression = compress.Lz4
	CompressionXz   Compression = compress.Xz
)

// ParseCompression resolves a codec name, "gzip" through "xz", plus "auto"
// and the empty string for none.
func ParseCompression(name string) (Compression, error) {
	return compress.Parse(name)
}

// DetectCompression sniffs the compression codec from the leading bytes of a
// stream.  It reports CompressionNone when no known magic number matches.
func DetectCompression(peek []byte) Compression {
	return compress.Detect(peek)
}

// DefaultChunkSize is the default chunk size for streaming re-encoding.
const DefaultChunkSize = 64 * 1024

// DefaultNCpu provides the default number of CPUs.
func DefaultNCpu() uint16 {
	cpus := uint16(runtime.GOMAXPROCS(-1))

	return max(cpus-1, 1)
}

// transcodeOptions provides optional configuration parameters for Transcode.
type transcodeOptions struct {
	source        Encoding                  // encoding of the bytes read from the source
	target        Encoding                  // encoding of the bytes written to the destination
	chunkSize     int                       // upper bound on the bytes re-encoded per chunk
	nCPU          uint16                    // the number of CPUs to use for re-encoding
	compression   Compression               // codec applied to the destination
	decompression Compression               // codec stripped from the source
	wrap          func(io.Reader) io.Reader // wraps the source, e.g. with a progress proxy
}

// TranscodeOption configures how we set up the transcoding pipeline.
type TranscodeOption func(*transcodeOptions)

// WithSourceEncoding lets you set the encoding the source bytes are read as.
func WithSourceEncoding(enc Encoding) TranscodeOption {
	return func(o *transcodeOptions) {
		o.source = enc
	}
}

// WithTargetEncoding lets you set the encoding the destination bytes are
// written in.
func WithTargetEncoding(enc Encoding) TranscodeOption {
	return func(o *transcodeOptions) {
		o.target = enc
	}
}

// WithChunkSize lets you set the upper bound on the bytes re-encoded per
// chunk.
func WithChunkSize(s int) TranscodeOption {
	return func(o *transcodeOptions) {
		o.chunkSize = s
	}
}

// WithNCpus lets you set the number of CPUs to use for background
// re-encoding.
func WithNCpus(n uint16) TranscodeOption {
	return func(o *transcodeOptions) {
		o.nCPU = n
	}
}

// WithCompression lets you set the codec the destination is packed with.
func WithCompression(c Compression) TranscodeOption {
	return func(o *transcodeOptions) {
		o.compression = c
	}
}

// WithDecompression lets you set the codec stripped from the source.
// CompressionAuto sniffs it from the source's magic bytes.
func WithDecompression(c Compression) TranscodeOption {
	return func(o *transcodeOptions) {
		o.decompression = c
	}
}

// WithWrap lets you interpose a reader over the source, typically a
// progress proxy.  The wrapper sees the source bytes before decompression.
func WithWrap(wrap func(io.Reader) io.Reader) TranscodeOption {
	return func(o *transcodeOptions) {
		o.wrap = wrap
	}
}

// defaultTranscodeConfig provides a default configuration for transcoding
// pipelines.
var defaultTranscodeConfig = transcodeOptions{
	source:        UTF8,
	target:        UTF8,
	chunkSize:     DefaultChunkSize,
	nCPU:          DefaultNCpu(),
	compression:   CompressionNone,
	decompression: CompressionNone,
}
