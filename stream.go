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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/destel/rill"

	"bytebuf.io/bytebuf/internal/codec"
	"bytebuf.io/bytebuf/internal/compress"
)

// Stats reports what a transcoding pipeline moved.
type Stats struct {
	// BytesIn counts bytes consumed from the source, before decompression.
	BytesIn int64

	// BytesOut counts bytes produced for the destination, before
	// compression.
	BytesOut int64

	// Chunks counts the chunks that passed through the pipeline.
	Chunks int64
}

// Transcode re-encodes the byte stream src onto dst, concurrently and in
// order: bytes are read in chunks, converted off the source encoding across
// a worker pool, and rendered into the target encoding in the order they
// were read.  Chunks are always cut at source encoding unit boundaries, so
// multi-byte sequences never tear.
//
// Text encodings carry the stream as text; the binary-to-text encodings,
// hex and the base64 family, carry raw bytes armored as ASCII.  Going from
// one family to the other, the armored form holds the UTF-8 bytes of the
// text.
//
// Optionally the source is unpacked and the destination packed with a
// compression codec; CompressionAuto sniffs the source codec from its
// leading magic bytes.
func Transcode(ctx context.Context, dst io.Writer, src io.Reader, opts ...TranscodeOption) (Stats, error) {
	cfg := defaultTranscodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var stats Stats

	if cfg.chunkSize <= 0 {
		return stats, newSizeRangeError("chunkSize", 1, MaxLength, cfg.chunkSize)
	}

	if cfg.compression == CompressionAuto {
		return stats, &InvalidArgValueError{
			ArgName: "compression",
			Reason:  "cannot be sniffed for output",
			Value:   "auto",
		}
	}

	identity := cfg.source == cfg.target

	toPayload, err := newPayloadFunc(cfg.source, identity)
	if err != nil {
		return stats, err
	}

	rend, err := newRenderer(cfg.target)
	if err != nil {
		return stats, err
	}

	reader := io.Reader(src)
	if cfg.wrap != nil {
		reader = cfg.wrap(reader)
	}

	counter := &countingReader{r: reader}
	reader = counter

	unpack := cfg.decompression
	if unpack == CompressionAuto {
		br := bufio.NewReader(reader)

		magic, err := br.Peek(6)
		if err != nil && !errors.Is(err, io.EOF) {
			return stats, fmt.Errorf("could not sniff compression: %w", err)
		}

		unpack = compress.Detect(magic)
		reader = br
	}

	if unpack != CompressionNone {
		rc, err := unpack.NewReader(reader)
		if err != nil {
			return stats, fmt.Errorf("could not open %s reader: %w", unpack.Name(), err)
		}
		defer rc.Close()

		reader = rc
	}

	writer := io.Writer(dst)

	var packer io.WriteCloser

	if cfg.compression != CompressionNone {
		if packer, err = cfg.compression.NewWriter(dst); err != nil {
			return stats, fmt.Errorf("could not open %s writer: %w", cfg.compression.Name(), err)
		}

		writer = packer
	}

	emit := func(p []byte) error {
		n, werr := writer.Write(p)

		stats.BytesOut += int64(n)

		if werr != nil {
			return fmt.Errorf("could not write chunk: %w", werr)
		}

		return nil
	}

	chunks := generateChunks(ctx, reader, cfg.source, cfg.chunkSize, !identity)
	payloads := rill.OrderedMap(chunks, int(max(cfg.nCPU, 1)), toPayload)

	err = rill.ForEach(payloads, 1, func(payload []byte) error {
		stats.Chunks++

		out := payload
		if !identity {
			var rerr error
			if out, rerr = rend.render(payload); rerr != nil {
				return rerr
			}
		}

		if len(out) == 0 {
			return nil
		}

		return emit(out)
	})

	if err == nil && !identity {
		tail, ferr := rend.flush()
		if ferr != nil {
			err = ferr
		} else if len(tail) > 0 {
			err = emit(tail)
		}
	}

	if packer != nil {
		if cerr := packer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close %s writer: %w", cfg.compression.Name(), cerr)
		}
	}

	stats.BytesIn = counter.n

	return stats, err
}

// newPayloadFunc builds the parallel stage of the pipeline, which lifts a
// source wire chunk into payload bytes: the UTF-8 text for the text
// encodings, the de-armored raw bytes for the binary-to-text ones.  When
// source and target agree the stream passes through untouched, invalid
// sequences included.
func newPayloadFunc(enc Encoding, identity bool) (func([]byte) ([]byte, error), error) {
	c, err := enc.codec()
	if err != nil {
		return nil, err
	}

	if identity {
		return func(chunk []byte) ([]byte, error) { return chunk, nil }, nil
	}

	if enc.binaryToText() {
		return func(chunk []byte) ([]byte, error) {
			raw, err := c.DecodeString(string(chunk))
			if err != nil {
				return nil, &InvalidArgValueError{
					ArgName: "source",
					Reason:  "is malformed " + enc.Name() + " input",
					Value:   string(chunk),
				}
			}

			return raw, nil
		}, nil
	}

	return func(chunk []byte) ([]byte, error) {
		return []byte(c.EncodeToString(chunk)), nil
	}, nil
}

// renderer is the ordered sink stage, turning payload chunks into target
// wire bytes.  It carries the cross-chunk state the target needs: base64
// output is grouped in 3-byte quanta, and text output must not split a
// multi-byte UTF-8 sequence that straddles two payload chunks, so partial
// units are held back and flushed at end of stream.
type renderer struct {
	enc     Encoding
	c       codec.Codec
	pending []byte
}

func newRenderer(enc Encoding) (*renderer, error) {
	c, err := enc.codec()
	if err != nil {
		return nil, err
	}

	return &renderer{enc: enc, c: c}, nil
}

func (r *renderer) render(payload []byte) ([]byte, error) {
	switch {
	case r.enc == Base64 || r.enc == Base64URL:
		r.pending = append(r.pending, payload...)
		n := len(r.pending) - len(r.pending)%3
		out := []byte(r.c.EncodeToString(r.pending[:n]))
		r.pending = append(r.pending[:0], r.pending[n:]...)

		return out, nil
	case r.enc.binaryToText():
		return []byte(r.c.EncodeToString(payload)), nil
	default:
		r.pending = append(r.pending, payload...)

		n := utf8Boundary(r.pending)
		if n == 0 {
			return nil, nil
		}

		out, err := r.decodePending(n)
		r.pending = append(r.pending[:0], r.pending[n:]...)

		return out, err
	}
}

func (r *renderer) flush() ([]byte, error) {
	if len(r.pending) == 0 {
		return nil, nil
	}

	pending := r.pending
	r.pending = nil

	if r.enc.binaryToText() {
		return []byte(r.c.EncodeToString(pending)), nil
	}

	out, err := r.c.DecodeString(string(pending))
	if err != nil {
		return nil, fmt.Errorf("could not render %s output: %w", r.enc.Name(), err)
	}

	return out, nil
}

func (r *renderer) decodePending(n int) ([]byte, error) {
	out, err := r.c.DecodeString(string(r.pending[:n]))
	if err != nil {
		return nil, fmt.Errorf("could not render %s output: %w", r.enc.Name(), err)
	}

	return out, nil
}

// generateChunks creates a channel of chunks read off of the reader, each
// cut at a source encoding unit boundary.  Bytes of a torn trailing unit
// are carried into the next chunk; whatever remains at end of stream is
// flushed as a final ragged chunk.  With strip set, whitespace is removed
// from base64 sources; an identity pipeline keeps it, staying byte-faithful.
func generateChunks(ctx context.Context, rdr io.Reader, enc Encoding, size int, strip bool) <-chan rill.Try[[]byte] {
	ch := make(chan rill.Try[[]byte])

	go func() {
		defer close(ch)

		var carry []byte

		buf := make([]byte, size)

		for {
			select {
			case <-ctx.Done():
				ch <- rill.Try[[]byte]{Error: ctx.Err()}

				return
			default:
			}

			n, err := rdr.Read(buf)
			if n > 0 {
				chunk := append(carry, buf[:n]...)
				if strip && (enc == Base64 || enc == Base64URL) {
					chunk = dropSpace(chunk)
				}

				var emit []byte

				emit, carry = splitAligned(enc, chunk)
				if len(emit) > 0 {
					ch <- rill.Try[[]byte]{Value: emit}
				}
			}

			if err != nil {
				if !errors.Is(err, io.EOF) {
					slog.Error("unable to read chunk", "error", err)
					ch <- rill.Try[[]byte]{Error: err}

					return
				}

				if len(carry) > 0 {
					ch <- rill.Try[[]byte]{Value: carry}
				}

				return
			}
		}
	}()

	return ch
}

// splitAligned cuts p at the last source encoding unit boundary, returning
// the aligned prefix and the torn tail.  UTF-16 keeps whole surrogate
// pairs together; base64 groups stay in 4-character quanta.
func splitAligned(enc Encoding, p []byte) (emit, rest []byte) {
	k := len(p)

	switch enc {
	case UTF8:
		k = utf8Boundary(p)
	case UTF16LE:
		k = len(p) &^ 1
		if k >= 2 {
			if u := uint16(p[k-2]) | uint16(p[k-1])<<8; u >= 0xd800 && u < 0xdc00 {
				k -= 2
			}
		}
	case Hex:
		k = len(p) &^ 1
	case Base64, Base64URL:
		k = len(p) &^ 3
	}

	return p[:k], p[k:]
}

// utf8Boundary returns the length of the longest prefix of p that ends on
// a rune boundary.  Invalid sequences count as complete; the codec replaces
// them downstream.
func utf8Boundary(p []byte) int {
	for back := 1; back <= utf8.UTFMax && back <= len(p); back++ {
		c := p[len(p)-back]
		if c < 0x80 {
			return len(p)
		}

		if c >= 0xc0 {
			if back < utf8SeqLen(c) {
				return len(p) - back
			}

			return len(p)
		}
	}

	return len(p)
}

func utf8SeqLen(c byte) int {
	switch {
	case c >= 0xf0:
		return 4
	case c >= 0xe0:
		return 3
	default:
		return 2
	}
}

// dropSpace removes the ASCII whitespace base64 streams are conventionally
// wrapped with, in place.
func dropSpace(p []byte) []byte {
	out := p[:0]

	for _, c := range p {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			out = append(out, c)
		}
	}

	return out
}

// countingReader counts the bytes its reads pass through.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}
