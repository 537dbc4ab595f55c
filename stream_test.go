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
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTranscodeIdentity(t *testing.T) {
	var dst bytes.Buffer

	stats, err := Transcode(context.Background(), &dst, strings.NewReader("hello, world"))

	require.NoError(t, err)
	assert.Equal(t, "hello, world", dst.String())
	assert.EqualValues(t, 12, stats.BytesIn)
	assert.EqualValues(t, 12, stats.BytesOut)
}

func TestTranscodeIdentityKeepsWhitespace(t *testing.T) {
	var dst bytes.Buffer

	_, err := Transcode(context.Background(), &dst, strings.NewReader("aGVs\nbG8=\n"),
		WithSourceEncoding(Base64),
		WithTargetEncoding(Base64))

	require.NoError(t, err)
	assert.Equal(t, "aGVs\nbG8=\n", dst.String())
}

func TestTranscodeStats(t *testing.T) {
	var dst bytes.Buffer

	stats, err := Transcode(context.Background(), &dst, strings.NewReader("abcdef"),
		WithChunkSize(2))

	require.NoError(t, err)
	assert.EqualValues(t, 6, stats.BytesIn)
	assert.EqualValues(t, 6, stats.BytesOut)
	assert.EqualValues(t, 3, stats.Chunks)
}

func TestTranscodeUTF8ToUTF16LE(t *testing.T) {
	src := strings.Repeat("€", 100)
	want := bytes.Repeat([]byte{0xac, 0x20}, 100)

	var dst bytes.Buffer

	// A chunk size indivisible by the rune width forces the splitter to
	// carry torn sequences between chunks.
	_, err := Transcode(context.Background(), &dst, strings.NewReader(src),
		WithSourceEncoding(UTF8),
		WithTargetEncoding(UTF16LE),
		WithChunkSize(5),
		WithNCpus(4))

	require.NoError(t, err)
	assert.Equal(t, want, dst.Bytes())
}

func TestTranscodeUTF16SurrogatePairs(t *testing.T) {
	src := bytes.Repeat([]byte{0x34, 0xd8, 0x1e, 0xdd}, 50)
	want := strings.Repeat("\U0001d11e", 50)

	var dst bytes.Buffer

	_, err := Transcode(context.Background(), &dst, bytes.NewReader(src),
		WithSourceEncoding(UTF16LE),
		WithTargetEncoding(UTF8),
		WithChunkSize(3))

	require.NoError(t, err)
	assert.Equal(t, want, dst.String())
}

func TestTranscodeHexToBase64(t *testing.T) {
	var dst bytes.Buffer

	// An 11-byte payload across 5-character chunks exercises the base64
	// group carry and the padded flush.
	_, err := Transcode(context.Background(), &dst,
		strings.NewReader("68656c6c6f20776f726c64"),
		WithSourceEncoding(Hex),
		WithTargetEncoding(Base64),
		WithChunkSize(5))

	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8gd29ybGQ=", dst.String())
}

func TestTranscodeBase64ToUTF8(t *testing.T) {
	var dst bytes.Buffer

	_, err := Transcode(context.Background(), &dst,
		strings.NewReader(" SGVs\nbG8g\r\nd29y bGQ= "),
		WithSourceEncoding(Base64),
		WithTargetEncoding(UTF8),
		WithChunkSize(7))

	require.NoError(t, err)
	assert.Equal(t, "hello world", dst.String())
}

func TestTranscodeBase64ToUTF8Multibyte(t *testing.T) {
	var dst bytes.Buffer

	// Each chunk de-armors to three raw bytes, tearing the two-byte UTF-8
	// sequences, so the sink has to carry the torn tail across chunks.
	_, err := Transcode(context.Background(), &dst,
		strings.NewReader("w6nDoMOnw7bDvA=="),
		WithSourceEncoding(Base64),
		WithTargetEncoding(UTF8),
		WithChunkSize(5))

	require.NoError(t, err)
	assert.Equal(t, "éàçöü", dst.String())
}

func TestTranscodeCompression(t *testing.T) {
	src := strings.Repeat("the quick brown fox ", 256)

	var packed bytes.Buffer

	stats, err := Transcode(context.Background(), &packed, strings.NewReader(src),
		WithCompression(CompressionGzip))

	require.NoError(t, err)
	assert.EqualValues(t, len(src), stats.BytesOut, "BytesOut counts pre-compression bytes")
	assert.Equal(t, []byte{0x1f, 0x8b}, packed.Bytes()[:2])

	var unpacked bytes.Buffer

	stats, err = Transcode(context.Background(), &unpacked, bytes.NewReader(packed.Bytes()),
		WithDecompression(CompressionAuto))

	require.NoError(t, err)
	assert.Equal(t, src, unpacked.String())
	assert.EqualValues(t, packed.Len(), stats.BytesIn, "BytesIn counts pre-decompression bytes")
}

func TestTranscodeMalformedSource(t *testing.T) {
	var dst bytes.Buffer

	_, err := Transcode(context.Background(), &dst, strings.NewReader("48zz"),
		WithSourceEncoding(Hex),
		WithTargetEncoding(Base64))

	require.ErrorIs(t, err, ErrInvalidArgValue)
	assert.Contains(t, err.Error(), "malformed hex input")
}

func TestTranscodeBadOptions(t *testing.T) {
	var dst bytes.Buffer

	_, err := Transcode(context.Background(), &dst, strings.NewReader("x"),
		WithChunkSize(0))
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Transcode(context.Background(), &dst, strings.NewReader("x"),
		WithCompression(CompressionAuto))
	assert.ErrorIs(t, err, ErrInvalidArgValue)

	_, err = Transcode(context.Background(), &dst, strings.NewReader("x"),
		WithSourceEncoding(Encoding(99)))
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}

type endlessReader struct{}

func (endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'a'
	}

	return len(p), nil
}

func TestTranscodeCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Transcode(ctx, io.Discard, endlessReader{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestTranscodeWrap(t *testing.T) {
	var proxy *countingReader

	var dst bytes.Buffer

	_, err := Transcode(context.Background(), &dst, strings.NewReader("hello"),
		WithWrap(func(r io.Reader) io.Reader {
			proxy = &countingReader{r: r}

			return proxy
		}))

	require.NoError(t, err)
	assert.Equal(t, "hello", dst.String())
	require.NotNil(t, proxy)
	assert.EqualValues(t, 5, proxy.n)
}
