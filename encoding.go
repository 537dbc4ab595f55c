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

//go:generate stringer -type=Encoding

import (
	"strings"

	"bytebuf.io/bytebuf/internal/codec"
)

// Encoding identifies a text encoding, the textual form bytes can be built
// from and rendered to.  The zero value is UTF8.
type Encoding int

// The supported text encodings.
const (
	// UTF8 is the default encoding.  Ill-formed input is replaced with
	// U+FFFD in both directions rather than rejected.
	UTF8 Encoding = iota

	// UTF16LE is little-endian UTF-16 without a byte order mark.
	UTF16LE

	// Latin1 maps bytes 1:1 onto U+0000..U+00FF.  Also answers to the
	// historical name "binary".
	Latin1

	// ASCII masks every code unit to its low seven bits.
	ASCII

	// Hex is lowercase hexadecimal text.  Decoding is strict.
	Hex

	// Base64 is padded standard base64.  Decoding accepts unpadded input
	// and ignores ASCII whitespace.
	Base64

	// Base64URL is unpadded URL-safe base64.
	Base64URL
)

// encodingNames maps every accepted encoding name and alias, lowercased, to
// its Encoding.
var encodingNames = map[string]Encoding{
	"utf8":      UTF8,
	"utf-8":     UTF8,
	"utf16le":   UTF16LE,
	"utf-16le":  UTF16LE,
	"ucs2":      UTF16LE,
	"ucs-2":     UTF16LE,
	"latin1":    Latin1,
	"binary":    Latin1,
	"ascii":     ASCII,
	"hex":       Hex,
	"base64":    Base64,
	"base64url": Base64URL,
}

// ParseEncoding resolves an encoding name to an Encoding.  Matching is
// case-insensitive and accepts the usual aliases ("utf-8", "ucs2",
// "binary", ...).  The empty name resolves to UTF8.  Unknown names are
// reported with an *UnknownEncodingError.
func ParseEncoding(name string) (Encoding, error) {
	if name == "" {
		return UTF8, nil
	}

	if enc, ok := encodingNames[strings.ToLower(name)]; ok {
		return enc, nil
	}

	return 0, &UnknownEncodingError{Name: name}
}

// Name returns the canonical lowercase name of the encoding, or "" when the
// value is not one of the defined encodings.
func (e Encoding) Name() string {
	switch e {
	case UTF8:
		return "utf8"
	case UTF16LE:
		return "utf16le"
	case Latin1:
		return "latin1"
	case ASCII:
		return "ascii"
	case Hex:
		return "hex"
	case Base64:
		return "base64"
	case Base64URL:
		return "base64url"
	default:
		return ""
	}
}

// Valid reports whether e is one of the defined encodings.
func (e Encoding) Valid() bool {
	return e >= UTF8 && e <= Base64URL
}

// binaryToText reports whether the encoding armors raw bytes as ASCII text
// rather than encoding text as bytes.
func (e Encoding) binaryToText() bool {
	return e == Hex || e == Base64 || e == Base64URL
}

// codec returns the codec backing the encoding.
func (e Encoding) codec() (codec.Codec, error) {
	switch e {
	case UTF8:
		return codec.UTF8, nil
	case UTF16LE:
		return codec.UTF16LE, nil
	case Latin1:
		return codec.Latin1, nil
	case ASCII:
		return codec.ASCII, nil
	case Hex:
		return codec.Hex, nil
	case Base64:
		return codec.Base64, nil
	case Base64URL:
		return codec.Base64URL, nil
	default:
		return nil, &UnknownEncodingError{Name: e.String()}
	}
}

// decodeString runs the codec for e over s and wraps malformed input in the
// typed error callers pattern-match on.
func (e Encoding) decodeString(argName, s string) ([]byte, error) {
	c, err := e.codec()
	if err != nil {
		return nil, err
	}

	b, err := c.DecodeString(s)
	if err != nil {
		return nil, &InvalidArgValueError{
			ArgName: argName,
			Reason:  "is malformed " + e.Name() + " input",
			Value:   s,
		}
	}

	return b, nil
}
