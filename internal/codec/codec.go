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

// Package codec implements the text encodings a buffer can be built from and
// rendered to.  Each codec converts in both directions between the textual
// form of an encoding and the raw bytes it denotes.
package codec

// Codec converts between the textual form of an encoding and raw bytes.
//
// DecodeString interprets text as the encoded form and returns the bytes it
// denotes; EncodeToString renders raw bytes in the textual form.  Encoding
// bytes to text never fails; decoding fails on malformed input for the
// strict codecs (hex, base64).
type Codec interface {
	DecodeString(s string) ([]byte, error)
	EncodeToString(b []byte) string
}

// The supported codecs.  All are stateless and safe for concurrent use.
var (
	UTF8      Codec = utf8Codec{}
	UTF16LE   Codec = utf16Codec{}
	Latin1    Codec = latin1Codec{}
	ASCII     Codec = asciiCodec{}
	Hex       Codec = hexCodec{}
	Base64    Codec = base64Codec{}
	Base64URL Codec = base64urlCodec{}
)
