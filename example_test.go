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

package bytebuf_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"bytebuf.io/bytebuf"
)

func Example() {
	buf, err := bytebuf.Make("68656c6c6f", bytebuf.Hex)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(buf.MustText(bytebuf.UTF8))
	fmt.Println(buf)

	if _, err = bytebuf.Make(42, bytebuf.UTF8); err != nil {
		fmt.Println(err)
	}

	// Output:
	// hello
	// <Buffer 68 65 6c 6c 6f>
	// The "string" argument must be of type string. Received type number (42)
}

func ExampleTranscode() {
	var out strings.Builder

	_, err := bytebuf.Transcode(context.Background(), &out,
		strings.NewReader("hello world"),
		bytebuf.WithSourceEncoding(bytebuf.UTF8),
		bytebuf.WithTargetEncoding(bytebuf.Base64))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(out.String())
	// Output:
	// aGVsbG8gd29ybGQ=
}

func ExampleBuffer_Slice() {
	buf, err := bytebuf.Make("buffer views share storage")
	if err != nil {
		log.Fatal(err)
	}

	view := buf.Slice(0, 6)
	view.Bytes()[0] = 'B'

	fmt.Println(view.MustText(bytebuf.UTF8))
	fmt.Println(buf.MustText(bytebuf.UTF8))
	// Output:
	// Buffer
	// Buffer views share storage
}
