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

package info

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"

	humanize "github.com/dustin/go-humanize"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"

	"bytebuf.io/bytebuf"
	"bytebuf.io/bytebuf/cmd/bytebuf/cli"
)

var out io.Writer = os.Stdout

// headSize bounds how much of the stream a plain report examines.
const headSize = 64 * 1024

// report describes a byte stream: the compression codec sniffed from its
// magic bytes and a classification of its content.  Size counts the bytes
// examined, which is the whole stream for an extended report.
type report struct {
	Size        int64  `json:"size"`
	Compression string `json:"compression"`
	ContentSize int64  `json:"content_size,omitempty"`
	Class       string `json:"class"`
	Graphemes   int64  `json:"graphemes,omitempty"`
	Preview     string `json:"preview,omitempty"`
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format the report as JSON")
	flags.BoolP("extended", "e", false, "scan the entire stream, not just the head")
	flags.IntP("preview", "p", 32, "preview length in grapheme clusters, 0 disables")
}

var infoCmd = &cobra.Command{
	Use:   "info [<input file>]",
	Short: "Describe a byte stream",
	Long:  "Describe a byte stream",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		var f *os.File
		var err error
		if len(args) == 1 {
			f, err = os.Open(args[0])
			if err != nil {
				log.Fatal(err)
			}
		} else {
			f = os.Stdin
		}

		flags := cmd.Flags()
		cfg := cli.Defaults()

		jsonfmt, err := flags.GetBool("json")
		if err != nil {
			log.Fatal(err)
		}

		extended, err := flags.GetBool("extended")
		if err != nil {
			log.Fatal(err)
		}

		preview, err := flags.GetInt("preview")
		if err != nil {
			log.Fatal(err)
		}
		if !flags.Changed("preview") {
			preview = cfg.Info.Preview
		}

		in := io.ReadCloser(f)
		if extended && !jsonfmt {
			if in, err = cli.WrapInputFile(f); err != nil {
				log.Fatal(err)
			}
		}

		rep, err := runInfo(in, extended, preview)
		if err != nil {
			log.Fatal(err)
		}

		if err := in.Close(); err != nil {
			log.Fatal(err)
		}

		if jsonfmt {
			renderJSON(rep)
		} else {
			renderTxt(rep)
		}
	},
}

// runInfo builds the report.  A plain report examines at most headSize
// leading bytes; an extended report consumes the whole stream and follows
// one level of compression.
func runInfo(in io.Reader, extended bool, preview int) (*report, error) {
	src := in
	if !extended {
		src = io.LimitReader(in, headSize)
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}

	rep := &report{Size: int64(len(raw))}

	comp := bytebuf.DetectCompression(raw)
	rep.Compression = comp.Name()

	content := raw
	if comp != bytebuf.CompressionNone {
		if !extended {
			// without a full scan only the codec is reported
			rep.Class = "binary"

			return rep, nil
		}

		var buf bytes.Buffer
		if _, err := bytebuf.Transcode(context.Background(), &buf, bytes.NewReader(raw),
			bytebuf.WithDecompression(comp)); err != nil {
			return nil, fmt.Errorf("could not unpack %s input: %w", comp.Name(), err)
		}

		content = buf.Bytes()
		rep.ContentSize = int64(len(content))
	}

	b := bytebuf.Wrap(content)
	switch {
	case b.IsASCII():
		rep.Class = "ascii"
	case utf8.Valid(content):
		rep.Class = "utf-8"
	default:
		rep.Class = "binary"
	}

	if rep.Class == "binary" {
		rep.Preview = b.String()

		return rep, nil
	}

	text := string(content)
	if extended {
		rep.Graphemes = int64(uniseg.GraphemeClusterCount(text))
	}
	rep.Preview = clipGraphemes(text, preview)

	return rep, nil
}

// clipGraphemes cuts s after n grapheme clusters so combining marks and
// emoji sequences never tear.
func clipGraphemes(s string, n int) string {
	if n <= 0 {
		return ""
	}

	g := uniseg.NewGraphemes(s)

	seen := 0
	for g.Next() {
		seen++
		if seen > n {
			from, _ := g.Positions()

			return s[:from] + "..."
		}
	}

	return s
}

func renderJSON(rep *report) {
	b, err := json.Marshal(rep)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintln(out, string(b))
}

func renderTxt(rep *report) {
	fmt.Fprintf(out, "Size: %s B\n", humanize.Comma(rep.Size))
	fmt.Fprintf(out, "Compression: %s\n", rep.Compression)
	if rep.ContentSize > 0 {
		fmt.Fprintf(out, "ContentSize: %s B\n", humanize.Comma(rep.ContentSize))
	}
	fmt.Fprintf(out, "Class: %s\n", rep.Class)
	if rep.Graphemes > 0 {
		fmt.Fprintf(out, "Graphemes: %s\n", humanize.Comma(rep.Graphemes))
	}
	if rep.Preview != "" {
		if rep.Class == "binary" {
			fmt.Fprintf(out, "Preview: %s\n", rep.Preview)
		} else {
			fmt.Fprintf(out, "Preview: %q\n", rep.Preview)
		}
	}
}
