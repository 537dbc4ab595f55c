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

package dump

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"bytebuf.io/bytebuf"
	"bytebuf.io/bytebuf/cmd/bytebuf/cli"
)

var (
	width  int
	skip   int64
	length int64
	unpack bytebuf.Compression
)

func init() {
	cli.RootCmd.AddCommand(dumpCmd)

	flags := dumpCmd.Flags()
	flags.IntVarP(&width, "width", "w", 16, "bytes shown per row")
	flags.Int64VarP(&skip, "skip", "s", 0, "bytes to skip before dumping")
	flags.Int64VarP(&length, "length", "l", -1, "maximum bytes to dump, -1 for all")
	flags.VarP(cli.NewCompressionValue(bytebuf.CompressionNone, &unpack), "decompress", "d",
		"codec to unpack the input with, auto sniffs the magic bytes")
}

var dumpCmd = &cobra.Command{
	Use:   "dump [<input file>]",
	Short: "Hex dump a byte stream",
	Long:  "Hex dump a byte stream",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		flags := cmd.Flags()
		cfg := cli.Defaults()

		if !flags.Changed("width") && cfg.Dump.Width > 0 {
			width = cfg.Dump.Width
		}
		if width < 1 {
			log.Fatalf("width must be positive, got %d", width)
		}

		var in *os.File
		var err error
		if len(args) == 1 {
			if in, err = os.Open(args[0]); err != nil {
				log.Fatal(err)
			}
			defer in.Close()
		} else {
			in = os.Stdin
		}

		src := io.Reader(in)
		if unpack != bytebuf.CompressionNone {
			// an identity transcode strips the compression while the
			// dump consumes the other end of the pipe
			pr, pw := io.Pipe()
			defer pr.Close()

			go func() {
				_, err := bytebuf.Transcode(cmd.Context(), pw, in,
					bytebuf.WithDecompression(unpack))
				pw.CloseWithError(err)
			}()

			src = pr
		}

		if err = runDump(os.Stdout, src, width, skip, length); err != nil {
			log.Fatal(err)
		}
	},
}

// runDump renders in as an xxd-style hex dump: an offset gutter, hex columns
// in pairs and a printable-byte gutter.  Offsets start at skip.
func runDump(out io.Writer, in io.Reader, width int, skip, length int64) error {
	if skip > 0 {
		if _, err := io.CopyN(io.Discard, in, skip); err != nil {
			if err == io.EOF {
				return nil
			}

			return err
		}
	}

	if length >= 0 {
		in = io.LimitReader(in, length)
	}

	w := bufio.NewWriter(out)
	row := make([]byte, width)
	off := skip

	for {
		n, err := io.ReadFull(in, row)
		if n > 0 {
			dumpRow(w, off, row[:n], width)
			off += int64(n)
		}

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return err
		}
	}

	return w.Flush()
}

func dumpRow(w *bufio.Writer, off int64, row []byte, width int) {
	fmt.Fprintf(w, "%08x: ", off)

	for i := 0; i < width; i++ {
		if i < len(row) {
			fmt.Fprintf(w, "%02x", row[i])
		} else {
			w.WriteString("  ")
		}

		if i%2 == 1 {
			w.WriteByte(' ')
		}
	}

	w.WriteByte(' ')

	for _, c := range row {
		if c >= 0x20 && c < 0x7f {
			w.WriteByte(c)
		} else {
			w.WriteByte('.')
		}
	}

	w.WriteByte('\n')
}
