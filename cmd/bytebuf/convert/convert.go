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

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"bytebuf.io/bytebuf"
	"bytebuf.io/bytebuf/cmd/bytebuf/cli"
)

var (
	from   bytebuf.Encoding
	to     bytebuf.Encoding
	pack   bytebuf.Compression
	unpack bytebuf.Compression
	fold   int
	output string
	ncpu   uint16
	quiet  bool
)

func init() {
	cli.RootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()
	flags.VarP(cli.NewEncodingValue(bytebuf.UTF8, &from), "from", "f", "encoding of the input")
	flags.VarP(cli.NewEncodingValue(bytebuf.Base64, &to), "to", "t", "encoding of the output")
	flags.VarP(cli.NewCompressionValue(bytebuf.CompressionAuto, &unpack), "decompress", "d",
		"codec to unpack the input with, auto sniffs the magic bytes")
	flags.VarP(cli.NewCompressionValue(bytebuf.CompressionNone, &pack), "compress", "z",
		"codec to pack the output with")
	flags.IntVarP(&fold, "wrap", "w", 0, "fold the output at this column, 0 disables")
	flags.StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	flags.Uint16VarP(&ncpu, "cpu", "c", bytebuf.DefaultNCpu(), "number of CPUs to use for re-encoding")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress the progress bar and summary")
}

var convertCmd = &cobra.Command{
	Use:   "convert [<input file>]",
	Short: "Re-encode a byte stream between text encodings",
	Long:  "Re-encode a byte stream between text encodings",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		flags := cmd.Flags()
		cfg := cli.Defaults()

		if !flags.Changed("to") && cfg.Convert.To != "" {
			enc, err := bytebuf.ParseEncoding(cfg.Convert.To)
			if err != nil {
				log.Fatal(err)
			}
			to = enc
		}

		if !flags.Changed("wrap") && cfg.Convert.Wrap > 0 {
			fold = cfg.Convert.Wrap
		}

		if !flags.Changed("cpu") && cfg.NCpu > 0 {
			ncpu = cfg.NCpu
		}

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

		in := io.ReadCloser(f)
		if !quiet {
			if in, err = cli.WrapInputFile(f); err != nil {
				log.Fatal(err)
			}
		}

		out := os.Stdout
		if output != "" {
			if out, err = os.Create(output); err != nil {
				log.Fatal(err)
			}
		}

		stats, err := runConvert(cmd.Context(), out, in, from, to, pack, unpack, fold, ncpu)
		if err != nil {
			log.Fatal(err)
		}

		if err = in.Close(); err != nil {
			log.Fatal(err)
		}

		if output != "" {
			if err = out.Close(); err != nil {
				log.Fatal(err)
			}
		}

		if !quiet {
			fmt.Fprintf(os.Stderr, "in: %s B, out: %s B, chunks: %s\n",
				humanize.Comma(stats.BytesIn), humanize.Comma(stats.BytesOut),
				humanize.Comma(stats.Chunks))
		}
	},
}

// runConvert drives a transcoding pipeline from in to out, optionally
// folding the re-encoded output at a fixed column.
func runConvert(ctx context.Context, out io.Writer, in io.Reader,
	from, to bytebuf.Encoding, pack, unpack bytebuf.Compression,
	fold int, ncpu uint16,
) (bytebuf.Stats, error) {
	dst := out

	var lw *lineWriter
	if fold > 0 {
		lw = newLineWriter(out, fold)
		dst = lw
	}

	stats, err := bytebuf.Transcode(ctx, dst, in,
		bytebuf.WithSourceEncoding(from),
		bytebuf.WithTargetEncoding(to),
		bytebuf.WithCompression(pack),
		bytebuf.WithDecompression(unpack),
		bytebuf.WithNCpus(ncpu))
	if err != nil {
		return stats, err
	}

	if lw != nil {
		if err := lw.Flush(); err != nil {
			return stats, err
		}
	}

	return stats, nil
}
