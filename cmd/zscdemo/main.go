// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

// Command zscdemo is a minimal command-line wrapper around zsc.Writer and
// zsc.Reader (§9 supplemented feature), exercising the package the way a
// real caller would: stdin to stdout, one flush mode, one wrap mode.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/abcouwer-jpl/zsc"
)

func main() {
	compress := flag.Bool("c", false, "compress stdin to stdout")
	decompress := flag.Bool("d", false, "decompress stdin to stdout")
	level := flag.Int("level", zsc.DefaultLevel, "compression level (0-9, -1 for default)")
	useGzip := flag.Bool("gzip", false, "use gzip framing instead of zlib")
	flag.Parse()

	if *compress == *decompress {
		fmt.Fprintln(os.Stderr, "zscdemo: exactly one of -c or -d is required")
		os.Exit(2)
	}

	params := zsc.DefaultParams()
	params.Level = *level
	if *useGzip {
		params.WindowBits = zsc.MaxWindowBits + 16
	}

	var err error
	if *compress {
		err = runCompress(params)
	} else {
		err = runDecompress(params)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "zscdemo: %v\n", err)
		os.Exit(1)
	}
}

func runCompress(params zsc.Params) error {
	w, err := zsc.NewWriter(os.Stdout, params)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, os.Stdin); err != nil {
		return err
	}
	return w.Close()
}

func runDecompress(params zsc.Params) error {
	r, err := zsc.NewReader(os.Stdin, params)
	if err != nil {
		return err
	}
	_, err = io.Copy(os.Stdout, r)
	return err
}
