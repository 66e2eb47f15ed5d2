package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/docpath-format/docpath/ir"
)

func readFile(cc *cli.Context, file string) ([]byte, error) {
	var r io.Reader
	if file != "-" && file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	return d, nil
}

func getDocFile(cfg *MainConfig, cc *cli.Context, file string) (*ir.Node, error) {
	d, err := readFile(cc, file)
	if err != nil {
		return nil, err
	}
	node, err := cfg.decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return node, nil
}

// optFile returns the file argument at position i, or "-" for stdin
// when the argument is absent.
func optFile(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return "-"
}
