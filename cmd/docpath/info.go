package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/docpath-format/docpath"
)

type infoKind int

const (
	infoType infoKind = iota
	infoSize
	infoExists
)

func info(cfg *InfoConfig, cc *cli.Context, args []string, kind infoKind) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: requires a path and an optional file", cli.ErrUsage)
	}
	p, err := docpath.ParseArg(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	doc, err := getDocFile(cfg.MainConfig, cc, optFile(args, 1))
	if err != nil {
		return err
	}
	w := cfg.writer(cc)
	switch kind {
	case infoType:
		t, err := docpath.TypeOf(doc, p)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", args[0], err)
		}
		fmt.Fprintf(w, "%s\n", t)
		return nil
	case infoSize:
		n, err := docpath.SizeOf(doc, p)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", args[0], err)
		}
		fmt.Fprintf(w, "%d\n", n)
		return nil
	case infoExists:
		ok := docpath.Exists(doc, p)
		fmt.Fprintf(w, "%v\n", ok)
		if !ok {
			return cli.ExitCodeErr(1)
		}
		return nil
	default:
		panic("info kind")
	}
}
