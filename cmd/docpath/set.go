package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/docpath-format/docpath"
	"github.com/docpath-format/docpath/ir"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: set requires a path, a value and an optional file", cli.ErrUsage)
	}
	p, err := docpath.ParseArg(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	val, err := ir.FromJSON([]byte(args[1]))
	if err != nil {
		return fmt.Errorf("%w: bad value %q: %w", cli.ErrUsage, args[1], err)
	}
	doc, err := getDocFile(cfg.MainConfig, cc, optFile(args, 2))
	if err != nil {
		return err
	}
	err = docpath.Set(doc, p, val,
		docpath.SetCreate(!cfg.NoCreate),
		docpath.SetOverwrite(!cfg.NoOverwrite))
	if err != nil {
		return fmt.Errorf("error setting %s: %w", args[0], err)
	}
	return cfg.emit(cfg.writer(cc), doc)
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: del requires a path and an optional file", cli.ErrUsage)
	}
	p, err := docpath.ParseArg(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	doc, err := getDocFile(cfg.MainConfig, cc, optFile(args, 1))
	if err != nil {
		return err
	}
	if len(p) == 0 {
		// the engine cannot delete the root; the calling
		// convention maps it to emptying the document
		ir.Null().CloneTo(doc)
	} else if err := docpath.Del(doc, p); err != nil {
		return fmt.Errorf("error deleting %s: %w", args[0], err)
	}
	return cfg.emit(cfg.writer(cc), doc)
}
