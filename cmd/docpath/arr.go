package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/docpath-format/docpath"
	"github.com/docpath-format/docpath/ir"
	"github.com/docpath-format/docpath/path"
)

func parseValues(args []string) ([]*ir.Node, error) {
	vals := make([]*ir.Node, len(args))
	for i, arg := range args {
		v, err := ir.FromJSON([]byte(arg))
		if err != nil {
			return nil, fmt.Errorf("%w: bad value %q: %w", cli.ErrUsage, arg, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func arrAppend(cfg *ArrConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: append requires a path and at least one value", cli.ErrUsage)
	}
	return arrPush(cfg, cc, args, docpath.ArrAppend)
}

func arrPrepend(cfg *ArrConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: prepend requires a path and at least one value", cli.ErrUsage)
	}
	return arrPush(cfg, cc, args, docpath.ArrPrepend)
}

func arrPush(cfg *ArrConfig, cc *cli.Context, args []string,
	op func(*ir.Node, path.Path, ...*ir.Node) (int, error)) error {
	p, err := docpath.ParseArg(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	vals, err := parseValues(args[1:])
	if err != nil {
		return err
	}
	doc, err := getDocFile(cfg.MainConfig, cc, cfg.File)
	if err != nil {
		return err
	}
	if _, err := op(doc, p, vals...); err != nil {
		return fmt.Errorf("error at %s: %w", args[0], err)
	}
	return cfg.emit(cfg.writer(cc), doc)
}

func arrPop(cfg *ArrConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: pop requires a path", cli.ErrUsage)
	}
	p, err := docpath.ParseArg(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	doc, err := getDocFile(cfg.MainConfig, cc, cfg.File)
	if err != nil {
		return err
	}
	if _, err := docpath.ArrPop(doc, p, cfg.Index); err != nil {
		return fmt.Errorf("error popping %s: %w", args[0], err)
	}
	return cfg.emit(cfg.writer(cc), doc)
}

func arrInsert(cfg *ArrConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 3 {
		return fmt.Errorf("%w: insert requires a path, an index and at least one value", cli.ErrUsage)
	}
	p, err := docpath.ParseArg(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: bad index %q", cli.ErrUsage, args[1])
	}
	vals, err := parseValues(args[2:])
	if err != nil {
		return err
	}
	doc, err := getDocFile(cfg.MainConfig, cc, cfg.File)
	if err != nil {
		return err
	}
	if _, err := docpath.ArrInsert(doc, p, index, vals...); err != nil {
		return fmt.Errorf("error inserting at %s: %w", args[0], err)
	}
	return cfg.emit(cfg.writer(cc), doc)
}
