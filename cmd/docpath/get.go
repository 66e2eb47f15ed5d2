package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/docpath-format/docpath"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: get requires a path and an optional file", cli.ErrUsage)
	}
	p, err := docpath.ParseArg(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	doc, err := getDocFile(cfg.MainConfig, cc, optFile(args, 1))
	if err != nil {
		return err
	}
	node, err := docpath.Get(doc, p)
	if err != nil {
		return fmt.Errorf("error querying %s: %w", args[0], err)
	}
	return cfg.emit(cfg.writer(cc), node)
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	w := cfg.writer(cc)
	for _, file := range args {
		doc, err := getDocFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := cfg.emit(w, doc); err != nil {
			return err
		}
	}
	return nil
}
