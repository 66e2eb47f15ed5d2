package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/docpath-format/docpath"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and an optional document file", cli.ErrUsage)
	}
	patchData, err := readFile(cc, args[0])
	if err != nil {
		return err
	}
	doc, err := getDocFile(cfg.MainConfig, cc, optFile(args, 1))
	if err != nil {
		return err
	}
	if cfg.M {
		err = docpath.ApplyMergePatch(doc, patchData)
	} else {
		err = docpath.ApplyPatch(doc, patchData)
	}
	if err != nil {
		return fmt.Errorf("error patching: %w", err)
	}
	return cfg.emit(cfg.writer(cc), doc)
}

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: merge requires a source file and an optional document file", cli.ErrUsage)
	}
	strategy, err := docpath.ParseMergeStrategy(cfg.Strategy)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	src, err := getDocFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	doc, err := getDocFile(cfg.MainConfig, cc, optFile(args, 1))
	if err != nil {
		return err
	}
	if err := docpath.Merge(doc, src, strategy); err != nil {
		return fmt.Errorf("error merging: %w", err)
	}
	return cfg.emit(cfg.writer(cc), doc)
}
