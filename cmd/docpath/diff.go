package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/docpath-format/docpath"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDocFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := getDocFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	patch, err := docpath.Diff(a, b)
	if err != nil {
		return fmt.Errorf("error diffing: %w", err)
	}
	var d []byte
	if cfg.C {
		d, err = json.Marshal(patch)
	} else {
		d, err = json.MarshalIndent(patch, "", "  ")
	}
	if err != nil {
		return err
	}
	w := cfg.writer(cc)
	if _, err := w.Write(d); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	if err != nil {
		return err
	}
	if len(patch) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
