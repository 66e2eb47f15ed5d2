package main

import (
	"strconv"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "docpath").
		WithSynopsis("docpath [opts] command [opts]").
		WithDescription("docpath reads and mutates locations inside JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docpathMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			DelCommand(cfg),
			TypeCommand(cfg),
			SizeCommand(cfg),
			ExistsCommand(cfg),
			AppendCommand(cfg),
			PrependCommand(cfg),
			PopCommand(cfg),
			InsertCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			MergeCommand(cfg))
}

func docpathMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		cfg.Main.Usage(cc, nil)
		return nil
	}
	return cli.ErrUsage
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("re-render documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [file]").
		WithDescription("get the value at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set [-no-create] [-no-overwrite] <path> <value> [file]").
		WithDescription("set the value at a path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("del").
		WithAliases("d", "rm").
		WithSynopsis("del <path> [file]").
		WithDescription("delete the value at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
	cfg.Del = cmd
	return cmd
}

func TypeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("type").
		WithSynopsis("type <path> [file]").
		WithDescription("report the kind of the value at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return info(cfg, cc, args, infoType)
		})
	cfg.Cmd = cmd
	return cmd
}

func SizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("size").
		WithSynopsis("size <path> [file]").
		WithDescription("report the size of the value at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return info(cfg, cc, args, infoSize)
		})
	cfg.Cmd = cmd
	return cmd
}

func ExistsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("exists").
		WithSynopsis("exists <path> [file]").
		WithDescription("report whether a path resolves; exits 1 when it does not").
		WithRun(func(cc *cli.Context, args []string) error {
			return info(cfg, cc, args, infoExists)
		})
	cfg.Cmd = cmd
	return cmd
}

func arrFileOpt(cfg *ArrConfig) *cli.Opt {
	return &cli.Opt{
		Name:        "f",
		Description: "document file (default stdin)",
		Type: cli.NamedFuncOpt(func(cc *cli.Context, v string) (any, error) {
			cfg.File = v
			return v, nil
		}, "(filepath)"),
	}
}

func AppendCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ArrConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("append").
		WithSynopsis("append [-f file] <path> <value> [values]").
		WithDescription("append values to the array at a path").
		WithOpts(arrFileOpt(cfg)).
		WithRun(func(cc *cli.Context, args []string) error {
			return arrAppend(cfg, cc, args)
		})
	cfg.Cmd = cmd
	return cmd
}

func PrependCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ArrConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("prepend").
		WithSynopsis("prepend [-f file] <path> <value> [values]").
		WithDescription("prepend values to the array at a path").
		WithOpts(arrFileOpt(cfg)).
		WithRun(func(cc *cli.Context, args []string) error {
			return arrPrepend(cfg, cc, args)
		})
	cfg.Cmd = cmd
	return cmd
}

func PopCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ArrConfig{MainConfig: mainCfg, Index: -1}
	cmd := cli.NewCommand("pop").
		WithSynopsis("pop [-f file] [-i index] <path>").
		WithDescription("remove an element from the array at a path").
		WithOpts(arrFileOpt(cfg), &cli.Opt{
			Name:        "i",
			Description: "index to remove, negative counts from the end (default -1)",
			Type: cli.NamedFuncOpt(func(cc *cli.Context, v string) (any, error) {
				i, err := strconv.Atoi(v)
				if err != nil {
					return nil, err
				}
				cfg.Index = i
				return i, nil
			}, "(index)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return arrPop(cfg, cc, args)
		})
	cfg.Cmd = cmd
	return cmd
}

func InsertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ArrConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("insert").
		WithSynopsis("insert [-f file] <path> <index> <value> [values]").
		WithDescription("insert values into the array at a path").
		WithOpts(arrFileOpt(cfg)).
		WithRun(func(cc *cli.Context, args []string) error {
			return arrInsert(cfg, cc, args)
		})
	cfg.Cmd = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("emit an RFC 6902 patch transforming file1 into file2").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithSynopsis("patch [-m] <patchfile> [file]").
		WithDescription("apply an RFC 6902 patch, or with -m an RFC 7386 merge patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg, Strategy: "overwrite"}
	cmd := cli.NewCommand("merge").
		WithSynopsis("merge [-s strategy] <srcfile> [file]").
		WithDescription("merge a document into another: overwrite, deep").
		WithOpts(&cli.Opt{
			Name:        "s",
			Description: "merge strategy (default overwrite)",
			Type: cli.NamedFuncOpt(func(cc *cli.Context, v string) (any, error) {
				cfg.Strategy = v
				return v, nil
			}, "(strategy)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}
