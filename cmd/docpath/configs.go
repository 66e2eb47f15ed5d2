package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/docpath-format/docpath/encode"
	"github.com/docpath-format/docpath/ir"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y     bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	C     bool `cli:"name=c aliases=compact desc='compact output'"`
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	outFile  *os.File
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, v string) (any, error) {
	f, err := os.Create(v)
	if err != nil {
		return nil, err
	}
	cfg.Out = v
	cfg.outFile = f
	cfg.CloseOut = f.Close
	return v, nil
}

func (cfg *MainConfig) writer(cc *cli.Context) io.Writer {
	if cfg.outFile != nil {
		return cfg.outFile
	}
	return cc.Out
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Compact(cfg.C),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// decode parses document bytes in the configured input format.
func (cfg *MainConfig) decode(d []byte) (*ir.Node, error) {
	if cfg.Y {
		return ir.FromYAML(d)
	}
	return ir.FromJSON(d)
}

// emit writes a document in the configured output format.
func (cfg *MainConfig) emit(w io.Writer, node *ir.Node) error {
	if cfg.Y {
		d, err := ir.ToYAML(node)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	return encode.Encode(node, w, cfg.encOpts(w)...)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	NoCreate    bool `cli:"name=no-create desc='fail instead of creating missing containers'"`
	NoOverwrite bool `cli:"name=no-overwrite desc='keep an existing value in place'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig

	Del *cli.Command
}

type ArrConfig struct {
	*MainConfig

	File  string
	Index int

	Cmd *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	M bool `cli:"name=m aliases=merge desc='treat the patch as an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Strategy string

	Merge *cli.Command
}

type InfoConfig struct {
	*MainConfig

	Cmd *cli.Command
}
