package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt"
	"github.com/nbt-format/go-nbt/compress"
	"github.com/nbt-format/go-nbt/format"
)

type MainConfig struct {
	Verbose bool `cli:"name=v aliases=verbose desc='log detection steps to stderr'"`
	Raw     bool `cli:"name=raw desc='disable display inference (uuids, booleans, json, base64)'"`

	Compression *compress.Method
	Endianness  *format.Endianness

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) compressionOpt(cc *cli.Context, a string) (any, error) {
	m, err := compress.ParseMethod(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Compression = &m
	return m, nil
}

func (cfg *MainConfig) endianOpt(cc *cli.Context, a string) (any, error) {
	e, err := format.ParseEndianness(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Endianness = &e
	return e, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// decodeOpts pins only what the user set, leaving the rest to detection.
func (cfg *MainConfig) decodeOpts() []nbt.Option {
	var res []nbt.Option
	if cfg.Compression != nil {
		res = append(res, nbt.WithCompression(*cfg.Compression))
	}
	if cfg.Endianness != nil {
		res = append(res, nbt.WithEndianness(*cfg.Endianness))
	}
	return res
}

// encodeOpts starts from the decoded file's framing and overrides it
// with whatever the user pinned.
func (cfg *MainConfig) encodeOpts(info *nbt.FileInfo) []nbt.Option {
	res := nbt.InfoOptions(info)
	if cfg.Compression != nil {
		res = append(res, nbt.WithCompression(*cfg.Compression))
	}
	if cfg.Endianness != nil {
		res = append(res, nbt.WithEndianness(*cfg.Endianness))
	}
	return res
}

func (cfg *MainConfig) log(f string, args ...any) {
	if !cfg.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "unbt: "+f+"\n", args...)
}

type ConvertConfig struct {
	*MainConfig

	JSON bool `cli:"name=j aliases=json desc='write roundtrip JSON instead of binary'"`

	Convert *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Basic     bool `cli:"name=j aliases=json desc='dump as basic JSON (lossy, one way)'"`
	Roundtrip bool `cli:"name=J aliases=roundtrip-json desc='dump as roundtrip JSON'"`
	SNBT      bool `cli:"name=s aliases=snbt desc='dump as SNBT text'"`

	Dump *cli.Command
}

type PrintConfig struct {
	*MainConfig

	Names bool `cli:"name=n aliases=names desc='print structure without values'"`

	Print *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Type        string `cli:"name=t aliases=type desc='kind for newly created tags'"`
	NoOverwrite bool   `cli:"name=no-overwrite desc='fail instead of changing an existing tag'"`
	Shift       bool   `cli:"name=shift desc='insert into lists instead of overwriting the index'"`

	Set *cli.Command
}

type RmConfig struct {
	*MainConfig

	Recursive bool `cli:"name=r aliases=recursive desc='delete non-empty compounds'"`

	Rm *cli.Command
}
