package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "c",
			Aliases:     []string{"compression"},
			Description: "compression: none, deflate, gzip, zstd (default autodetect)",
			Type:        cli.NamedFuncOpt(cfg.compressionOpt, "(method)"),
		}, &cli.Opt{
			Name:        "e",
			Aliases:     []string{"endian"},
			Description: "byte order: big, little, xor (default autodetect)",
			Type:        cli.NamedFuncOpt(cfg.endianOpt, "(order)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "unbt").
		WithSynopsis("unbt [opts] command [opts]").
		WithDescription("unbt is a tool for inspecting and converting NBT files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return unbtMain(cfg, cc, args)
		}).
		WithSubs(
			PrintCommand(cfg),
			DumpCommand(cfg),
			ConvertCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			RmCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <tagpath> [files]").
		WithDescription("print the tag at a path").
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
		WithOpts(opts...).
		WithSynopsis("set [-t type] <tagpath> <value> [files]").
		WithDescription("set a tag value, creating missing parents, and re-encode").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("rm").
		WithOpts(opts...).
		WithSynopsis("rm [-r] <tagpath> [files]").
		WithDescription("delete the tag at a path and re-encode").
		WithRun(func(cc *cli.Context, args []string) error {
			return remove(cfg, cc, args)
		})
	cfg.Rm = cmd
	return cmd
}

func PrintCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PrintConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("print").
		WithAliases("p", "pr").
		WithOpts(opts...).
		WithSynopsis("print [files]").
		WithDescription("pretty-print NBT files with inferred value display").
		WithRun(func(cc *cli.Context, args []string) error {
			return printCmd(cfg, cc, args)
		})
	cfg.Print = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("dump [-j|-J|-s] [files]").
		WithDescription("dump NBT files as JSON or SNBT text").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("convert").
		WithAliases("c", "co").
		WithOpts(opts...).
		WithSynopsis("convert [-j] [files]").
		WithDescription("re-encode NBT files, binary or roundtrip JSON, any framing").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}
