package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt"
	"github.com/nbt-format/go-nbt/render"
	"github.com/nbt-format/go-nbt/tag"
)

func printCmd(cfg *PrintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Print.Parse(cc, args)
	if err != nil {
		return err
	}
	if f, ok := cc.Out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		color.NoColor = true
	}
	p := render.NewPrinter(cc.Out, render.WithInference(!cfg.Raw))
	return eachFile(cfg.MainConfig, cc, args, func(root *tag.Tag, _ *nbt.FileInfo) error {
		if cfg.Names {
			p.PrintNames(root, render.RecurseFull)
			return nil
		}
		p.Print(root, render.RecurseFull)
		return nil
	})
}
