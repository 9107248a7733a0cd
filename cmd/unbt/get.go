package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt"
	"github.com/nbt-format/go-nbt/edit"
	"github.com/nbt-format/go-nbt/render"
	"github.com/nbt-format/go-nbt/tag"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a tag path", cli.ErrUsage)
	}
	pathText := args[0]
	if f, ok := cc.Out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		color.NoColor = true
	}
	p := render.NewPrinter(cc.Out, render.WithInference(!cfg.Raw))
	return eachFile(cfg.MainConfig, cc, args[1:], func(root *tag.Tag, _ *nbt.FileInfo) error {
		leaf, err := edit.NewEditor(root).Get(pathText)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", pathText, err)
		}
		p.Print(leaf, render.RecurseFull)
		return nil
	})
}
