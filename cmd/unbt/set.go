package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt"
	"github.com/nbt-format/go-nbt/edit"
	"github.com/nbt-format/go-nbt/tag"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a tag path and a value", cli.ErrUsage)
	}
	pathText, value := args[0], args[1]
	opts := edit.SetOptions{NoOverwrite: cfg.NoOverwrite, Shift: cfg.Shift}
	if cfg.Type != "" {
		t, err := tag.ParseType(cfg.Type)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		opts.Type = t
	}
	return eachFile(cfg.MainConfig, cc, args[2:], func(root *tag.Tag, info *nbt.FileInfo) error {
		ed := edit.NewEditor(root)
		if err := ed.Set(pathText, value, opts); err != nil {
			return fmt.Errorf("error setting %s: %w", pathText, err)
		}
		if err := nbt.Encode(cc.Out, ed.Root(), cfg.encodeOpts(info)...); err != nil {
			return fmt.Errorf("error encoding: %w", err)
		}
		return nil
	})
}

func remove(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rm requires a tag path", cli.ErrUsage)
	}
	pathText := args[0]
	return eachFile(cfg.MainConfig, cc, args[1:], func(root *tag.Tag, info *nbt.FileInfo) error {
		ed := edit.NewEditor(root)
		if err := ed.Remove(pathText, cfg.Recursive); err != nil {
			return fmt.Errorf("error removing %s: %w", pathText, err)
		}
		if ed.Root() == nil {
			return fmt.Errorf("rm %s deleted the root tag, refusing to write an empty file", pathText)
		}
		if err := nbt.Encode(cc.Out, ed.Root(), cfg.encodeOpts(info)...); err != nil {
			return fmt.Errorf("error encoding: %w", err)
		}
		return nil
	})
}
