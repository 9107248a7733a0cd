package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt"
	"github.com/nbt-format/go-nbt/format"
	"github.com/nbt-format/go-nbt/tag"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachFile(cfg.MainConfig, cc, args, func(root *tag.Tag, info *nbt.FileInfo) error {
		opts := cfg.encodeOpts(info)
		if cfg.JSON {
			opts = append(opts, nbt.WithFormat(format.JSONFormat))
		} else {
			opts = append(opts, nbt.WithFormat(format.NBTFormat))
		}
		if err := nbt.Encode(cc.Out, root, opts...); err != nil {
			return fmt.Errorf("error encoding: %w", err)
		}
		return nil
	})
}
