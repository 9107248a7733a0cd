package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt"
	"github.com/nbt-format/go-nbt/nbtjson"
	"github.com/nbt-format/go-nbt/snbt"
	"github.com/nbt-format/go-nbt/tag"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.Basic, cfg.Roundtrip, cfg.SNBT) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j -J -s", cli.ErrUsage)
	}
	return eachFile(cfg.MainConfig, cc, args, func(root *tag.Tag, _ *nbt.FileInfo) error {
		return dumpTag(cfg, cc.Out, root)
	})
}

func dumpTag(cfg *DumpConfig, w io.Writer, root *tag.Tag) error {
	switch {
	case cfg.Basic:
		if err := nbtjson.EncodeBasic(w, root); err != nil {
			return fmt.Errorf("error encoding basic JSON: %w", err)
		}
	case cfg.Roundtrip:
		if err := nbtjson.Encode(w, root); err != nil {
			return fmt.Errorf("error encoding roundtrip JSON: %w", err)
		}
	default:
		if _, err := io.WriteString(w, snbt.Encode(root)); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
