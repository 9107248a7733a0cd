package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/nbt-format/go-nbt"
	"github.com/nbt-format/go-nbt/tag"
)

func unbtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// eachFile runs fn on every named file, or on cc.In when none are named.
// "-" names stdin.
func eachFile(cfg *MainConfig, cc *cli.Context, args []string, fn func(*tag.Tag, *nbt.FileInfo) error) error {
	if len(args) == 0 {
		return loadReader(cfg, cc.In, fn)
	}
	for _, file := range args {
		if err := loadFile(cfg, cc, file, fn); err != nil {
			return err
		}
	}
	return nil
}

func loadFile(cfg *MainConfig, cc *cli.Context, file string, fn func(*tag.Tag, *nbt.FileInfo) error) error {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	if err := loadReader(cfg, r, fn); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func loadReader(cfg *MainConfig, r io.Reader, fn func(*tag.Tag, *nbt.FileInfo) error) error {
	root, info, err := nbt.Decode(r, cfg.decodeOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding: %w", err)
	}
	if info.DetectedCompression {
		cfg.log("compression autodetected as %s", info.Compression)
	}
	if info.DetectedEndianness {
		cfg.log("endianness autodetected as %s", info.Endianness)
	}
	if info.Format.IsJSON() {
		cfg.log("detected JSON file")
	}
	return fn(root, info)
}
