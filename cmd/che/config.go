package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ghettovoice/che"
	"github.com/ghettovoice/che/dict"
)

// config is the resolved command configuration.
type config struct {
	format  che.Format
	dict    *dict.Table
	compact bool
	expand  bool
	raw     bool
}

type flagSet struct {
	*flag.FlagSet
	format  *string
	dict    *string
	compact *bool
	expand  *bool
	raw     *bool
}

type flagOpt int

const (
	optFormat flagOpt = 1 << iota
	optDict
	optCompact
	optExpand
	optRaw
)

func newFlagSet(e *env, name string, opts flagOpt) *flagSet {
	fs := &flagSet{FlagSet: flag.NewFlagSet("che "+name, flag.ContinueOnError)}
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: che %s [flags]\n", name)
		fs.PrintDefaults()
	}
	if opts&optFormat != 0 {
		fs.format = fs.String("format", envOr(e.getenv, "CHE_FORMAT", "v2"), "wire format: "+formatNames())
	}
	if opts&optDict != 0 {
		fs.dict = fs.String("dict", e.getenv("CHE_DICT"), "YAML dictionary file, the standard dictionary if empty")
	}
	if opts&optCompact != 0 {
		fs.compact = fs.Bool("compact", false, "replace names known to the dictionary with IDs")
	}
	if opts&optExpand != 0 {
		fs.expand = fs.Bool("expand", false, "replace IDs with dictionary names")
	}
	if opts&optRaw != 0 {
		fs.raw = fs.Bool("raw", false, "keep a trailing newline of the input")
	}
	return fs
}

func formatNames() string {
	var names []string
	for _, f := range che.Formats() {
		names = append(names, f.Name())
	}
	return strings.Join(names, ", ")
}

func (fs *flagSet) parse(e *env, args []string) (*config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %q\n", fs.Args())
		fs.Usage()
		return nil, errUsage
	}

	cfg := &config{format: che.V2}
	if fs.format != nil {
		f, ok := che.FormatByName(*fs.format)
		if !ok {
			return nil, fmt.Errorf("unknown format %q, want one of %s", *fs.format, formatNames())
		}
		cfg.format = f
	}
	if fs.dict != nil {
		if *fs.dict == "" {
			cfg.dict = dict.Standard()
		} else {
			d, err := dict.LoadFile(*fs.dict, e.log)
			if err != nil {
				return nil, err
			}
			cfg.dict = d
		}
	}
	if fs.compact != nil {
		cfg.compact = *fs.compact
	}
	if fs.expand != nil {
		cfg.expand = *fs.expand
	}
	if fs.raw != nil {
		cfg.raw = *fs.raw
	}
	e.log.Debug("configuration resolved",
		slog.String("format", cfg.format.Name()),
		slog.Bool("compact", cfg.compact),
		slog.Bool("expand", cfg.expand),
	)
	return cfg, nil
}
