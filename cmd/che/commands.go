package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/klauspost/compress/zstd"

	"github.com/ghettovoice/che"
	"github.com/ghettovoice/che/dict"
	"github.com/ghettovoice/che/inspect"
	"github.com/ghettovoice/che/internal/log"
)

func readInput(e *env, raw bool) ([]byte, error) {
	data, err := io.ReadAll(e.stdin)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if !raw {
		data = bytes.TrimSuffix(data, []byte("\n"))
		data = bytes.TrimSuffix(data, []byte("\r"))
	}
	return data, nil
}

func readList(e *env, cfg *config) (che.List, error) {
	data, err := readInput(e, true)
	if err != nil {
		return nil, err
	}
	list, err := che.ParseLines(data)
	if err != nil {
		return nil, err
	}
	if cfg.compact {
		list = dict.CompactFor(cfg.format, list, cfg.dict)
	}
	e.log.Debug("input parsed", slog.Any("list", list))
	return list, nil
}

func cmdEncode(e *env, args []string) error {
	cfg, err := newFlagSet(e, "encode", optFormat|optDict|optCompact).parse(e, args)
	if err != nil {
		return err
	}
	list, err := readList(e, cfg)
	if err != nil {
		return err
	}
	data, err := cfg.format.Encode(list)
	if err != nil {
		return err
	}
	e.log.Debug("list encoded", slog.Any("data", log.StringValue(data)), slog.Int("bytes", len(data)))
	_, err = e.stdout.Write(data)
	return err
}

func cmdDecode(e *env, args []string) error {
	cfg, err := newFlagSet(e, "decode", optFormat|optDict|optExpand|optRaw).parse(e, args)
	if err != nil {
		return err
	}
	data, err := readInput(e, cfg.raw)
	if err != nil {
		return err
	}
	e.log.Debug("decoding input", slog.Any("data", log.StringValue(data)))
	list, err := cfg.format.Decode(data)
	if err != nil {
		return err
	}
	if cfg.expand {
		if list, err = dict.Expand(list, cfg.dict); err != nil {
			return err
		}
	}
	e.log.Debug("input decoded", slog.Any("list", list))
	_, err = list.RenderTo(e.stdout, nil)
	return err
}

func cmdInspect(e *env, args []string) error {
	fs := newFlagSet(e, "inspect", optRaw)
	graph := fs.Bool("graph", false, "print the decode state machine in DOT format and exit")
	cfg, err := fs.parse(e, args)
	if err != nil {
		return err
	}
	if *graph {
		_, err = fmt.Fprintln(e.stdout, inspect.Graph())
		return err
	}
	data, err := readInput(e, cfg.raw)
	if err != nil {
		return err
	}
	r, traceErr := inspect.Trace(data)
	if _, err := r.RenderTo(e.stdout); err != nil {
		return err
	}
	return traceErr
}

func cmdLimits(e *env, args []string) error {
	cfg, err := newFlagSet(e, "limits", optFormat).parse(e, args)
	if err != nil {
		return err
	}
	lim := cfg.format.Limits()
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "format\t%s\n", cfg.format.Name())
	fmt.Fprintf(tw, "byte range\t0x%02X..0x%02X\n", lim.MinByte, lim.MaxByte)
	fmt.Fprintf(tw, "max name length\t%d\n", lim.MaxNameLen)
	fmt.Fprintf(tw, "max id\t%d\n", lim.MaxID)
	fmt.Fprintf(tw, "max value length\t%d\n", lim.MaxValueLen)
	for i, n := range lim.ValueLenTiers {
		fmt.Fprintf(tw, "length bytes %d\tup to %d\n", i+1, n)
	}
	return tw.Flush()
}

type sizeRow struct {
	name string
	size int
}

func cmdSize(e *env, args []string) error {
	cfg, err := newFlagSet(e, "size", optFormat|optDict).parse(e, args)
	if err != nil {
		return err
	}
	text, err := readInput(e, true)
	if err != nil {
		return err
	}
	list, err := che.ParseLines(text)
	if err != nil {
		return err
	}
	plain, err := cfg.format.Encode(list)
	if err != nil {
		return err
	}
	compact, err := cfg.format.Encode(dict.CompactFor(cfg.format, list, cfg.dict))
	if err != nil {
		return err
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return err
	}
	defer enc.Close()

	rows := []sizeRow{
		{"text", len(text)},
		{"text+zstd", len(enc.EncodeAll(text, nil))},
		{cfg.format.Name(), len(plain)},
		{cfg.format.Name() + "+dict", len(compact)},
		{cfg.format.Name() + "+dict+zstd", len(enc.EncodeAll(compact, nil))},
	}
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "encoding\tbytes\tratio\t\n")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", r.name, r.size, ratio(r.size, len(text)))
	}
	return tw.Flush()
}

func ratio(n, base int) string {
	if base == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", float64(n)/float64(base))
}
