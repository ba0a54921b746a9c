// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/che"
	"github.com/ghettovoice/che/internal/constraints"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(n che.Name) slog.Value {
		return slog.StringValue(nameString(n))
	}),
	slogformatter.FormatByType(func(e che.Entry) slog.Value {
		return slog.GroupValue(
			slog.String("name", nameString(e.Name)),
			slog.Int("value_len", len(e.Value)),
		)
	}),
	slogformatter.FormatByType(func(l che.List) slog.Value {
		var size int
		for _, e := range l {
			size += len(e.Value)
		}
		return slog.GroupValue(
			slog.Int("entries", len(l)),
			slog.Int("value_bytes", size),
		)
	}),
)

func nameString(n che.Name) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}

// Options configures loggers built with [New].
type Options struct {
	Level slog.Leveler
	// Dev switches to the developer friendly handler.
	Dev bool
}

// New creates a logger writing to w.
func New(w io.Writer, opts *Options) *slog.Logger {
	if opts == nil {
		opts = &Options{}
	}
	lvl := opts.Level
	if lvl == nil {
		lvl = slog.LevelInfo
	}
	if opts.Dev {
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     lvl,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	}
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
