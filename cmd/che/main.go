// Command che encodes, decodes and inspects Compact Header Encoding strings.
//
// Usage:
//
//	che [-log-level level] [-dev] <command> [flags]
//
// Commands read standard input and write standard output, see "che help".
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ghettovoice/che/internal/log"
)

const usageText = `che - Compact Header Encoding tool

Usage:
  che [-log-level level] [-dev] <command> [flags]

Commands:
  encode   [-format v2] [-dict file] [-compact]  encode "Name: value" lines from stdin
  decode   [-format v2] [-dict file] [-expand]   decode stdin into "Name: value" lines
  inspect                                        trace decoding of a CHE-v2 string
  limits   [-format v2]                          print format boundaries
  size     [-format v2] [-dict file]             compare text, CHE and zstd sizes
  repl     [-format v2] [-dict file]             interactive session
  help                                           show this help

Environment:
  CHE_FORMAT      default for -format
  CHE_DICT        default for -dict
  CHE_LOG_LEVEL   default for -log-level
`

// errUsage is returned for bad command lines, the usage was already printed.
var errUsage = errors.New("usage")

type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
	log    *slog.Logger
}

func main() {
	e := &env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
	}
	os.Exit(run(e, os.Args[1:]))
}

func run(e *env, args []string) int {
	fs := flag.NewFlagSet("che", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usageText) }
	lvlStr := fs.String("log-level", envOr(e.getenv, "CHE_LOG_LEVEL", "warn"), "log level: debug, info, warn, error")
	dev := fs.Bool("dev", false, "use the developer log handler")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*lvlStr)); err != nil {
		fmt.Fprintf(e.stderr, "invalid log level %q\n", *lvlStr)
		return 2
	}
	if e.log == nil {
		e.log = log.New(e.stderr, &log.Options{Level: lvl, Dev: *dev})
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	name, rest := fs.Arg(0), fs.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		if name == "help" {
			fmt.Fprint(e.stdout, usageText)
			return 0
		}
		fmt.Fprintf(e.stderr, "unknown command %q\n\n", name)
		fs.Usage()
		return 2
	}

	e.log.Debug("running command", slog.String("command", name), slog.Any("args", rest))
	if err := cmd(e, rest); err != nil {
		if errors.Is(err, errUsage) {
			return 2
		}
		e.log.Error("command failed", slog.String("command", name), slog.Any("error", err))
		fmt.Fprintf(e.stderr, "che %s: %v\n", name, err)
		return 1
	}
	return 0
}

var commands map[string]func(*env, []string) error

func init() {
	commands = map[string]func(*env, []string) error{
		"encode":  cmdEncode,
		"decode":  cmdDecode,
		"inspect": cmdInspect,
		"limits":  cmdLimits,
		"size":    cmdSize,
		"repl":    cmdREPL,
	}
}

func envOr(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}
