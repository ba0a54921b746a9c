package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ghettovoice/che"
	"github.com/ghettovoice/che/dict"
	"github.com/ghettovoice/che/inspect"
	"github.com/ghettovoice/che/internal/log"
)

var completer = readline.NewPrefixCompleter(
	readline.PcItem(".help"),
	readline.PcItem(".exit"),
	readline.PcItem("add"),
	readline.PcItem("list"),
	readline.PcItem("clear"),
	readline.PcItem("encode"),
	readline.PcItem("decode"),
	readline.PcItem("inspect"),
)

const replHelp = `Commands:
  add Name: value   append a header to the working list, "#<id>" names are IDs
  list              print the working list
  clear             empty the working list
  encode            encode the working list
  decode STRING     decode STRING and make it the working list
  inspect STRING    trace decoding of a CHE-v2 STRING
  .help             show this help
  .exit             leave the session
`

var errExit = errors.New("exit")

// session is the state of an interactive session.
type session struct {
	cfg  *config
	out  io.Writer
	log  *slog.Logger
	list che.List
}

// exec runs a single command line.
// It returns errExit when the session should end.
func (s *session) exec(line string) error {
	// Encoded strings may end with spaces, only the left side is trimmed.
	line = strings.TrimLeft(line, " \t")
	if strings.TrimSpace(line) == "" {
		return nil
	}
	cmd, arg, _ := strings.Cut(line, " ")
	cmd = strings.TrimSpace(cmd)
	arg = strings.TrimLeft(arg, " ")
	switch strings.ToLower(cmd) {
	case ".help":
		fmt.Fprint(s.out, replHelp)
	case ".exit":
		return errExit
	case "add":
		list, err := che.ParseLines(arg)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			return errors.New("usage: add Name: value")
		}
		s.list = append(s.list, list...)
	case "list":
		for i, e := range s.list {
			fmt.Fprintf(s.out, "%3d  %s\n", i, e)
		}
	case "clear":
		s.list = nil
	case "encode":
		list := s.list
		if s.cfg.compact {
			list = dict.CompactFor(s.cfg.format, list, s.cfg.dict)
		}
		data, err := s.cfg.format.Encode(list)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s\n", data)
	case "decode":
		list, err := s.cfg.format.Decode([]byte(arg))
		if err != nil {
			return err
		}
		s.list = list
		s.list.RenderTo(s.out, &che.RenderOptions{Names: dict.Resolver(s.cfg.dict)}) //nolint:errcheck
	case "inspect":
		r, err := inspect.Trace([]byte(arg))
		r.RenderTo(s.out) //nolint:errcheck
		return err
	default:
		return fmt.Errorf("unknown command %q, try .help", cmd)
	}
	return nil
}

func cmdREPL(e *env, args []string) error {
	cfg, err := newFlagSet(e, "repl", optFormat|optDict|optCompact).parse(e, args)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "che> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".che_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer,
		Stdout:          e.stdout,
		Stderr:          e.stderr,
	})
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(e.stdout, "che %s session, enter .help for usage hints.\n", cfg.format.Name())
	s := &session{cfg: cfg, out: rl.Stdout(), log: e.log}
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		if err := s.exec(line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			s.log.Debug("command failed",
				slog.String("line", line),
				slog.Any("list", log.FmtValue(s.list, false)),
				slog.Any("error", err),
			)
			fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
		}
	}
}
