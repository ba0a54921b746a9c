package dict

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/che/internal/errorutil"
)

type document struct {
	Headers []Entry `yaml:"headers"`
}

// Load reads a YAML dictionary from r.
func Load(r io.Reader) (*Table, error) {
	if r == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil reader"))
	}

	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF { //nolint:errorlint
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(NewTable(doc.Headers...))
}

// LoadFile reads a YAML dictionary from the file.
func LoadFile(path string, logger *slog.Logger) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("load %s: %w", path, err))
	}
	if logger != nil {
		logger.Debug("dictionary loaded",
			slog.String("path", path),
			slog.Int("entries", t.Len()),
			slog.String("fingerprint", FormatFingerprint(t.Fingerprint())),
		)
	}
	return t, nil
}

// Save writes the table as a YAML dictionary.
func Save(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Headers: t.Entries()}); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(enc.Close())
}
