package dict_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/che/dict"
	"github.com/ghettovoice/che/internal/errorutil"
	"github.com/ghettovoice/che/internal/log"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    []dict.Entry
		wantErr error
	}{
		{"empty document", "", []dict.Entry{}, nil},
		{
			"entries",
			"headers:\n  - name: via\n    id: 1\n  - name: Host\n    id: 0\n",
			[]dict.Entry{{Name: "Host", ID: 0}, {Name: "Via", ID: 1}},
			nil,
		},
		{"duplicate", "headers:\n  - {name: Host, id: 0}\n  - {name: host, id: 1}\n", nil, dict.ErrDuplicate},
		{"out of range", "headers:\n  - {name: Host, id: 9000}\n", nil, dict.ErrIDOutOfRange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			tbl, err := dict.Load(strings.NewReader(c.in))
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("dict.Load() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if c.wantErr != nil {
				return
			}
			if diff := cmp.Diff(tbl.Entries(), c.want, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("dict.Load().Entries() diff (-got +want):\n%v", diff)
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"headers: 42\n",
		"headers:\n  - {name: Host, id: 0, extra: 1}\n",
		"other: []\n",
	} {
		if _, err := dict.Load(strings.NewReader(in)); err == nil {
			t.Errorf("dict.Load(%q) error = nil, want error", in)
		}
	}

	_, err := dict.Load(nil)
	if diff := cmp.Diff(err, errorutil.ErrInvalidArgument, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("dict.Load(nil) error = %v, want %v", err, errorutil.ErrInvalidArgument)
	}
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := dict.Save(&buf, dict.Standard()); err != nil {
		t.Fatalf("dict.Save() error = %v, want nil", err)
	}
	tbl, err := dict.Load(&buf)
	if err != nil {
		t.Fatalf("dict.Load() error = %v, want nil", err)
	}
	if got, want := tbl.Fingerprint(), dict.Standard().Fingerprint(); got != want {
		t.Errorf("loaded fingerprint = %x, want %x", got, want)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dict.yaml")
	if err := os.WriteFile(path, []byte("headers:\n  - {name: X-Trace, id: 3}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tbl, err := dict.LoadFile(path, log.Noop)
	if err != nil {
		t.Fatalf("dict.LoadFile() error = %v, want nil", err)
	}
	if id, ok := tbl.ID("x-trace"); !ok || id != 3 {
		t.Errorf("tbl.ID(x-trace) = %d, %v, want 3, true", id, ok)
	}

	_, err = dict.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("dict.LoadFile(missing) error = %v, want not exist", err)
	}
}
