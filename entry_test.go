package che_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/che"
)

func TestParseName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want che.Name
	}{
		{"Host", che.Literal("Host")},
		{"#42", che.ID(42)},
		{"#0", che.ID(0)},
		{"#", che.Literal("#")},
		{"#x1", che.Literal("#x1")},
		{"#-1", che.Literal("#-1")},
		{"#99999999999", che.Literal("#99999999999")},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got := che.ParseName(c.in)
			if got != c.want {
				t.Errorf("che.ParseName(%q) = %#v, want %#v", c.in, got, c.want)
			}
			if got.String() != c.in {
				t.Errorf("che.ParseName(%q).String() = %q, want %q", c.in, got.String(), c.in)
			}
		})
	}
}

func TestEntry_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b che.Entry
		want bool
	}{
		{"zero", che.Entry{}, che.Entry{}, true},
		{"same literal", che.Entry{che.Literal("a"), "1"}, che.Entry{che.Literal("a"), "1"}, true},
		{"same id", che.Entry{che.ID(1), "1"}, che.Entry{che.ID(1), "1"}, true},
		{"name case", che.Entry{che.Literal("a"), "1"}, che.Entry{che.Literal("A"), "1"}, false},
		{"variant", che.Entry{che.Literal("#1"), "1"}, che.Entry{che.ID(1), "1"}, false},
		{"value", che.Entry{che.ID(1), "1"}, che.Entry{che.ID(1), "2"}, false},
		{"nil name", che.Entry{nil, "1"}, che.Entry{che.ID(0), "1"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.a.Equal(c.b); got != c.want {
				t.Errorf("a.Equal(b) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestList_Render(t *testing.T) {
	t.Parallel()

	names := func(id che.ID) (string, bool) {
		if id == 3 {
			return "Accept", true
		}
		return "", false
	}
	list := che.List{{che.Literal("Host"), "a"}, {che.ID(3), "b"}, {che.ID(4), ""}}

	cases := []struct {
		name string
		list che.List
		opts *che.RenderOptions
		want string
	}{
		{"nil", nil, nil, ""},
		{"no options", list, nil, "Host: a\n#3: b\n#4: \n"},
		{"resolved names", list, &che.RenderOptions{Names: names}, "Host: a\nAccept: b\n#4: \n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.list.Render(c.opts); got != c.want {
				t.Errorf("list.Render(opts) = %q, want %q", got, c.want)
			}

			var sb strings.Builder
			n, err := c.list.RenderTo(&sb, c.opts)
			if err != nil {
				t.Fatalf("list.RenderTo(w, opts) error = %v, want nil", err)
			}
			if n != len(c.want) || sb.String() != c.want {
				t.Errorf("list.RenderTo(w, opts) = %d, %q, want %d, %q", n, sb.String(), len(c.want), c.want)
			}
		})
	}
}

func TestList_Format(t *testing.T) {
	t.Parallel()

	list := che.List{{che.Literal("Host"), "a"}, {che.ID(3), "b"}}

	cases := []struct {
		format string
		want   string
	}{
		{"%s", "Host: a\n#3: b\n"},
		{"%v", "Host: a\n#3: b\n"},
		{"%q", `"Host: a\n#3: b\n"`},
		{"%+v", `[che.Literal("Host")="a" che.ID("#3")="b"]`},
	}

	for _, c := range cases {
		t.Run(c.format, func(t *testing.T) {
			t.Parallel()

			if got := fmt.Sprintf(c.format, list); got != c.want {
				t.Errorf("fmt.Sprintf(%q, list) = %q, want %q", c.format, got, c.want)
			}
		})
	}
}

func TestList_Values(t *testing.T) {
	t.Parallel()

	list := che.List{
		{che.Literal("Via"), "1"},
		{che.ID(5), "x"},
		{che.Literal("Via"), "2"},
		{che.Literal("via"), "3"},
	}
	if diff := cmp.Diff(list.Values(che.Literal("Via")), []string{"1", "2"}); diff != "" {
		t.Errorf("list.Values(Via) diff (-got +want):\n%v", diff)
	}
	if diff := cmp.Diff(list.Values(che.ID(5)), []string{"x"}); diff != "" {
		t.Errorf("list.Values(#5) diff (-got +want):\n%v", diff)
	}
	if got := list.Values(che.ID(6)); got != nil {
		t.Errorf("list.Values(#6) = %q, want nil", got)
	}

	clone := list.Clone()
	clone[0].Value = "changed"
	if list[0].Value != "1" {
		t.Errorf("list.Clone() shares entries with the original")
	}
	if list.Equal(clone) {
		t.Errorf("list.Equal(clone) = true, want false")
	}
}

func TestParseLines(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		text    string
		want    che.List
		wantErr error
	}{
		{"empty", "", nil, nil},
		{"blank lines", "\n \r\n\t\n", nil, nil},
		{
			"mixed",
			"Host: example.com\r\n\n#42: 69\nX-Empty:\nVia:  a:b:c \n",
			che.List{
				{che.Literal("Host"), "example.com"},
				{che.ID(42), "69"},
				{che.Literal("X-Empty"), ""},
				{che.Literal("Via"), "a:b:c "},
			},
			nil,
		},
		{"no colon", "Host: a\nbroken line\n", nil, che.ErrInvalidLine},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := che.ParseLines(c.text)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("che.ParseLines(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.text, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("che.ParseLines(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.text, got, c.want, diff)
			}
		})
	}
}

func TestParseLines_RenderRoundTrip(t *testing.T) {
	t.Parallel()

	list := che.List{{che.Literal("Host"), "example.com"}, {che.ID(9), "v"}, {che.Literal("X"), ""}}
	got, err := che.ParseLines([]byte(list.Render(nil)))
	if err != nil {
		t.Fatalf("che.ParseLines() error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, list); diff != "" {
		t.Errorf("che.ParseLines(list.Render()) = %+v, want %+v\ndiff (-got +want):\n%v", got, list, diff)
	}
}
