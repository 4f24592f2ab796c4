package value_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httphdr/value"
)

func TestParseMediaType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    value.MediaType
		wantErr error
	}{
		{"empty", "", value.MediaType{}, value.ErrMalformed},
		{"no slash", "text", value.MediaType{}, value.ErrMalformed},
		{"bad type", "te xt/plain", value.MediaType{}, value.ErrMalformed},
		{"param without value", "text/plain; level=1; broken", value.MediaType{}, value.ErrMalformed},
		{"text after type", "text/plain junk; a=1", value.MediaType{}, value.ErrMalformed},
		{"simple", "text/plain", value.MediaType{Type: "text", Subtype: "plain"}, nil},
		{
			"params",
			` Text/HTML ; Charset="UTF-8";; level=1 `,
			value.MediaType{
				Type:    "Text",
				Subtype: "HTML",
				Params:  value.Params{"charset": {"UTF-8"}, "level": {"1"}},
			},
			nil,
		},
		{
			"repeated param",
			"text/plain; a=1; A=2",
			value.MediaType{
				Type:    "text",
				Subtype: "plain",
				Params:  value.Params{"a": {"1", "2"}},
			},
			nil,
		},
		{
			"quoted separators",
			`test/test; param1="123,456;789"; q=0.8`,
			value.MediaType{
				Type:    "test",
				Subtype: "test",
				Params:  value.Params{"param1": {"123,456;789"}, "q": {"0.8"}},
			},
			nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := value.ParseMediaType(c.in)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Errorf("value.ParseMediaType(%q) error = %v, want %v", c.in, err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("value.ParseMediaType(%q) error = %v, want nil", c.in, err)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("value.ParseMediaType(%q) = unexpected result (-got +want):\n%v", c.in, diff)
			}
		})
	}
}

func TestMediaType_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		mt   value.MediaType
		want string
	}{
		{"zero", value.MediaType{}, "/"},
		{"simple", value.MediaType{Type: "text", Subtype: "plain"}, "text/plain"},
		{
			"params sorted and quoted",
			value.MediaType{
				Type:    "text",
				Subtype: "plain",
				Params:  make(value.Params).Set("z", "1").Set("charset", "utf-8").Set("title", "a b"),
			},
			`text/plain;charset=utf-8;title="a b";z=1`,
		},
		{
			"repeated param",
			value.MustParseMediaType("text/plain; a=1; a=2"),
			"text/plain;a=1;a=2",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.mt.String(); got != c.want {
				t.Errorf("mt.String() = %q, want %q", got, c.want)
			}
			if got := fmt.Sprintf("%v", c.mt); got != c.want {
				t.Errorf("fmt.Sprintf(\"%%v\", mt) = %q, want %q", got, c.want)
			}
		})
	}
}

func TestMediaType_Equal(t *testing.T) {
	t.Parallel()

	base := value.MustParseMediaType("text/plain; charset=utf-8")

	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"nil", nil, false},
		{"nil ptr", (*value.MediaType)(nil), false},
		{"string", "text/plain", false},
		{"same", value.MustParseMediaType("TEXT/Plain;charset=utf-8"), true},
		{"same ptr", ptr(value.MustParseMediaType("text/plain;charset=utf-8")), true},
		{"other charset", value.MustParseMediaType("text/plain;charset=cp1251"), false},
		{"no params", value.MustParseMediaType("text/plain"), false},
		{"other subtype", value.MustParseMediaType("text/html;charset=utf-8"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := base.Equal(c.val); got != c.want {
				t.Errorf("mt.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}

	if !base.SameType(value.MustParseMediaType("text/PLAIN")) {
		t.Errorf("mt.SameType(text/PLAIN) = false, want true")
	}
}

func TestMediaType_Charset(t *testing.T) {
	t.Parallel()

	if got, want := value.MustParseMediaType("text/plain").CharsetOr("iso-8859-1"), "iso-8859-1"; got != want {
		t.Errorf("mt.CharsetOr() = %q, want %q", got, want)
	}
	if got, want := value.MustParseMediaType(`text/plain; charset=""`).CharsetOr("iso-8859-1"), "iso-8859-1"; got != want {
		t.Errorf("mt.CharsetOr() = %q, want %q", got, want)
	}
	if got, want := value.MustParseMediaType("text/plain; CHARSET=utf-8").CharsetOr("iso-8859-1"), "utf-8"; got != want {
		t.Errorf("mt.CharsetOr() = %q, want %q", got, want)
	}
}

func TestMediaType_With(t *testing.T) {
	t.Parallel()

	orig := value.MustParseMediaType("text/plain; format=flowed")
	mt := orig.With("charset", "utf-8", "dangling")

	if got, want := mt.String(), "text/plain;charset=utf-8;format=flowed"; got != want {
		t.Errorf("mt.String() = %q, want %q", got, want)
	}
	if orig.Params.Has("charset") {
		t.Errorf("orig.Params.Has(charset) = true, want false")
	}
}

func TestMediaTypeListCodec(t *testing.T) {
	t.Parallel()

	var codec value.MediaTypeListCodec

	cases := []struct {
		name string
		in   string
		want value.MediaTypeList
	}{
		{"empty", "", value.MediaTypeList{}},
		{
			"one",
			`test/test; param1="123,456"; q=0.8`,
			value.MediaTypeList{
				value.MustParseMediaType(`test/test; param1="123,456"; q=0.8`),
			},
		},
		{
			"two",
			`test/test; param1="123,456"; q=0.8, application/binary; type="aasds"; q=0.1`,
			value.MediaTypeList{
				value.MustParseMediaType(`test/test; param1="123,456"; q=0.8`),
				value.MustParseMediaType(`application/binary; type="aasds"; q=0.1`),
			},
		},
		{
			"three",
			`test/test; param1="123,456"; q=0.8, application/binary; type="aasds"; q=0.1, application/binary2`,
			value.MediaTypeList{
				value.MustParseMediaType(`test/test; param1="123,456"; q=0.8`),
				value.MustParseMediaType(`application/binary; type="aasds"; q=0.1`),
				value.MustParseMediaType("application/binary2"),
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := codec.Parse(c.in)
			if err != nil {
				t.Fatalf("codec.Parse(%q) error = %v, want nil", c.in, err)
			}
			if !got.Equal(c.want) {
				t.Errorf("codec.Parse(%q) = %v, want %v", c.in, got, c.want)
			}

			again, err := codec.Parse(codec.Render(got))
			if err != nil {
				t.Fatalf("codec.Parse(codec.Render(v)) error = %v, want nil", err)
			}
			if !again.Equal(got) {
				t.Errorf("codec.Parse(codec.Render(v)) = %v, want %v", again, got)
			}
		})
	}

	if _, err := codec.Parse("text/plain, broken"); !errors.Is(err, value.ErrMalformed) {
		t.Errorf("codec.Parse(broken) error = %v, want %v", err, value.ErrMalformed)
	}
}

func TestMediaTypeList_Preferred(t *testing.T) {
	t.Parallel()

	l, err := value.MediaTypeListCodec{}.Parse("text/html;q=0.5, application/json, text/plain;q=0.9")
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	mt, ok := l.Preferred()
	if !ok || mt.Essence() != "application/json" {
		t.Errorf("l.Preferred() = (%v, %v), want (application/json, true)", mt, ok)
	}
	if _, ok := (value.MediaTypeList{}).Preferred(); ok {
		t.Errorf("empty.Preferred() ok = true, want false")
	}
}

func ptr[T any](v T) *T { return &v }
