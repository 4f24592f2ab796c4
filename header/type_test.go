package header_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/testutil/codecmock"
	"github.com/ghettovoice/httphdr/value"
)

func TestDefineType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		hdrName  string
		codec    header.Codec[string]
		wantName header.Name
		wantErr  error
	}{
		{"canonical", "X-Request-Id", value.StringCodec{}, "X-Request-Id", nil},
		{"lower case", "content-type", value.StringCodec{}, "Content-Type", nil},
		{"special spelling", "etag", value.StringCodec{}, "ETag", nil},
		{"spaces trimmed", " Host ", value.StringCodec{}, "Host", nil},
		{"empty", "", value.StringCodec{}, "", header.ErrInvalidName},
		{"invalid char", "X Bad", value.StringCodec{}, "", header.ErrInvalidName},
		{"nil codec", "X-Ok", nil, "", header.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			typ, err := header.DefineType(c.hdrName, c.codec)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("header.DefineType(%q, codec) error = %v, want %v\ndiff (-got +want):\n%v",
					c.hdrName, err, c.wantErr, diff,
				)
			}
			if err != nil {
				return
			}
			if got := typ.Name(); got != c.wantName {
				t.Errorf("typ.Name() = %q, want %q", got, c.wantName)
			}
			if got, want := typ.ValueType(), reflect.TypeFor[string](); got != want {
				t.Errorf("typ.ValueType() = %v, want %v", got, want)
			}
		})
	}
}

func TestNewType_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("header.NewType(\"bad name\", codec) did not panic")
		}
	}()
	header.NewType[string]("bad name", value.StringCodec{})
}

func TestType_FromString(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	ctrl := gomock.NewController(t)
	codec := codecmock.NewMockCodec[int](ctrl)
	codec.EXPECT().Parse("42").Return(42, nil).Times(1)
	codec.EXPECT().Parse("bad").Return(0, errBoom).Times(1)
	codec.EXPECT().Render(42).Return("42").AnyTimes()

	typ := header.NewType[int]("X-Answer", codec)

	h, err := typ.FromString("42")
	if err != nil {
		t.Fatalf("typ.FromString(\"42\") error = %v, want nil", err)
	}
	if got := h.Value(); got != 42 {
		t.Errorf("h.Value() = %d, want 42", got)
	}
	if got := h.RenderValue(); got != "42" {
		t.Errorf("h.RenderValue() = %q, want \"42\"", got)
	}
	if got := h.Render(); got != "X-Answer: 42" {
		t.Errorf("h.Render() = %q, want \"X-Answer: 42\"", got)
	}

	_, err = typ.FromString("bad")
	if !errors.Is(err, header.ErrMalformedValue) {
		t.Errorf("typ.FromString(\"bad\") error = %v, want %v", err, header.ErrMalformedValue)
	}
	if !errors.Is(err, errBoom) {
		t.Errorf("typ.FromString(\"bad\") error = %v, want wrapped %v", err, errBoom)
	}
}

func TestType_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		typ  *header.Type[string]
		val  any
		want bool
	}{
		{"nil", xA, nil, false},
		{"same", xA, xA, true},
		{"other name", xA, xB, false},
		{"same name other value type", xB, xBRaw, true},
		{"bare name", xA, header.Name("x-a"), true},
		{"string", xA, "X-A", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.typ.Equal(c.val); got != c.want {
				t.Errorf("typ.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestField_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.Header
		val  any
		want bool
	}{
		{"nil", xA.Header("1"), nil, false},
		{"nil field", xA.Header("1"), (*header.Field[string])(nil), false},
		{"equal", xA.Header("1"), xA.Header("1"), true},
		{"other value", xA.Header("1"), xA.Header("2"), false},
		{"other type", xA.Header("1"), xB.Header("1"), false},
		{"same name", xB.Header("1"), xBRaw.Header("1"), true},
		{"other value type", xNum.Header(1), header.NewType[string]("X-Num", value.StringCodec{}).Header("1"), false},
		{
			"value with Equal",
			header.ContentType.Header(value.MustParseMediaType("Text/HTML; charset=utf-8")),
			header.ContentType.Header(value.MustParseMediaType("text/html;charset=utf-8")),
			true,
		},
		{
			"comparable value",
			header.Date.Header(time0),
			header.Date.Header(time0),
			true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Equal(c.val); got != c.want {
				t.Errorf("hdr.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestField_Format(t *testing.T) {
	t.Parallel()

	h := header.ContentLength.Header(10)

	cases := []struct {
		format string
		want   string
	}{
		{"%s", "10"},
		{"%+s", "Content-Length: 10"},
		{"%q", `"10"`},
		{"%+q", `"Content-Length: 10"`},
		{"%v", "Content-Length: 10"},
		{"%+v", "{Name:Content-Length Value:10}"},
	}

	for _, c := range cases {
		t.Run(c.format, func(t *testing.T) {
			t.Parallel()

			if got := fmt.Sprintf(c.format, h); got != c.want {
				t.Errorf("fmt.Sprintf(%q, h) = %q, want %q", c.format, got, c.want)
			}
		})
	}
}

func TestCodecFuncs(t *testing.T) {
	t.Parallel()

	typ := header.NewType[bool]("X-Flag", header.CodecFuncs[bool]{
		ParseFunc: func(s string) (bool, error) {
			switch s {
			case "?1":
				return true, nil
			case "?0":
				return false, nil
			}
			return false, errors.New("not a boolean")
		},
		RenderFunc: func(v bool) string {
			if v {
				return "?1"
			}
			return "?0"
		},
	})

	h, err := typ.FromString("?1")
	if err != nil {
		t.Fatalf("typ.FromString(\"?1\") error = %v, want nil", err)
	}
	if !h.Value() {
		t.Errorf("h.Value() = false, want true")
	}
	if got := typ.Header(false).RenderValue(); got != "?0" {
		t.Errorf("typ.Header(false).RenderValue() = %q, want \"?0\"", got)
	}
	if _, err := typ.FromString("yes"); !errors.Is(err, header.ErrMalformedValue) {
		t.Errorf("typ.FromString(\"yes\") error = %v, want %v", err, header.ErrMalformedValue)
	}
}

func TestCanonicName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want header.Name
	}{
		{"content-length", "Content-Length"},
		{"CONTENT-LENGTH", "Content-Length"},
		{"www-authenticate", "WWW-Authenticate"},
		{"content-md5", "Content-MD5"},
		{"dnt", "DNT"},
		{"x-custom", "X-Custom"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := header.CanonicName(c.in); got != c.want {
				t.Errorf("header.CanonicName(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}

	if !header.Name("etag").Equal(header.Name("ETAG")) {
		t.Errorf("Name(\"etag\").Equal(Name(\"ETAG\")) = false, want true")
	}
	if got := header.Name("Content-Type").Lower(); got != "content-type" {
		t.Errorf("Name(\"Content-Type\").Lower() = %q, want \"content-type\"", got)
	}
}
