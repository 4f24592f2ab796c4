package util_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/httphdr/internal/util"
)

func TestStrings(t *testing.T) {
	t.Parallel()

	if got, want := util.LCase("Content-Type"), "content-type"; got != want {
		t.Errorf("util.LCase() = %q, want %q", got, want)
	}
	if got, want := util.TrimSP(" \tgzip \r\n"), "gzip"; got != want {
		t.Errorf("util.TrimSP() = %q, want %q", got, want)
	}
	if !util.EqFold("ETag", "etag") {
		t.Errorf("util.EqFold(ETag, etag) = false, want true")
	}
	if util.EqFold("ETag", "E-Tag") {
		t.Errorf("util.EqFold(ETag, E-Tag) = true, want false")
	}
}

func TestStringBuilderPool(t *testing.T) {
	t.Parallel()

	sb := util.GetStringBuilder()
	sb.WriteString("abc")
	if got, want := sb.String(), "abc"; got != want {
		t.Errorf("sb.String() = %q, want %q", got, want)
	}
	util.FreeStringBuilder(sb)
	if got := sb.Len(); got != 0 {
		t.Errorf("sb.Len() after free = %d, want 0", got)
	}

	buf := util.GetBytesBuffer()
	buf.WriteString("xyz")
	util.FreeBytesBuffer(buf)
	if got := buf.Len(); got != 0 {
		t.Errorf("buf.Len() after free = %d, want 0", got)
	}
}

func TestMust2(t *testing.T) {
	t.Parallel()

	if got := util.Must2(42, nil); got != 42 {
		t.Errorf("util.Must2(42, nil) = %d, want 42", got)
	}

	errBoom := errors.New("boom")
	defer func() {
		if r := recover(); r != errBoom {
			t.Errorf("recover() = %v, want %v", r, errBoom)
		}
	}()
	util.Must2(0, errBoom)
}
