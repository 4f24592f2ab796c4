package main

//go:generate go tool errtrace -w .

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"braces.dev/errtrace"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/log"
	"github.com/ghettovoice/httphdr/wire"
)

type options struct {
	format  string
	input   string
	color   bool
	logKind string
	lenient bool
	remove  []string
	set     []string
	add     []string
}

func newRootCmd(cfg config) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hdrlist [flags]",
		Short: "edit a header section and print it in HTTP/1.x, HPACK or QPACK form",
		Example: `  printf 'Host: example.com\r\nUser-Agent: curl\r\n' | hdrlist --remove user-agent --add 'Accept: */*'
  hdrlist --format hpack < headers.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("error:"), err)
				return err
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&opts.format, "format", "f", cfg.Format, "output format: "+strings.Join(formats, ", "))
	fl.StringVarP(&opts.input, "input", "i", cfg.Input, "input format: "+strings.Join(formats, ", ")+", packed forms are hex encoded")
	fl.BoolVar(&opts.color, "color", cfg.Color, "colorize HTTP/1.x output")
	fl.StringVar(&opts.logKind, "log", cfg.Log, "log to stderr: none, console, dev")
	fl.BoolVar(&opts.lenient, "lenient", false, "keep malformed values of well-known headers as raw strings")
	fl.StringSliceVarP(&opts.remove, "remove", "r", nil, "remove all headers with the `name`")
	fl.StringArrayVarP(&opts.set, "set", "s", nil, "replace headers with a `'Name: value'` field")
	fl.StringArrayVarP(&opts.add, "add", "a", nil, "append a `'Name: value'` field")
	return cmd
}

func (o *options) logger() (*slog.Logger, error) {
	switch o.logKind {
	case "", "none":
		return log.Noop, nil
	case "console":
		return log.Def, nil
	case "dev":
		return log.Dev, nil
	default:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown log kind %q", o.logKind))
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer, o *options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !slices.Contains(formats, o.format) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown output format %q", o.format))
	}

	logger, err := o.logger()
	if err != nil {
		return errtrace.Wrap(err)
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "hdrlist started", slog.Any("options", log.FmtValue(*o, false)))

	reg := header.StandardRegistry(&header.RegistryOptions{Log: logger})
	base, err := readList(in, o.input, &wire.Options{Registry: reg, Lenient: o.lenient, Log: logger})
	if err != nil {
		return errtrace.Wrap(err)
	}

	ed := header.NewEditor(reg, base)
	for _, name := range o.remove {
		ed.Del(name)
	}
	for _, f := range o.set {
		name, value, err := splitField(f)
		if err != nil {
			return errtrace.Wrap(err)
		}
		if err := ed.Set(name, value); err != nil {
			return errtrace.Wrap(err)
		}
	}
	for _, f := range o.add {
		name, value, err := splitField(f)
		if err != nil {
			return errtrace.Wrap(err)
		}
		if err := ed.Add(name, value); err != nil {
			return errtrace.Wrap(err)
		}
	}

	l := ed.List()
	logger.LogAttrs(ctx, slog.LevelDebug, "header list ready",
		slog.Int("size", l.Size()),
		slog.Any("headers", l),
	)
	return errtrace.Wrap(writeList(out, l, o))
}

func splitField(f string) (name, value string, err error) {
	name, value, ok := strings.Cut(f, ":")
	if !ok {
		return "", "", errtrace.Wrap(errorutil.NewInvalidArgumentError("field %q: missing colon", f))
	}
	return strings.TrimSpace(name), strings.TrimSpace(value), nil
}

func readList(in io.Reader, format string, opts *wire.Options) (*header.List, error) {
	switch format {
	case formatHTTP1:
		return errtrace.Wrap2(wire.ReadHTTP1(in, opts))
	case formatHPACK, formatQPACK:
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		block, err := hex.DecodeString(string(bytes.TrimSpace(data)))
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
		}
		if format == formatHPACK {
			return errtrace.Wrap2(wire.DecodeHPACK(block, opts))
		}
		return errtrace.Wrap2(wire.DecodeQPACK(block, opts))
	default:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown input format %q", format))
	}
}

func writeList(out io.Writer, l *header.List, o *options) error {
	var (
		block []byte
		err   error
	)
	switch o.format {
	case formatHPACK:
		block, err = wire.EncodeHPACK(l)
	case formatQPACK:
		block, err = wire.EncodeQPACK(l)
	default:
		if !o.color {
			return errtrace.Wrap(wire.WriteHTTP1(out, l))
		}
		return errtrace.Wrap(writeColored(out, l))
	}
	if err != nil {
		return errtrace.Wrap(err)
	}
	_, err = fmt.Fprintln(out, hex.EncodeToString(block))
	return errtrace.Wrap(err)
}

func writeColored(out io.Writer, l *header.List) error {
	// validate all fields before printing anything
	if err := wire.WriteHTTP1(io.Discard, l); err != nil {
		return errtrace.Wrap(err)
	}

	name := color.New(color.FgCyan, color.Bold)
	name.EnableColor()
	for h := range l.All() {
		if _, err := fmt.Fprintf(out, "%s: %s\r\n", name.Sprint(h.Key().Name()), h.RenderValue()); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}
