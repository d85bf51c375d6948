package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/strfmt"
	"github.com/bjaus/strfmt/internal/log"
)

var errBadArgument = errors.New("invalid argument")

func runFormat(ctx context.Context, a *app, opts rootOptions, newlineSet bool, format string, raw []string) (err error) {
	logger := log.FromContext(ctx)

	var args []any
	if opts.argsFile != "" {
		if len(raw) > 0 {
			return fmt.Errorf("--args cannot be combined with positional arguments")
		}
		args, err = loadArgs(opts.argsFile)
	} else {
		args, err = coerceArgs(format, raw)
	}
	if err != nil {
		return err
	}
	logger.Debug("format", "text", format, "args", len(args))
	if logger.Verbose() {
		for i, v := range args {
			logger.Printf("arg %d = %s\n", i+1, v)
		}
	}

	w := a.stdout
	terminal := a.isTerminal
	if opts.output != "" {
		var f *os.File
		f, err = os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		w = f
		terminal = func() bool { return false }
		logger.Debug("output", "path", opts.output)
	}

	n, err := strfmt.New(format, args...).WriteTo(w)
	logger.Debug("wrote", "bytes", n)
	if err != nil {
		return err
	}

	if wantNewline(a, opts, newlineSet, terminal) {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// wantNewline decides the trailing newline: the flag, then the config file,
// then whether the output is a terminal.
func wantNewline(a *app, opts rootOptions, flagSet bool, terminal func() bool) bool {
	if flagSet {
		return opts.newline
	}
	if a.cfg.Newline != nil {
		return *a.cfg.Newline
	}
	return terminal != nil && terminal()
}

// coerceArgs converts command-line arguments by the verb each one lands on.
// Arguments beyond the last specifier are kept as text so the formatter can
// report them.
func coerceArgs(format string, raw []string) ([]any, error) {
	directives, err := strfmt.Parse(format)
	if err != nil {
		return nil, err
	}

	args := make([]any, 0, len(raw))
	i := 0
	for _, d := range directives {
		if d.Spec == nil {
			continue
		}
		if i >= len(raw) {
			break
		}
		v, err := coerce(d.Spec.Verb, raw[i])
		if err != nil {
			return nil, fmt.Errorf("%w %d for %s: %w", errBadArgument, i+1, d.Spec, err)
		}
		args = append(args, v)
		i++
	}
	for _, s := range raw[i:] {
		args = append(args, s)
	}
	return args, nil
}

func coerce(verb byte, s string) (any, error) {
	switch verb {
	case 'd', 'i':
		return strconv.ParseInt(s, 0, 64)
	case 'u', 'o', 'x', 'X':
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil && strings.HasPrefix(s, "-") {
			return strconv.ParseInt(s, 0, 64)
		}
		return u, err
	case 'f', 'F', 'g', 'G', 'a', 'A', 'e', 'E':
		return strconv.ParseFloat(s, 64)
	case 'c':
		if s == "" {
			return nil, errors.New("empty character")
		}
		r, _ := utf8.DecodeRuneInString(s)
		return strfmt.Char(r), nil
	default:
		return s, nil
	}
}

// loadArgs reads a YAML (or JSON) list of arguments. Values keep their
// decoded types.
func loadArgs(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read args: %w", err)
	}
	var args []any
	if err := yaml.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("parse args %s: %w", path, err)
	}
	return args, nil
}
