package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bjaus/strfmt"
	"github.com/bjaus/strfmt/internal/config"
	"github.com/bjaus/strfmt/internal/log"
)

// app is the state shared by all commands.
type app struct {
	cfg config.Config
	// cfgPath is where cfg was looked up. Empty when no path resolved.
	cfgPath string
	stdout  io.Writer
	stderr  io.Writer
	// isTerminal reports whether stdout is a terminal.
	isTerminal func() bool
}

type rootOptions struct {
	argsFile string
	output   string
	newline  bool
	verbose  bool
}

func newRootCmd(a *app) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "strfmt FORMAT [ARG...]",
		Short: "Format arguments with a printf-style format string",
		Long: `strfmt renders FORMAT with ARGs the way printf does.

Each ARG is converted by the verb it lands on: d and i take signed integers,
u o x X take unsigned ones (negative values print as two's complement), the
float verbs take decimals, c takes the first character and everything else
takes the text as is. Numbers accept 0x, 0o and 0b prefixes.

Arguments after FORMAT are never parsed as flags.`,
		Example: `  strfmt '%d + %d = %d' 1 2 3        # 1 + 2 = 3
  strfmt '%08.3f' 3.14159            # 0003.142
  strfmt '%-6s|' ab                  # ab    |
  strfmt '%b' hello                  # 68 65 6c 6c 6f  hello
  strfmt --args args.yaml '%s=%d'    # arguments from a YAML list
  strfmt -o out.txt '%x' 255         # write to a file`,
		Args:                       cobra.MinimumNArgs(1),
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(a.stderr, opts.verbose)
			if a.cfgPath != "" {
				logger.Printf("config %s\n", a.cfgPath)
			}
			cmd.SetContext(log.WithLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd.Context(), a, opts, cmd.Flags().Changed("newline"), args[0], args[1:])
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&opts.argsFile, "args", "", "read arguments from a YAML or JSON list")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to `FILE` instead of stdout")
	cmd.Flags().BoolVarP(&opts.newline, "newline", "n", false, "append a newline (default: config, else only on a terminal)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	cmd.AddCommand(newParseCmd(a))
	cmd.AddCommand(newVersionCmd(a))

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cfg, path, err := config.Load()
	if err != nil {
		_ = strfmt.Fprintf(os.Stderr, "Warning: %s: %s\n", path, err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := &app{
		cfg:     cfg,
		cfgPath: path,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		isTerminal: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}

	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		_ = strfmt.Fprintf(os.Stderr, "strfmt: %s\n", err)
		cancel()
		os.Exit(1)
	}
}
