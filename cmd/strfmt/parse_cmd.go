package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/strfmt"
	"github.com/bjaus/strfmt/internal/log"
	"github.com/bjaus/strfmt/internal/report"
)

// directiveRow is one directive of a parsed format string.
type directiveRow struct {
	Offset    int    `json:"offset" yaml:"offset"`
	Kind      string `json:"kind" yaml:"kind"`
	Text      string `json:"text" yaml:"text"`
	Flags     string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Width     *int   `json:"width,omitempty" yaml:"width,omitempty"`
	Precision *int   `json:"precision,omitempty" yaml:"precision,omitempty"`
	Verb      string `json:"verb,omitempty" yaml:"verb,omitempty"`
}

func (r directiveRow) Row() []string {
	text := r.Text
	if r.Kind == "literal" {
		text = strconv.Quote(text)
	}
	return []string{strconv.Itoa(r.Offset), r.Kind, text, r.Flags, optInt(r.Width), optInt(r.Precision), r.Verb}
}

func (directiveRow) Header() []string {
	return []string{"Offset", "Kind", "Text", "Flags", "Width", "Precision", "Verb"}
}

func (directiveRow) Alignments() []report.Alignment {
	return []report.Alignment{
		report.AlignRight, report.AlignLeft, report.AlignLeft, report.AlignLeft,
		report.AlignRight, report.AlignRight, report.AlignLeft,
	}
}

func optInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func toRows(directives []strfmt.Directive) []directiveRow {
	rows := make([]directiveRow, len(directives))
	for i, d := range directives {
		if d.Spec == nil {
			rows[i] = directiveRow{Offset: d.Offset, Kind: "literal", Text: d.Literal}
			continue
		}
		sp := d.Spec
		row := directiveRow{
			Offset: d.Offset,
			Kind:   "spec",
			Text:   sp.Text,
			Flags:  specFlags(sp),
			Verb:   string(sp.Verb),
		}
		if sp.HasWidth() {
			row.Width = &sp.Width
		}
		if sp.HasPrecision() {
			row.Precision = &sp.Precision
		}
		rows[i] = row
	}
	return rows
}

func specFlags(sp *strfmt.Spec) string {
	var flags []string
	if sp.Left {
		flags = append(flags, "left")
	}
	if sp.Plus {
		flags = append(flags, "plus")
	}
	if sp.Space {
		flags = append(flags, "space")
	}
	switch sp.Pad {
	case '0':
		flags = append(flags, "zero")
	case ',':
		flags = append(flags, "comma")
	}
	return strings.Join(flags, " ")
}

func newParseCmd(a *app) *cobra.Command {
	var reportName, borderName string

	cmd := &cobra.Command{
		Use:   "parse FORMAT",
		Short: "Show the directives of a format string",
		Long: `Show how a format string is split into literal text and conversion
specifiers, with the flags, width, precision and verb of each specifier.

The report format and table border default to the config file values.`,
		Example: `  strfmt parse '%-8s|%08.3f'
  strfmt parse --report json 'x=%x'
  strfmt parse --border ascii '%d%%'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.FromContext(cmd.Context())

			if reportName == "" {
				reportName = a.cfg.Report
			}
			if borderName == "" {
				borderName = a.cfg.Border
			}
			format, err := report.ParseFormat(reportName)
			if err != nil {
				return err
			}
			border, err := report.ParseBorder(borderName)
			if err != nil {
				return err
			}

			directives, err := strfmt.Parse(args[0])
			if err != nil {
				return err
			}
			logger.Debug("parsed", "directives", len(directives), "report", format)

			return report.Write(a.stdout, format, toRows(directives), report.WithBorder(border))
		},
	}

	cmd.Flags().StringVarP(&reportName, "report", "r", "", "report format: table, markdown, csv, tsv, json or yaml")
	cmd.Flags().StringVar(&borderName, "border", "", "table border: rounded, ascii or none")

	return cmd
}
