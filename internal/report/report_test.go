package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/strfmt/internal/report"
)

// --- Test types ---

type basicRow struct {
	Name  string `json:"name" yaml:"name"`
	Count string `json:"count" yaml:"count"`
}

func (r basicRow) Row() []string { return []string{r.Name, r.Count} }

type headedRow struct{ basicRow }

func (r headedRow) Header() []string { return []string{"Name", "Count"} }

type alignedRow struct{ headedRow }

func (r alignedRow) Alignments() []report.Alignment {
	return []report.Alignment{report.AlignLeft, report.AlignRight}
}

// --- Helpers ---

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = errors.New("write failed")

// ============================================================
// Tests
// ============================================================

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    report.Format
		wantErr require.ErrorAssertionFunc
	}{
		"table":    {input: "table", want: report.Table, wantErr: require.NoError},
		"json":     {input: "json", want: report.JSON, wantErr: require.NoError},
		"yaml":     {input: "yaml", want: report.YAML, wantErr: require.NoError},
		"markdown": {input: "markdown", want: report.Markdown, wantErr: require.NoError},
		"csv":      {input: "csv", want: report.CSV, wantErr: require.NoError},
		"tsv":      {input: "tsv", want: report.TSV, wantErr: require.NoError},
		"unknown":  {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := report.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBorder(t *testing.T) {
	t.Parallel()
	b, err := report.ParseBorder("ascii")
	require.NoError(t, err)
	assert.Equal(t, report.BorderASCII, b)

	_, err = report.ParseBorder("heavy")
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
}

func TestWriteTableRounded(t *testing.T) {
	t.Parallel()
	items := []alignedRow{
		{headedRow{basicRow{Name: "a", Count: "1"}}},
		{headedRow{basicRow{Name: "bb", Count: "10"}}},
	}
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Table, items))
	want := "" +
		"╭──────┬───────╮\n" +
		"│ Name │ Count │\n" +
		"├──────┼───────┤\n" +
		"│ a    │     1 │\n" +
		"│ bb   │    10 │\n" +
		"╰──────┴───────╯\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTableASCII(t *testing.T) {
	t.Parallel()
	items := []basicRow{{Name: "x", Count: "1"}}
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Table, items, report.WithBorder(report.BorderASCII)))
	want := "" +
		"+---+---+\n" +
		"| x | 1 |\n" +
		"+---+---+\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTableNone(t *testing.T) {
	t.Parallel()
	items := []headedRow{{basicRow{Name: "abc", Count: "1"}}}
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Table, items, report.WithBorder(report.BorderNone)))
	assert.Equal(t, "Name  Count\n----  -----\nabc   1\n", buf.String())
}

func TestWriteTableWideRunes(t *testing.T) {
	t.Parallel()
	items := []basicRow{{Name: "世界", Count: "1"}, {Name: "a", Count: "2"}}
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Table, items, report.WithBorder(report.BorderNone)))
	assert.Equal(t, "世界  1\na     2\n", buf.String())
}

func TestWriteTableRejectsNonRower(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := report.Write(&buf, report.Table, []string{"not a rower"})
	require.ErrorIs(t, err, report.ErrMissingInterface)
	assert.Contains(t, err.Error(), "Rower")
}

func TestWriteTableEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write[basicRow](&buf, report.Table, nil))
	assert.Empty(t, buf.String())
}

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()
	items := []alignedRow{
		{headedRow{basicRow{Name: "a|b", Count: "1"}}},
		{headedRow{basicRow{Name: "c", Count: "22"}}},
	}
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Markdown, items))
	want := "" +
		"| Name | Count |\n" +
		"| ---- | ----: |\n" +
		"| a\\|b |     1 |\n" +
		"| c    |    22 |\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteMarkdownRequiresHeader(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := report.Write(&buf, report.Markdown, []basicRow{{Name: "a", Count: "1"}})
	require.ErrorIs(t, err, report.ErrMissingInterface)
	assert.Contains(t, err.Error(), "Headed")
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	items := []headedRow{
		{basicRow{Name: "plain", Count: "1"}},
		{basicRow{Name: "with, comma", Count: "2"}},
	}
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.CSV, items))
	assert.Equal(t, "Name,Count\nplain,1\n\"with, comma\",2\n", buf.String())
}

func TestWriteCSVWithoutHeader(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.CSV, []basicRow{{Name: "a", Count: "1"}}))
	assert.Equal(t, "a,1\n", buf.String())
}

func TestWriteTSV(t *testing.T) {
	t.Parallel()
	items := []headedRow{
		{basicRow{Name: "plain", Count: "1"}},
		{basicRow{Name: "tab\there", Count: "line\nbreak"}},
		{basicRow{Name: `back\slash`, Count: ""}},
	}
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.TSV, items))
	want := "" +
		"Name\tCount\n" +
		"plain\t1\n" +
		`tab\there` + "\t" + `line\nbreak` + "\n" +
		`back\\slash` + "\t\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTSVRejectsNonRower(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := report.Write(&buf, report.TSV, []int{1})
	assert.ErrorIs(t, err, report.ErrMissingInterface)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.JSON, []basicRow{{Name: "a", Count: "1"}}))
	assert.JSONEq(t, `[{"name":"a","count":"1"}]`, buf.String())
}

func TestWriteJSONEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write[basicRow](&buf, report.JSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.YAML, []basicRow{{Name: "a", Count: "1"}}))
	assert.YAMLEq(t, "- name: a\n  count: \"1\"\n", buf.String())
}

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := report.Write(&buf, report.Format("xml"), []basicRow{})
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
}

func TestWriteErrors(t *testing.T) {
	t.Parallel()
	items := []headedRow{{basicRow{Name: "a", Count: "1"}}}
	tests := map[string][]report.Option{
		"rounded": nil,
		"ascii":   {report.WithBorder(report.BorderASCII)},
		"none":    {report.WithBorder(report.BorderNone)},
	}
	for name, opts := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := report.Write(&errWriter{}, report.Table, items, opts...)
			assert.ErrorIs(t, err, errWriteFailed)
		})
	}
	assert.ErrorIs(t, report.Write(&errWriter{}, report.Markdown, items), errWriteFailed)
	assert.ErrorIs(t, report.Write(&errWriter{}, report.CSV, items), errWriteFailed)
	assert.ErrorIs(t, report.Write(&errWriter{}, report.TSV, items), errWriteFailed)
	assert.ErrorIs(t, report.Write(&errWriter{}, report.JSON, items), errWriteFailed)
	assert.Error(t, report.Write(&errWriter{}, report.YAML, []basicRow{{Name: "a", Count: "1"}}))
}
