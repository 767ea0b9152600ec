package formatting

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"evcouplings/internal/config"
	"evcouplings/internal/substitute"
	pkgstrings "evcouplings/pkg/strings"
)

// TableFormatter provides table output formatting
type TableFormatter struct{}

// FormatConfig writes one row per leaf field of the configuration, sorted by path.
func (f *TableFormatter) FormatConfig(w io.Writer, cfg config.Configuration) error {
	t := createTable(w)
	t.AppendHeader(table.Row{"PATH", "VALUE"})
	for _, entry := range Flatten(map[string]interface{}(cfg)) {
		t.AppendRow(table.Row{entry.Path, cell(entry.Value)})
	}
	t.Render()
	return nil
}

// FormatJobs writes one row per job with its alignment thresholds.
func (f *TableFormatter) FormatJobs(w io.Writer, jobs []substitute.Job) error {
	t := createTable(w)
	t.AppendHeader(table.Row{"NAME", "PREFIX", "DOMAIN THRESHOLD", "SEQUENCE THRESHOLD", "BITSCORES"})
	for _, job := range jobs {
		name := job.Name
		if name == "" {
			name = "-"
		}
		row := table.Row{name, cell(job.Prefix)}
		for _, field := range []string{"domain_threshold", "sequence_threshold", "use_bitscores"} {
			v, _ := job.Config.Get(config.SectionAlign, field)
			row = append(row, cell(v))
		}
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"", "", "", "TOTAL", len(jobs)})
	t.Render()
	return nil
}

// createTable creates a new table with standard styling
func createTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

// cell renders a value on one line, cut to the default cell width. The full
// value is available in YAML and JSON output.
func cell(v interface{}) string {
	return pkgstrings.TruncateCell(FormatCellValue(v), pkgstrings.DefaultCellMaxLen)
}
