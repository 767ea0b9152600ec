package formatting

import (
	"fmt"
	"io"

	"evcouplings/internal/config"
	"evcouplings/internal/substitute"
)

// JSONFormatter provides structured JSON output formatting
type JSONFormatter struct{}

// FormatConfig writes the configuration as indented JSON.
func (f *JSONFormatter) FormatConfig(w io.Writer, cfg config.Configuration) error {
	return writeJSON(w, keepFloats(cfg))
}

// FormatJobs writes the jobs as an indented JSON array.
func (f *JSONFormatter) FormatJobs(w io.Writer, jobs []substitute.Job) error {
	return writeJSON(w, jobDocuments(jobs))
}

func writeJSON(w io.Writer, v interface{}) error {
	out, err := PrettyJSON(v)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
