package formatting

import (
	"io"

	"gopkg.in/yaml.v3"

	"evcouplings/internal/config"
	"evcouplings/internal/substitute"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct{}

// FormatConfig writes the configuration as a YAML document with sorted keys.
func (f *YAMLFormatter) FormatConfig(w io.Writer, cfg config.Configuration) error {
	return encodeYAML(w, keepFloats(cfg))
}

// FormatJobs writes the jobs as a YAML list.
func (f *YAMLFormatter) FormatJobs(w io.Writer, jobs []substitute.Job) error {
	return encodeYAML(w, jobDocuments(jobs))
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
