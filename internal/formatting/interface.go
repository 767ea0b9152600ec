// Package formatting renders merged run configurations and expanded batch jobs
// for the command line, as YAML, JSON or a table.
package formatting

import (
	"fmt"
	"io"
	"strings"

	"evcouplings/internal/config"
	"evcouplings/internal/substitute"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatYAML  OutputFormat = "yaml"  // YAML document, the default
	FormatJSON  OutputFormat = "json"  // Indented JSON
	FormatTable OutputFormat = "table" // One row per configuration field
)

// Formats lists the supported output formats.
var Formats = []OutputFormat{FormatYAML, FormatJSON, FormatTable}

// ParseFormat validates an output format name.
func ParseFormat(name string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if format == known {
			return format, nil
		}
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unsupported output format %q (use one of: %s)", name, strings.Join(names, ", "))
}

// Formatter writes configurations and jobs in one output format.
type Formatter interface {
	FormatConfig(w io.Writer, cfg config.Configuration) error
	FormatJobs(w io.Writer, jobs []substitute.Job) error
}

// NewFormatter creates the formatter for an output format.
func NewFormatter(format OutputFormat) (Formatter, error) {
	switch format {
	case FormatYAML, "":
		return &YAMLFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatTable:
		return &TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// jobDocument is the serialized form of a job in YAML and JSON output.
type jobDocument struct {
	Name   string                 `yaml:"name" json:"name"`
	Prefix string                 `yaml:"prefix" json:"prefix"`
	Config map[string]interface{} `yaml:"config" json:"config"`
}

func jobDocuments(jobs []substitute.Job) []jobDocument {
	docs := make([]jobDocument, len(jobs))
	for i, job := range jobs {
		docs[i] = jobDocument{Name: job.Name, Prefix: job.Prefix, Config: keepFloats(job.Config)}
	}
	return docs
}
