package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"evcouplings/pkg/logging"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a base configuration from a file. The file must exist and be
// non-empty. TOML files are recognised by their .toml extension; everything else
// (.yaml, .yml, .json) is decoded as YAML.
//
// Load does not check for required sections; see ValidateSections.
func Load(path string) (Configuration, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ResourceError{Path: path, Reason: "does not exist"}
		}
		return nil, &ResourceError{Path: path, Reason: "cannot be accessed", Err: err}
	}
	if info.IsDir() {
		return nil, &ResourceError{Path: path, Reason: "is a directory"}
	}
	if info.Size() == 0 {
		return nil, &ResourceError{Path: path, Reason: "is empty"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Reason: "cannot be read", Err: err}
	}

	cfg, err := Decode(data, formatOf(path))
	if err != nil {
		return nil, &ResourceError{Path: path, Reason: "cannot be parsed", Err: err}
	}
	if len(cfg) == 0 {
		return nil, &ResourceError{Path: path, Reason: "contains no configuration"}
	}

	logging.Info("ConfigLoader", "Loaded configuration from %s (%d sections)", path, len(cfg))
	return cfg, nil
}

// Source formats understood by Decode.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses configuration data in the given format.
func Decode(data []byte, format string) (Configuration, error) {
	raw := map[string]interface{}{}

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}

	return Configuration(normalizeMap(raw)), nil
}

// normalizeMap converts decoder-specific representations to the plain types the
// rest of the module works with: int for integers, map[string]interface{} for
// mappings and []interface{} for lists.
func normalizeMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}

func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return normalizeMap(t)
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, item := range t {
			m[toString(k)] = normalize(item)
		}
		return m
	case []map[string]interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = normalizeMap(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = normalize(item)
		}
		return out
	case int64:
		return int(t)
	default:
		return v
	}
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
