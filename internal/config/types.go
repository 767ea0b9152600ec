package config

import "github.com/mitchellh/copystructure"

// Top-level section names of a pipeline run configuration.
const (
	SectionGlobal      = "global"
	SectionAlign       = "align"
	SectionCouplings   = "couplings"
	SectionEnvironment = "environment"
	SectionDatabases   = "databases"
	SectionStages      = "stages"
	SectionBatch       = "batch"
)

// RequiredSections lists the sections that must be present as mappings in a base
// configuration before overrides can be substituted into it.
var RequiredSections = []string{
	SectionGlobal,
	SectionAlign,
	SectionCouplings,
	SectionEnvironment,
	SectionDatabases,
}

// Configuration is a pipeline run configuration: section name to section content.
// Mapping sections are stored as map[string]interface{}; the stages section is a list.
//
// A Configuration is treated as immutable. The With* helpers return a modified copy
// and never touch the receiver, so a base configuration can be shared between
// callers as long as nobody writes to it directly.
type Configuration map[string]interface{}

// Section returns the named section if it exists and is a mapping.
func (c Configuration) Section(name string) (map[string]interface{}, bool) {
	return AsMapping(c[name])
}

// Get returns a single field of a mapping section.
func (c Configuration) Get(section, field string) (interface{}, bool) {
	s, ok := c.Section(section)
	if !ok {
		return nil, false
	}
	v, ok := s[field]
	return v, ok
}

// With returns a copy of the configuration with a top-level key replaced.
func (c Configuration) With(key string, value interface{}) Configuration {
	out := make(Configuration, len(c)+1)
	for k, v := range c {
		out[k] = v
	}
	out[key] = value
	return out
}

// Without returns a copy of the configuration with a top-level key removed.
func (c Configuration) Without(key string) Configuration {
	out := make(Configuration, len(c))
	for k, v := range c {
		if k != key {
			out[k] = v
		}
	}
	return out
}

// WithField returns a copy of the configuration where section.field is set to value.
// Only the top level and the touched section are copied; the section is created if
// it does not exist yet.
func (c Configuration) WithField(section, field string, value interface{}) Configuration {
	old, _ := c.Section(section)
	s := make(map[string]interface{}, len(old)+1)
	for k, v := range old {
		s[k] = v
	}
	s[field] = value
	return c.With(section, s)
}

// Clone returns a deep copy of the configuration. Nested values keep their types.
func (c Configuration) Clone() Configuration {
	if c == nil {
		return nil
	}
	// Decoded configurations hold only maps, slices and scalars, which always copy.
	copied := copystructure.Must(copystructure.Copy(map[string]interface{}(c)))
	return Configuration(copied.(map[string]interface{}))
}

// AsMapping returns v as a plain map if it is a mapping section or overlay.
func AsMapping(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case Configuration:
		return m, true
	default:
		return nil, false
	}
}
