package config

import "fmt"

// ValidateSections checks that every required section exists and is a mapping,
// and that optional sections have the expected shape when they are present.
// All problems are collected and returned together.
func ValidateSections(cfg Configuration) error {
	var errs ValidationErrors

	for _, name := range RequiredSections {
		v, exists := cfg[name]
		if !exists {
			errs.Add(name, "is required in the base configuration")
			continue
		}
		if _, ok := AsMapping(v); !ok {
			errs.Add(name, fmt.Sprintf("must be a mapping, got %T", v), v)
		}
	}

	if v, exists := cfg[SectionBatch]; exists && v != nil {
		if _, ok := AsMapping(v); !ok {
			errs.Add(SectionBatch, fmt.Sprintf("must be a mapping, got %T", v), v)
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// FormatValidationError creates a consistent validation error message
func FormatValidationError(entityType, entityName string, err error) error {
	if err == nil {
		return nil
	}

	if entityName != "" {
		return fmt.Errorf("validation failed for %s '%s': %w", entityType, entityName, err)
	}
	return fmt.Errorf("validation failed for %s: %w", entityType, err)
}
