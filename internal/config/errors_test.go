package config

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceError(t *testing.T) {
	err := &ResourceError{Path: "run.yaml", Reason: "cannot be read", Err: os.ErrPermission}

	assert.Equal(t, "config file run.yaml: cannot be read: permission denied", err.Error())
	assert.True(t, errors.Is(err, ErrResourceUnavailable))
	assert.True(t, errors.Is(err, os.ErrPermission))

	wrapped := fmt.Errorf("loading: %w", err)
	var re *ResourceError
	assert.True(t, errors.As(wrapped, &re))
	assert.Equal(t, "run.yaml", re.Path)
}

func TestParameterError(t *testing.T) {
	err := NewParameterError("region", "abc", "must have format start-end (e.g. 5-123)")

	assert.Equal(t, `parameter region: must have format start-end (e.g. 5-123): "abc"`, err.Error())
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.False(t, errors.Is(err, ErrResourceUnavailable))

	noValue := NewParameterError("bitscores", "", "conflicts with evalues")
	assert.Equal(t, "parameter bitscores: conflicts with evalues", noValue.Error())
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "no validation errors", errs.Error())
	assert.False(t, errors.Is(errs, ErrInvalidConfiguration))

	errs.Add("global", "is required")
	assert.Equal(t, "field 'global': is required", errs.Error())

	errs.Add("align", "must be a mapping", 42)
	assert.Equal(t, "validation failed: field 'global': is required; field 'align': must be a mapping", errs.Error())
	assert.Equal(t, 42, errs[1].Value)
	assert.True(t, errors.Is(errs, ErrInvalidConfiguration))
}
