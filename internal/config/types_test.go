package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration() Configuration {
	return Configuration{
		"global": map[string]interface{}{
			"prefix": "out/test",
			"region": []interface{}{1, 100},
		},
		"align": map[string]interface{}{
			"protocol": "standard",
		},
		"stages": []interface{}{"align", "couplings"},
	}
}

func TestConfiguration_Section(t *testing.T) {
	cfg := testConfiguration()

	s, ok := cfg.Section("global")
	require.True(t, ok)
	assert.Equal(t, "out/test", s["prefix"])

	_, ok = cfg.Section("stages")
	assert.False(t, ok, "a list is not a mapping section")

	_, ok = cfg.Section("missing")
	assert.False(t, ok)
}

func TestConfiguration_Get(t *testing.T) {
	cfg := testConfiguration()

	v, ok := cfg.Get("align", "protocol")
	require.True(t, ok)
	assert.Equal(t, "standard", v)

	_, ok = cfg.Get("align", "database")
	assert.False(t, ok)

	_, ok = cfg.Get("nope", "protocol")
	assert.False(t, ok)
}

func TestConfiguration_WithFieldLeavesReceiverUntouched(t *testing.T) {
	cfg := testConfiguration()

	updated := cfg.WithField("align", "protocol", "existing")

	v, _ := updated.Get("align", "protocol")
	assert.Equal(t, "existing", v)
	v, _ = cfg.Get("align", "protocol")
	assert.Equal(t, "standard", v)
}

func TestConfiguration_WithFieldCreatesSection(t *testing.T) {
	cfg := testConfiguration()

	updated := cfg.WithField("databases", "custom", "/tmp/db.fasta")

	v, ok := updated.Get("databases", "custom")
	require.True(t, ok)
	assert.Equal(t, "/tmp/db.fasta", v)
	_, exists := cfg["databases"]
	assert.False(t, exists)
}

func TestConfiguration_WithAndWithout(t *testing.T) {
	cfg := testConfiguration()

	with := cfg.With("batch", map[string]interface{}{})
	assert.Contains(t, with, "batch")
	assert.NotContains(t, cfg, "batch")

	without := cfg.Without("stages")
	assert.NotContains(t, without, "stages")
	assert.Contains(t, cfg, "stages")
}

func TestConfiguration_CloneIsDeep(t *testing.T) {
	cfg := testConfiguration()

	clone := cfg.Clone()
	require.Equal(t, cfg, clone)

	clone["global"].(map[string]interface{})["prefix"] = "changed"
	clone["stages"].([]interface{})[0] = "changed"

	v, _ := cfg.Get("global", "prefix")
	assert.Equal(t, "out/test", v)
	assert.Equal(t, "align", cfg["stages"].([]interface{})[0])
}

func TestConfiguration_CloneCopiesNestedValues(t *testing.T) {
	cfg := Configuration{
		"align":  Configuration{"database": "uniref90"},
		"global": map[string]interface{}{"region": []int{1, 100}, "sequence_file": nil},
	}

	clone := cfg.Clone()
	require.Equal(t, cfg, clone)

	align, ok := AsMapping(clone["align"])
	require.True(t, ok)
	align["database"] = "custom"
	clone["global"].(map[string]interface{})["region"].([]int)[0] = 5

	v, _ := cfg.Get("align", "database")
	assert.Equal(t, "uniref90", v)
	assert.Equal(t, []int{1, 100}, cfg["global"].(map[string]interface{})["region"])
}

func TestConfiguration_CloneNil(t *testing.T) {
	var cfg Configuration
	assert.Nil(t, cfg.Clone())
}
