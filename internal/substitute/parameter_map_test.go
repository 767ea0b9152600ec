package substitute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathOf(t *testing.T) {
	tests := []struct {
		param    Parameter
		expected string
		mapped   bool
	}{
		{Prefix, "global.prefix", true},
		{Protein, "global.sequence_id", true},
		{SeqFile, "global.sequence_file", true},
		{Alignment, "align.input_alignment", true},
		{Iterations, "align.iterations", true},
		{SeqIDFilter, "align.seqid_filter", true},
		{SeqCoverage, "align.minimum_sequence_coverage", true},
		{ColCoverage, "align.minimum_column_coverage", true},
		{Theta, "couplings.theta", true},
		{PLMIterations, "couplings.iterations", true},
		{Queue, "environment.queue", true},
		{Time, "environment.time", true},
		{Cores, "environment.cores", true},
		{Memory, "environment.memory", true},
		{Region, "", false},
		{Stages, "", false},
		{Database, "", false},
		{Bitscores, "", false},
		{Evalues, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.param), func(t *testing.T) {
			path, ok := PathOf(tt.param)
			assert.Equal(t, tt.mapped, ok)
			if tt.mapped {
				assert.Equal(t, tt.expected, path.String())
			}
		})
	}
}

func TestApplyParameterMap(t *testing.T) {
	base := baseConfig()
	o := Overrides{
		Prefix:        str("output/new"),
		Iterations:    IntValue(3),
		Theta:         FloatValue(0.9),
		PLMIterations: IntValue(500),
		Memory:        str("16000"),
		Cores:         IntValue(0),
	}

	cfg, err := applyParameterMap(base, o)
	require.NoError(t, err)

	expect := map[Path]interface{}{
		{"global", "prefix"}:        "output/new",
		{"align", "iterations"}:     3,
		{"couplings", "theta"}:      0.9,
		{"couplings", "iterations"}: 500,
		{"environment", "memory"}:   "16000",
		{"environment", "cores"}:    0,
		{"environment", "queue"}:    "medium",
		{"global", "sequence_id"}:   "RASH_HUMAN",
		{"align", "protocol"}:       "standard",
	}
	for path, want := range expect {
		got, _ := cfg.Get(path.Section, path.Field)
		assert.Equal(t, want, got, path.String())
	}

	// the base is untouched
	v, _ := base.Get("global", "prefix")
	assert.Equal(t, "output/RASH", v)
}

func TestApplyParameterMap_WidensIntegerTheta(t *testing.T) {
	cfg, err := applyParameterMap(baseConfig(), Overrides{Theta: IntValue(1)})
	require.NoError(t, err)

	v, _ := cfg.Get("couplings", "theta")
	assert.Equal(t, 1.0, v)
}

func TestApplyParameterMap_AddsMissingField(t *testing.T) {
	cfg, err := applyParameterMap(baseConfig(), Overrides{ColCoverage: IntValue(70)})
	require.NoError(t, err)

	v, ok := cfg.Get("align", "minimum_column_coverage")
	require.True(t, ok)
	assert.Equal(t, 70, v)
}
