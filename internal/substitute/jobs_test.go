package substitute

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evcouplings/internal/config"
)

func TestExpandJobs_NoBatch(t *testing.T) {
	cfg := baseConfig()

	jobs, err := ExpandJobs(cfg)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "", jobs[0].Name)
	assert.Equal(t, "output/RASH", jobs[0].Prefix)
	assert.Equal(t, cfg, jobs[0].Config)
}

func TestExpandJobs_FromThresholds(t *testing.T) {
	merged, err := Apply(baseConfig(), Overrides{Evalues: str("1,0.001,10")})
	require.NoError(t, err)

	jobs, err := ExpandJobs(merged)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	names := []string{jobs[0].Name, jobs[1].Name, jobs[2].Name}
	assert.Equal(t, []string{"_e0.001", "_e1", "_e10"}, names)

	thresholds := map[string]interface{}{"_e0.001": 0.001, "_e1": 1, "_e10": 10}
	for _, job := range jobs {
		assert.Equal(t, "output/RASH"+job.Name, job.Prefix)
		assert.NotContains(t, job.Config, "batch")

		align, ok := job.Config.Section("align")
		require.True(t, ok)
		assert.Equal(t, thresholds[job.Name], align["domain_threshold"])
		assert.Equal(t, thresholds[job.Name], align["sequence_threshold"])
		assert.Equal(t, false, align["use_bitscores"])
		assert.Equal(t, "uniref100", align["database"], "fields outside the overlay are kept")

		v, _ := job.Config.Get("global", "prefix")
		assert.Equal(t, job.Prefix, v)
	}

	// the merged configuration is left alone
	v, _ := merged.Get("align", "domain_threshold")
	assert.Equal(t, 0.5, v)
	v, _ = merged.Get("global", "prefix")
	assert.Equal(t, "output/RASH", v)
}

func TestExpandJobs_OverlayAddsSections(t *testing.T) {
	cfg := baseConfig().With("batch", map[string]interface{}{
		"_long": map[string]interface{}{
			"environment": map[string]interface{}{"queue": "long"},
			"compare":     map[string]interface{}{"by_alignment": true},
		},
		"_empty": nil,
	})

	jobs, err := ExpandJobs(cfg)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "_empty", jobs[0].Name)
	v, _ := jobs[0].Config.Get("environment", "queue")
	assert.Equal(t, "medium", v)

	assert.Equal(t, "_long", jobs[1].Name)
	v, _ = jobs[1].Config.Get("environment", "queue")
	assert.Equal(t, "long", v)
	v, _ = jobs[1].Config.Get("environment", "cores")
	assert.Equal(t, 2, v)
	v, _ = jobs[1].Config.Get("compare", "by_alignment")
	assert.Equal(t, true, v)
}

func TestExpandJobs_NoPrefix(t *testing.T) {
	cfg := baseConfig().WithField("global", "prefix", nil).With("batch", map[string]interface{}{
		"_b5": map[string]interface{}{},
	})

	jobs, err := ExpandJobs(cfg)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "_b5", jobs[0].Prefix)
}

func TestExpandJobs_InvalidEntry(t *testing.T) {
	cfg := baseConfig().With("batch", map[string]interface{}{"_b1": "oops"})

	jobs, err := ExpandJobs(cfg)
	require.Error(t, err)
	assert.Nil(t, jobs)
	assert.True(t, errors.Is(err, config.ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), "_b1")
}
