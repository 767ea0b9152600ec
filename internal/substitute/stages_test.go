package substitute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"align,couplings", []string{"align", "couplings"}},
		{" align , couplings ", []string{"align", "couplings"}},
		{"align,\tcou plings", []string{"align", "couplings"}},
		{"align", []string{"align"}},
		{"align,align", []string{"align", "align"}},
		{"a,,b", []string{"a", "", "b"}},
		{"", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}

func TestApplyStages(t *testing.T) {
	cfg, err := applyStages(baseConfig(), Overrides{Stages: str("align, compare, align")})
	require.NoError(t, err)
	assert.Equal(t, []string{"align", "compare", "align"}, cfg["stages"])
}

func TestApplyStages_Unset(t *testing.T) {
	cfg, err := applyStages(baseConfig(), Overrides{})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"align", "couplings"}, cfg["stages"])
}
