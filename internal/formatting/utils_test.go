package formatting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{
			name:     "simple object",
			input:    map[string]interface{}{"name": "test", "value": 42},
			expected: "{\n  \"name\": \"test\",\n  \"value\": 42\n}",
		},
		{
			name:     "array",
			input:    []string{"a", "b", "c"},
			expected: "[\n  \"a\",\n  \"b\",\n  \"c\"\n]",
		},
		{
			name:     "nil",
			input:    nil,
			expected: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := PrettyJSON(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestPrettyJSON_Error(t *testing.T) {
	_, err := PrettyJSON(math.NaN())
	assert.Error(t, err)
}

func TestFlatten(t *testing.T) {
	entries := Flatten(map[string]interface{}{
		"b": map[string]interface{}{
			"y": 1,
			"x": map[string]interface{}{"deep": true},
		},
		"a":     []interface{}{"one"},
		"empty": map[string]interface{}{},
	})

	assert.Equal(t, []Entry{
		{Path: "a", Value: []interface{}{"one"}},
		{Path: "b.x.deep", Value: true},
		{Path: "b.y", Value: 1},
		{Path: "empty", Value: map[string]interface{}{}},
	}, entries)
}

func TestFormatCellValue(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected string
	}{
		{nil, "-"},
		{"", `""`},
		{"text", "text"},
		{42, "42"},
		{0.5, "0.5"},
		{1.0, "1.0"},
		{1e-05, "1e-05"},
		{true, "true"},
		{[]interface{}{"a", nil, 3}, "a,-,3"},
		{[]string{"align", "couplings"}, "align,couplings"},
		{[]int{25, 341}, "25,341"},
		{map[string]interface{}{}, "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCellValue(tt.value))
		})
	}
}
