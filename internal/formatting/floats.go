package formatting

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"evcouplings/internal/config"
	"evcouplings/internal/substitute"
)

// floatValue is a float64 leaf that keeps its decimal point when encoded, so
// 1.0 is written as 1.0 and not as the integer 1. Downstream readers treat
// integer and float thresholds differently.
type floatValue float64

// MarshalYAML implements yaml.Marshaler.
func (f floatValue) MarshalYAML() (interface{}, error) {
	x := float64(f)
	var text string
	switch {
	case math.IsNaN(x):
		text = ".nan"
	case math.IsInf(x, 1):
		text = ".inf"
	case math.IsInf(x, -1):
		text = "-.inf"
	default:
		text = substitute.FormatFloat(x)
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: text}, nil
}

// MarshalJSON implements json.Marshaler.
func (f floatValue) MarshalJSON() ([]byte, error) {
	x := float64(f)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("unsupported float value %v", x)
	}
	return []byte(substitute.FormatFloat(x)), nil
}

// keepFloats returns a copy of m in which every float64 leaf is a floatValue.
// m is not modified.
func keepFloats(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = keepFloat(v)
	}
	return out
}

func keepFloat(v interface{}) interface{} {
	switch t := v.(type) {
	case float64:
		return floatValue(t)
	case float32:
		return floatValue(t)
	case map[string]interface{}:
		return keepFloats(t)
	case config.Configuration:
		return keepFloats(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = keepFloat(item)
		}
		return out
	case []float64:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = floatValue(item)
		}
		return out
	default:
		return v
	}
}
