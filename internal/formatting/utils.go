package formatting

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"evcouplings/internal/substitute"
)

// PrettyJSON formats any value as indented JSON for human-readable display.
//
// Example:
//
//	data := map[string]interface{}{"name": "test", "value": 42}
//	out, _ := formatting.PrettyJSON(data)
//	// {
//	//   "name": "test",
//	//   "value": 42
//	// }
func PrettyJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Entry is a leaf value of a nested configuration and its dotted path.
type Entry struct {
	Path  string
	Value interface{}
}

// Flatten returns the leaves of a nested mapping sorted by path. Lists are leaves;
// empty mappings appear as a single entry so they stay visible.
func Flatten(m map[string]interface{}) []Entry {
	var entries []Entry
	flattenInto(&entries, "", m)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries
}

func flattenInto(entries *[]Entry, prefix string, m map[string]interface{}) {
	for key, value := range m {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		nested, ok := value.(map[string]interface{})
		if ok && len(nested) > 0 {
			flattenInto(entries, path, nested)
			continue
		}
		*entries = append(*entries, Entry{Path: path, Value: value})
	}
}

// FormatCellValue renders a value for a table cell. nil becomes "-", lists are
// joined with commas and empty mappings are shown as "{}".
func FormatCellValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case string:
		if v == "" {
			return `""`
		}
		return v
	case float64:
		return substitute.FormatFloat(v)
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = FormatCellValue(item)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(v, ",")
	case []int:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	case map[string]interface{}:
		if len(v) == 0 {
			return "{}"
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
