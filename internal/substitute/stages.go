package substitute

import (
	"strings"
	"unicode"

	"evcouplings/internal/config"
	"evcouplings/pkg/logging"
)

// SplitList removes all whitespace from s and splits the remainder on commas.
// Empty items are kept, so "a,,b" yields three items and "" yields one.
func SplitList(s string) []string {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.Split(compact, ",")
}

// applyStages replaces the top-level stage list.
func applyStages(cfg config.Configuration, o Overrides) (config.Configuration, error) {
	v, ok := o.Lookup(Stages)
	if !ok {
		return cfg, nil
	}

	stages := SplitList(v.String())
	logging.Debug("Substitution", "Set stages to %v", stages)
	return cfg.With(config.SectionStages, stages), nil
}
