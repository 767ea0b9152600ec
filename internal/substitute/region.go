package substitute

import (
	"regexp"
	"strconv"

	"evcouplings/internal/config"
	"evcouplings/pkg/logging"
)

var regionPattern = regexp.MustCompile(`^(\d+)-(\d+)$`)

// ParseRegion parses a "start-end" range such as "25-341". The order of the two
// bounds is not checked.
func ParseRegion(s string) (start, end int, err error) {
	m := regionPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, config.NewParameterError(string(Region), s,
			"region string does not have format start-end (e.g. 5-123)")
	}

	start, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, config.NewParameterError(string(Region), s, "region start is out of range")
	}
	end, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, config.NewParameterError(string(Region), s, "region end is out of range")
	}
	return start, end, nil
}

// applyRegion sets global.region to [start, end].
func applyRegion(cfg config.Configuration, o Overrides) (config.Configuration, error) {
	v, ok := o.Lookup(Region)
	if !ok {
		return cfg, nil
	}

	start, end, err := ParseRegion(v.String())
	if err != nil {
		return nil, err
	}

	logging.Debug("Substitution", "Set global.region to %d-%d", start, end)
	return cfg.WithField(config.SectionGlobal, "region", []int{start, end}), nil
}
