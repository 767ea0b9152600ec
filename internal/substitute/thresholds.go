package substitute

import (
	"math"
	"strconv"
	"strings"

	"evcouplings/internal/config"
	"evcouplings/pkg/logging"
)

// Batch entry name prefixes for bitscore and E-value thresholds.
const (
	BitscorePrefix = "_b"
	EvaluePrefix   = "_e"
)

// Threshold is an alignment inclusion threshold. Integers are absolute bitscores
// or E-value exponents; floats are length-normalized bitscores or exponents.
type Threshold struct {
	integer int
	real    float64
	isFloat bool
}

// IntThreshold returns an integer threshold.
func IntThreshold(i int) Threshold {
	return Threshold{integer: i}
}

// FloatThreshold returns a float threshold.
func FloatThreshold(f float64) Threshold {
	return Threshold{real: f, isFloat: true}
}

// IsFloat reports whether the threshold was given with a decimal point.
func (t Threshold) IsFloat() bool {
	return t.isFloat
}

// Value returns the threshold as int or float64.
func (t Threshold) Value() interface{} {
	if t.isFloat {
		return t.real
	}
	return t.integer
}

// String returns the canonical text form used in batch entry names: integers in
// decimal, floats in shortest round-trip form with at least one fractional digit,
// switching to exponent notation below 1e-4 and from 1e16 ("0.5", "10.0", "1e-05").
func (t Threshold) String() string {
	if !t.isFloat {
		return strconv.Itoa(t.integer)
	}
	return FormatFloat(t.real)
}

// FormatFloat renders f in the text form of a float threshold. Finite values
// always carry a decimal point or an exponent, so they read back as floats.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseThresholds parses a comma-separated list of thresholds. Whitespace is
// ignored. Tokens with a decimal point are floats, all others integers. Any bad
// token fails the whole list, and the error names the complete raw input.
func ParseThresholds(p Parameter, raw string) ([]Threshold, error) {
	tokens := SplitList(raw)
	thresholds := make([]Threshold, 0, len(tokens))

	for _, token := range tokens {
		if strings.Contains(token, ".") {
			f, err := parseDecimal(token)
			if err != nil {
				return nil, config.NewParameterError(string(p), raw, "bitscore/E-value threshold(s) must be numeric")
			}
			thresholds = append(thresholds, FloatThreshold(f))
			continue
		}
		i, err := strconv.Atoi(token)
		if err != nil {
			return nil, config.NewParameterError(string(p), raw, "bitscore/E-value threshold(s) must be numeric")
		}
		thresholds = append(thresholds, IntThreshold(i))
	}

	return thresholds, nil
}

// BatchName returns the batch entry name for a threshold, e.g. "_b0.5" or "_e10".
func BatchName(t Threshold, useBitscores bool) string {
	if useBitscores {
		return BitscorePrefix + t.String()
	}
	return EvaluePrefix + t.String()
}

// applyThresholds handles the mutually exclusive bitscores and evalues overrides.
// A single threshold is written to align directly; several thresholds replace
// the batch section with one entry per threshold and leave align untouched.
func applyThresholds(cfg config.Configuration, o Overrides) (config.Configuration, error) {
	bitscores, hasBitscores := o.Lookup(Bitscores)
	evalues, hasEvalues := o.Lookup(Evalues)

	if hasBitscores && hasEvalues {
		return nil, config.NewParameterError(string(Evalues), evalues.String(),
			"can not specify bitscore and E-value threshold at the same time")
	}

	var (
		param        Parameter
		raw          string
		useBitscores bool
	)
	switch {
	case hasBitscores:
		param, raw, useBitscores = Bitscores, bitscores.String(), true
	case hasEvalues:
		param, raw, useBitscores = Evalues, evalues.String(), false
	default:
		return cfg, nil
	}

	thresholds, err := ParseThresholds(param, raw)
	if err != nil {
		return nil, err
	}

	cfg = cfg.WithField(config.SectionAlign, "use_bitscores", useBitscores)

	if len(thresholds) == 1 {
		t := thresholds[0].Value()
		logging.Debug("Substitution", "Set single %s threshold %v", param, t)
		cfg = cfg.WithField(config.SectionAlign, "domain_threshold", t)
		return cfg.WithField(config.SectionAlign, "sequence_threshold", t), nil
	}

	batch := make(map[string]interface{}, len(thresholds))
	for _, t := range thresholds {
		// Equal thresholds share a name; the later entry wins.
		batch[BatchName(t, useBitscores)] = map[string]interface{}{
			config.SectionAlign: map[string]interface{}{
				"domain_threshold":   t.Value(),
				"sequence_threshold": t.Value(),
			},
		}
	}
	logging.Debug("Substitution", "Created %d batch entries from %d %s thresholds", len(batch), len(thresholds), param)
	return cfg.With(config.SectionBatch, batch), nil
}
