package substitute

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"evcouplings/internal/config"
)

// Parameter names an override that can be supplied on top of a base configuration.
type Parameter string

const (
	Prefix        Parameter = "prefix"
	Protein       Parameter = "protein"
	SeqFile       Parameter = "seqfile"
	Alignment     Parameter = "alignment"
	Region        Parameter = "region"
	Stages        Parameter = "stages"
	Database      Parameter = "database"
	Bitscores     Parameter = "bitscores"
	Evalues       Parameter = "evalues"
	Iterations    Parameter = "iterations"
	SeqIDFilter   Parameter = "id"
	SeqCoverage   Parameter = "seqcov"
	ColCoverage   Parameter = "colcov"
	Theta         Parameter = "theta"
	PLMIterations Parameter = "plmiter"
	Queue         Parameter = "queue"
	Time          Parameter = "time"
	Cores         Parameter = "cores"
	Memory        Parameter = "memory"
)

// Kind is the value type a parameter accepts.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// parameters is the closed set of overridable parameters in presentation order.
var parameters = []struct {
	name Parameter
	kind Kind
}{
	{Prefix, KindString},
	{Protein, KindString},
	{SeqFile, KindString},
	{Alignment, KindString},
	{Region, KindString},
	{Stages, KindString},
	{Database, KindString},
	{Bitscores, KindString},
	{Evalues, KindString},
	{Iterations, KindInt},
	{SeqIDFilter, KindInt},
	{SeqCoverage, KindInt},
	{ColCoverage, KindInt},
	{Theta, KindFloat},
	{PLMIterations, KindInt},
	{Queue, KindString},
	{Time, KindInt},
	{Cores, KindInt},
	{Memory, KindString},
}

// Parameters returns every known parameter.
func Parameters() []Parameter {
	out := make([]Parameter, len(parameters))
	for i, p := range parameters {
		out[i] = p.name
	}
	return out
}

// Kind returns the value type of a parameter, and false for unknown names.
func (p Parameter) Kind() (Kind, bool) {
	for _, known := range parameters {
		if known.name == p {
			return known.kind, true
		}
	}
	return KindString, false
}

// Value is a typed override value. The zero Value is an empty string.
type Value struct {
	kind Kind
	str  string
	num  int
	real float64
}

// StringValue wraps a string override.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue wraps an integer override.
func IntValue(i int) Value {
	return Value{kind: KindInt, num: i}
}

// FloatValue wraps a float override.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, real: f}
}

// Kind returns the type of the wrapped value.
func (v Value) Kind() Kind {
	return v.kind
}

// Interface returns the wrapped value as string, int or float64.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindInt:
		return v.num
	case KindFloat:
		return v.real
	default:
		return v.str
	}
}

// String returns the textual form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.num)
	case KindFloat:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	default:
		return v.str
	}
}

// decimalPattern is plain decimal notation with an optional exponent. It keeps
// out the hex floats, underscores and inf/nan words strconv.ParseFloat accepts.
var decimalPattern = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

func parseDecimal(s string) (float64, error) {
	if !decimalPattern.MatchString(s) {
		return 0, fmt.Errorf("%q is not a decimal number", s)
	}
	return strconv.ParseFloat(s, 64)
}

// ParseValue converts raw text to the declared kind of a parameter.
func ParseValue(p Parameter, raw string) (Value, error) {
	kind, ok := p.Kind()
	if !ok {
		return Value{}, config.NewParameterError(string(p), raw, "unknown parameter")
	}

	switch kind {
	case KindInt:
		i, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, config.NewParameterError(string(p), raw, "must be an integer")
		}
		return IntValue(i), nil
	case KindFloat:
		f, err := parseDecimal(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, config.NewParameterError(string(p), raw, "must be a number")
		}
		return FloatValue(f), nil
	default:
		return StringValue(raw), nil
	}
}

// Overrides is a set of overrides. A parameter that is not in the map is unset,
// which is distinct from being set to an empty string or zero.
type Overrides map[Parameter]Value

// Lookup returns the value of a parameter and whether it is set.
func (o Overrides) Lookup(p Parameter) (Value, bool) {
	v, ok := o[p]
	return v, ok
}

// IsSet reports whether a parameter has a value.
func (o Overrides) IsSet(p Parameter) bool {
	_, ok := o[p]
	return ok
}

// Validate rejects values whose kind does not match the parameter. A float
// parameter also accepts an integer value. Unknown parameters are not an error;
// substitution ignores them.
func (o Overrides) Validate() error {
	for _, p := range parameters {
		v, ok := o[p.name]
		if !ok {
			continue
		}
		if v.kind == p.kind || (p.kind == KindFloat && v.kind == KindInt) {
			continue
		}
		return config.NewParameterError(string(p.name), v.String(),
			fmt.Sprintf("expects %s value, got %s", p.kind, v.kind))
	}
	return nil
}

// Unknown returns the parameters in o that are not part of the known set, sorted.
func (o Overrides) Unknown() []Parameter {
	var unknown []Parameter
	for p := range o {
		if _, ok := p.Kind(); !ok {
			unknown = append(unknown, p)
		}
	}
	slices.Sort(unknown)
	return unknown
}
