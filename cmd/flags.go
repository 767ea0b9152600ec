package cmd

import (
	"fmt"

	"evcouplings/internal/formatting"
	"evcouplings/internal/substitute"

	"github.com/spf13/pflag"
)

// overrideFlag describes the command line flag of one override parameter.
// The flag name is the parameter name.
type overrideFlag struct {
	param     substitute.Parameter
	shorthand string
	usage     string
}

var overrideFlags = []overrideFlag{
	{substitute.Prefix, "P", "Job prefix"},
	{substitute.Stages, "S", "Stages of pipeline to run (comma-separated)"},
	{substitute.Protein, "p", "Sequence identifier of query protein"},
	{substitute.SeqFile, "s", "FASTA file with query sequence"},
	{substitute.Alignment, "a", "Existing sequence alignment to start from (aligned FASTA/Stockholm)"},
	{substitute.Region, "r", "Region of query sequence (e.g. 25-341)"},
	{substitute.Bitscores, "b", "List of alignment bitscores (comma-separated, length-normalized (float) or absolute score (int))"},
	{substitute.Evalues, "e", "List of alignment E-values (negative exponent, comma-separated)"},
	{substitute.Iterations, "n", "Number of alignment iterations"},
	{substitute.Database, "d", "Path or name of sequence database"},
	{substitute.SeqIDFilter, "i", "Filter alignment at x% sequence identity"},
	{substitute.SeqCoverage, "f", "Minimum % aligned positions per sequence"},
	{substitute.ColCoverage, "m", "Minimum % aligned positions per column"},
	{substitute.Theta, "t", "Downweight sequences above this identity cutoff during inference (e.g. 0.8 for 80% identity cutoff)"},
	{substitute.PLMIterations, "", "Maximum number of iterations during inference"},
	{substitute.Queue, "Q", "Grid queue to run job(s)"},
	{substitute.Time, "T", "Time requirement (hours) for batch jobs"},
	{substitute.Cores, "N", "Number of cores for batch jobs"},
	{substitute.Memory, "M", "Memory requirement for batch jobs (MB or 'auto')"},
}

// overrideValue keeps the raw text of an override flag. Numbers are parsed
// later by substitute.ParseValue, in base 10, so "010" is ten.
type overrideValue struct {
	raw  string
	kind substitute.Kind
}

func (v *overrideValue) String() string { return v.raw }

func (v *overrideValue) Set(s string) error {
	v.raw = s
	return nil
}

// Type names the value in help output.
func (v *overrideValue) Type() string {
	switch v.kind {
	case substitute.KindInt:
		return "int"
	case substitute.KindFloat:
		return "float"
	default:
		return "string"
	}
}

// registerOverrideFlags adds one flag per override parameter.
func registerOverrideFlags(fs *pflag.FlagSet) {
	for _, f := range overrideFlags {
		kind, _ := f.param.Kind()
		fs.VarP(&overrideValue{kind: kind}, string(f.param), f.shorthand, f.usage)
	}
}

// collectOverrides reads the override flags that were given on the command line.
// Flags left at their default are unset, even if the default is a valid value.
func collectOverrides(fs *pflag.FlagSet) (substitute.Overrides, error) {
	overrides := substitute.Overrides{}
	for _, f := range overrideFlags {
		flag := fs.Lookup(string(f.param))
		if flag == nil || !flag.Changed {
			continue
		}
		value, err := substitute.ParseValue(f.param, flag.Value.String())
		if err != nil {
			return nil, fmt.Errorf("reading flag --%s: %w", flag.Name, err)
		}
		overrides[f.param] = value
	}
	return overrides, nil
}

// outputFlags holds the output options shared by commands printing configurations.
type outputFlags struct {
	// Format is the output format (yaml, json, table)
	Format string
}

func registerOutputFlags(fs *pflag.FlagSet, flags *outputFlags, defaultFormat formatting.OutputFormat) {
	fs.StringVarP(&flags.Format, "output", "o", string(defaultFormat), "Output format (yaml, json, table)")
}

func (f *outputFlags) formatter() (formatting.Formatter, error) {
	format, err := formatting.ParseFormat(f.Format)
	if err != nil {
		return nil, err
	}
	return formatting.NewFormatter(format)
}
