package substitute

import (
	"evcouplings/internal/config"
	"evcouplings/pkg/logging"
)

// Path is the destination of a simple override: a field inside a mapping section.
type Path struct {
	Section string
	Field   string
}

func (p Path) String() string {
	return p.Section + "." + p.Field
}

// parameterMap maps each directly substitutable parameter to the single field it
// overwrites. Parameters not listed here are either composite (see region.go,
// stages.go, database.go, thresholds.go) or not overridable.
var parameterMap = map[Parameter]Path{
	Prefix:        {config.SectionGlobal, "prefix"},
	Protein:       {config.SectionGlobal, "sequence_id"},
	SeqFile:       {config.SectionGlobal, "sequence_file"},
	Alignment:     {config.SectionAlign, "input_alignment"},
	Iterations:    {config.SectionAlign, "iterations"},
	SeqIDFilter:   {config.SectionAlign, "seqid_filter"},
	SeqCoverage:   {config.SectionAlign, "minimum_sequence_coverage"},
	ColCoverage:   {config.SectionAlign, "minimum_column_coverage"},
	Theta:         {config.SectionCouplings, "theta"},
	PLMIterations: {config.SectionCouplings, "iterations"},
	Queue:         {config.SectionEnvironment, "queue"},
	Time:          {config.SectionEnvironment, "time"},
	Cores:         {config.SectionEnvironment, "cores"},
	Memory:        {config.SectionEnvironment, "memory"},
}

// PathOf returns the destination of a directly substitutable parameter.
func PathOf(p Parameter) (Path, bool) {
	path, ok := parameterMap[p]
	return path, ok
}

// applyParameterMap writes every set, directly mapped override to its destination.
func applyParameterMap(cfg config.Configuration, o Overrides) (config.Configuration, error) {
	for _, p := range Parameters() {
		path, mapped := parameterMap[p]
		if !mapped {
			continue
		}
		v, ok := o.Lookup(p)
		if !ok {
			continue
		}
		cfg = cfg.WithField(path.Section, path.Field, fieldValue(p, v))
		logging.Debug("Substitution", "Set %s from %s", path, p)
	}
	return cfg, nil
}

// fieldValue returns the value to store for p, widening integers given for float
// parameters.
func fieldValue(p Parameter, v Value) interface{} {
	if kind, _ := p.Kind(); kind == KindFloat && v.Kind() == KindInt {
		return float64(v.num)
	}
	return v.Interface()
}
