package substitute

import (
	"fmt"
	"sort"

	"dario.cat/mergo"

	"evcouplings/internal/config"
)

// Job is one pipeline run described by a merged configuration.
type Job struct {
	// Name is the batch entry name, empty for an unbatched configuration.
	Name string
	// Prefix is the output prefix of the job: global.prefix plus Name.
	Prefix string
	// Config is the complete configuration of the job, without a batch section.
	Config config.Configuration
}

// ExpandJobs resolves the batch section of cfg into the individual jobs it
// describes, sorted by name. Each batch entry overlay is deep-merged onto a copy
// of the rest of the configuration, overlay values winning. Without a batch
// section cfg describes a single job. cfg itself is not modified.
func ExpandJobs(cfg config.Configuration) ([]Job, error) {
	prefix := ""
	if v, ok := cfg.Get(config.SectionGlobal, "prefix"); ok && v != nil {
		prefix = fmt.Sprint(v)
	}

	batch, hasBatch := cfg.Section(config.SectionBatch)
	if !hasBatch || len(batch) == 0 {
		return []Job{{Prefix: prefix, Config: cfg.Without(config.SectionBatch)}}, nil
	}

	names := make([]string, 0, len(batch))
	for name := range batch {
		names = append(names, name)
	}
	sort.Strings(names)

	shared := cfg.Without(config.SectionBatch)
	jobs := make([]Job, 0, len(names))
	for _, name := range names {
		overlay, ok := config.AsMapping(batch[name])
		if !ok && batch[name] != nil {
			return nil, config.FormatValidationError("batch entry", name, config.ValidationError{
				Field:   config.SectionBatch + "." + name,
				Value:   batch[name],
				Message: fmt.Sprintf("must be a mapping, got %T", batch[name]),
			})
		}

		merged := map[string]interface{}(shared.Clone())
		if len(overlay) > 0 {
			src := map[string]interface{}(config.Configuration(overlay).Clone())
			if err := mergo.Merge(&merged, src, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("merging batch entry %s: %w", name, err)
			}
		}

		job := Job{
			Name:   name,
			Prefix: prefix + name,
			Config: config.Configuration(merged),
		}
		job.Config = job.Config.WithField(config.SectionGlobal, "prefix", job.Prefix)
		jobs = append(jobs, job)
	}

	return jobs, nil
}
