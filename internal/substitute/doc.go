// Package substitute merges command-line overrides into a pipeline run
// configuration.
//
// Overrides are a closed set of named parameters (see Parameter) with typed
// values. A parameter missing from an Overrides map is unset, which is different
// from an empty string or zero.
//
// Substitution runs these steps in order, each producing a new configuration:
//
//  1. Simple parameters are written to their fixed section.field destination
//     (prefix -> global.prefix, theta -> couplings.theta, ...).
//  2. An alignment override selects the "existing" align protocol.
//  3. A region "start-end" becomes global.region = [start, end].
//  4. A comma-separated stage list replaces the top-level stages.
//  5. A database override selects a registered database by name, or registers
//     the value as databases.custom and selects that.
//  6. A bitscores or evalues list (never both) sets align.use_bitscores. A single
//     threshold is written to align.domain_threshold and align.sequence_threshold;
//     several thresholds replace the batch section with one entry per value,
//     named "_b<value>" or "_e<value>".
//
// The first failing step aborts the substitution. Nothing is returned in that
// case and the base configuration is never modified, so there is nothing to
// roll back.
//
// # Usage
//
//	overrides := substitute.Overrides{
//	    substitute.Prefix:  substitute.StringValue("output/RASH"),
//	    substitute.Evalues: substitute.StringValue("1,0.001,10"),
//	}
//	merged, err := substitute.NewEngine().Run("run.yaml", overrides)
//
// The result shares unchanged sections with the base configuration. Clone it
// before modifying it in place.
//
// ExpandJobs turns a merged configuration with a batch section into the list of
// concrete job configurations a batch executor would run.
package substitute
