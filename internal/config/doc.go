// Package config provides the pipeline run configuration model and its loader.
//
// A run configuration is a two-level structure: top-level sections (global, align,
// couplings, environment, databases, stages and the optional batch section), most
// of which map field names to values.
//
//	global:
//	  prefix: output/my_protein
//	  sequence_id: RASH_HUMAN
//	  sequence_file: null
//	  region: null
//	align:
//	  protocol: standard
//	  database: uniref100
//	  domain_threshold: 0.5
//	  sequence_threshold: 0.5
//	  use_bitscores: true
//	couplings:
//	  protocol: standard
//	  theta: 0.8
//	environment:
//	  engine: slurm
//	  queue: medium
//	  cores: 2
//	databases:
//	  uniref100: /databases/uniref100.fasta
//	  uniref90: /databases/uniref90.fasta
//	stages:
//	  - align
//	  - couplings
//
// # Loading
//
// Load reads YAML (or JSON) and TOML sources. A source that is missing or empty
// fails with a ResourceError, which matches ErrResourceUnavailable:
//
//	cfg, err := config.Load("run.yaml")
//	if errors.Is(err, config.ErrResourceUnavailable) {
//	    // report and exit
//	}
//
// # Errors
//
// Three error kinds are defined, each with a sentinel for errors.Is:
//   - ResourceError / ErrResourceUnavailable: the source cannot be used
//   - ParameterError / ErrInvalidParameter: an override value is malformed
//   - ValidationError / ErrInvalidConfiguration: the base configuration lacks a
//     required section or a section has the wrong shape
//
// # Immutability
//
// Configuration values are never modified in place by this module. WithField,
// With and Without return copies that share untouched sections with the original.
package config
