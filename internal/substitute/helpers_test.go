package substitute

import (
	"evcouplings/internal/config"
)

// baseConfig returns a fresh base configuration for each test.
func baseConfig() config.Configuration {
	return config.Configuration{
		"global": map[string]interface{}{
			"prefix":        "output/RASH",
			"sequence_id":   "RASH_HUMAN",
			"sequence_file": nil,
			"region":        nil,
		},
		"align": map[string]interface{}{
			"protocol":           "standard",
			"database":           "uniref100",
			"domain_threshold":   0.5,
			"sequence_threshold": 0.5,
			"use_bitscores":      true,
			"iterations":         5,
		},
		"couplings": map[string]interface{}{
			"protocol":   "standard",
			"theta":      0.8,
			"iterations": 100,
		},
		"environment": map[string]interface{}{
			"engine": "slurm",
			"queue":  "medium",
			"cores":  2,
			"memory": "auto",
			"time":   48,
		},
		"databases": map[string]interface{}{
			"uniref100": "/databases/uniref100.fasta",
			"uniref90":  "/databases/uniref90.fasta",
		},
		"stages": []interface{}{"align", "couplings"},
	}
}

func str(s string) Value { return StringValue(s) }
