package substitute

import (
	"evcouplings/internal/config"
	"evcouplings/pkg/logging"
)

// CustomDatabase is the databases key under which an unregistered database path
// is stored.
const CustomDatabase = "custom"

// applyDatabase points align.database at a registered database, or registers the
// given value as a custom database path when no database of that name exists.
func applyDatabase(cfg config.Configuration, o Overrides) (config.Configuration, error) {
	v, ok := o.Lookup(Database)
	if !ok {
		return cfg, nil
	}
	name := v.String()

	databases, _ := cfg.Section(config.SectionDatabases)
	if _, registered := databases[name]; registered {
		logging.Debug("Substitution", "Using registered database %s", name)
		return cfg.WithField(config.SectionAlign, "database", name), nil
	}

	logging.Debug("Substitution", "Registering %s as custom database", name)
	cfg = cfg.WithField(config.SectionDatabases, CustomDatabase, name)
	return cfg.WithField(config.SectionAlign, "database", CustomDatabase), nil
}
