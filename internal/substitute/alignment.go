package substitute

import (
	"evcouplings/internal/config"
	"evcouplings/pkg/logging"
)

// ExistingProtocol is the align protocol that starts from a supplied alignment.
const ExistingProtocol = "existing"

// applyExistingAlignment selects the existing-alignment protocol whenever an
// alignment is supplied. global.sequence_file is left as it is even if it was set;
// the pipeline does not read it under this protocol.
func applyExistingAlignment(cfg config.Configuration, o Overrides) (config.Configuration, error) {
	if !o.IsSet(Alignment) {
		return cfg, nil
	}
	if o.IsSet(SeqFile) {
		logging.Debug("Substitution", "Sequence file is ignored by the %s protocol", ExistingProtocol)
	}
	return cfg.WithField(config.SectionAlign, "protocol", ExistingProtocol), nil
}
