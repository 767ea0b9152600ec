// Package logging provides subsystem-tagged, leveled logging for the evcouplings
// command line tools.
//
// The package wraps Go's standard slog package. Every record carries a
// subsystem attribute naming the component that produced it, and an optional
// error attribute.
//
// # Log Levels
//   - Debug: per-step detail, e.g. each substitution applied to a configuration
//   - Info: general progress such as the configuration source that was loaded
//   - Warn: conditions worth attention that do not stop the run
//   - Error: failures
//
// # Usage
//
//	logging.InitForCLI(logging.LevelDebug, os.Stderr)
//
//	logging.Info("ConfigLoader", "Loaded configuration from %s", path)
//	logging.Debug("Substitution", "Set %s.%s", section, field)
//	logging.Error("ConfigWatcher", err, "Re-substitution failed")
//
// Until InitForCLI is called all messages are discarded.
//
// # Subsystems
//   - ConfigLoader: reading configuration sources
//   - Substitution: applying overrides to a configuration
//   - ConfigWatcher: watch mode file events
//   - CLI: command execution
package logging
