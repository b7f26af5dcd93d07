package config

import (
	"fmt"

	"github.com/schmitthub/prompter/internal/logger"
	"github.com/schmitthub/prompter/internal/sources"
)

// Validate checks s for errors and returns all found issues as a
// *MultiValidationError.
func Validate(s *Settings) error {
	var errs []error
	addError := func(field, message string, value interface{}) {
		errs = append(errs, &ValidationError{Field: field, Message: message, Value: value})
	}

	seen := map[string]int{}
	for i, src := range s.Sources {
		field := fmt.Sprintf("sources[%d]", i)
		if _, err := sources.ParseKind(src.Kind); err != nil {
			addError(field+".kind", err.Error(), src.Kind)
		}
		if src.Slot < 1 {
			addError(field+".slot", "must be at least 1", src.Slot)
		}
		seen[src.Kind]++
	}
	for kind, n := range seen {
		if n > 1 {
			logger.Warn().Str("kind", kind).Int("count", n).Msg("source declared more than once")
		}
	}

	commands := map[string]string{
		"commands.privilege": s.Commands.Privilege,
		"commands.toolchain": s.Commands.Toolchain,
		"commands.key":       s.Commands.Key,
	}
	for _, field := range []string{"commands.privilege", "commands.toolchain", "commands.key"} {
		if _, err := sources.ParseCommand(commands[field]); err != nil {
			addError(field, "cannot be split into arguments", commands[field])
		}
	}
	if s.Commands.Timeout < 0 {
		addError("commands.timeout", "must not be negative", s.Commands.Timeout)
	}

	if s.Logging.MaxSizeMB < 0 {
		addError("logging.max_size_mb", "must not be negative", s.Logging.MaxSizeMB)
	}
	if s.Logging.MaxAgeDays < 0 {
		addError("logging.max_age_days", "must not be negative", s.Logging.MaxAgeDays)
	}
	if s.Logging.MaxBackups < 0 {
		addError("logging.max_backups", "must not be negative", s.Logging.MaxBackups)
	}

	if len(errs) > 0 {
		return &MultiValidationError{Errors: errs}
	}
	return nil
}
