package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoLanguages indicates the languages setting is absent entirely.
	// There is nothing meaningful to build without language definitions, so
	// this aborts the build. An empty languages list is not this error.
	ErrNoLanguages = errors.New("no languages configuration found: add a languages list to .snipdocs/config.yml")

	// ErrInvalidLanguage indicates a malformed language entry
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrIncompleteRemote indicates a partial remote source triple
	ErrIncompleteRemote = errors.New("incomplete remote source")

	// ErrInvalidFetch indicates invalid fetch settings
	ErrInvalidFetch = errors.New("invalid fetch settings")

	// ErrInvalidOutput indicates invalid output settings
	ErrInvalidOutput = errors.New("invalid output settings")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	for i, lang := range cfg.Languages {
		if err := validateLanguage(i, lang); err != nil {
			errs = append(errs, err)
		}
	}

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		errs = append(errs, fmt.Errorf("%w: output dir is required", ErrInvalidOutput))
	}

	if cfg.Fetch.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("%w: timeout_seconds cannot be negative, got %d",
			ErrInvalidFetch, cfg.Fetch.TimeoutSeconds))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateLanguage(index int, lang LanguageConfig) error {
	var errs []error

	if strings.TrimSpace(lang.Key) == "" {
		errs = append(errs, fmt.Errorf("%w: entry %d has no key", ErrInvalidLanguage, index))
	}

	if strings.TrimSpace(lang.LineComment) == "" {
		errs = append(errs, fmt.Errorf("%w: %q has no line_comment", ErrInvalidLanguage, lang.Key))
	}

	// The remote triple is all-or-nothing.
	remoteFields := 0
	for _, field := range []string{lang.Repository, lang.Branch, lang.Path} {
		if strings.TrimSpace(field) != "" {
			remoteFields++
		}
	}
	if remoteFields > 0 && remoteFields < 3 {
		errs = append(errs, fmt.Errorf("%w: %q sets only %d of repository/branch/path",
			ErrIncompleteRemote, lang.Key, remoteFields))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
