package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Validate:
// - Default config with languages passes
// - Missing key or line_comment fails
// - Partial remote triple fails, full triple passes
// - Negative fetch timeout fails
// - Multiple problems are all reported

func validConfig() *Config {
	cfg := Default()
	cfg.Languages = []LanguageConfig{
		{Key: "go", Name: "Go", LineComment: "//"},
	}
	return cfg
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(validConfig()))
}

func TestValidate_MissingKey(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Languages = append(cfg.Languages, LanguageConfig{LineComment: "#"})

	err := Validate(cfg)
	require.ErrorIs(t, err, ErrInvalidLanguage)
}

func TestValidate_MissingLineComment(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Languages = []LanguageConfig{{Key: "go"}}

	err := Validate(cfg)
	require.ErrorIs(t, err, ErrInvalidLanguage)
	assert.Contains(t, err.Error(), "line_comment")
}

func TestValidate_RemoteTriple(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Languages = []LanguageConfig{{
		Key:         "go",
		LineComment: "//",
		Repository:  "acme/examples",
		Branch:      "main",
	}}
	require.ErrorIs(t, Validate(cfg), ErrIncompleteRemote)

	cfg.Languages[0].Path = "go/examples.go"
	require.NoError(t, Validate(cfg))
}

func TestValidate_NegativeTimeout(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Fetch.TimeoutSeconds = -1

	require.ErrorIs(t, Validate(cfg), ErrInvalidFetch)
}

func TestValidate_MultipleErrors(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Languages = []LanguageConfig{{}}
	cfg.Output.Dir = ""

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "output dir")
}
