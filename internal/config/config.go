package config

import "time"

// Config represents the complete snipdocs configuration.
// It can be loaded from .snipdocs/config.yml with environment variable overrides.
type Config struct {
	Languages []LanguageConfig `yaml:"languages" mapstructure:"languages"`
	Paths     PathsConfig      `yaml:"paths" mapstructure:"paths"`
	Output    OutputConfig     `yaml:"output" mapstructure:"output"`
	Fetch     FetchConfig      `yaml:"fetch" mapstructure:"fetch"`
}

// LanguageConfig describes one snippet language. Key and LineComment are
// required; the remote triple (Repository, Branch, Path) is optional but must
// be complete when any part of it is present.
type LanguageConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`                   // unique id, e.g. "go"
	Name        string `yaml:"name" mapstructure:"name"`                 // display label
	Highlight   string `yaml:"highlight" mapstructure:"highlight"`       // syntax scheme id
	LineComment string `yaml:"line_comment" mapstructure:"line_comment"` // comment token, e.g. "//"
	Repository  string `yaml:"repository" mapstructure:"repository"`     // e.g. "acme/examples"
	Branch      string `yaml:"branch" mapstructure:"branch"`
	Path        string `yaml:"path" mapstructure:"path"`
}

// PathsConfig defines which documents to build and which to ignore.
type PathsConfig struct {
	Docs   []string `yaml:"docs" mapstructure:"docs"`     // glob patterns for source documents
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to ignore
}

// OutputConfig defines where rendered pages are written.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// FetchConfig tunes the remote snippet pull.
type FetchConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// Timeout returns the fetch timeout as a duration.
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// Default returns a configuration with sensible defaults. Languages carry no
// default: a configuration without the languages setting is a hard error,
// surfaced by the loader.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Docs: []string{
				"**/*.txt",
				"**/*.rst",
			},
			Ignore: []string{
				"_build/**",
				".git/**",
			},
		},
		Output: OutputConfig{
			Dir: "_build",
		},
		Fetch: FetchConfig{
			TimeoutSeconds: 30,
		},
	}
}
