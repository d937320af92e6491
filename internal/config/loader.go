package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults, then config file, then environment variables (env wins).
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (SNIPDOCS_*)
// 2. Config file (.snipdocs/config.yml or .snipdocs/config.yaml)
// 3. Default values
//
// The languages setting has no default and no env form: its complete absence
// is ErrNoLanguages, a fatal configuration error. An empty list is valid and
// means no languages are configured.
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".snipdocs")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("SNIPDOCS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("output.dir")
	v.BindEnv("fetch.timeout_seconds")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found still has to surface ErrNoLanguages below;
		// any other read error is fatal as-is.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if !v.IsSet("languages") {
		return nil, ErrNoLanguages
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values for everything except
// languages.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("paths.docs", defaults.Paths.Docs)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)
	v.SetDefault("output.dir", defaults.Output.Dir)
	v.SetDefault("fetch.timeout_seconds", defaults.Fetch.TimeoutSeconds)
}

// LoadFromDir loads configuration from a specific root directory.
func LoadFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
