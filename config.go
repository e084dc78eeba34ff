package linecolumn

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/shibukawa/linecolumn/lineindex"
)

// DefaultConfigFile is the configuration file looked up when none is given
const DefaultConfigFile = "linecolumn.yaml"

// Config represents the linecolumn configuration
type Config struct {
	Origin *int         `yaml:"origin"` // Pointer to distinguish between unset and 0
	Unit   string       `yaml:"unit"`
	Output OutputConfig `yaml:"output"`
}

// OutputConfig represents result rendering settings
type OutputConfig struct {
	Format  string `yaml:"format"`
	Color   *bool  `yaml:"color"`
	Context bool   `yaml:"context"` // print the text of the matched line
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if file doesn't exist
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data, applying defaults
func ParseConfig(data []byte) (*Config, error) {
	var config Config

	// Parse YAML with strict mode to detect unknown fields
	err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	applyDefaults(&config)

	return &config, nil
}

// Validate checks the configuration for unsupported values
func (c *Config) Validate() error {
	if c.Origin != nil && *c.Origin != 0 && *c.Origin != 1 {
		return fmt.Errorf("%w: origin must be 0 or 1, got %d", ErrConfigValidation, *c.Origin)
	}

	if _, err := lineindex.ParseUnit(c.Unit); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	if c.Output.Format != "" {
		validFormats := map[string]bool{
			"text": true,
			"json": true,
			"yaml": true,
		}
		if !validFormats[c.Output.Format] {
			return fmt.Errorf("%w: output.format '%s' is invalid: must be one of text, json, yaml", ErrConfigValidation, c.Output.Format)
		}
	}

	return nil
}

// IndexOptions returns the lineindex options described by the configuration
func (c *Config) IndexOptions() (lineindex.Options, error) {
	unit, err := lineindex.ParseUnit(c.Unit)
	if err != nil {
		return lineindex.Options{}, err
	}

	return lineindex.Options{
		ZeroOrigin: c.Origin != nil && *c.Origin == 0,
		Unit:       unit,
	}, nil
}

// ColorEnabled returns true unless color output is explicitly disabled
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

func intPtr(n int) *int {
	return &n
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Origin: intPtr(1),
		Unit:   "rune",
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	if config.Origin == nil {
		config.Origin = intPtr(1)
	}

	if config.Unit == "" {
		config.Unit = "rune"
	}

	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	plainEnvVar  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return plainEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in string settings
func expandConfigEnvVars(config *Config) {
	config.Unit = expandEnvVars(config.Unit)
	config.Output.Format = expandEnvVars(config.Output.Format)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
