// Package appconf provides Viper-based configuration for bixistats
package appconf

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config represents the complete bixistats configuration
type Config struct {
	Env     string        `mapstructure:"env" yaml:"env" validate:"oneof=development test production"`
	Data    DataConfig    `mapstructure:"data" yaml:"data"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
}

// DataConfig selects the trip file and the time zone used to read its timestamps
type DataConfig struct {
	File     string `mapstructure:"file" yaml:"file"`
	Timezone string `mapstructure:"timezone" yaml:"timezone" validate:"required"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Colors  bool `mapstructure:"colors" yaml:"colors"`
	MaxRows int  `mapstructure:"max_rows" yaml:"max_rows" validate:"gte=0"`
}

// Overrides carries command-line values that take precedence over files and
// environment variables. Empty fields are ignored.
type Overrides struct {
	File     string
	Timezone string
	Verbose  bool
	NoColor  bool
}

// Load reads configuration from an optional file, BIXI_* environment
// variables and overrides, in increasing order of precedence.
func Load(cfgFile string, overrides Overrides) (*Config, string, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".bixistats")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/bixistats")
	}

	v.SetEnvPrefix("BIXI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	applyOverrides(v, overrides)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("validating config: %w", err)
	}

	return &cfg, v.ConfigFileUsed(), nil
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	return &Config{
		Env:     Development.String(),
		Data:    DataConfig{Timezone: "Local"},
		Logging: LoggingConfig{Level: "warn", Format: "text"},
		Output:  OutputConfig{Colors: true},
	}
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("env", defaults.Env)
	v.SetDefault("data.file", defaults.Data.File)
	v.SetDefault("data.timezone", defaults.Data.Timezone)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("output.colors", defaults.Output.Colors)
	v.SetDefault("output.max_rows", defaults.Output.MaxRows)
}

func applyOverrides(v *viper.Viper, overrides Overrides) {
	if overrides.File != "" {
		v.Set("data.file", overrides.File)
	}
	if overrides.Timezone != "" {
		v.Set("data.timezone", overrides.Timezone)
	}
	if overrides.Verbose {
		v.Set("logging.level", "debug")
	}
	if overrides.NoColor {
		v.Set("output.colors", false)
	}
}

// Validate checks struct constraints and that the time zone can be resolved
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves data.timezone ("Local", "UTC" or an IANA name)
func (c *Config) Location() (*time.Location, error) {
	switch c.Data.Timezone {
	case "", "Local":
		return time.Local, nil
	default:
		loc, err := time.LoadLocation(c.Data.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid data.timezone %q: %w", c.Data.Timezone, err)
		}
		return loc, nil
	}
}

// Environment maps the env setting to its constant
func (c *Config) Environment() Environment {
	return EnvFlagToEnvironment(c.Env)
}
