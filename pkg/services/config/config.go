package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "REPORTS"

// Inputs are the data files each report dataset is read from.
type Inputs struct {
	Reservations string `mapstructure:"reservations"`
	Phases       string `mapstructure:"phases"`
	Daily        string `mapstructure:"daily"`
	Weeks        string `mapstructure:"weeks"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Config struct {
	Inputs        Inputs   `mapstructure:"inputs"`
	Outputs       []string `mapstructure:"outputs"`
	LongThreshold int      `mapstructure:"long_threshold"`
	Currency      string   `mapstructure:"currency"`
	WeekdayLocale string   `mapstructure:"weekday_locale"`
	Database      string   `mapstructure:"database"`
	LogLevel      string   `mapstructure:"log_level"`
	Server        Server   `mapstructure:"server"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("inputs.reservations", "")
	v.SetDefault("inputs.phases", "")
	v.SetDefault("inputs.daily", "")
	v.SetDefault("inputs.weeks", "")
	v.SetDefault("outputs", []string{"-"})
	v.SetDefault("long_threshold", 3)
	v.SetDefault("currency", "€")
	v.SetDefault("weekday_locale", "fi")
	v.SetDefault("database", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
}

// LoadConfig reads the optional config file at path and REPORTS_* environment variables.
// An empty path loads defaults and environment only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.LongThreshold <= 0 {
		return fmt.Errorf("long_threshold must be positive, got %d", c.LongThreshold)
	}
	switch strings.ToLower(c.WeekdayLocale) {
	case "fi", "en":
	default:
		return fmt.Errorf("weekday_locale must be fi or en, got %q", c.WeekdayLocale)
	}
	if len(c.Outputs) == 0 {
		return errors.New("at least one output is required")
	}
	return nil
}
