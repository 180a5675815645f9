package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "PAYMENTS_REPORT"

const (
	FormatText  = "text"
	FormatTable = "table"
	FormatCSV   = "csv"
)

// Config holds the report options. Values come from flags, then
// PAYMENTS_REPORT_* environment variables (or a .env file), then defaults.
type Config struct {
	Format  string `mapstructure:"format" validate:"oneof=text table csv"`
	OutDir  string `mapstructure:"out_dir" validate:"required_if=Format csv"`
	Verbose bool   `mapstructure:"verbose"`
}

// NewViper returns a viper instance with the defaults and environment
// binding in place. Flags are bound onto it by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("format", FormatText)
	v.SetDefault("out_dir", "")
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads a .env file from the working directory, if there is one.
func LoadDotEnv() {
	_ = godotenv.Load()
}

func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("Failed to read configuration: %w", err)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("Invalid configuration: %w", err)
	}
	return cfg, nil
}
