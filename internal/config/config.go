// Package config loads engine configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds the recalculation engine's configuration loaded from the
// environment.
type Config struct {
	AppEnv    string `validate:"required"`
	LogLevel  string `validate:"required"`
	LogFormat string `validate:"required,oneof=json console text"`

	// DefaultChannel and DefaultCurrency seed orders built by the recalc
	// tool when the fixture does not name them.
	DefaultChannel  string `validate:"required"`
	DefaultCurrency string `validate:"required,len=3"`

	// TaxCalculationStrategy is the channel's strategy name; it must match a
	// registered tax calculation strategy.
	TaxCalculationStrategy string `validate:"required"`

	// PaymentTargetState is the payment state the pipeline provisions.
	PaymentTargetState string `validate:"required"`
}

// Load reads configuration from environment variables and an optional .env
// file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:                 valueOrDefault(k.String("APP_ENV"), "development"),
		LogLevel:               valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:              valueOrDefault(k.String("LOG_FORMAT"), "json"),
		DefaultChannel:         valueOrDefault(k.String("DEFAULT_CHANNEL"), "WEB"),
		DefaultCurrency:        valueOrDefault(k.String("DEFAULT_CURRENCY"), "USD"),
		TaxCalculationStrategy: valueOrDefault(k.String("TAX_CALCULATION_STRATEGY"), "order_item_units_based"),
		PaymentTargetState:     valueOrDefault(k.String("PAYMENT_TARGET_STATE"), "cart"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// MustLoad behaves like Load but panics on error. Useful for command
// entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}
