package config

import (
	"fmt"
	"strings"
	"time"

	"khqr-payment-gateway/pkg/apperror"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Merchant MerchantConfig `mapstructure:"merchant"`
	Provider ProviderConfig `mapstructure:"provider"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// MerchantConfig holds merchant identity and Bakong integration credentials.
// Token, BankAccount and PhoneNumber are required; the rest have defaults.
type MerchantConfig struct {
	Token           string `mapstructure:"token"` // Bakong integration token (secret)
	BankAccount     string `mapstructure:"bank_account"`
	PhoneNumber     string `mapstructure:"phone_number"`
	Name            string `mapstructure:"name"`
	City            string `mapstructure:"city"`
	TerminalLabel   string `mapstructure:"terminal_label"`
	StoreLabel      string `mapstructure:"store_label"`
	CallbackURL     string `mapstructure:"callback_url"`
	AppIconURL      string `mapstructure:"app_icon_url"`
	AppName         string `mapstructure:"app_name"`
	DefaultCurrency string `mapstructure:"default_currency"`
}

// ProviderConfig holds the Bakong API endpoint and the external KHQR
// payload encoder command.
type ProviderConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	EncoderCommand string        `mapstructure:"encoder_command"`
}

// RedisConfig configures the optional terminal-status cache.
// Enabled=false keeps the gateway fully stateless.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Validate checks required merchant fields and reports every missing one in
// a single error, not just the first.
func (c *Config) Validate() error {
	var missing []string
	if c.Merchant.Token == "" {
		missing = append(missing, "BAKONG_TOKEN")
	}
	if c.Merchant.BankAccount == "" {
		missing = append(missing, "BANK_ACCOUNT")
	}
	if c.Merchant.PhoneNumber == "" {
		missing = append(missing, "PHONE_NUMBER")
	}
	if len(missing) > 0 {
		return apperror.ErrMissingConfig(missing)
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: KHQR.
// Nested keys use underscore: KHQR_MERCHANT_TOKEN, KHQR_SERVER_PORT, etc.
// Legacy unprefixed names (BAKONG_TOKEN, BANK_ACCOUNT, PHONE_NUMBER, ...)
// are bound as aliases so existing environments keep working. Load is
// idempotent; the CLI and the server both call it fresh.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("merchant.token", "")
	v.SetDefault("merchant.bank_account", "")
	v.SetDefault("merchant.phone_number", "")
	v.SetDefault("merchant.name", "Baby Bear")
	v.SetDefault("merchant.city", "Phnom Penh")
	v.SetDefault("merchant.terminal_label", "BabyBear-Checkout")
	v.SetDefault("merchant.store_label", "Baby Bear")
	v.SetDefault("merchant.callback_url", "https://vct-babybear.vercel.app/my-orders")
	v.SetDefault("merchant.app_icon_url", "https://vct-babybear.vercel.app/icons/icon-192x192.png")
	v.SetDefault("merchant.app_name", "Baby Bear")
	v.SetDefault("merchant.default_currency", "USD")
	v.SetDefault("provider.base_url", "https://api-bakong.nbc.gov.kh")
	v.SetDefault("provider.timeout", "10s")
	v.SetDefault("provider.encoder_command", "")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: KHQR_MERCHANT_TOKEN -> merchant.token
	v.SetEnvPrefix("KHQR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Legacy unprefixed names kept for existing environments.
	_ = v.BindEnv("merchant.token", "KHQR_MERCHANT_TOKEN", "BAKONG_TOKEN")
	_ = v.BindEnv("merchant.bank_account", "KHQR_MERCHANT_BANK_ACCOUNT", "BANK_ACCOUNT")
	_ = v.BindEnv("merchant.phone_number", "KHQR_MERCHANT_PHONE_NUMBER", "PHONE_NUMBER")
	_ = v.BindEnv("merchant.name", "KHQR_MERCHANT_NAME", "MERCHANT_NAME")
	_ = v.BindEnv("merchant.city", "KHQR_MERCHANT_CITY", "MERCHANT_CITY")
	_ = v.BindEnv("merchant.terminal_label", "KHQR_MERCHANT_TERMINAL_LABEL", "TERMINAL_LABEL")
	_ = v.BindEnv("merchant.store_label", "KHQR_MERCHANT_STORE_LABEL", "STORE_LABEL")
	_ = v.BindEnv("merchant.callback_url", "KHQR_MERCHANT_CALLBACK_URL", "APP_CALLBACK_URL")
	_ = v.BindEnv("merchant.app_icon_url", "KHQR_MERCHANT_APP_ICON_URL", "APP_ICON_URL")
	_ = v.BindEnv("merchant.app_name", "KHQR_MERCHANT_APP_NAME", "APP_NAME")
	_ = v.BindEnv("merchant.default_currency", "KHQR_MERCHANT_DEFAULT_CURRENCY", "DEFAULT_CURRENCY")

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
