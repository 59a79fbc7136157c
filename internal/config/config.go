package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

type Config struct {
	Port             string `mapstructure:"PORT"`
	Env              string `mapstructure:"ENV"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DBMaxConns       int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns       int32  `mapstructure:"DB_MIN_CONNS"`
	RegistryURL      string `mapstructure:"XDS_REGISTRY_URL"`
	RegistryTimeout  int    `mapstructure:"REGISTRY_TIMEOUT_SECONDS"`
	WSUsername       string `mapstructure:"WS_USERNAME"`
	WSPassword       string `mapstructure:"WS_PASSWORD"`
	AuthSharedSecret string `mapstructure:"AUTH_SHARED_SECRET"`
	MigrationsDir    string `mapstructure:"MIGRATIONS_DIR"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8020")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("REGISTRY_TIMEOUT_SECONDS", 30)
	v.SetDefault("MIGRATIONS_DIR", "migrations")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("XDS_REGISTRY_URL")
	v.BindEnv("REGISTRY_TIMEOUT_SECONDS")
	v.BindEnv("WS_USERNAME")
	v.BindEnv("WS_PASSWORD")
	v.BindEnv("AUTH_SHARED_SECRET")
	v.BindEnv("MIGRATIONS_DIR")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. The registry URL
// must be a valid absolute URL, and outside development mode the submission
// endpoint must be protected by a shared secret.
func (c *Config) Validate() error {
	if c.RegistryURL == "" {
		return fmt.Errorf("XDS_REGISTRY_URL is required")
	}
	u, err := url.Parse(c.RegistryURL)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("XDS_REGISTRY_URL must be an absolute URL, got %q", c.RegistryURL)
	}

	if !c.IsDev() && c.AuthSharedSecret == "" {
		return fmt.Errorf("AUTH_SHARED_SECRET is required outside development mode")
	}

	if c.RegistryTimeout <= 0 {
		return fmt.Errorf("REGISTRY_TIMEOUT_SECONDS must be positive, got %d", c.RegistryTimeout)
	}

	return nil
}
