package config

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultsApplied", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/xds")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Port != "8020" {
			t.Errorf("expected default port 8020, got %q", cfg.Port)
		}
		if cfg.Env != "development" {
			t.Errorf("expected default env development, got %q", cfg.Env)
		}
		if cfg.DBMaxConns != 20 || cfg.DBMinConns != 5 {
			t.Errorf("unexpected pool defaults %d/%d", cfg.DBMaxConns, cfg.DBMinConns)
		}
		if cfg.RegistryTimeout != 30 {
			t.Errorf("expected default registry timeout 30, got %d", cfg.RegistryTimeout)
		}
		if cfg.MigrationsDir != "migrations" {
			t.Errorf("expected default migrations dir, got %q", cfg.MigrationsDir)
		}
		if !cfg.IsDev() {
			t.Error("expected development mode by default")
		}
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/xds")
		t.Setenv("PORT", "9090")
		t.Setenv("XDS_REGISTRY_URL", "http://registry:8010/submit")
		t.Setenv("ENV", "production")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Port != "9090" {
			t.Errorf("expected port 9090, got %q", cfg.Port)
		}
		if cfg.RegistryURL != "http://registry:8010/submit" {
			t.Errorf("unexpected registry url %q", cfg.RegistryURL)
		}
		if cfg.IsDev() {
			t.Error("expected non-development mode")
		}
	})

	t.Run("MissingDatabaseURL", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
			t.Fatalf("expected DATABASE_URL error, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Env:             "development",
			RegistryURL:     "http://registry:8010/submit",
			RegistryTimeout: 30,
		}
	}

	t.Run("Valid", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Fatalf("Validate: %v", err)
		}
	})

	t.Run("MissingRegistryURL", func(t *testing.T) {
		cfg := valid()
		cfg.RegistryURL = ""
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing registry url")
		}
	})

	t.Run("RelativeRegistryURL", func(t *testing.T) {
		cfg := valid()
		cfg.RegistryURL = "/submit"
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for relative registry url")
		}
	})

	t.Run("SecretRequiredOutsideDev", func(t *testing.T) {
		cfg := valid()
		cfg.Env = "production"
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing shared secret in production")
		}
		cfg.AuthSharedSecret = "sekrit"
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate with secret: %v", err)
		}
	})

	t.Run("NonPositiveTimeout", func(t *testing.T) {
		cfg := valid()
		cfg.RegistryTimeout = 0
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for zero timeout")
		}
	})
}
