package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"

	"github.com/bloodlink-my/bloodlink/internal/domain/model"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_KEY", "YWNjZXNzLWtleQ")
	t.Setenv("REFRESH_TOKEN_KEY", "cmVmcmVzaC1rZXk")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ADMIN_ACCESS_TTL", "2m")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Postgres.Host != "db.internal" {
		t.Errorf("Postgres.Host = %q, want %q", cfg.Postgres.Host, "db.internal")
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.HTTP.Addr, ":9090")
	}
	if cfg.Auth.AdminAccessTTL != 2*time.Minute {
		t.Errorf("AdminAccessTTL = %v, want 2m", cfg.Auth.AdminAccessTTL)
	}
	if cfg.Scheduler.ResetHourUTC != 0 {
		t.Errorf("ResetHourUTC = %d, want 0", cfg.Scheduler.ResetHourUTC)
	}
}

func TestLoadFromEnvMissingKeys(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err == nil {
		t.Fatal("expected error when token keys are unset")
	}
}

func TestAuthConfigDecodeKeys(t *testing.T) {
	a := AuthConfig{
		AccessTokenKey:  "YWNjZXNzLWtleQ",
		RefreshTokenKey: "cmVmcmVzaC1rZXk",
	}

	accessKey, refreshKey, err := a.DecodeKeys()
	if err != nil {
		t.Fatalf("DecodeKeys: %v", err)
	}
	if string(accessKey) != "access-key" {
		t.Errorf("accessKey = %q, want %q", accessKey, "access-key")
	}
	if string(refreshKey) != "refresh-key" {
		t.Errorf("refreshKey = %q, want %q", refreshKey, "refresh-key")
	}
}

func TestAuthConfigDecodeKeysInvalid(t *testing.T) {
	a := AuthConfig{AccessTokenKey: "not base64!", RefreshTokenKey: "cmVmcmVzaC1rZXk"}
	if _, _, err := a.DecodeKeys(); err == nil {
		t.Fatal("expected error for invalid base64 key")
	}
}

func TestAuthConfigSanitizeDefaults(t *testing.T) {
	a := AuthConfig{DonorAccessTTL: -1, KDFWorkers: -5}
	a.Sanitize()

	defaults := model.DefaultTokenTTLs()
	if a.DonorAccessTTL != defaults[model.RoleDonor].Access {
		t.Errorf("DonorAccessTTL = %v, want default %v", a.DonorAccessTTL, defaults[model.RoleDonor].Access)
	}
	if a.KDFWorkers != 0 {
		t.Errorf("KDFWorkers = %d, want 0", a.KDFWorkers)
	}
}

func TestSchedulerConfigSanitize(t *testing.T) {
	s := SchedulerConfig{ResetHourUTC: 42}
	s.Sanitize()
	if s.ResetHourUTC != 0 {
		t.Errorf("ResetHourUTC = %d, want clamped to 0", s.ResetHourUTC)
	}
}

func TestDBConfigDSN(t *testing.T) {
	d := DBConfig{Host: "localhost", Port: 5432, User: "u", Password: "p", Name: "blood", SSLMode: "disable"}
	want := "host=localhost port=5432 user=u password=p dbname=blood sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
