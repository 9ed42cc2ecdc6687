package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	contents := `
database:
  host: db.internal
  port: 5433
  dbname: caresetu
scheduling:
  default_time_zone: Asia/Kolkata
  default_days: 7
authentication:
  jwt:
    secret_key: secret
    access_ttl_minutes: 15
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q, want db.internal", cfg.Database.Host)
	}
	if cfg.Database.Port != 5433 {
		t.Errorf("Database.Port = %d, want 5433", cfg.Database.Port)
	}
	if cfg.Scheduling.DefaultTimeZone != "Asia/Kolkata" {
		t.Errorf("Scheduling.DefaultTimeZone = %q, want Asia/Kolkata", cfg.Scheduling.DefaultTimeZone)
	}
	if cfg.Authentication.JWT.AccessTTLMinutes != 15 {
		t.Errorf("JWT.AccessTTLMinutes = %d, want 15", cfg.Authentication.JWT.AccessTTLMinutes)
	}
}

func TestReadConfigMissingFileWithoutEnv(t *testing.T) {
	if os.Getenv("CARESETU_DATABASE_HOST") != "" {
		t.Skip("environment override set")
	}
	if _, err := ReadConfig(t.TempDir()); err == nil {
		t.Error("expected error when config file is missing")
	}
}
