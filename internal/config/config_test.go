package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8000},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 70000

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_Drivers(t *testing.T) {
	tests := []struct {
		name    string
		db      DatabaseConfig
		wantErr string
	}{
		{"redis ok", DatabaseConfig{Driver: DriverRedis, Addrs: []string{"r:6379"}}, ""},
		{"valkey no addrs", DatabaseConfig{Driver: DriverValkey}, "database.addrs is required"},
		{"badger ok", DatabaseConfig{Driver: DriverBadger, Path: "/tmp/collabup"}, ""},
		{"sqlite memory", DatabaseConfig{Driver: DriverSQLite, Path: ":memory:"}, ""},
		{"sqlite no path", DatabaseConfig{Driver: DriverSQLite}, "database.path is required"},
		{"unknown", DatabaseConfig{Driver: "mongo"}, "database.driver must be one of"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{HTTP: HTTPConfig{Port: 8000}, Database: tc.db}
			cfg.ApplyDefaults()
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want substring %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidate_TopN(t *testing.T) {
	cfg := validConfig()
	cfg.Recommend.DefaultTopN = 200

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when default_top_n exceeds max_top_n")
	}
}

func TestValidate_NegativeMinScore(t *testing.T) {
	cfg := validConfig()
	cfg.Recommend.MinScore = -1

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative min_score")
	}
}

func TestApplyDefaults_DropsEmptyAPIKeys(t *testing.T) {
	cfg := Config{Auth: AuthConfig{APIKeys: []string{"", "k1", ""}}}
	cfg.ApplyDefaults()

	if len(cfg.Auth.APIKeys) != 1 || cfg.Auth.APIKeys[0] != "k1" {
		t.Errorf("expected [k1], got %v", cfg.Auth.APIKeys)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8000 {
		t.Errorf("expected Port=8000, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if len(cfg.HTTP.CORSOrigins) != 1 || cfg.HTTP.CORSOrigins[0] != "*" {
		t.Errorf("expected CORSOrigins=[*], got %v", cfg.HTTP.CORSOrigins)
	}
	if cfg.Database.Driver != DriverRedis {
		t.Errorf("expected Driver=redis, got %q", cfg.Database.Driver)
	}
	if cfg.Database.KeyPrefix != "collabup:" {
		t.Errorf("expected KeyPrefix='collabup:', got %q", cfg.Database.KeyPrefix)
	}
	if len(cfg.Database.TagFields) != 1 || cfg.Database.TagFields[0] != "role" {
		t.Errorf("expected TagFields=[role], got %v", cfg.Database.TagFields)
	}
	if cfg.Database.FetchTimeoutDuration() != 10*time.Second {
		t.Errorf("expected FetchTimeout=10s, got %v", cfg.Database.FetchTimeoutDuration())
	}
	if cfg.Recommend.DefaultTopN != 5 || cfg.Recommend.MaxTopN != 100 {
		t.Errorf("unexpected top_n defaults: %+v", cfg.Recommend)
	}
	if cfg.Recommend.MinScore != 0.1 {
		t.Errorf("expected MinScore=0.1, got %g", cfg.Recommend.MinScore)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:      HTTPConfig{Port: 9000, ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database:  DatabaseConfig{Driver: DriverBadger, ReadinessTimeout: 15, KeyPrefix: "custom:"},
		Recommend: RecommendConfig{DefaultTopN: 3, MaxTopN: 10, MinScore: 0.5},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 9000 || cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("http overridden: %+v", cfg.HTTP)
	}
	if cfg.Database.Driver != DriverBadger || cfg.Database.KeyPrefix != "custom:" {
		t.Errorf("database overridden: %+v", cfg.Database)
	}
	if cfg.Database.ReadinessTimeoutDuration() != 15*time.Second {
		t.Errorf("expected readiness 15s, got %v", cfg.Database.ReadinessTimeoutDuration())
	}
	if cfg.Recommend.DefaultTopN != 3 || cfg.Recommend.MaxTopN != 10 || cfg.Recommend.MinScore != 0.5 {
		t.Errorf("recommend overridden: %+v", cfg.Recommend)
	}
}

func TestLoadFile_ExpandsEnv(t *testing.T) {
	t.Setenv("COLLABUP_TEST_ADDR", "cache:6380")

	path := filepath.Join(t.TempDir(), "test.yaml")
	yaml := `
http:
  port: ${COLLABUP_TEST_PORT:-8123}
database:
  driver: redis
  addrs: ["${COLLABUP_TEST_ADDR}"]
recommend:
  max_top_n: 50
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8123 {
		t.Errorf("expected default port 8123, got %d", cfg.HTTP.Port)
	}
	if len(cfg.Database.Addrs) != 1 || cfg.Database.Addrs[0] != "cache:6380" {
		t.Errorf("unexpected addrs: %v", cfg.Database.Addrs)
	}
	if cfg.Recommend.MaxTopN != 50 {
		t.Errorf("expected MaxTopN=50, got %d", cfg.Recommend.MaxTopN)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("database:\n  driver: mongo\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestLoad_LocalConfig(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Driver == "" {
		t.Error("expected driver to be set")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if GetEnv() != "local" {
		t.Errorf("expected local, got %q", GetEnv())
	}
	t.Setenv("ENV", "prod")
	if GetEnv() != "prod" {
		t.Errorf("expected prod, got %q", GetEnv())
	}
}
