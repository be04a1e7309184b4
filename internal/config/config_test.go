package config

import "testing"

func clearDBEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_TYPE", "DB_HOST", "DB_PORT", "DB_DATABASE",
		"DB_USER", "DB_PASSWORD", "DB_CONNECTION_LIMIT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_DATABASE", "backline")
	t.Setenv("DB_USER", "backline")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBType != "mysql" {
		t.Errorf("Expected default DB_TYPE mysql, got %s", cfg.DBType)
	}
	if cfg.DBHost != "localhost" || cfg.DBPort != "3306" {
		t.Errorf("Unexpected default host/port: %s:%s", cfg.DBHost, cfg.DBPort)
	}
	if cfg.DBConnectionLimit != 5 {
		t.Errorf("Expected default connection limit 5, got %d", cfg.DBConnectionLimit)
	}
}

func TestLoadRequiresDatabase(t *testing.T) {
	clearDBEnv(t)

	if _, err := Load(); err == nil {
		t.Error("Expected error when DB_DATABASE is unset")
	}
}

func TestLoadRequiresCredentials(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_DATABASE", "backline")

	if _, err := Load(); err == nil {
		t.Error("Expected error when DB_USER is unset")
	}

	t.Setenv("DB_USER", "backline")
	if _, err := Load(); err == nil {
		t.Error("Expected error when DB_PASSWORD is unset")
	}
}

func TestLoadSQLiteSkipsCredentials(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_DATABASE", "/tmp/backline.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed for sqlite: %v", err)
	}
	if cfg.DBDatabase != "/tmp/backline.db" {
		t.Errorf("Unexpected database path: %s", cfg.DBDatabase)
	}
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("DB_CONNECTION_LIMIT", "not-a-number")
	if got := getEnvAsInt("DB_CONNECTION_LIMIT", 5); got != 5 {
		t.Errorf("Expected fallback 5, got %d", got)
	}

	t.Setenv("DB_CONNECTION_LIMIT", "12")
	if got := getEnvAsInt("DB_CONNECTION_LIMIT", 5); got != 12 {
		t.Errorf("Expected 12, got %d", got)
	}
}
