package services

import (
	"testing"

	"github.com/noahbolger1430/Backline-sub001/internal/config"
	"github.com/noahbolger1430/Backline-sub001/internal/migrations"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func newHealthTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

func TestHealthCheckUnmigrated(t *testing.T) {
	db := newHealthTestDB(t)
	cfg := &config.Config{DBType: "sqlite", DBDatabase: ":memory:"}

	result := HealthCheck(cfg, db, false)
	if result.Status != "healthy" {
		t.Errorf("Expected healthy, got %s (%s)", result.Status, result.ErrorMessage)
	}
	if result.Database != "ok" {
		t.Errorf("Expected database ok, got %s", result.Database)
	}
	if result.Schema != "behind" {
		t.Errorf("Expected schema behind on fresh database, got %s", result.Schema)
	}
	if result.Details["migrations_pending"] != "10" {
		t.Errorf("Expected 10 pending, got %s", result.Details["migrations_pending"])
	}
	if result.Details["next_migration"] != "9f1c2b3a4d5e" {
		t.Errorf("Expected initial schema next, got %s", result.Details["next_migration"])
	}
}

func TestHealthCheckMigrated(t *testing.T) {
	db := newHealthTestDB(t)
	cfg := &config.Config{DBType: "sqlite", DBDatabase: ":memory:"}

	runner, err := migrations.NewRunner(db)
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}
	if err := runner.Upgrade(); err != nil {
		t.Fatalf("Upgrade failed: %v", err)
	}

	result := HealthCheck(cfg, db, true)
	if result.Status != "healthy" {
		t.Errorf("Expected healthy, got %s (%s)", result.Status, result.ErrorMessage)
	}
	if result.Schema != "current" {
		t.Errorf("Expected schema current, got %s", result.Schema)
	}
	if result.Details["migrations_applied"] != "10" {
		t.Errorf("Expected 10 applied, got %s", result.Details["migrations_applied"])
	}
	if result.TableCounts == nil {
		t.Fatal("Expected table counts in verbose mode")
	}
	if n, ok := result.TableCounts["bands"]; !ok || n != 0 {
		t.Errorf("Expected empty bands table in counts, got %v", result.TableCounts)
	}
}

func TestHealthCheckClosedConnection(t *testing.T) {
	db := newHealthTestDB(t)
	cfg := &config.Config{DBType: "sqlite", DBDatabase: ":memory:"}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database handle: %v", err)
	}
	sqlDB.Close()

	result := HealthCheck(cfg, db, false)
	if result.Status != "unhealthy" {
		t.Errorf("Expected unhealthy on closed connection, got %s", result.Status)
	}
}
