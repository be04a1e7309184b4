package services

import (
	"fmt"
	"log"
	"strconv"

	"github.com/noahbolger1430/Backline-sub001/internal/config"
	"github.com/noahbolger1430/Backline-sub001/internal/database"
	"github.com/noahbolger1430/Backline-sub001/internal/migrations"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Schema       string            `json:"schema"`
	Details      map[string]string `json:"details,omitempty"`
	TableCounts  map[string]int64  `json:"tableCounts,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck verifies database connectivity and reports how far the schema
// has been migrated. With verbose set it also reports per-table row counts.
func HealthCheck(cfg *config.Config, db *gorm.DB, verbose bool) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
		return result
	}
	if err := sqlDB.Ping(); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
		log.Printf("Health check failed - database ping: %v", err)
		return result
	}
	result.Database = "ok"
	result.Details["database_type"] = cfg.DBType
	result.Details["database_name"] = cfg.DBDatabase

	// Check migration state
	runner, err := migrations.NewRunner(db)
	if err != nil {
		result.Status = "unhealthy"
		result.Schema = "error"
		result.ErrorMessage = fmt.Sprintf("Migration chain invalid: %v", err)
		log.Printf("Health check failed - migration chain: %v", err)
		return result
	}
	applied, err := runner.Applied()
	if err != nil {
		result.Status = "unhealthy"
		result.Schema = "error"
		result.ErrorMessage = fmt.Sprintf("Failed to read applied migrations: %v", err)
		log.Printf("Health check failed - applied migrations: %v", err)
		return result
	}
	pending, err := runner.Pending()
	if err != nil {
		result.Status = "unhealthy"
		result.Schema = "error"
		result.ErrorMessage = fmt.Sprintf("Failed to compute pending migrations: %v", err)
		return result
	}
	result.Details["migrations_applied"] = strconv.Itoa(len(applied))
	result.Details["migrations_pending"] = strconv.Itoa(len(pending))
	if len(pending) > 0 {
		result.Schema = "behind"
		result.Details["next_migration"] = pending[0]
	} else {
		result.Schema = "current"
	}

	if verbose {
		counts, err := database.TableCounts(db)
		if err != nil {
			result.Details["table_counts_error"] = err.Error()
		} else {
			result.TableCounts = counts
		}
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - database reachable, schema readable")
	}

	return result
}
