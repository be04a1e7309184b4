package main

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/noahbolger1430/Backline-sub001/internal/migrations"
	"gorm.io/gorm"
)

// Applies the full migration chain to an in-memory database and dumps the
// resulting DDL. The pure-Go sqlite driver keeps this runnable without cgo.
func main() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	runner, err := migrations.NewRunner(db)
	if err != nil {
		log.Fatal(err)
	}
	if err := runner.Upgrade(); err != nil {
		log.Fatal(err)
	}

	// Get the schema
	var tables []string
	db.Raw("SELECT name FROM sqlite_master WHERE type='table'").Scan(&tables)

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		var schema string
		db.Raw(fmt.Sprintf("SELECT sql FROM sqlite_master WHERE name='%s'", table)).Scan(&schema)
		fmt.Println(schema)
	}
}
