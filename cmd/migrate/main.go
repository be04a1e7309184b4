// main.go
//
// Relational schema and versioned migration chain for the Backline band management app
// Copyright (c) 2026 Noah Bolger
//
// This file is part of backline.
// backline is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// backline is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with backline.
// If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/noahbolger1430/Backline-sub001/internal/config"
	"github.com/noahbolger1430/Backline-sub001/internal/database"
	"github.com/noahbolger1430/Backline-sub001/internal/migrations"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var up bool
	flag.BoolVar(&up, "up", false, "apply all pending migrations")
	var upTo string
	flag.StringVar(&upTo, "up-to", "", "apply pending migrations up to and including REV")
	var down bool
	flag.BoolVar(&down, "down", false, "roll back the most recent migration")
	var downTo string
	flag.StringVar(&downTo, "down-to", "", "roll back migrations until REV is the newest applied")
	var status bool
	flag.BoolVar(&status, "status", false, "print applied and pending migrations")
	flag.Parse()

	usage := `
Apply or roll back the Backline schema migration chain.

Usage:

migrate [-h] [-f ENV_FILE_PATH] (-up | -up-to REV | -down | -down-to REV | -status)

ENV_FILE_PATH: path to the .env file holding DB_* settings
REV: a 12-hex revision id, e.g. a5b6c7d8e9f0

example
  migrate -f /path/to/something/.env -up
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %s", database.Diagnose(cfg, err))
	}
	defer database.Close(db)

	runner, err := migrations.NewRunner(db)
	if err != nil {
		log.Fatalf("Invalid migration chain: %v", err)
	}

	switch {
	case status:
		applied, err := runner.Applied()
		if err != nil {
			log.Fatalf("Failed to read applied migrations: %v", err)
		}
		pending, err := runner.Pending()
		if err != nil {
			log.Fatalf("Failed to compute pending migrations: %v", err)
		}
		for _, id := range applied {
			fmt.Printf("applied  %s\n", id)
		}
		for _, id := range pending {
			fmt.Printf("pending  %s\n", id)
		}

	case upTo != "":
		if err := runner.UpgradeTo(upTo); err != nil {
			log.Fatalf("Upgrade failed: %v", err)
		}
		log.Printf("Schema upgraded to %s", upTo)

	case down:
		if err := runner.Downgrade(); err != nil {
			log.Fatalf("Downgrade failed: %v", err)
		}
		log.Println("Rolled back the most recent migration")

	case downTo != "":
		if err := runner.DowngradeTo(downTo); err != nil {
			log.Fatalf("Downgrade failed: %v", err)
		}
		log.Printf("Schema rolled back to %s", downTo)

	default:
		// -up is the default action
		if err := runner.Upgrade(); err != nil {
			log.Fatalf("Upgrade failed: %v", err)
		}
		log.Println("Schema is up to date")
	}
}
