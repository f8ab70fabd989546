// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main collects benchmark record lines into a SQLite database so the
// analysis tooling can query sweeps instead of re-parsing log files.
//
// Usage:
//
//	./histbench ... | resultsdb -db results.db
//	resultsdb -db results.db < sweep.log
//
// Every record shares the flat shape <family>,<impl>,<config...>,<metric>,
// <value>,<unit>; the variable-width middle is stored verbatim so each family
// keeps its own configuration vocabulary.
package main

import (
	"bufio"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	family   TEXT NOT NULL,
	impl     TEXT NOT NULL,
	config   TEXT NOT NULL,
	metric   TEXT NOT NULL,
	value    TEXT NOT NULL,
	unit     TEXT NOT NULL,
	ingested TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_results_family_metric ON results(family, metric);
`

func main() {
	dbPath := flag.String("db", "results.db", "SQLite database path (created if missing)")
	flag.Parse()

	db, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		log.Fatalf("open %s: %v", *dbPath, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("begin: %v", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO results (family, impl, config, metric, value, unit) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		log.Fatalf("prepare: %v", err)
	}
	defer stmt.Close()

	inserted, skipped := 0, 0
	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		family, impl, config, metric, value, unit, ok := splitRecord(line)
		if !ok {
			skipped++
			continue
		}
		if _, err := stmt.Exec(family, impl, config, metric, value, unit); err != nil {
			log.Fatalf("insert: %v", err)
		}
		inserted++
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("read stdin: %v", err)
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("commit: %v", err)
	}

	fmt.Printf("resultsdb: inserted %d record(s), skipped %d line(s) into %s\n", inserted, skipped, *dbPath)
}

// splitRecord parses one flat record line. The first two fields are family
// and impl, the last three are metric/value/unit, and whatever sits between
// is the family-specific configuration, kept verbatim.
func splitRecord(line string) (family, impl, config, metric, value, unit string, ok bool) {
	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return "", "", "", "", "", "", false
	}
	n := len(fields)
	family = fields[0]
	impl = fields[1]
	config = strings.Join(fields[2:n-3], ",")
	metric = fields[n-3]
	value = fields[n-2]
	unit = fields[n-1]
	return family, impl, config, metric, value, unit, true
}
