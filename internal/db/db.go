// Package db is the embedded relational store. Simple record attributes
// live here in SQLite; the relationships between records live in the
// graph store (internal/graph).
package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// StoreSuffix is appended to the store name to form the database file.
const StoreSuffix = ".ser"

// DB wraps a SQLite database connection.
type DB struct {
	conn *sql.DB

	// DatabaseName is the path of the backing file, derived from the
	// store name passed to Open.
	DatabaseName string
}

// Open opens (creating if needed) the database file for the named store
// and ensures the source and people tables exist. There is no migration
// machinery: the schema is fixed and tables are created exactly once
// per database file.
func Open(storeName string) (*DB, error) {
	path := storeName + StoreSuffix
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Single writer keeps SQLITE_BUSY out of the picture
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := ensureSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &DB{conn: conn, DatabaseName: path}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

// Conn returns the underlying sql.DB for custom queries.
func (d *DB) Conn() *sql.DB {
	return d.conn
}

const sourceTableDDL = `
	CREATE TABLE source (
		id        TEXT PRIMARY KEY,
		type      TEXT NOT NULL,
		authority TEXT NOT NULL,
		author    TEXT NOT NULL,
		title     TEXT NOT NULL,
		created   TEXT NOT NULL
	)`

const peopleTableDDL = `
	CREATE TABLE people (
		id          TEXT PRIMARY KEY,
		first_name  TEXT,
		middle_name TEXT,
		last_name   TEXT,
		gender      TEXT NOT NULL CHECK (length(gender) = 1)
	)`

// ensureSchema creates the two fixed tables. Another writer may have
// created a table between our check and create, so a creation failure
// whose text carries the driver's "already exists" marker is benign;
// anything else aborts the open.
func ensureSchema(conn *sql.DB) error {
	for _, ddl := range []string{sourceTableDDL, peopleTableDDL} {
		if _, err := conn.Exec(ddl); err != nil {
			if strings.Contains(err.Error(), "already exists") {
				continue
			}
			return fmt.Errorf("creating table: %w", err)
		}
	}
	return nil
}
