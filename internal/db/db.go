// Package db keeps a sqlite ledger of downloaded and extracted runtimes.
// The ledger is informational: directory existence on disk stays the
// authority for idempotence, so losing the db never changes a run.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DB represents the ledger with separate read/write pools
type DB struct {
	write *sql.DB
	read  *sql.DB
	path  string
}

// Record is the fetch history of one runtime version.
type Record struct {
	Version      string
	URL          string
	Installer    string
	DownloadedAt time.Time
	ExtractedAt  sql.NullTime
	OutputDir    string
}

// New creates a new ledger instance with separate read/write pools
func New(ctx context.Context, dbPath string) (*DB, error) {
	// Connection string with pragmas
	connStr := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)

	// Write pool: MUST be 1 connection only
	write, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open write connection: %w", err)
	}
	write.SetMaxOpenConns(1)
	write.SetMaxIdleConns(1)
	write.SetConnMaxIdleTime(time.Minute)
	write.SetConnMaxLifetime(time.Hour)

	read, err := sql.Open("sqlite", connStr)
	if err != nil {
		write.Close()
		return nil, fmt.Errorf("open read connection: %w", err)
	}
	read.SetMaxOpenConns(10)
	read.SetMaxIdleConns(5)
	read.SetConnMaxIdleTime(time.Minute)
	read.SetConnMaxLifetime(time.Hour)

	db := &DB{
		write: write,
		read:  read,
		path:  dbPath,
	}

	// Initialize schema
	if err := db.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return db, nil
}

// Close closes both database connections
func (db *DB) Close() error {
	writeErr := db.write.Close()
	readErr := db.read.Close()
	if writeErr != nil {
		return writeErr
	}
	return readErr
}

// initSchema creates the schema if it doesn't exist
func (db *DB) initSchema(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS runtimes (
    version TEXT PRIMARY KEY,
    url TEXT NOT NULL,
    installer TEXT NOT NULL,
    downloaded_at DATETIME NOT NULL,
    extracted_at DATETIME,
    output_dir TEXT NOT NULL DEFAULT ''
);
	`

	_, err := db.write.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// RecordDownload upserts the download side of a version's history.
func (db *DB) RecordDownload(ctx context.Context, version, url, installer string) error {
	query := `
INSERT INTO runtimes (version, url, installer, downloaded_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(version) DO UPDATE SET url = excluded.url, installer = excluded.installer
	`

	if _, err := db.write.ExecContext(ctx, query, version, url, installer, time.Now().UTC()); err != nil {
		return fmt.Errorf("record download: %w", err)
	}

	return nil
}

// RecordExtraction marks a version as extracted into outputDir.
func (db *DB) RecordExtraction(ctx context.Context, version, outputDir string) error {
	query := `
UPDATE runtimes SET extracted_at = ?, output_dir = ? WHERE version = ?
	`

	result, err := db.write.ExecContext(ctx, query, time.Now().UTC(), outputDir, version)
	if err != nil {
		return fmt.Errorf("record extraction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("no download recorded for version %s", version)
	}

	return nil
}

// Get retrieves the record for one version
func (db *DB) Get(ctx context.Context, version string) (*Record, error) {
	query := `
SELECT version, url, installer, downloaded_at, extracted_at, output_dir
FROM runtimes WHERE version = ?
	`

	var rec Record
	err := db.read.QueryRowContext(ctx, query, version).Scan(
		&rec.Version,
		&rec.URL,
		&rec.Installer,
		&rec.DownloadedAt,
		&rec.ExtractedAt,
		&rec.OutputDir,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no record for version: %s", version)
	}
	if err != nil {
		return nil, fmt.Errorf("query record: %w", err)
	}

	return &rec, nil
}

// List retrieves all records, most recently downloaded first
func (db *DB) List(ctx context.Context) ([]Record, error) {
	query := `
SELECT version, url, installer, downloaded_at, extracted_at, output_dir
FROM runtimes ORDER BY downloaded_at DESC
	`

	rows, err := db.read.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		err := rows.Scan(
			&rec.Version,
			&rec.URL,
			&rec.Installer,
			&rec.DownloadedAt,
			&rec.ExtractedAt,
			&rec.OutputDir,
		)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return records, nil
}
