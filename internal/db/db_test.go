package db

import (
	"context"
	"testing"
)

func TestLedgerOperations(t *testing.T) {
	ctx := context.Background()
	tmpfile := t.TempDir() + "/test.db"
	db, err := New(ctx, tmpfile)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	// Record a download
	err = db.RecordDownload(ctx, "14.42.34438.0", "https://example.com/VC_redist.x64.exe", "/srv/Downloads/14.42.34438.0_VC_redist.x64.exe")
	if err != nil {
		t.Fatalf("Failed to record download: %v", err)
	}

	rec, err := db.Get(ctx, "14.42.34438.0")
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}
	if rec.ExtractedAt.Valid {
		t.Errorf("ExtractedAt should be null before extraction")
	}

	// Re-recording the same version must update, not duplicate
	err = db.RecordDownload(ctx, "14.42.34438.0", "https://example.com/other.exe", "/srv/Downloads/other.exe")
	if err != nil {
		t.Fatalf("Failed to re-record download: %v", err)
	}

	records, err := db.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list records: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("List() length = %d, want 1", len(records))
	}
	if records[0].URL != "https://example.com/other.exe" {
		t.Errorf("upsert did not update url, got %s", records[0].URL)
	}

	// Record the extraction
	err = db.RecordExtraction(ctx, "14.42.34438.0", "/srv/vcruntime_14.42.34438.0")
	if err != nil {
		t.Fatalf("Failed to record extraction: %v", err)
	}

	rec, err = db.Get(ctx, "14.42.34438.0")
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}
	if !rec.ExtractedAt.Valid {
		t.Errorf("ExtractedAt should be set after extraction")
	}
	if rec.OutputDir != "/srv/vcruntime_14.42.34438.0" {
		t.Errorf("OutputDir = %s", rec.OutputDir)
	}
}

func TestRecordExtractionWithoutDownload(t *testing.T) {
	ctx := context.Background()
	db, err := New(ctx, t.TempDir()+"/test.db")
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	if err := db.RecordExtraction(ctx, "9.0.30729.4148", "/out"); err == nil {
		t.Errorf("expected error recording extraction for unknown version")
	}
}

func TestGetMissingVersion(t *testing.T) {
	ctx := context.Background()
	db, err := New(ctx, t.TempDir()+"/test.db")
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	if _, err := db.Get(ctx, "1.2.3"); err == nil {
		t.Errorf("expected error for missing version")
	}
}
