package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ewilliams-labs/artistscope/internal/adapters/sqlite"
)

const seedCSV = `artist_name,track_name,popularity,release_year
Adele,Hello,95,2015
Adele,Skyfall,80,2012
`

func TestRun_SQLite(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "tracks.csv")
	dbPath := filepath.Join(dir, "dataset.db")
	if err := os.WriteFile(csvPath, []byte(seedCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	var out bytes.Buffer
	if err := run(context.Background(), []string{"-csv", csvPath, "-driver", "sqlite", "-sqlite", dbPath}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "2 records") {
		t.Errorf("unexpected output %q", out.String())
	}

	db, err := sqlite.NewAdapter(dbPath)
	if err != nil {
		t.Fatalf("open seeded db: %v", err)
	}
	defer db.Close()

	rows, err := db.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 2 || rows[0].TrackName != "Hello" || rows[1].TrackName != "Skyfall" {
		t.Errorf("unexpected rows %+v", rows)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "tracks.csv")
	if err := os.WriteFile(csvPath, []byte(seedCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "missing csv",
			args: []string{"-csv", filepath.Join(dir, "nope.csv")},
			want: "dataset load failed",
		},
		{
			name: "unsupported driver",
			args: []string{"-csv", csvPath, "-driver", "s3"},
			want: "unsupported driver",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.args, &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
