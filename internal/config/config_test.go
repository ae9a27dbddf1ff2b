package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			check: func(t *testing.T, cfg Config) {
				if cfg.Addr != ":3000" || cfg.Driver != DriverCSV {
					t.Fatalf("unexpected defaults: %+v", cfg)
				}
				if cfg.DatasetPath != "music_dataset/SpotifyFeatures_with_year.csv" {
					t.Fatalf("dataset path: %q", cfg.DatasetPath)
				}
				if cfg.LoadTimeout != 60*time.Second || cfg.StaticDir != "public" {
					t.Fatalf("unexpected defaults: %+v", cfg)
				}
			},
		},
		{
			name: "s3 driver with location",
			env: map[string]string{
				"DATASET_DRIVER":        "S3",
				"DATASET_S3_BUCKET":     "datasets",
				"DATASET_S3_KEY":        "tracks.csv",
				"DATASET_S3_ENDPOINT":   "http://minio:9000",
				"DATASET_S3_PATH_STYLE": "TRUE",
			},
			check: func(t *testing.T, cfg Config) {
				if cfg.Driver != DriverS3 || cfg.S3.Bucket != "datasets" || cfg.S3.Key != "tracks.csv" {
					t.Fatalf("unexpected s3 config: %+v", cfg.S3)
				}
				if !cfg.S3.PathStyle || cfg.S3.Endpoint != "http://minio:9000" {
					t.Fatalf("unexpected s3 options: %+v", cfg.S3)
				}
			},
		},
		{
			name: "empty static dir disables static files",
			env:  map[string]string{"STATIC_DIR": "", "DATASET_LOAD_TIMEOUT": "5s", "DATASET_DRIVER": "sqlite"},
			check: func(t *testing.T, cfg Config) {
				if cfg.StaticDir != "" {
					t.Fatalf("static dir: %q", cfg.StaticDir)
				}
				if cfg.LoadTimeout != 5*time.Second || cfg.Driver != DriverSQLite {
					t.Fatalf("unexpected config: %+v", cfg)
				}
			},
		},
		{
			name:    "s3 without key",
			env:     map[string]string{"DATASET_DRIVER": "s3", "DATASET_S3_BUCKET": "datasets"},
			wantErr: true,
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"DATASET_DRIVER": "mongo"},
			wantErr: true,
		},
		{
			name:    "bad timeout",
			env:     map[string]string{"DATASET_LOAD_TIMEOUT": "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(envMap(tt.env))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got config %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ARTISTSCOPE_TEST_ADDR=:9999\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("ARTISTSCOPE_TEST_ADDR") })

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("ARTISTSCOPE_TEST_ADDR"); got != ":9999" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}
