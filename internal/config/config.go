// Package config reads process configuration from the environment.
//
//	ADDR                    listen address (default :3000)
//	DATASET_DRIVER          csv|s3|sqlite|postgres (default csv)
//	DATASET_PATH            CSV file when driver=csv
//	DATASET_S3_BUCKET       bucket when driver=s3 (required)
//	DATASET_S3_KEY          object key when driver=s3 (required)
//	DATASET_S3_REGION       region (default us-east-1)
//	DATASET_S3_ENDPOINT     custom endpoint, e.g. MinIO
//	DATASET_S3_PATH_STYLE   true|false (default false)
//	DATASET_S3_ACCESS_KEY_ID / DATASET_S3_SECRET_ACCESS_KEY  optional static credentials
//	DATASET_SQLITE_PATH     database file when driver=sqlite
//	DATASET_POSTGRES_DSN    connection string when driver=postgres
//	DATASET_LOAD_TIMEOUT    Go duration (default 60s)
//	STATIC_DIR              dashboard files, empty disables (default public)
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Driver selects where the dataset is loaded from.
type Driver string

const (
	DriverCSV      Driver = "csv"
	DriverS3       Driver = "s3"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

const (
	defaultAddr        = ":3000"
	defaultDatasetPath = "music_dataset/SpotifyFeatures_with_year.csv"
	defaultSQLitePath  = "dataset.db"
	defaultPostgresDSN = "postgres://localhost/artistscope?sslmode=disable"
	defaultLoadTimeout = 60 * time.Second
	defaultStaticDir   = "public"
)

// Config is the fully resolved process configuration.
type Config struct {
	Addr        string
	Driver      Driver
	DatasetPath string
	S3          S3Config
	SQLitePath  string
	PostgresDSN string
	LoadTimeout time.Duration
	StaticDir   string
}

// S3Config locates the dataset object.
type S3Config struct {
	Bucket          string
	Key             string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PathStyle       bool
}

// LoadDotEnv populates unset environment variables from the given files
// (".env" when none are given). Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv resolves the configuration from the process environment.
func FromEnv() (Config, error) {
	return Parse(os.LookupEnv)
}

// Parse resolves the configuration using lookupEnv, which has the
// signature of os.LookupEnv.
func Parse(lookupEnv func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookupEnv(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	cfg := Config{
		Addr:        get("ADDR", defaultAddr),
		Driver:      Driver(strings.ToLower(get("DATASET_DRIVER", string(DriverCSV)))),
		DatasetPath: get("DATASET_PATH", defaultDatasetPath),
		S3: S3Config{
			Bucket:          get("DATASET_S3_BUCKET", ""),
			Key:             get("DATASET_S3_KEY", ""),
			Region:          get("DATASET_S3_REGION", ""),
			Endpoint:        get("DATASET_S3_ENDPOINT", ""),
			AccessKeyID:     get("DATASET_S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: get("DATASET_S3_SECRET_ACCESS_KEY", ""),
			PathStyle:       strings.EqualFold(get("DATASET_S3_PATH_STYLE", "false"), "true"),
		},
		SQLitePath:  get("DATASET_SQLITE_PATH", defaultSQLitePath),
		PostgresDSN: get("DATASET_POSTGRES_DSN", defaultPostgresDSN),
		LoadTimeout: defaultLoadTimeout,
		StaticDir:   defaultStaticDir,
	}
	// an explicitly empty STATIC_DIR turns static serving off
	if v, ok := lookupEnv("STATIC_DIR"); ok {
		cfg.StaticDir = strings.TrimSpace(v)
	}

	if raw := get("DATASET_LOAD_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("config: invalid DATASET_LOAD_TIMEOUT %q", raw)
		}
		cfg.LoadTimeout = d
	}

	switch cfg.Driver {
	case DriverCSV, DriverSQLite, DriverPostgres:
	case DriverS3:
		if cfg.S3.Bucket == "" || cfg.S3.Key == "" {
			return Config{}, fmt.Errorf("config: DATASET_S3_BUCKET and DATASET_S3_KEY required for s3 driver")
		}
	default:
		return Config{}, fmt.Errorf("config: unknown dataset driver %q", cfg.Driver)
	}

	return cfg, nil
}
