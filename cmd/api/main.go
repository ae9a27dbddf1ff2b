package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ewilliams-labs/artistscope/internal/adapters/csvfile"
	"github.com/ewilliams-labs/artistscope/internal/adapters/links"
	"github.com/ewilliams-labs/artistscope/internal/adapters/postgres"
	"github.com/ewilliams-labs/artistscope/internal/adapters/rest"
	"github.com/ewilliams-labs/artistscope/internal/adapters/s3"
	"github.com/ewilliams-labs/artistscope/internal/adapters/sqlite"
	"github.com/ewilliams-labs/artistscope/internal/config"
	"github.com/ewilliams-labs/artistscope/internal/core/domain"
	"github.com/ewilliams-labs/artistscope/internal/core/ports"
	"github.com/ewilliams-labs/artistscope/internal/core/services"
)

func main() {
	// 1. Configuration (.env, then environment variables)
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	// 2. Load the dataset once; nothing is served until it is in memory.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	source, closeSource, err := openSource(loadCtx, cfg)
	if err != nil {
		cancelLoad()
		log.Fatalf("FATAL: Failed to open dataset source: %v", err)
	}
	rows, err := source.Load(loadCtx)
	cancelLoad()
	if closeErr := closeSource(); closeErr != nil {
		log.Printf("WARN close dataset source: %v", closeErr)
	}
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	log.Printf("[dataset] loaded %d records from %s", len(rows), source.Name())

	// 3. Core logic over the immutable snapshot
	svc := services.NewAnalyzer(domain.NewSnapshot(rows), links.NewBuilder())

	// 4. HTTP interface
	handler := rest.NewHandler(svc, cfg.StaticDir)

	log.Println("------------------------------------------------")
	log.Printf("🎶 Artistscope API is running on %s", cfg.Addr)
	log.Println("------------------------------------------------")

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}

// openSource picks the dataset source for the configured driver. The returned
// close func is never nil.
func openSource(ctx context.Context, cfg config.Config) (ports.DatasetSource, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverCSV:
		return csvfile.NewSource(cfg.DatasetPath), noop, nil
	case config.DriverS3:
		src, err := s3.NewSource(ctx, s3.Config{
			Bucket:          cfg.S3.Bucket,
			Key:             cfg.S3.Key,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			PathStyle:       cfg.S3.PathStyle,
		})
		if err != nil {
			return nil, nil, err
		}
		return src, noop, nil
	case config.DriverSQLite:
		db, err := sqlite.NewAdapter(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case config.DriverPostgres:
		db, err := postgres.NewAdapter(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown dataset driver: %s", cfg.Driver)
	}
}
