// Command seed imports a CSV dataset into SQLite or Postgres so the API can
// load it with DATASET_DRIVER=sqlite or DATASET_DRIVER=postgres.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ewilliams-labs/artistscope/internal/adapters/csvfile"
	"github.com/ewilliams-labs/artistscope/internal/adapters/postgres"
	"github.com/ewilliams-labs/artistscope/internal/adapters/sqlite"
	"github.com/ewilliams-labs/artistscope/internal/config"
	"github.com/ewilliams-labs/artistscope/internal/core/ports"
	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		color.Red("seed failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(out)
	csvPath := fs.String("csv", "music_dataset/SpotifyFeatures_with_year.csv", "CSV dataset to import")
	driver := fs.String("driver", string(config.DriverSQLite), "target store: sqlite|postgres")
	sqlitePath := fs.String("sqlite", "dataset.db", "SQLite database file")
	dsn := fs.String("dsn", "", "Postgres connection string")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src := csvfile.NewSource(*csvPath)
	rows, err := src.Load(ctx)
	if err != nil {
		return err
	}

	var (
		writer ports.TrackWriter
		target string
		closer func() error
	)
	switch config.Driver(*driver) {
	case config.DriverSQLite:
		db, err := sqlite.NewAdapter(*sqlitePath)
		if err != nil {
			return err
		}
		writer, target, closer = db, db.Name(), db.Close
	case config.DriverPostgres:
		db, err := postgres.NewAdapter(ctx, *dsn)
		if err != nil {
			return err
		}
		writer, target, closer = db, db.Name(), db.Close
	default:
		return fmt.Errorf("unsupported driver %q (want sqlite or postgres)", *driver)
	}

	saveErr := writer.SaveTracks(ctx, rows)
	if err := errors.Join(saveErr, closer()); err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "%s %d records from %s into %s\n", green("seeded"), len(rows), src.Name(), target)
	return nil
}
