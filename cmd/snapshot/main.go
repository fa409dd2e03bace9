// Command snapshot fetches the live SCB unemployment table and writes the
// metadata, dataset and aggregated report as JSON fixtures. It uses the same
// client and domain code as the scb command so fixtures match real behavior.
//
// Usage:
//
//	go run ./cmd/snapshot -out internal/adapter/scb/testdata/live
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/scb-unemployment/internal/adapter/scb"
	"github.com/couchcryptid/scb-unemployment/internal/config"
	"github.com/couchcryptid/scb-unemployment/internal/domain"
	"github.com/couchcryptid/scb-unemployment/internal/observability"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out", "", "directory for metadata.json, dataset.json and report.json")
	timeout := flag.Duration("timeout", time.Minute, "overall deadline for both requests")
	flag.Parse()

	if *outDir == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Fixed clock so regenerated fixtures only differ when the data does.
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
	defer domain.SetClock(nil)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := scb.NewClient(cfg, observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	meta, err := client.FetchMetadata(ctx)
	if err != nil {
		return err
	}
	data, err := client.FetchDataset(ctx, domain.UnemploymentQuery())
	if err != nil {
		return err
	}
	log.Printf("fetched %q: %d observations, %d missing", meta.Title, len(data.Observations), data.MissingCount())

	reports, err := domain.Aggregate(&meta, &data)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}
	batch := domain.NewReportBatch("snapshot", meta.Title, reports)

	files := map[string]any{
		"metadata.json": meta,
		"dataset.json":  data,
		"report.json":   batch,
	}
	for name, v := range files {
		path := filepath.Join(*outDir, name)
		if err := writeJSON(path, v); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		log.Printf("wrote %s", path)
	}
	log.Printf("years: %d", len(reports))
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}
