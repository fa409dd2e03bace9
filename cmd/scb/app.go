package main

import (
	"io"
	"log/slog"

	"github.com/couchcryptid/scb-unemployment/internal/adapter/kafka"
	"github.com/couchcryptid/scb-unemployment/internal/adapter/scb"
	"github.com/couchcryptid/scb-unemployment/internal/config"
	"github.com/couchcryptid/scb-unemployment/internal/observability"
	"github.com/couchcryptid/scb-unemployment/internal/pipeline"
	"github.com/couchcryptid/scb-unemployment/internal/report"
)

// app holds the wired components shared by every command.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
	kafka    *kafka.Writer
}

// newApp loads configuration and wires the pipeline. Report output goes to out
// in the given format; an empty format falls back to OUTPUT_FORMAT.
func newApp(out io.Writer, format string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return nil, err
	}
	if format == "" {
		format = cfg.OutputFormat
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	console, err := report.NewWriter(out, format)
	if err != nil {
		return nil, err
	}
	loaders := []pipeline.BatchLoader{console}

	var writer *kafka.Writer
	if cfg.KafkaEnabled {
		writer = kafka.NewWriter(cfg, metrics, logger)
		loaders = append(loaders, writer)
		logger.Info("kafka report sink enabled", "topic", cfg.KafkaReportTopic, "brokers", cfg.KafkaBrokers)
	}

	client := scb.NewClient(cfg, metrics, logger)
	transformer := pipeline.NewTransformer(metrics, logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		pipeline: pipeline.New(client, transformer, loaders, logger, metrics),
		kafka:    writer,
	}, nil
}

func (a *app) close() {
	if a.kafka == nil {
		return
	}
	if err := a.kafka.Close(); err != nil {
		a.logger.Error("kafka writer close error", "error", err)
	}
}
