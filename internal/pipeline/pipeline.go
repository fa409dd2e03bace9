package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/couchcryptid/scb-unemployment/internal/domain"
	"github.com/couchcryptid/scb-unemployment/internal/observability"
)

// Source fetches the two documents a run needs.
type Source interface {
	FetchMetadata(ctx context.Context) (domain.Metadata, error)
	FetchDataset(ctx context.Context, query domain.Query) (domain.Dataset, error)
}

// Transformer turns the fetched documents into ordered year reports.
type Transformer interface {
	Transform(ctx context.Context, meta *domain.Metadata, data *domain.Dataset) ([]domain.YearReport, error)
}

// BatchLoader writes a complete report batch to a destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, batch domain.ReportBatch) error
}

// Pipeline orchestrates the fetch-aggregate-load run.
type Pipeline struct {
	source      Source
	transformer Transformer
	loaders     []BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	last        atomic.Pointer[domain.ReportBatch]
}

// New creates a Pipeline with the given stages and observability.
func New(s Source, t Transformer, loaders []BatchLoader, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		source:      s,
		transformer: t,
		loaders:     loaders,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness returns nil once a run has completed successfully.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if p.last.Load() == nil {
		return errors.New("no report run has completed yet")
	}
	return nil
}

// LastBatch returns the batch of the most recent successful run.
func (p *Pipeline) LastBatch() (domain.ReportBatch, bool) {
	b := p.last.Load()
	if b == nil {
		return domain.ReportBatch{}, false
	}
	return *b, true
}

// Run fetches metadata and data, aggregates every year, and hands the batch
// to each loader. Nothing is loaded unless every year aggregates cleanly.
func (p *Pipeline) Run(ctx context.Context) (domain.ReportBatch, error) {
	runID := uuid.NewString()
	logger := p.logger.With("run_id", runID)
	start := time.Now()

	logger.Info("report run started")
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	batch, err := p.run(ctx, runID, logger)
	if err != nil {
		p.metrics.RunsTotal.WithLabelValues("error").Inc()
		logger.Error("report run failed", "error", err, "duration", time.Since(start))
		return domain.ReportBatch{}, err
	}

	p.metrics.RunsTotal.WithLabelValues("success").Inc()
	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	p.metrics.LastSuccess.Set(float64(batch.GeneratedAt.Unix()))
	p.last.Store(&batch)

	logger.Info("report run complete", "years", len(batch.Reports), "duration", time.Since(start))
	return batch, nil
}

func (p *Pipeline) run(ctx context.Context, runID string, logger *slog.Logger) (domain.ReportBatch, error) {
	meta, err := p.source.FetchMetadata(ctx)
	if err != nil {
		return domain.ReportBatch{}, fmt.Errorf("fetch metadata: %w", err)
	}
	logger.Debug("metadata fetched", "title", meta.Title, "variables", len(meta.Variables))

	data, err := p.source.FetchDataset(ctx, domain.UnemploymentQuery())
	if err != nil {
		return domain.ReportBatch{}, fmt.Errorf("fetch dataset: %w", err)
	}
	p.metrics.ObservationsTotal.Add(float64(len(data.Observations)))
	p.metrics.MissingObservations.Add(float64(data.MissingCount()))
	logger.Debug("dataset fetched", "observations", len(data.Observations), "missing", data.MissingCount())

	reports, err := p.transformer.Transform(ctx, &meta, &data)
	if err != nil {
		return domain.ReportBatch{}, fmt.Errorf("aggregate: %w", err)
	}

	batch := domain.NewReportBatch(runID, meta.Title, reports)
	for _, l := range p.loaders {
		if err := l.LoadBatch(ctx, batch); err != nil {
			return domain.ReportBatch{}, fmt.Errorf("load reports: %w", err)
		}
	}
	return batch, nil
}
