package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/scb-unemployment/internal/domain"
	"github.com/couchcryptid/scb-unemployment/internal/observability"
)

// YearTransformer implements Transformer on top of domain.YearReports.
type YearTransformer struct {
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewTransformer creates a YearTransformer.
func NewTransformer(metrics *observability.Metrics, logger *slog.Logger) *YearTransformer {
	return &YearTransformer{
		metrics: metrics,
		logger:  logger,
	}
}

// Transform collects every year report and aborts on the first failing year,
// so a partial report is never returned.
func (t *YearTransformer) Transform(ctx context.Context, meta *domain.Metadata, data *domain.Dataset) ([]domain.YearReport, error) {
	var reports []domain.YearReport
	for report, err := range domain.YearReports(meta, data) {
		if err != nil {
			t.logger.Warn("year aggregation failed", "year", report.Year, "error", err)
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t.logger.Debug("year aggregated",
			"year", report.Year,
			"max_value", report.MaxValue,
			"top_regions", len(report.TopRegions),
		)
		reports = append(reports, report)
	}
	t.metrics.YearsReported.Add(float64(len(reports)))
	return reports, nil
}
