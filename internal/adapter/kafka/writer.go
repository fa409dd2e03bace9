package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/scb-unemployment/internal/config"
	"github.com/couchcryptid/scb-unemployment/internal/domain"
	"github.com/couchcryptid/scb-unemployment/internal/observability"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes year reports to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer  *kafkago.Writer
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewWriter creates a Kafka producer for the configured report topic.
func NewWriter(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaReportTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, metrics: metrics, logger: logger}
}

// LoadBatch publishes every year report of the batch in a single
// WriteMessages call, keyed by year.
func (w *Writer) LoadBatch(ctx context.Context, batch domain.ReportBatch) error {
	if len(batch.Reports) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(batch.Reports))
	for i := range batch.Reports {
		msg, err := serializeToMessage(batch, batch.Reports[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish year reports: %w", err)
	}
	w.metrics.ReportsPublished.Add(float64(len(msgs)))
	w.logger.Info("year reports published", "topic", w.writer.Topic, "count", len(msgs), "run_id", batch.RunID)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a YearReport into a Kafka message.
func serializeToMessage(batch domain.ReportBatch, report domain.YearReport) (kafkago.Message, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize year report: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(report.Year),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "run_id", Value: []byte(batch.RunID)},
			{Key: "generated_at", Value: []byte(batch.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
