// Package report renders year reports for the console.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/scb-unemployment/internal/domain"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Writer renders a report batch to an io.Writer.
// It implements pipeline.BatchLoader.
type Writer struct {
	out    io.Writer
	format string
}

// NewWriter returns a Writer for one of FormatText, FormatJSON or FormatYAML.
func NewWriter(out io.Writer, format string) (*Writer, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &Writer{out: out, format: format}, nil
}

// LoadBatch writes the whole batch in the configured format.
func (w *Writer) LoadBatch(_ context.Context, batch domain.ReportBatch) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(batch)
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(batch); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range batch.Reports {
			if _, err := io.WriteString(w.out, FormatLine(r)+"\n"); err != nil {
				return err
			}
		}
		return nil
	}
}

// FormatLine renders "<year>: <name1>, <name2> <maxValue>%".
func FormatLine(r domain.YearReport) string {
	return r.Year + ": " + strings.Join(r.TopRegions, ", ") + " " + FormatPercent(r.MaxValue) + "%"
}

// FormatPercent prints the shortest decimal that round-trips at 32-bit
// precision, keeping at least one fractional digit ("5.0", "7.3").
func FormatPercent(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
