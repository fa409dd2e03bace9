package domain

import "time"

// ReportBatch is the complete output of one run.
type ReportBatch struct {
	RunID       string       `json:"run_id" yaml:"run_id"`
	Title       string       `json:"title" yaml:"title"`
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
	Reports     []YearReport `json:"reports" yaml:"reports"`
}

// NewReportBatch stamps reports with the run identity and the current time.
func NewReportBatch(runID, title string, reports []YearReport) ReportBatch {
	return ReportBatch{
		RunID:       runID,
		Title:       title,
		GeneratedAt: clock.Now().UTC(),
		Reports:     reports,
	}
}
