// Package report renders the countdown history as a PDF.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/database"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/go-pdf/fpdf"
)

// Source is the part of the history store a report reads.
type Source interface {
	ListSessions(ctx context.Context, q *database.SessionQuery) ([]models.Session, error)
	SessionStats(ctx context.Context) (models.SessionStats, error)
}

// Generate writes a report of the most recent sessions into dir and
// returns the file path.
func Generate(ctx context.Context, src Source, dir string, now time.Time) (string, error) {
	sessions, err := src.ListSessions(ctx, database.NewSessionQuery().Limit(config.HistoryLimit))
	if err != nil {
		return "", fmt.Errorf("load sessions: %w", err)
	}
	stats, err := src.SessionStats(ctx)
	if err != nil {
		return "", fmt.Errorf("load stats: %w", err)
	}

	pdf := Build(sessions, stats, now)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s_%s.pdf", config.ReportPrefix, now.Format("2006-01-02_150405"))
	path := filepath.Join(dir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Build lays out the report document.
func Build(sessions []models.Session, stats models.SessionStats, now time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Countdown Report: %s", now.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	// Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	lines := []string{
		fmt.Sprintf("Sessions: %d", stats.Total),
		fmt.Sprintf("Completed: %d (%.0f%%)", stats.Completed, stats.CompletionRate()*100),
		fmt.Sprintf("Cancelled: %d  Superseded: %d  Abandoned: %d", stats.Cancelled, stats.Superseded, stats.Abandoned),
		fmt.Sprintf("Time counted down: %s", util.FormatClock(int(stats.CountedSeconds))),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Recent sessions")
	pdf.Ln(8)
	if len(sessions) == 0 {
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 8, "  - No sessions recorded.")
		pdf.Ln(8)
		return pdf
	}

	widths := []float64{40, 28, 28, 18, 30}
	headers := []string{"Started", "Duration", "Remaining", "Pauses", "Outcome"}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, s := range sessions {
		row := []string{
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			util.FormatClock(s.TotalSeconds),
			util.FormatClock(s.RemainingSeconds),
			fmt.Sprintf("%d", s.Pauses),
			string(s.Outcome),
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf
}
