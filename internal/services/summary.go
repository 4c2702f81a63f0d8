package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tally/internal/domain"
	"tally/internal/logging"
)

// Summary holds the entries of one or more days and their total hours
type Summary struct {
	At      time.Time
	Entries []domain.DayEntry
	Total   float64
}

// SummaryService builds daily summaries
type SummaryService struct {
	entries *EntryService
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(entries *EntryService) *SummaryService {
	return &SummaryService{entries: entries}
}

// Show collects the entries of the days days ending on date. days below 1 means one day.
func (s *SummaryService) Show(ctx context.Context, date time.Time, days int) (*Summary, error) {
	if days < 1 {
		days = 1
	}

	end := domain.Date(date)
	summary := &Summary{}
	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		entries, err := s.entries.Daily(ctx, day)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			summary.Entries = append(summary.Entries, e)
			summary.Total += e.Hours
		}
	}
	summary.At = s.entries.now()

	logging.Logger.Debug("Summary built", "date", end.Format("2006-01-02"), "days", days, "entries", len(summary.Entries))
	return summary, nil
}

// FormatSummary renders one line per entry, a separator and the total.
// Entry lines are cut to width runes when width is positive.
func FormatSummary(summary *Summary, width int, clock string) string {
	var b strings.Builder
	for _, e := range summary.Entries {
		running := ""
		if e.Running {
			running = "(running) "
		}
		line := fmt.Sprintf("\t%s\t%s%s: %s", domain.FormatHours(e.Hours), running, e.Task.DisplayName(), e.LastNote())
		b.WriteString(truncate(line, width))
		b.WriteString("\n")
	}
	b.WriteString("\t" + strings.Repeat("-", 13) + "\n")
	fmt.Fprintf(&b, "\t%s\ttotal (as of %s)\n", domain.FormatHours(summary.Total), clock)
	return b.String()
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
