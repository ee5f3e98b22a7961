package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lifeupdate/api/internal/llm"
	"lifeupdate/api/internal/models"
	"lifeupdate/api/internal/repositories"
)

// ErrNoEntries is returned when the user has no journal entries at all.
var ErrNoEntries = errors.New("no entries found")

// ErrNoEntriesInTimeframe is returned when the timeframe filter leaves
// nothing to summarize.
var ErrNoEntriesInTimeframe = errors.New("no entries in the selected timeframe")

// summaryWindow caps how many entries go into the prompt.
const summaryWindow = 10

var summaryLabels = map[string]string{
	"life": "LIFE",
	"work": "WORK",
}

// SummaryService produces an AI summary of a user's recent journal entries.
type SummaryService struct {
	journal *repositories.JournalRepository
	client  llm.Client
}

func NewSummaryService(journal *repositories.JournalRepository, client llm.Client) *SummaryService {
	return &SummaryService{journal: journal, client: client}
}

// Summarize filters the user's entries to the timeframe ("all" or a number
// of days) and completes a summary prompt over the most recent ones. An
// unparseable timeframe falls back to "all".
func (s *SummaryService) Summarize(ctx context.Context, userID int64, journalType, timeframe string) (string, error) {
	entries, err := s.journal.Entries(ctx, userID, journalType)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", ErrNoEntries
	}

	filtered := filterByTimeframe(entries, timeframe, time.Now())
	if len(filtered) == 0 {
		return "", ErrNoEntriesInTimeframe
	}

	label := summaryLabels[journalType]
	prompt := buildSummaryPrompt(label, filtered)

	summary, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}
	return summary, nil
}

// filterByTimeframe keeps entries dated within the last N days. timeframe
// "all" (or anything non-numeric) keeps everything; when filtering, entries
// with unparseable dates are dropped.
func filterByTimeframe(entries []models.JournalEntry, timeframe string, now time.Time) []models.JournalEntry {
	if timeframe == "" || timeframe == "all" {
		return entries
	}
	days, err := strconv.Atoi(timeframe)
	if err != nil {
		return entries
	}

	cutoff := now.AddDate(0, 0, -days)
	var kept []models.JournalEntry
	for _, e := range entries {
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		if !date.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	return kept
}

func buildSummaryPrompt(label string, entries []models.JournalEntry) string {
	if len(entries) > summaryWindow {
		entries = entries[len(entries)-summaryWindow:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Summarize these %s entries concisely:\n\n", label)
	for _, e := range entries {
		fmt.Fprintf(&b, "%s: %s | %s | %s\n", e.Date, e.Entry1, e.Entry2, e.Entry3)
	}
	return b.String()
}
