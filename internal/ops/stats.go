package ops

import (
	"context"
	"database/sql"
)

// StatsOutput contains journal-wide totals.
type StatsOutput struct {
	TotalParagraphs int            `json:"total_paragraphs"`
	TotalWords      int            `json:"total_words"`
	TotalChars      int            `json:"total_chars"`
	Categories      map[string]int `json:"categories"`
}

// Stats aggregates totals across all paragraphs. Category counts come
// from classifying each paragraph on read.
func Stats(ctx context.Context, database *sql.DB) (*StatsOutput, error) {
	out, err := List(ctx, database, ListInput{})
	if err != nil {
		return nil, err
	}

	stats := &StatsOutput{
		Categories: make(map[string]int),
	}

	for _, p := range out.Items {
		stats.TotalParagraphs++
		stats.TotalWords += p.WordCount
		stats.TotalChars += p.CharCount
		stats.Categories[p.Category]++
	}

	return stats, nil
}
