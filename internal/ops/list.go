package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jotted/jotted/internal/db"
	"github.com/jotted/jotted/internal/errors"
	"github.com/jotted/jotted/internal/paragraph"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Query    string // optional substring filter on title or content
	Category string // optional exact category label filter
	Limit    int    // 0 means no limit
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items []paragraph.Paragraph `json:"items"`
	Total int                   `json:"total"`
}

// List returns paragraphs newest first. The category filter runs after the
// database query because the label is derived, not stored.
func List(ctx context.Context, database *sql.DB, input ListInput) (*ListOutput, error) {
	if input.Limit < 0 {
		return nil, errors.NewInvalidRequest("limit must not be negative")
	}
	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}

	category := strings.TrimSpace(input.Category)

	// With a category filter the limit must apply after classification,
	// so fetch everything matching the text query first.
	dbLimit := input.Limit
	if category != "" {
		dbLimit = 0
	}

	items, err := db.List(ctx, database, strings.TrimSpace(input.Query), dbLimit)
	if err != nil {
		return nil, err
	}

	for i := range items {
		annotate(&items[i])
	}

	if category != "" {
		filtered := make([]paragraph.Paragraph, 0, len(items))
		for _, p := range items {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		if input.Limit > 0 && len(filtered) > input.Limit {
			filtered = filtered[:input.Limit]
		}
		items = filtered
	}

	return &ListOutput{Items: items, Total: len(items)}, nil
}
