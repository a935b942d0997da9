package ops

import (
	"context"
	"database/sql"

	"github.com/jotted/jotted/internal/db"
	"github.com/jotted/jotted/internal/paragraph"
)

// TopThree returns the three most recent paragraphs, newest first. With
// fewer than three stored it returns what exists, possibly an empty slice.
func TopThree(ctx context.Context, database *sql.DB) ([]paragraph.Paragraph, error) {
	items, err := db.List(ctx, database, "", TopThreeLimit)
	if err != nil {
		return nil, err
	}

	for i := range items {
		annotate(&items[i])
	}

	return items, nil
}
