package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jotted/jotted/internal/db"
	"github.com/jotted/jotted/internal/errors"
	"github.com/jotted/jotted/internal/paragraph"
)

// UpdateInput contains parameters for the Update operation. Update is a
// full document replacement: every field must be supplied, including tags.
type UpdateInput struct {
	ID      string
	Title   string
	Content string
	Tags    *[]string // nil means the caller omitted tags, which is invalid
}

// Update replaces a paragraph's title, content, and tags, and recomputes
// the derived metrics. ID and creation time never change.
func Update(ctx context.Context, database *sql.DB, input UpdateInput) (*paragraph.Paragraph, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.NewInvalidRequest("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.NewInvalidRequest("content is required")
	}
	if input.Tags == nil {
		return nil, errors.NewInvalidRequest("tags is required")
	}

	existing, err := db.GetByID(ctx, database, id)
	if err != nil {
		return nil, err
	}

	p := &paragraph.Paragraph{
		ID:        existing.ID,
		Title:     title,
		Content:   input.Content,
		Tags:      paragraph.NormalizeTags(*input.Tags),
		WordCount: paragraph.CountWords(input.Content),
		CharCount: paragraph.CountChars(input.Content),
		CreatedAt: existing.CreatedAt,
	}

	if err := db.UpdateByID(ctx, database, p); err != nil {
		return nil, err
	}

	annotate(p)
	return p, nil
}
