package ops

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jotted/jotted/internal/db"
	"github.com/jotted/jotted/internal/errors"
	"github.com/jotted/jotted/internal/paragraph"
)

// CreateInput contains parameters for the Create operation.
type CreateInput struct {
	Title   string   // required
	Content string   // required
	Tags    []string // optional
}

// Create stores a new paragraph. Word and character counts are computed
// here from the content; caller-supplied metrics are never trusted.
func Create(ctx context.Context, database *sql.DB, input CreateInput) (*paragraph.Paragraph, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.NewInvalidRequest("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.NewInvalidRequest("content is required")
	}

	id, err := generateULID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	now := time.Now().Unix()

	p := &paragraph.Paragraph{
		ID:        id,
		Title:     title,
		Content:   input.Content,
		Tags:      paragraph.NormalizeTags(input.Tags),
		WordCount: paragraph.CountWords(input.Content),
		CharCount: paragraph.CountChars(input.Content),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := db.Insert(ctx, database, p); err != nil {
		return nil, err
	}

	annotate(p)
	return p, nil
}
