package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jotted/jotted/internal/db"
	"github.com/jotted/jotted/internal/errors"
	"github.com/jotted/jotted/internal/paragraph"
)

// Fetch retrieves a single paragraph by ID.
func Fetch(ctx context.Context, database *sql.DB, id string) (*paragraph.Paragraph, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	p, err := db.GetByID(ctx, database, id)
	if err != nil {
		return nil, err
	}

	annotate(p)
	return p, nil
}
