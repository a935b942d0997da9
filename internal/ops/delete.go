package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jotted/jotted/internal/db"
	"github.com/jotted/jotted/internal/errors"
)

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Delete permanently removes a paragraph. Deletion is immediate and has
// no undo.
func Delete(ctx context.Context, database *sql.DB, id string) (*DeleteOutput, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	if err := db.DeleteByID(ctx, database, id); err != nil {
		return nil, err
	}

	return &DeleteOutput{
		Deleted: true,
		ID:      id,
		Message: "Paragraph deleted successfully",
	}, nil
}
