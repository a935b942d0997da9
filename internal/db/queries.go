package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jotted/jotted/internal/errors"
	"github.com/jotted/jotted/internal/paragraph"
)

const paragraphColumns = `id, title, content, tags_json, word_count, char_count, created_at, updated_at`

// Insert stores a new paragraph.
func Insert(ctx context.Context, db *sql.DB, p *paragraph.Paragraph) error {
	tagsJSON, err := tagsToJSON(p.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO paragraphs (
			id, title, content, tags_json,
			word_count, char_count, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = db.ExecContext(ctx, query,
		p.ID, p.Title, p.Content, tagsJSON,
		p.WordCount, p.CharCount, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

// GetByID retrieves a paragraph by its ULID.
func GetByID(ctx context.Context, db *sql.DB, id string) (*paragraph.Paragraph, error) {
	query := `SELECT ` + paragraphColumns + ` FROM paragraphs WHERE id = ?`

	row := db.QueryRowContext(ctx, query, id)
	p, err := scanParagraph(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return p, nil
}

// List retrieves paragraphs newest-created-first. ULIDs sort by creation
// time, so id DESC breaks same-second ties in insertion order. A non-empty
// q filters to rows whose title or content contains it, case-insensitively
// (substring, not whole-word). limit 0 means no limit.
func List(ctx context.Context, db *sql.DB, q string, limit int) ([]paragraph.Paragraph, error) {
	query := `SELECT ` + paragraphColumns + ` FROM paragraphs`
	args := []any{}

	if q != "" {
		query += ` WHERE instr(lower(title), lower(?)) > 0 OR instr(lower(content), lower(?)) > 0`
		args = append(args, q, q)
	}

	query += ` ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	items := []paragraph.Paragraph{}
	for rows.Next() {
		p, err := scanParagraph(rows)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return items, nil
}

// UpdateByID replaces the full document: title, content, tags, and derived
// metrics. Sets updated_at to the current timestamp. Does NOT change id or
// created_at.
func UpdateByID(ctx context.Context, db *sql.DB, p *paragraph.Paragraph) error {
	tagsJSON, err := tagsToJSON(p.Tags)
	if err != nil {
		return err
	}

	now := time.Now().Unix()

	query := `
		UPDATE paragraphs
		SET title = ?, content = ?, tags_json = ?,
			word_count = ?, char_count = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := db.ExecContext(ctx, query,
		p.Title, p.Content, tagsJSON,
		p.WordCount, p.CharCount, now,
		p.ID,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(p.ID)
	}

	p.UpdatedAt = now

	return nil
}

// DeleteByID permanently removes a paragraph. There is no soft delete.
func DeleteByID(ctx context.Context, db *sql.DB, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM paragraphs WHERE id = ?`, id)
	if err != nil {
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(id)
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanParagraph.
type scanner interface {
	Scan(dest ...any) error
}

// scanParagraph scans a single row into a Paragraph struct.
func scanParagraph(row scanner) (*paragraph.Paragraph, error) {
	var (
		p        paragraph.Paragraph
		tagsJSON sql.NullString
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Content, &tagsJSON,
		&p.WordCount, &p.CharCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Tags = []string{}
	if tagsJSON.Valid && tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &p.Tags); err != nil {
			return nil, err
		}
	}

	return &p, nil
}

// tagsToJSON serializes tags for storage; empty tag sets store as NULL.
func tagsToJSON(tags []string) (sql.NullString, error) {
	if len(tags) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return sql.NullString{}, errors.NewInternal(err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
