// Package paragraph defines the journal's persisted record and its derived
// data: text metrics, tag normalization, and keyword categorization.
package paragraph

// Paragraph is the sole persisted entity: a titled block of text with tags
// and metrics derived from the content.
type Paragraph struct {
	// ID is a ULID that uniquely identifies this paragraph
	ID string `json:"id"`

	// Title is the non-empty display title
	Title string `json:"title"`

	// Content is the non-empty body text
	Content string `json:"content"`

	// Tags is a list of lowercase tags (stored as JSON in DB)
	Tags []string `json:"tags"`

	// WordCount and CharCount are recomputed from Content on every write;
	// client-supplied values are never trusted.
	WordCount int `json:"word_count"`
	CharCount int `json:"char_count"`

	// Category is derived from tags+content on read; never persisted.
	Category string `json:"category,omitempty"`

	// CreatedAt is the Unix timestamp when the paragraph was created
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the Unix timestamp when the paragraph was last updated
	UpdatedAt int64 `json:"updated_at"`
}
