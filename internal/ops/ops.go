// Package ops implements the paragraph operations shared by the HTTP API,
// the web UI, the CLI, and the MCP server. Each operation validates its
// input, talks to the database, and derives the read-only category label.
package ops

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jotted/jotted/internal/paragraph"
)

// List limits
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	TopThreeLimit    = 3
)

// Shared monotonic entropy so ULIDs minted in the same millisecond still
// sort in creation order.
var entropy = ulid.DefaultEntropy()

// generateULID generates a new ULID.
func generateULID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// annotate fills the derived category label on a freshly read paragraph.
// The label is never persisted, so it is recomputed on every read.
func annotate(p *paragraph.Paragraph) {
	p.Category = paragraph.Classify(p.Tags, p.Content)
}
