package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jotted/jotted/internal/db"
	"github.com/jotted/jotted/internal/errors"
)

// TestFullWorkflow exercises the complete paragraph lifecycle:
// create → fetch → update → list → top-three → delete → fetch (not found)
func TestFullWorkflow(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()

	// 1. Create
	created, err := Create(ctx, database, CreateInput{
		Title:   "First entry",
		Content: "Started keeping a journal today. We will see how long it lasts.",
		Tags:    []string{"personal"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	id := created.ID

	// 2. Fetch
	fetched, err := Fetch(ctx, database, id)
	require.NoError(t, err)
	require.Equal(t, id, fetched.ID)
	require.Equal(t, "Personal", fetched.Category)

	// 3. Update (full replacement)
	tags := []string{"personal", "writing"}
	updated, err := Update(ctx, database, UpdateInput{
		ID:      id,
		Title:   "First entry, revised",
		Content: "Started keeping a journal today.",
		Tags:    &tags,
	})
	require.NoError(t, err)
	require.Equal(t, id, updated.ID)
	require.Equal(t, 5, updated.WordCount)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)

	// 4. List includes it
	listOut, err := List(ctx, database, ListInput{})
	require.NoError(t, err)
	require.Equal(t, 1, listOut.Total)
	require.Equal(t, "First entry, revised", listOut.Items[0].Title)

	// 5. Top three includes it
	top, err := TopThree(ctx, database)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, id, top[0].ID)

	// 6. Delete
	delOut, err := Delete(ctx, database, id)
	require.NoError(t, err)
	require.True(t, delOut.Deleted)

	// 7. Fetch reports not found
	_, err = Fetch(ctx, database, id)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrNotFound))
}
