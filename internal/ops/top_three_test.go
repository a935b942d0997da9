package ops

import (
	"context"
	"testing"
)

func TestTopThree_FewerThanThree(t *testing.T) {
	database := setupDB(t)
	ids := seedParagraphs(t, database, 2)

	items, err := TopThree(context.Background(), database)
	if err != nil {
		t.Fatalf("TopThree failed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].ID != ids[1] {
		t.Errorf("first item = %s, want most recent %s", items[0].ID, ids[1])
	}
}

func TestTopThree_Empty(t *testing.T) {
	database := setupDB(t)

	items, err := TopThree(context.Background(), database)
	if err != nil {
		t.Fatalf("TopThree failed: %v", err)
	}
	if items == nil {
		t.Error("items is nil, want empty slice")
	}
	if len(items) != 0 {
		t.Errorf("len = %d, want 0", len(items))
	}
}

func TestTopThree_IsPrefixOfFullList(t *testing.T) {
	database := setupDB(t)
	seedParagraphs(t, database, 5)
	ctx := context.Background()

	top, err := TopThree(ctx, database)
	if err != nil {
		t.Fatalf("TopThree failed: %v", err)
	}
	all, err := List(ctx, database, ListInput{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("len(top) = %d, want 3", len(top))
	}
	for i := range top {
		if top[i].ID != all.Items[i].ID {
			t.Errorf("top[%d] = %s, want %s (prefix of full list)", i, top[i].ID, all.Items[i].ID)
		}
	}
}
