package web

import (
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jotted/jotted/internal/config"
	"github.com/jotted/jotted/internal/db"
	"github.com/jotted/jotted/internal/draft"
	"github.com/jotted/jotted/internal/ops"
)

func setupTest(t *testing.T) *Handlers {
	t.Helper()
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("db.Init: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	cfg := config.DefaultConfig()

	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		t.Fatalf("template sub-FS: %v", err)
	}
	renderer := NewRenderer(templateSub, "test")

	return &Handlers{
		db:       database,
		cfg:      cfg,
		drafts:   draft.NewSQLStore(database),
		renderer: renderer,
	}
}

// seedParagraph creates a paragraph and returns its ID.
func seedParagraph(t *testing.T, h *Handlers, title, content string) string {
	t.Helper()
	p, err := ops.Create(context.Background(), h.db, ops.CreateInput{
		Title:   title,
		Content: content,
		Tags:    []string{"test"},
	})
	if err != nil {
		t.Fatalf("seed paragraph %q: %v", title, err)
	}
	return p.ID
}

// --- HandleHome ---

func TestHandleHome(t *testing.T) {
	h := setupTest(t)
	seedParagraph(t, h, "home-entry", "some words for the home page")

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.HandleHome(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "home-entry") {
		t.Error("expected recent paragraph title on home page")
	}
	if !strings.Contains(body, "paragraphs") {
		t.Error("expected stats row on home page")
	}
}

func TestHandleHome_Empty(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.HandleHome(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Nothing here yet") {
		t.Error("expected empty state on home page")
	}
}

// --- HandleList ---

func TestHandleList_Default(t *testing.T) {
	h := setupTest(t)
	seedParagraph(t, h, "alpha", "first entry")
	seedParagraph(t, h, "beta", "second entry")

	req := httptest.NewRequest("GET", "/paragraphs", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "alpha") || !strings.Contains(body, "beta") {
		t.Error("expected both paragraphs in list")
	}
	if !strings.Contains(body, "2 paragraphs") {
		t.Error("expected result count")
	}
}

func TestHandleList_QueryFilter(t *testing.T) {
	h := setupTest(t)
	seedParagraph(t, h, "groceries", "buy oat milk")
	seedParagraph(t, h, "workout", "ran five miles")

	req := httptest.NewRequest("GET", "/paragraphs?q=oat", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "groceries") {
		t.Error("expected matching paragraph")
	}
	if strings.Contains(body, "workout") {
		t.Error("non-matching paragraph should be filtered out")
	}
}

func TestHandleList_CategoryFilter(t *testing.T) {
	h := setupTest(t)
	seedParagraph(t, h, "techy", "debugging software today")
	seedParagraph(t, h, "plain", "an uneventful afternoon")

	req := httptest.NewRequest("GET", "/paragraphs?category=Technology", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "techy") {
		t.Error("expected Technology paragraph")
	}
	if strings.Contains(body, "plain") {
		t.Error("General paragraph should be filtered out")
	}
}

func TestHandleList_HtmxReturnsContentOnly(t *testing.T) {
	h := setupTest(t)
	seedParagraph(t, h, "frag", "fragment test")

	req := httptest.NewRequest("GET", "/paragraphs", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("htmx response should not include full layout")
	}
	if !strings.Contains(body, "frag") {
		t.Error("expected paragraph in fragment")
	}
}

// --- HandleDetail ---

func TestHandleDetail_Found(t *testing.T) {
	h := setupTest(t)
	id := seedParagraph(t, h, "detail-entry", "Some **bold** words.")

	req := httptest.NewRequest("GET", "/paragraphs/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	h.HandleDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "detail-entry") {
		t.Error("expected paragraph title in detail page")
	}
	// Markdown rendered, not escaped
	if !strings.Contains(body, "<strong>bold</strong>") {
		t.Error("expected rendered markdown content")
	}
	if !strings.Contains(body, "min") {
		t.Error("expected reading time in metadata")
	}
}

func TestHandleDetail_NotFound(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/paragraphs/NONEXISTENT", nil)
	req.SetPathValue("id", "NONEXISTENT")
	rec := httptest.NewRecorder()
	h.HandleDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

// --- Compose + draft ---

func TestHandleCompose_NoDraft(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/compose", nil)
	rec := httptest.NewRecorder()
	h.HandleCompose(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "Restored your saved draft") {
		t.Error("no draft notice expected for empty slot")
	}
}

func TestHandleCompose_RestoresDraft(t *testing.T) {
	h := setupTest(t)
	err := h.drafts.Put(context.Background(), draft.Draft{
		Title:   "half-written",
		Content: "unfinished thought",
		Tags:    []string{"wip"},
	})
	if err != nil {
		t.Fatalf("Put draft: %v", err)
	}

	req := httptest.NewRequest("GET", "/compose", nil)
	rec := httptest.NewRecorder()
	h.HandleCompose(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Restored your saved draft") {
		t.Error("expected draft notice")
	}
	if !strings.Contains(body, "half-written") || !strings.Contains(body, "unfinished thought") {
		t.Error("expected draft fields prefilled")
	}
}

func TestHandleDraftSave(t *testing.T) {
	h := setupTest(t)

	form := url.Values{
		"title":   {"autosaved"},
		"content": {"three little words"},
		"tags":    {"a, b"},
	}
	req := httptest.NewRequest("POST", "/compose/draft", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleDraftSave(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Draft saved") {
		t.Error("expected draft-status fragment")
	}

	d, err := h.drafts.Get(context.Background())
	if err != nil {
		t.Fatalf("Get draft: %v", err)
	}
	if d == nil || d.Title != "autosaved" {
		t.Fatalf("draft = %+v, want saved title", d)
	}
	if d.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3 (computed on save)", d.WordCount)
	}
}

// --- Create/update forms ---

func TestHandleCreateForm_PublishClearsDraft(t *testing.T) {
	h := setupTest(t)
	ctx := context.Background()
	if err := h.drafts.Put(ctx, draft.Draft{Title: "stale", Tags: []string{}}); err != nil {
		t.Fatalf("Put draft: %v", err)
	}

	form := url.Values{
		"title":   {"published"},
		"content": {"the final text"},
		"tags":    {"done"},
	}
	req := httptest.NewRequest("POST", "/paragraphs", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleCreateForm(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/paragraphs/") {
		t.Errorf("Location = %q, want detail redirect", loc)
	}

	d, err := h.drafts.Get(ctx)
	if err != nil {
		t.Fatalf("Get draft: %v", err)
	}
	if d != nil {
		t.Errorf("draft = %+v, want cleared after publish", d)
	}
}

func TestHandleCreateForm_MissingContent(t *testing.T) {
	h := setupTest(t)

	form := url.Values{"title": {"only title"}}
	req := httptest.NewRequest("POST", "/paragraphs", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleCreateForm(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleUpdateForm(t *testing.T) {
	h := setupTest(t)
	id := seedParagraph(t, h, "before", "old content")

	form := url.Values{
		"title":   {"after"},
		"content": {"new content"},
		"tags":    {""},
	}
	req := httptest.NewRequest("POST", "/paragraphs/"+id, strings.NewReader(form.Encode()))
	req.SetPathValue("id", id)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleUpdateForm(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}

	p, err := ops.Fetch(context.Background(), h.db, id)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if p.Title != "after" {
		t.Errorf("Title = %q, want after", p.Title)
	}
	if len(p.Tags) != 0 {
		t.Errorf("Tags = %v, want cleared (full replacement)", p.Tags)
	}
}

// --- HandleDelete ---

func TestHandleDelete_HtmxRequest(t *testing.T) {
	h := setupTest(t)
	id := seedParagraph(t, h, "del-htmx", "going away")

	req := httptest.NewRequest("DELETE", "/paragraphs/"+id, nil)
	req.SetPathValue("id", id)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("HX-Redirect"); got != "/paragraphs" {
		t.Errorf("HX-Redirect = %q, want /paragraphs", got)
	}
}

func TestHandleDelete_DefaultRedirect(t *testing.T) {
	h := setupTest(t)
	id := seedParagraph(t, h, "del-plain", "going away")

	req := httptest.NewRequest("DELETE", "/paragraphs/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("DELETE", "/paragraphs/MISSING", nil)
	req.SetPathValue("id", "MISSING")
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

// --- Error rendering ---

func TestErrorRendering_HtmxFragment(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/paragraphs/MISSING", nil)
	req.SetPathValue("id", "MISSING")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error-message") {
		t.Error("expected inline error fragment for htmx request")
	}
}

func TestErrorRendering_FullErrorPage(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/paragraphs/MISSING", nil)
	req.SetPathValue("id", "MISSING")
	rec := httptest.NewRecorder()
	h.HandleDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<!DOCTYPE html>") {
		t.Error("expected full error page for browser request")
	}
}

// --- Gradient assignment ---

func TestBuildCards_EmptySet(t *testing.T) {
	h := setupTest(t)

	items, err := ops.TopThree(context.Background(), h.db)
	if err != nil {
		t.Fatalf("TopThree: %v", err)
	}
	if len(buildCards(items)) != 0 {
		t.Fatal("expected no cards for empty set")
	}
}

func TestBuildCards_SameCategoryShareGradient(t *testing.T) {
	h := setupTest(t)
	seedParagraph(t, h, "a", "wrote software")
	seedParagraph(t, h, "b", "an ordinary day")
	seedParagraph(t, h, "c", "more software notes")

	items, err := ops.TopThree(context.Background(), h.db)
	if err != nil {
		t.Fatalf("TopThree: %v", err)
	}
	cards := buildCards(items)
	if len(cards) != 3 {
		t.Fatalf("len(cards) = %d, want 3", len(cards))
	}

	// Newest first: c (Technology), b (General), a (Technology).
	if cards[0].Gradient != cards[2].Gradient {
		t.Error("same category should share a gradient within one result set")
	}
	if cards[0].Gradient == cards[1].Gradient {
		t.Error("distinct categories should get distinct gradients")
	}
	// First-appearance order decides the palette slot.
	if cards[0].Gradient != gradientPalette[0] {
		t.Errorf("first category gradient = %q, want %q", cards[0].Gradient, gradientPalette[0])
	}
	if cards[1].Gradient != gradientPalette[1] {
		t.Errorf("second category gradient = %q, want %q", cards[1].Gradient, gradientPalette[1])
	}
}

func TestParseIntParam(t *testing.T) {
	req := httptest.NewRequest("GET", "/paragraphs?limit=5", nil)
	if got := parseIntParam(req, "limit", 20); got != 5 {
		t.Errorf("parseIntParam = %d, want 5", got)
	}

	req = httptest.NewRequest("GET", "/paragraphs?limit=abc", nil)
	if got := parseIntParam(req, "limit", 20); got != 20 {
		t.Errorf("parseIntParam fallback = %d, want 20", got)
	}

	req = httptest.NewRequest("GET", "/paragraphs", nil)
	if got := parseIntParam(req, "limit", 20); got != 20 {
		t.Errorf("parseIntParam default = %d, want 20", got)
	}
}
