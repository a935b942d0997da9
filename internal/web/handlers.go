package web

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/jotted/jotted/internal/config"
	"github.com/jotted/jotted/internal/draft"
	"github.com/jotted/jotted/internal/errors"
	"github.com/jotted/jotted/internal/ops"
	"github.com/jotted/jotted/internal/paragraph"
)

// Handlers contains HTTP route handlers for the web UI and JSON API.
type Handlers struct {
	db       *sql.DB
	cfg      *config.Config
	drafts   draft.Store
	renderer *Renderer
}

// HandleHome handles GET /: the three most recent paragraphs plus totals.
func (h *Handlers) HandleHome(w http.ResponseWriter, r *http.Request) {
	items, err := ops.TopThree(r.Context(), h.db)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	stats, err := ops.Stats(r.Context(), h.db)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "home", HomePageData{
		PageData: PageData{
			Title:   "Jotted",
			Version: h.renderer.version,
			Nav:     "home",
		},
		Cards: buildCards(items),
		Stats: stats,
	})
}

// HandleList handles GET /paragraphs: browse with text and category filters.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	result, err := ops.List(r.Context(), h.db, ops.ListInput{
		Query:    query,
		Category: category,
		Limit:    parseIntParam(r, "limit", 0),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "list", ListPageData{
		PageData: PageData{
			Title:   "Paragraphs",
			Version: h.renderer.version,
			Nav:     "paragraphs",
		},
		Cards:      buildCards(result.Items),
		Query:      query,
		Category:   category,
		Categories: paragraph.Categories(),
		Total:      result.Total,
	})
}

// HandleDetail handles GET /paragraphs/{id}: view a single paragraph.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	p, err := ops.Fetch(r.Context(), h.db, r.PathValue("id"))
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "detail", DetailPageData{
		PageData: PageData{
			Title:   p.Title,
			Version: h.renderer.version,
			Nav:     "paragraphs",
		},
		Paragraph:    p,
		RenderedHTML: renderMarkdown(p.Content),
		ReadingTime:  paragraph.ReadingTime(p.Content),
	})
}

// HandleCompose handles GET /compose: the new-paragraph form, prefilled
// from the saved draft when one exists.
func (h *Handlers) HandleCompose(w http.ResponseWriter, r *http.Request) {
	d, err := h.drafts.Get(r.Context())
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "compose", ComposePageData{
		PageData: PageData{
			Title:   "Compose",
			Version: h.renderer.version,
			Nav:     "compose",
		},
		Draft: d,
	})
}

// HandleEdit handles GET /paragraphs/{id}/edit: the edit form.
func (h *Handlers) HandleEdit(w http.ResponseWriter, r *http.Request) {
	p, err := ops.Fetch(r.Context(), h.db, r.PathValue("id"))
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "edit", EditPageData{
		PageData: PageData{
			Title:   "Edit: " + p.Title,
			Version: h.renderer.version,
			Nav:     "paragraphs",
		},
		Paragraph: p,
		TagsText:  strings.Join(p.Tags, ", "),
	})
}

// HandleCreateForm handles POST /paragraphs: publish from the compose form.
// A successful publish clears the draft slot.
func (h *Handlers) HandleCreateForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	p, err := ops.Create(r.Context(), h.db, ops.CreateInput{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
		Tags:    paragraph.ParseTags(r.FormValue("tags")),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if err := h.drafts.Clear(r.Context()); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	redirect(w, r, "/paragraphs/"+p.ID)
}

// HandleUpdateForm handles POST /paragraphs/{id}: save from the edit form.
func (h *Handlers) HandleUpdateForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	tags := paragraph.ParseTags(r.FormValue("tags"))
	p, err := ops.Update(r.Context(), h.db, ops.UpdateInput{
		ID:      r.PathValue("id"),
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
		Tags:    &tags,
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	redirect(w, r, "/paragraphs/"+p.ID)
}

// HandleDelete handles DELETE /paragraphs/{id}.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Delete(r.Context(), h.db, r.PathValue("id"))
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// HTMX request: redirect via HX-Redirect header
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/paragraphs")
		w.WriteHeader(http.StatusOK)
		return
	}

	// JSON request
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		renderJSON(w, http.StatusOK, result)
		return
	}

	// Default: redirect
	http.Redirect(w, r, "/paragraphs", http.StatusFound)
}

// HandleDraftSave handles POST /compose/draft: the 30-second autosave from
// the compose form. Saves unconditionally, even when nothing changed.
func (h *Handlers) HandleDraftSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	content := r.FormValue("content")
	d := draft.Draft{
		Title:     r.FormValue("title"),
		Content:   content,
		Tags:      paragraph.ParseTags(r.FormValue("tags")),
		WordCount: paragraph.CountWords(content),
		CharCount: paragraph.CountChars(content),
	}

	if err := h.drafts.Put(r.Context(), d); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<span class="draft-status">Draft saved</span>`))
}

// redirect sends an htmx-aware redirect: HX-Redirect for htmx requests,
// a standard 302 otherwise.
func redirect(w http.ResponseWriter, r *http.Request, location string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", location)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, location, http.StatusFound)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
