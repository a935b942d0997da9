package web

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/jotted/jotted/internal/draft"
	"github.com/jotted/jotted/internal/errors"
	"github.com/jotted/jotted/internal/ops"
	"github.com/jotted/jotted/internal/paragraph"
)

// createRequest is the POST /api/paragraphs body. Word and character counts
// are accepted for compatibility but recomputed server-side from content.
// Tags stays raw so a present-but-malformed value can be rejected as a
// validation error instead of a decode failure.
type createRequest struct {
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Tags      json.RawMessage `json:"tags"`
	WordCount int             `json:"word_count"`
	CharCount int             `json:"char_count"`
}

// updateRequest is the PUT /api/paragraphs/{id} body. Tags must be present:
// updates replace the full document.
type updateRequest struct {
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Tags    *[]string `json:"tags"`
}

// apiError writes err as a structured JSON error response.
func apiError(w http.ResponseWriter, err error) {
	var jErr *errors.JottedError
	if !stderrors.As(err, &jErr) {
		jErr = errors.NewInternal(err)
	}
	writeError(w, jErr)
}

// decodeTags converts a raw tags value into a string slice. Absent or null
// means no tags; anything that is not an array of strings is invalid.
func decodeTags(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, errors.NewInvalidRequest("tags must be an array of strings")
	}
	return tags, nil
}

// HandleAPICreate handles POST /api/paragraphs.
func (h *Handlers) HandleAPICreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, errors.NewInvalidRequest("invalid JSON body"))
		return
	}

	tags, err := decodeTags(req.Tags)
	if err != nil {
		apiError(w, err)
		return
	}

	p, opErr := ops.Create(r.Context(), h.db, ops.CreateInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    tags,
	})
	if opErr != nil {
		apiError(w, opErr)
		return
	}

	renderJSON(w, http.StatusCreated, p)
}

// HandleAPIList handles GET /api/paragraphs.
func (h *Handlers) HandleAPIList(w http.ResponseWriter, r *http.Request) {
	result, err := ops.List(r.Context(), h.db, ops.ListInput{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		Limit:    parseIntParam(r, "limit", 0),
	})
	if err != nil {
		apiError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

// HandleAPITopThree handles GET /api/paragraphs/top-three.
func (h *Handlers) HandleAPITopThree(w http.ResponseWriter, r *http.Request) {
	items, err := ops.TopThree(r.Context(), h.db)
	if err != nil {
		apiError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, items)
}

// HandleAPIStats handles GET /api/paragraphs/stats.
func (h *Handlers) HandleAPIStats(w http.ResponseWriter, r *http.Request) {
	stats, err := ops.Stats(r.Context(), h.db)
	if err != nil {
		apiError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, stats)
}

// HandleAPIGet handles GET /api/paragraphs/{id}.
func (h *Handlers) HandleAPIGet(w http.ResponseWriter, r *http.Request) {
	p, err := ops.Fetch(r.Context(), h.db, r.PathValue("id"))
	if err != nil {
		apiError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, p)
}

// HandleAPIUpdate handles PUT /api/paragraphs/{id}.
func (h *Handlers) HandleAPIUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, errors.NewInvalidRequest("invalid JSON body"))
		return
	}

	p, err := ops.Update(r.Context(), h.db, ops.UpdateInput{
		ID:      r.PathValue("id"),
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		apiError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, p)
}

// HandleAPIDelete handles DELETE /api/paragraphs/{id}.
func (h *Handlers) HandleAPIDelete(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Delete(r.Context(), h.db, r.PathValue("id"))
	if err != nil {
		apiError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

// HandleAPIDraftGet handles GET /api/draft. An empty slot is 204.
func (h *Handlers) HandleAPIDraftGet(w http.ResponseWriter, r *http.Request) {
	d, err := h.drafts.Get(r.Context())
	if err != nil {
		apiError(w, err)
		return
	}

	if d == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	renderJSON(w, http.StatusOK, d)
}

// HandleAPIDraftPut handles PUT /api/draft. Last write wins; counts are
// recomputed from the submitted content.
func (h *Handlers) HandleAPIDraftPut(w http.ResponseWriter, r *http.Request) {
	var d draft.Draft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		apiError(w, errors.NewInvalidRequest("invalid JSON body"))
		return
	}

	d.Tags = paragraph.NormalizeTags(d.Tags)
	d.WordCount = paragraph.CountWords(d.Content)
	d.CharCount = paragraph.CountChars(d.Content)

	if err := h.drafts.Put(r.Context(), d); err != nil {
		apiError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAPIDraftClear handles DELETE /api/draft.
func (h *Handlers) HandleAPIDraftClear(w http.ResponseWriter, r *http.Request) {
	if err := h.drafts.Clear(r.Context()); err != nil {
		apiError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
