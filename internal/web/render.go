package web

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/jotted/jotted/internal/draft"
	"github.com/jotted/jotted/internal/errors"
	"github.com/jotted/jotted/internal/logger"
	"github.com/jotted/jotted/internal/ops"
	"github.com/jotted/jotted/internal/paragraph"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title   string
	Version string
	Nav     string // active nav item: "home", "paragraphs", "compose"
}

// ParagraphCard pairs a paragraph with its assigned gradient for card views.
type ParagraphCard struct {
	paragraph.Paragraph
	Gradient string
}

// HomePageData is the template data for the home page.
type HomePageData struct {
	PageData
	Cards []ParagraphCard
	Stats *ops.StatsOutput
}

// ListPageData is the template data for the paragraph list page.
type ListPageData struct {
	PageData
	Cards      []ParagraphCard
	Query      string
	Category   string
	Categories []string
	Total      int
}

// DetailPageData is the template data for the paragraph detail page.
type DetailPageData struct {
	PageData
	Paragraph    *paragraph.Paragraph
	RenderedHTML template.HTML
	ReadingTime  string
}

// ComposePageData is the template data for the compose page.
type ComposePageData struct {
	PageData
	Draft *draft.Draft
}

// EditPageData is the template data for the edit page.
type EditPageData struct {
	PageData
	Paragraph *paragraph.Paragraph
	TagsText  string
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string) *Renderer {
	funcMap := template.FuncMap{
		"add":         func(a, b int) int { return a + b },
		"formatTime":  formatTime,
		"formatCount": formatCount,
		"joinTags":    func(tags []string) string { return strings.Join(tags, ", ") },
		"readingTime": paragraph.ReadingTime,
		"excerpt":     excerpt,
	}

	// Parse layout as the base template
	layoutTmpl := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"home":    "home.html",
		"list":    "list.html",
		"detail":  "detail.html",
		"compose": "compose.html",
		"edit":    "edit.html",
		"error":   "error.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layoutTmpl.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		version:   version,
	}
}

// renderPage renders a named page template with the given data and HTTP 200 status.
func (r *Renderer) renderPage(w http.ResponseWriter, req *http.Request, name string, data any) {
	r.renderPageStatus(w, req, http.StatusOK, name, data)
}

// renderPageStatus renders a named page template with the given data and HTTP status code.
// For HTMX requests, only the "content" block is rendered to avoid duplicating the layout.
func (r *Renderer) renderPageStatus(w http.ResponseWriter, req *http.Request, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		logger.Sugar.Errorf("template %q not found", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	block := "layout"
	if req != nil && req.Header.Get("HX-Request") == "true" {
		block = "content"
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, block, data); err != nil {
		logger.Sugar.Errorf("template execution error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders an error response with content negotiation.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, err error) {
	var jErr *errors.JottedError
	if !stderrors.As(err, &jErr) {
		jErr = errors.NewInternal(err)
	}

	status := jErr.Status
	message := jErr.Message

	// HTMX request: return HTML fragment
	if req.Header.Get("HX-Request") == "true" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		fmt.Fprintf(w, `<div class="error-message">%s</div>`, template.HTMLEscapeString(message))
		return
	}

	// JSON request
	if strings.Contains(req.Header.Get("Accept"), "application/json") {
		writeError(w, jErr)
		return
	}

	// Full error page
	r.renderPageStatus(w, req, status, "error", ErrorPageData{
		PageData: PageData{
			Title:   fmt.Sprintf("Error %d", status),
			Version: r.version,
		},
		StatusCode: status,
		Message:    message,
	})
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, jErr *errors.JottedError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(jErr.Status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    string(jErr.Code),
			"message": jErr.Message,
			"status":  jErr.Status,
		},
	})
}

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// gradientPalette holds the preset card gradient identifiers, matched by
// classes in static/style.css.
var gradientPalette = []string{
	"gradient-violet",
	"gradient-ocean",
	"gradient-ember",
	"gradient-forest",
	"gradient-dusk",
	"gradient-gold",
}

// buildCards assigns a gradient to each paragraph. Gradients are cycled per
// distinct category in order of first appearance within this result set, so
// the same category can render with a different gradient on another page.
// Known inconsistency, kept until the intended behavior is decided.
func buildCards(items []paragraph.Paragraph) []ParagraphCard {
	assigned := make(map[string]string)
	cards := make([]ParagraphCard, 0, len(items))
	for _, p := range items {
		g, ok := assigned[p.Category]
		if !ok {
			g = gradientPalette[len(assigned)%len(gradientPalette)]
			assigned[p.Category] = g
		}
		cards = append(cards, ParagraphCard{Paragraph: p, Gradient: g})
	}
	return cards
}

// formatTime formats a Unix timestamp as "2006-01-02 15:04" UTC.
func formatTime(unix int64) string {
	return time.Unix(unix, 0).UTC().Format("2006-01-02 15:04")
}

// formatCount formats an integer with comma thousands separators.
func formatCount(n int) string {
	if n < 0 {
		return "-" + formatCount(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// excerpt truncates content for card previews, at a rune boundary.
func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
