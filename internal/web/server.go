package web

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jotted/jotted/internal/config"
	"github.com/jotted/jotted/internal/draft"
	"github.com/jotted/jotted/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// NewServer creates and configures the HTTP server for the Jotted web UI
// and JSON API.
func NewServer(db *sql.DB, cfg *config.Config, drafts draft.Store, version, bind string, port int) *http.Server {
	// Create sub-FS for templates (strip "templates/" prefix)
	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		logger.Sugar.Fatalf("failed to create template sub-FS: %v", err)
	}

	// Create sub-FS for static files (strip "static/" prefix)
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		logger.Sugar.Fatalf("failed to create static sub-FS: %v", err)
	}

	renderer := NewRenderer(templateSub, version)

	h := &Handlers{
		db:       db,
		cfg:      cfg,
		drafts:   drafts,
		renderer: renderer,
	}

	mux := http.NewServeMux()

	// HTML pages, using Go 1.22+ pattern syntax
	mux.HandleFunc("GET /{$}", h.HandleHome)
	mux.HandleFunc("GET /paragraphs", h.HandleList)
	mux.HandleFunc("GET /paragraphs/{id}", h.HandleDetail)
	mux.HandleFunc("GET /paragraphs/{id}/edit", h.HandleEdit)
	mux.HandleFunc("POST /paragraphs", h.HandleCreateForm)
	mux.HandleFunc("POST /paragraphs/{id}", h.HandleUpdateForm)
	mux.HandleFunc("DELETE /paragraphs/{id}", h.HandleDelete)
	mux.HandleFunc("GET /compose", h.HandleCompose)
	mux.HandleFunc("POST /compose/draft", h.HandleDraftSave)

	// JSON API
	mux.HandleFunc("POST /api/paragraphs", h.HandleAPICreate)
	mux.HandleFunc("GET /api/paragraphs", h.HandleAPIList)
	mux.HandleFunc("GET /api/paragraphs/top-three", h.HandleAPITopThree)
	mux.HandleFunc("GET /api/paragraphs/stats", h.HandleAPIStats)
	mux.HandleFunc("GET /api/paragraphs/{id}", h.HandleAPIGet)
	mux.HandleFunc("PUT /api/paragraphs/{id}", h.HandleAPIUpdate)
	mux.HandleFunc("DELETE /api/paragraphs/{id}", h.HandleAPIDelete)
	mux.HandleFunc("GET /api/draft", h.HandleAPIDraftGet)
	mux.HandleFunc("PUT /api/draft", h.HandleAPIDraftPut)
	mux.HandleFunc("DELETE /api/draft", h.HandleAPIDraftClear)

	// Static file server
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticSub)))

	// Wrap with security headers
	handler := securityHeaders(mux)

	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", bind, port),
		Handler: handler,
	}
}

// securityHeaders adds security-related HTTP headers to all responses.
// The script-src allowance for unpkg.com covers the htmx runtime.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' https://unpkg.com; style-src 'self'")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

// Run starts the HTTP server and handles graceful shutdown on SIGINT/SIGTERM.
func Run(srv *http.Server) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Sugar.Infof("Jotted running at http://%s", srv.Addr)

	if strings.Contains(srv.Addr, "0.0.0.0") || strings.Contains(srv.Addr, "::") {
		logger.Sugar.Warn("Server is binding to all interfaces and may be accessible from the network")
	}

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		logger.Sugar.Info("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
