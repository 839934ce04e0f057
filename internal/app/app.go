// Package app assembles the HTTP handler tree from loaded dependencies.
package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aanand-mishra/dino-compare/internal/http/handlers/widget"
	"github.com/aanand-mishra/dino-compare/internal/http/middleware"
	"github.com/aanand-mishra/dino-compare/internal/render"
	"github.com/aanand-mishra/dino-compare/internal/session"
	"github.com/aanand-mishra/dino-compare/internal/storage"
	"github.com/aanand-mishra/dino-compare/internal/types"
)

// Options are the knobs the handler tree needs from the config.
type Options struct {
	ImagesDir  string
	Seed       int64
	SessionTTL time.Duration
}

// New registers every route and wraps the router in request logging.
// dinos is the dataset as loaded; it is shared read-only by all sessions.
//
// Route table:
//
//	GET  /                          → current page of the session
//	POST /compare                   → submit the form
//	POST /retry                     → back to the form
//	POST /modal/dismiss             → close the validation modal
//	POST /api/compare               → stateless JSON comparison
//	GET  /api/dinosaurs             → dataset as JSON list
//	GET  /api/dinosaurs/{species}   → one dinosaur
//	GET  /dino.json                 → dataset in its file shape
//	GET  /images/                   → tile images
func New(dinos []types.Dinosaur, catalog storage.Catalog, opts Options, log *slog.Logger) (http.Handler, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("app.New: %w", err)
	}
	sessions := session.NewStore(dinos, opts.Seed, opts.SessionTTL, log)

	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", widget.Page(sessions, renderer))
	router.HandleFunc("POST /compare", widget.Compare(sessions, renderer))
	router.HandleFunc("POST /retry", widget.Retry(sessions, renderer))
	router.HandleFunc("POST /modal/dismiss", widget.DismissModal(sessions, renderer))

	router.HandleFunc("POST /api/compare", widget.APICompare(dinos, opts.Seed))
	router.HandleFunc("GET /api/dinosaurs", widget.ListDinosaurs(catalog))
	router.HandleFunc("GET /api/dinosaurs/{species}", widget.GetDinosaur(catalog))
	router.HandleFunc("GET /dino.json", widget.Dataset(catalog))

	if opts.ImagesDir != "" {
		router.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(opts.ImagesDir))))
	}

	return middleware.Logging(log, router), nil
}
