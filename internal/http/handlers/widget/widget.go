// Package widget contains the HTTP handlers for the comparison page and
// its JSON API.
//
// HANDLER PATTERN: each exported function is a factory. It receives its
// dependencies once at route registration and returns the closure the
// router calls on every request:
//
//	router.HandleFunc("POST /compare", widget.Compare(sessions, renderer))
//
// Page handlers look up the browser's session from a cookie, apply one
// event to its controller under the session lock, then render a snapshot
// of the page.
package widget

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/dino-compare/internal/controller"
	"github.com/aanand-mishra/dino-compare/internal/dataset"
	"github.com/aanand-mishra/dino-compare/internal/grid"
	"github.com/aanand-mishra/dino-compare/internal/http/middleware"
	"github.com/aanand-mishra/dino-compare/internal/render"
	"github.com/aanand-mishra/dino-compare/internal/session"
	"github.com/aanand-mishra/dino-compare/internal/storage"
	"github.com/aanand-mishra/dino-compare/internal/types"
	"github.com/aanand-mishra/dino-compare/internal/utils/response"
	"github.com/aanand-mishra/dino-compare/internal/view"
)

// SessionCookie names the cookie holding the session id.
const SessionCookie = "dino_session"

// event is one user interaction applied to a session.
type event func(r *http.Request, c *controller.Controller, p *view.Page)

// ─────────────────────────────────────────────────────────────────────────────
// Page handles GET /
// Renders whatever the session currently shows. A new session starts on
// the cleared form.
// ─────────────────────────────────────────────────────────────────────────────
func Page(sessions *session.Store, renderer *render.Renderer) http.HandlerFunc {
	return handle(sessions, renderer, nil)
}

// ─────────────────────────────────────────────────────────────────────────────
// Compare handles POST /compare
// Form fields: name, feet, inches, weight, diet.
//
// Valid input hides the form and shows the grid plus the retry control.
// Invalid input keeps the form, fills both validation containers and
// opens the modal.
// ─────────────────────────────────────────────────────────────────────────────
func Compare(sessions *session.Store, renderer *render.Renderer) http.HandlerFunc {
	return handle(sessions, renderer, func(r *http.Request, c *controller.Controller, p *view.Page) {
		log := middleware.Logger(r.Context())
		log.Info("comparing")

		if c.State() == controller.FormVisible {
			p.Fill(view.Fields{
				Name:   r.PostFormValue("name"),
				Feet:   r.PostFormValue("feet"),
				Inches: r.PostFormValue("inches"),
				Weight: r.PostFormValue("weight"),
				Diet:   r.PostFormValue("diet"),
			})
		}

		if _, err := c.Submit(); err != nil {
			// A resubmitted form while the grid is up; show the grid again.
			log.Warn("submit ignored",
				slog.String("state", c.State().String()),
				slog.String("error", err.Error()))
		}
	})
}

// Retry handles POST /retry: grid → form.
func Retry(sessions *session.Store, renderer *render.Renderer) http.HandlerFunc {
	return handle(sessions, renderer, func(r *http.Request, c *controller.Controller, _ *view.Page) {
		log := middleware.Logger(r.Context())
		log.Info("retrying")

		if err := c.Retry(); err != nil {
			log.Warn("retry ignored",
				slog.String("state", c.State().String()),
				slog.String("error", err.Error()))
		}
	})
}

// DismissModal handles POST /modal/dismiss, a click outside the modal.
func DismissModal(sessions *session.Store, renderer *render.Renderer) http.HandlerFunc {
	return handle(sessions, renderer, func(_ *http.Request, c *controller.Controller, _ *view.Page) {
		c.DismissModal()
	})
}

func handle(sessions *session.Store, renderer *render.Renderer, ev event) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := middleware.Logger(r.Context())
		var id string
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			id = cookie.Value
		}

		sess, created := sessions.Get(id)
		if created {
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		var apply func(*controller.Controller, *view.Page)
		if ev != nil {
			apply = func(c *controller.Controller, p *view.Page) { ev(r, c, p) }
		}
		page := sess.Do(apply)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.Page(w, page); err != nil {
			log.Error("error rendering page", slog.String("error", err.Error()))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// CompareResult is the success body of POST /api/compare.
type CompareResult struct {
	Status string       `json:"status"`
	Human  types.Human  `json:"human"`
	Tiles  []types.Tile `json:"tiles"`
}

// ─────────────────────────────────────────────────────────────────────────────
// APICompare handles POST /api/compare
// Stateless version of the page flow for API clients.
//
// Request body (JSON):
//
//	{ "name": "Rex", "feet": 5, "inches": 10, "weight": 180, "diet": "Herbivore" }
//
// Success response (200 OK): { "status": "ok", "human": {...}, "tiles": [...] }
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//
// ─────────────────────────────────────────────────────────────────────────────
func APICompare(dinos []types.Dinosaur, seed int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := middleware.Logger(r.Context())
		log.Info("comparing via api")

		var human types.Human
		err := json.NewDecoder(r.Body).Decode(&human)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		human = view.Normalize(human)

		tiles, messages := controller.Evaluate(grid.NewRand(seed), dinos, human)
		if len(messages) > 0 {
			response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(messages))
			return
		}

		response.WriteJSON(w, http.StatusOK, CompareResult{
			Status: response.StatusOK,
			Human:  human,
			Tiles:  tiles,
		})
	}
}

// ListDinosaurs handles GET /api/dinosaurs.
func ListDinosaurs(catalog storage.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := middleware.Logger(r.Context())
		log.Info("listing dinosaurs")

		dinos, err := catalog.GetDinosaurs()
		if err != nil {
			log.Error("error listing dinosaurs", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, dinos)
	}
}

// GetDinosaur handles GET /api/dinosaurs/{species}.
func GetDinosaur(catalog storage.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := middleware.Logger(r.Context())
		species := r.PathValue("species")
		log.Info("getting a dinosaur", slog.String("species", species))

		dino, err := catalog.GetDinosaurBySpecies(species)
		if errors.Is(err, storage.ErrNotFound) {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
			return
		}
		if err != nil {
			log.Error("error getting dinosaur",
				slog.String("species", species),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, dino)
	}
}

// Dataset handles GET /dino.json, serving the catalog in the dataset
// file's own shape.
func Dataset(catalog storage.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := middleware.Logger(r.Context())
		dinos, err := catalog.GetDinosaurs()
		if err != nil {
			log.Error("error reading dataset", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, dataset.Document{Dinos: dinos})
	}
}
