// Package controller drives one page through its two states:
//
//	Form-visible ──submit (valid)──▶ Grid-visible
//	     ▲  └─submit (invalid)─┘          │
//	     └────────────retry───────────────┘
//
// There is no terminal state. A Controller is not safe for concurrent use;
// callers serialize events so one handler runs to completion before the
// next starts (see package session).
package controller

import (
	"errors"
	"log/slog"

	"github.com/aanand-mishra/dino-compare/internal/compare"
	"github.com/aanand-mishra/dino-compare/internal/grid"
	"github.com/aanand-mishra/dino-compare/internal/types"
	"github.com/aanand-mishra/dino-compare/internal/validation"
	"github.com/aanand-mishra/dino-compare/internal/view"
)

// State is the visible part of the page.
type State int

const (
	FormVisible State = iota
	GridVisible
)

func (s State) String() string {
	switch s {
	case FormVisible:
		return "form"
	case GridVisible:
		return "grid"
	default:
		return "unknown"
	}
}

// ErrWrongState is returned when an event arrives in a state that has no
// transition for it (submitting while the grid is up, retrying on the form).
var ErrWrongState = errors.New("event not allowed in current state")

// Controller owns a view, the immutable dataset and a random source.
type Controller struct {
	dinos []types.Dinosaur
	view  view.View
	rand  grid.Rand
	log   *slog.Logger

	state State
}

// New returns a controller in the initial Form-visible state with the
// form cleared. dinos is only read, never modified.
func New(dinos []types.Dinosaur, v view.View, r grid.Rand, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	c := &Controller{
		dinos: dinos,
		view:  v,
		rand:  r,
		log:   log,
		state: FormVisible,
	}
	v.ClearForm()
	v.ShowForm()
	return c
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Submit reads the form and either shows the grid or the validation
// errors. It reports whether the input was complete.
func (c *Controller) Submit() (bool, error) {
	if c.state != FormVisible {
		return false, ErrWrongState
	}

	human := c.view.HumanInput()
	tiles, messages := Evaluate(c.rand, c.dinos, human)
	if len(messages) > 0 {
		c.log.Info("submission rejected", slog.Int("errors", len(messages)))
		c.view.SetErrors(validation.MsgIncomplete, messages)
		c.view.ShowModal()
		return false, nil
	}

	c.view.ClearErrors()
	c.view.HideForm()
	c.view.ShowGrid(tiles)
	c.view.ShowRetry()
	c.view.ClearForm()
	c.state = GridVisible

	c.log.Info("grid rendered",
		slog.String("human", human.Name),
		slog.Int("tiles", len(tiles)))
	return true, nil
}

// Retry goes back to the form: the grid is emptied, the retry control
// loses its content and the form is shown again.
func (c *Controller) Retry() error {
	if c.state != GridVisible {
		return ErrWrongState
	}

	c.view.ClearRetry()
	c.view.ClearGrid()
	c.view.ShowForm()
	c.state = FormVisible

	c.log.Info("retry")
	return nil
}

// DismissModal handles a click outside the open modal. It never changes
// state.
func (c *Controller) DismissModal() {
	c.view.HideModal()
}

// Evaluate validates human and, when complete, builds the tile grid
// against dinos. Exactly one of the two results is non-empty.
func Evaluate(r grid.Rand, dinos []types.Dinosaur, human types.Human) ([]types.Tile, []string) {
	if complete, messages := validation.Validate(human); !complete {
		return nil, messages
	}
	return grid.Build(r, compare.All(dinos, human), human), nil
}
