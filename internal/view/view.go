// Package view is the single place that knows about page elements.
//
// The controller talks to a View through typed accessors and never sees
// markup, so the comparison, shuffle and validation logic can be driven
// and tested without a rendering environment. Page is the in-memory View
// that the HTTP layer fills from a request and renders afterwards.
package view

import (
	"html"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/aanand-mishra/dino-compare/internal/types"
)

// View is everything the interaction controller may read or change.
type View interface {
	// HumanInput reads the four input fields and the diet selector.
	HumanInput() types.Human

	SetErrors(summary string, messages []string)
	ClearErrors()

	ShowModal()
	HideModal()

	ShowForm()
	HideForm()
	ClearForm()

	ShowGrid(tiles []types.Tile)
	ClearGrid()

	ShowRetry()
	ClearRetry()
}

// Diet options offered by the selector. The first one is the default.
var Diets = []string{"Herbivore", "Omnivore", "Carnivore"}

// DefaultDiet is used when no diet was selected.
func DefaultDiet() string { return Diets[0] }

// Fields holds the raw input values exactly as typed.
// The order is the order of the inputs on the page.
type Fields struct {
	Name   string
	Feet   string
	Inches string
	Weight string
	Diet   string
}

// Page is the in-memory page state. The zero value is not ready to use;
// call NewPage.
type Page struct {
	Fields Fields

	FormVisible bool
	ModalOpen   bool

	// Summary is the validation container, Errors the field-specific one.
	Summary string
	Errors  []string

	Tiles        []types.Tile
	RetryVisible bool
}

var _ View = (*Page)(nil)

// NewPage returns a page in its initial state: form shown, nothing else.
func NewPage() *Page {
	return &Page{FormVisible: true}
}

// Fill replaces the raw field values, as when the user types into the form.
func (p *Page) Fill(f Fields) {
	p.Fields = f
}

// HumanInput converts the raw fields into a Human. Numbers that do not
// parse read as 0 and are then rejected by validation. Fractional values
// such as 5.5 are kept.
func (p *Page) HumanInput() types.Human {
	return Normalize(types.Human{
		Name:   p.Fields.Name,
		Feet:   parseFloat(p.Fields.Feet),
		Inches: parseFloat(p.Fields.Inches),
		Weight: parseFloat(p.Fields.Weight),
		Diet:   p.Fields.Diet,
	})
}

// Normalize strips markup from the name and diet and fills in the
// default diet. The name keeps its surrounding whitespace: the length
// rule counts the characters as typed.
func Normalize(h types.Human) types.Human {
	h.Name = SanitizeText(h.Name)
	h.Diet = strings.TrimSpace(SanitizeText(h.Diet))
	if h.Diet == "" {
		h.Diet = DefaultDiet()
	}
	return h
}

func (p *Page) SetErrors(summary string, messages []string) {
	p.Summary = summary
	p.Errors = append([]string(nil), messages...)
}

func (p *Page) ClearErrors() {
	p.Summary = ""
	p.Errors = nil
}

func (p *Page) ShowModal() { p.ModalOpen = true }
func (p *Page) HideModal() { p.ModalOpen = false }

func (p *Page) ShowForm() { p.FormVisible = true }
func (p *Page) HideForm() { p.FormVisible = false }

// ClearForm empties every input and wipes both validation containers.
func (p *Page) ClearForm() {
	p.Fields = Fields{}
	p.ClearErrors()
}

// ShowGrid replaces the grid contents wholesale.
func (p *Page) ShowGrid(tiles []types.Tile) {
	p.Tiles = append([]types.Tile(nil), tiles...)
}

func (p *Page) ClearGrid() { p.Tiles = nil }

func (p *Page) ShowRetry()  { p.RetryVisible = true }
func (p *Page) ClearRetry() { p.RetryVisible = false }

// Clone returns a copy that shares no slices with p, so it can be
// rendered after the session lock is released.
func (p *Page) Clone() *Page {
	c := *p
	c.Errors = append([]string(nil), p.Errors...)
	c.Tiles = append([]types.Tile(nil), p.Tiles...)
	return &c
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips all markup from user-entered text.
// The policy escapes what it keeps; escaping again is the template's job,
// so entities are decoded back to plain text here.
func SanitizeText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(textPolicy.Sanitize(raw))
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
