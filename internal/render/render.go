// Package render writes a view.Page as HTML, and a tile grid as plain text
// for the command line, using pongo2 templates embedded in the binary.
package render

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/flosch/pongo2/v6"

	"github.com/aanand-mishra/dino-compare/internal/types"
	"github.com/aanand-mishra/dino-compare/internal/view"
)

//go:embed templates/*
var templateFS embed.FS

// Renderer holds the parsed templates. It is safe for concurrent use.
type Renderer struct {
	page *pongo2.Template
	text *pongo2.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("render: templates dir: %w", err)
	}
	set := pongo2.NewSet("dino-compare", pongo2.NewFSLoader(sub))

	page, err := set.FromFile("page.html")
	if err != nil {
		return nil, fmt.Errorf("render: parse page.html: %w", err)
	}
	text, err := set.FromFile("grid.txt")
	if err != nil {
		return nil, fmt.Errorf("render: parse grid.txt: %w", err)
	}

	return &Renderer{page: page, text: text}, nil
}

// Page writes the full HTML document for p. The grid container's
// contents are regenerated from p.Tiles on every call.
func (r *Renderer) Page(w io.Writer, p *view.Page) error {
	ctx := pongo2.Context{
		"page":  p,
		"diets": view.Diets,
	}
	if err := r.page.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("render: page: %w", err)
	}
	return nil
}

// Text writes tiles as a numbered plain-text list.
func (r *Renderer) Text(w io.Writer, tiles []types.Tile) error {
	if err := r.text.ExecuteWriter(pongo2.Context{"tiles": tiles}, w); err != nil {
		return fmt.Errorf("render: text: %w", err)
	}
	return nil
}
