package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/dino-compare/internal/render"
	"github.com/aanand-mishra/dino-compare/internal/types"
	"github.com/aanand-mishra/dino-compare/internal/view"
)

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.New()
	require.NoError(t, err)
	return r
}

func TestPageFormState(t *testing.T) {
	p := view.NewPage()
	p.Fill(view.Fields{Name: `<Rex & "Co">`, Diet: "Omnivore"})
	p.SetErrors("Please complete all fields", []string{"first", "second"})
	p.ShowModal()

	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Page(&buf, p))
	html := buf.String()

	assert.NotContains(t, html, `class="hidden"`)
	assert.Contains(t, html, "&lt;Rex &amp; &quot;Co&quot;&gt;")
	assert.Contains(t, html, `<option value="Omnivore" selected>`)
	assert.Contains(t, html, "Please complete all fields")
	assert.Contains(t, html, "first<br/>second")
	assert.Contains(t, html, `class="modal"`)
	assert.NotContains(t, html, "Retry")
}

func TestModalContentSitsAboveBackdrop(t *testing.T) {
	p := view.NewPage()
	p.SetErrors("Please complete all fields", []string{"first"})
	p.ShowModal()

	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Page(&buf, p))
	html := buf.String()

	// The backdrop is absolutely positioned; the content must be
	// positioned too or the backdrop covers it and swallows its clicks.
	assert.Contains(t, html, ".modal-backdrop { position: absolute;")
	assert.Contains(t, html, ".modal-content { position: relative;")
	assert.Less(t, strings.Index(html, `class="modal-backdrop"`), strings.Index(html, `class="modal-content"`),
		"content comes after the backdrop so it stacks above it")
}

func TestNumberInputsAcceptFractions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Page(&buf, view.NewPage()))
	html := buf.String()

	for _, name := range []string{"feet", "inches", "weight"} {
		assert.Contains(t, html, `name="`+name+`" type="number" step="any"`)
	}
}

func TestPageGridState(t *testing.T) {
	p := view.NewPage()
	p.HideForm()
	p.ShowRetry()
	p.ShowGrid([]types.Tile{
		{Heading: "Triceratops", Image: "images/Triceratops.png", Fact: "A fact."},
		{Heading: "Rex", Image: "images/human.png", IsHuman: true},
	})

	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Page(&buf, p))
	html := buf.String()

	assert.Contains(t, html, `id="dino-compare" method="post" action="/compare" class="hidden"`)
	assert.Equal(t, 2, strings.Count(html, `class="grid-item"`))
	assert.Contains(t, html, `<img src="/images/human.png" alt="Rex">`)
	assert.Contains(t, html, "<p>A fact.</p>")
	assert.Contains(t, html, "<h1>Retry</h1>")
	assert.NotContains(t, html, `class="modal"`)
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	err := newRenderer(t).Text(&buf, []types.Tile{
		{Heading: "Pigeon", Image: "images/Pigeon.png", Fact: "All birds are considered dinosaurs."},
		{Heading: "Rex", Image: "images/human.png", IsHuman: true},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "[1] Pigeon")
	assert.Contains(t, out, "All birds are considered dinosaurs.")
	assert.Contains(t, out, "[2] Rex (you)")
}
