// Package formkit generates self-contained HTML documents from form
// definitions: a popup form widget that submits through a WhatsApp deep
// link, and an optional standalone AI chat widget. The root package is a
// thin facade over pkg/orchestrator for callers that just want bytes out.
package formkit

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/whatsx/formkit/pkg/model"
	"github.com/whatsx/formkit/pkg/orchestrator"
	"github.com/whatsx/formkit/pkg/render"
)

// Form is the root definition every export starts from.
type Form = model.Form

// Field describes one form control.
type Field = model.Field

// StyleTokens carries the visual knobs shared by both widgets.
type StyleTokens = model.StyleTokens

// AgentConfig configures the embedded chat assistant.
type AgentConfig = model.AgentConfig

// Request describes one export: the form (or a catalog template id), the
// renderer, and optional token and theme overrides.
type Request = orchestrator.Request

// RenderOptions is passed to renderers; most callers never touch it.
type RenderOptions = render.RenderOptions

// New exposes the orchestrator constructor from the top-level module.
func New(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders a form definition with the named renderer ("popup" or
// "aiwidget"). It is the simplest entry point for callers that just want
// HTML output.
func GenerateHTML(ctx context.Context, form model.Form, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Form:     &form,
		Renderer: rendererName,
	})
}

// GenerateFromTemplate instantiates a catalog template and renders it,
// bypassing form construction entirely.
func GenerateFromTemplate(ctx context.Context, templateID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		TemplateID: templateID,
		Renderer:   rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithDefaultTheme names the theme resolved when a request carries none.
func WithDefaultTheme(name, variant string) orchestrator.Option {
	return orchestrator.WithDefaultTheme(name, variant)
}
