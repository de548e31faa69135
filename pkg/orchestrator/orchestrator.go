// Package orchestrator coordinates the full export pipeline: resolve the
// form (explicit or from a catalog template), apply theme overrides, pick a
// renderer, and produce the exportable document bytes.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/whatsx/formkit/pkg/model"
	"github.com/whatsx/formkit/pkg/render"
	"github.com/whatsx/formkit/pkg/renderers/aiwidget"
	"github.com/whatsx/formkit/pkg/renderers/popup"
	"github.com/whatsx/formkit/pkg/templates"
)

const defaultRendererName = "popup"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithCatalog injects a template catalog used to resolve TemplateID requests.
func WithCatalog(catalog *templates.Catalog) Option {
	return func(o *Orchestrator) {
		o.catalog = catalog
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithIDSource injects the token source renderers draw export ids from.
func WithIDSource(source render.IDSource) Option {
	return func(o *Orchestrator) {
		o.idSource = source
	}
}

// Orchestrator coordinates form resolution and rendering. It applies sensible
// defaults (popup + aiwidget renderers, embedded catalog) while remaining
// open to dependency injection for advanced callers.
type Orchestrator struct {
	registry        *render.Registry
	catalog         *templates.Catalog
	defaultRenderer string
	idSource        render.IDSource
	themeSelector   theme.ThemeSelector
	themeName       string
	themeVariant    string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render one export.
type Request struct {
	// Form is the definition to render. Optional when TemplateID is set.
	Form *model.Form

	// TemplateID instantiates a catalog template when Form is nil.
	TemplateID string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// Token fixes the per-export id suffix. Leave empty to draw one from the
	// configured id source.
	Token string

	// ThemeName and ThemeVariant select a style preset when a theme selector
	// is configured. The resolved tokens override the form's style.
	ThemeName    string
	ThemeVariant string
}

// Generate executes the resolve → theme → render sequence and returns the
// rendered bytes. The form is consumed read-only; reusing it across exports
// is safe.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	form, err := o.resolveForm(req)
	if err != nil {
		return nil, err
	}

	if err := o.applyTheme(&form, req); err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, render.RenderOptions{
		Token: req.Token,
		IDs:   o.idSource,
	})
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) resolveForm(req Request) (model.Form, error) {
	if req.Form != nil {
		return req.Form.Clone(), nil
	}
	if req.TemplateID == "" {
		return model.Form{}, errors.New("orchestrator: form or template id is required")
	}
	if o.catalog == nil {
		return model.Form{}, errors.New("orchestrator: template catalog is nil")
	}
	form, err := o.catalog.Instantiate(req.TemplateID)
	if err != nil {
		return model.Form{}, fmt.Errorf("orchestrator: resolve template: %w", err)
	}
	return form, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()

		popupRenderer, err := popup.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: popup renderer: %w", err)
		} else {
			o.registry.MustRegister(popupRenderer)
		}

		widgetRenderer, err := aiwidget.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: aiwidget renderer: %w", err)
		} else {
			o.registry.MustRegister(widgetRenderer)
		}
	}
	if o.catalog == nil {
		o.catalog = templates.Default()
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
