// Package aiwidget renders the standalone chat-widget document: a complete
// HTML file with a floating bubble that talks to the generative-language API
// directly from the visitor's browser.
package aiwidget

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/whatsx/formkit/pkg/model"
	"github.com/whatsx/formkit/pkg/render"
	rendertemplate "github.com/whatsx/formkit/pkg/render/template"
	gotemplate "github.com/whatsx/formkit/pkg/render/template/gotemplate"
	"github.com/whatsx/formkit/pkg/sanitize"
)

// ErrAgentDisabled is returned when the form carries no active agent config.
// Rendering a widget from a disabled config would be corrupt output, so this
// renderer fails fast instead of degrading.
var ErrAgentDisabled = errors.New("aiwidget renderer: agent config is missing or disabled")

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the chat-widget renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("aiwidget renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "aiwidget"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the standalone widget document from the form's agent
// config, styled with the form's tokens.
func (r *Renderer) Render(ctx context.Context, form model.Form, options render.RenderOptions) ([]byte, error) {
	if !form.AgentEnabled() {
		return nil, ErrAgentDisabled
	}
	return r.Assemble(ctx, *form.Agent, form.Style, options)
}

// Assemble produces the widget document from an agent config alone, using
// the given style tokens for colors and type.
func (r *Renderer) Assemble(ctx context.Context, agent model.AgentConfig, style model.StyleTokens, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("aiwidget renderer: template renderer is nil")
	}
	if !agent.Enabled {
		return nil, ErrAgentDisabled
	}

	token := options.ResolveToken()
	agent.Normalize()

	configJSON, err := widgetConfigJSON(agent)
	if err != nil {
		return nil, fmt.Errorf("aiwidget renderer: encode runtime config: %w", err)
	}

	name := sanitize.Text(agent.AgentName)
	if name == "" {
		name = "Assistant"
	}

	data := map[string]any{
		"token":       token,
		"agent_name":  name,
		"welcome":     sanitize.Text(agent.WelcomeMessage),
		"style":       styleContext(style),
		"config_json": configJSON,
	}

	result, err := r.templates.RenderTemplate("templates/widget.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("aiwidget renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// widgetConfig is the JSON island the generated script parses. Free text is
// never spliced into script literals, so prompt content cannot break the
// generated program.
type widgetConfig struct {
	Name         string  `json:"name"`
	SystemPrompt string  `json:"systemPrompt"`
	Welcome      string  `json:"welcome"`
	APIKey       string  `json:"apiKey"`
	Model        string  `json:"model"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"maxTokens"`
}

func widgetConfigJSON(agent model.AgentConfig) (string, error) {
	payload, err := json.Marshal(widgetConfig{
		Name:         sanitize.Text(agent.AgentName),
		SystemPrompt: agent.SystemPrompt,
		Welcome:      sanitize.Text(agent.WelcomeMessage),
		APIKey:       agent.APIKey,
		Model:        agent.ModelName(),
		Temperature:  agent.Temperature,
		MaxTokens:    agent.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func styleContext(style model.StyleTokens) map[string]string {
	defaults := model.DefaultStyle()
	if style.PrimaryColor == "" {
		style.PrimaryColor = defaults.PrimaryColor
	}
	if style.TextColor == "" {
		style.TextColor = defaults.TextColor
	}
	if style.FontFamily == "" {
		style.FontFamily = defaults.FontFamily
	}
	if style.BorderRadius == "" {
		style.BorderRadius = defaults.BorderRadius
	}
	return map[string]string{
		"primaryColor": style.PrimaryColor,
		"textColor":    style.TextColor,
		"fontFamily":   style.FontFamily,
		"borderRadius": style.BorderRadius,
	}
}
