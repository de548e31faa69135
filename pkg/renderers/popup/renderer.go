package popup

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/whatsx/formkit/pkg/model"
	"github.com/whatsx/formkit/pkg/render"
	rendertemplate "github.com/whatsx/formkit/pkg/render/template"
	gotemplate "github.com/whatsx/formkit/pkg/render/template/gotemplate"
	"github.com/whatsx/formkit/pkg/sanitize"
)

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

// Renderer produces the self-contained popup fragment a host page embeds
// before </body>: trigger button, hidden popup, submit script, and the
// optional chat assistant.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the popup renderer applying any provided options.
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
			return nil, fmt.Errorf("popup renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "popup"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render assembles the exported fragment. Every id the generated script
// references is suffixed with a per-export token, and the script itself runs
// inside an IIFE so two exports never collide on globals.
func (r *Renderer) Render(ctx context.Context, form model.Form, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("popup renderer: template renderer is nil")
	}

	token := options.ResolveToken()
	emitter := Emitter{Style: form.Style, Token: token}

	var fields strings.Builder
	for _, field := range form.Fields {
		fields.WriteString(emitter.EmitField(field))
	}

	configJSON, err := runtimeConfigJSON(form)
	if err != nil {
		return nil, fmt.Errorf("popup renderer: encode runtime config: %w", err)
	}

	data := map[string]any{
		"token":       token,
		"title":       sanitize.Text(form.Title),
		"style":       styleContext(form.Style),
		"fields_html": fields.String(),
		"config_json": configJSON,
	}
	if form.AgentEnabled() {
		data["agent"] = map[string]any{
			"name":    sanitize.Text(form.Agent.AgentName),
			"welcome": sanitize.Text(form.Agent.WelcomeMessage),
		}
	}

	result, err := r.templates.RenderTemplate("templates/popup.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("popup renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// runtimeConfig is the JSON island the generated script parses at load time.
// Free-text travels through encoding/json, so quoting characters in labels or
// prompts can never corrupt the generated program.
type runtimeConfig struct {
	WhatsAppNumber string              `json:"whatsappNumber"`
	Fields         []runtimeField      `json:"fields"`
	Agent          *runtimeAgentConfig `json:"agent,omitempty"`
}

type runtimeField struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

type runtimeAgentConfig struct {
	Name         string  `json:"name"`
	SystemPrompt string  `json:"systemPrompt"`
	Welcome      string  `json:"welcome"`
	APIKey       string  `json:"apiKey"`
	Model        string  `json:"model"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"maxTokens"`
}

func runtimeConfigJSON(form model.Form) (string, error) {
	cfg := runtimeConfig{
		WhatsAppNumber: form.WhatsAppNumber,
		Fields:         make([]runtimeField, 0, len(form.Fields)),
	}
	for _, field := range form.Fields {
		if !field.Kind.Known() {
			continue
		}
		cfg.Fields = append(cfg.Fields, runtimeField{
			ID:    field.ID,
			Kind:  string(field.Kind),
			Label: sanitize.Text(field.Label),
		})
	}
	if form.AgentEnabled() {
		cfg.Agent = &runtimeAgentConfig{
			Name:         sanitize.Text(form.Agent.AgentName),
			SystemPrompt: form.Agent.SystemPrompt,
			Welcome:      sanitize.Text(form.Agent.WelcomeMessage),
			APIKey:       form.Agent.APIKey,
			Model:        form.Agent.ModelName(),
			Temperature:  form.Agent.Temperature,
			MaxTokens:    form.Agent.MaxTokens,
		}
	}
	// json.Marshal emits <, >, and & as unicode escapes, so the island can
	// never contain a literal closing script tag.
	payload, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func styleContext(style model.StyleTokens) map[string]string {
	return map[string]string{
		"primaryColor":    style.PrimaryColor,
		"backgroundColor": style.BackgroundColor,
		"textColor":       style.TextColor,
		"fontFamily":      style.FontFamily,
		"borderRadius":    style.BorderRadius,
		"spacing":         style.Spacing,
		"buttonText":      style.ButtonText,
	}
}
