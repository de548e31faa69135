package model

import "strings"

// FieldKind is the closed enum of input controls a form can carry.
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindEmail    FieldKind = "email"
	FieldKindTextarea FieldKind = "textarea"
	FieldKindSelect   FieldKind = "select"
	FieldKindCheckbox FieldKind = "checkbox"
	FieldKindRadio    FieldKind = "radio"
)

// Known reports whether the kind is part of the supported set. Renderers skip
// unknown kinds rather than failing the whole export.
func (k FieldKind) Known() bool {
	switch k {
	case FieldKindText, FieldKindEmail, FieldKindTextarea,
		FieldKindSelect, FieldKindCheckbox, FieldKindRadio:
		return true
	default:
		return false
	}
}

// Choice reports whether the kind renders from an options list.
func (k FieldKind) Choice() bool {
	return k == FieldKindSelect || k == FieldKindRadio
}

// Field models a single input inside an exported form. Struct fields are
// annotated so definitions can round-trip through JSON and YAML documents.
type Field struct {
	ID          string    `json:"id" yaml:"id"`
	Kind        FieldKind `json:"kind" yaml:"kind"`
	Label       string    `json:"label" yaml:"label"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required    bool      `json:"required" yaml:"required"`
	// Options feed select and radio controls. Order is display order and the
	// literal value order; other kinds ignore the list.
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := f
	if len(f.Options) > 0 {
		out.Options = append([]string(nil), f.Options...)
	}
	return out
}

// StyleTokens carries the visual configuration applied to generated markup.
// Values are opaque strings passed through verbatim into generated CSS;
// malformed declarations are dropped by the browser, not by us.
type StyleTokens struct {
	PrimaryColor    string `json:"primaryColor" yaml:"primaryColor"`
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor"`
	TextColor       string `json:"textColor" yaml:"textColor"`
	FontFamily      string `json:"fontFamily" yaml:"fontFamily"`
	BorderRadius    string `json:"borderRadius" yaml:"borderRadius"`
	Spacing         string `json:"spacing" yaml:"spacing"`
	ButtonText      string `json:"buttonText" yaml:"buttonText"`
}

// DefaultStyle returns the token set new forms start from.
func DefaultStyle() StyleTokens {
	return StyleTokens{
		PrimaryColor:    "#25D366",
		BackgroundColor: "#FFFFFF",
		TextColor:       "#1F2937",
		FontFamily:      "Arial, sans-serif",
		BorderRadius:    "8px",
		Spacing:         "16px",
		ButtonText:      "Send via WhatsApp",
	}
}

// AgentConfig configures the optional embedded chat assistant.
//
// APIKey is emitted verbatim into the generated document: the zero-backend
// design means the exported artifact has to carry its own credential, and
// anyone holding the file can extract and reuse it. Callers must treat the
// export as public material.
type AgentConfig struct {
	Enabled        bool    `json:"enabled" yaml:"enabled"`
	APIKey         string  `json:"geminiApiKey" yaml:"geminiApiKey"`
	Model          string  `json:"model,omitempty" yaml:"model,omitempty"`
	AgentName      string  `json:"agentName" yaml:"agentName"`
	SystemPrompt   string  `json:"systemPrompt" yaml:"systemPrompt"`
	WelcomeMessage string  `json:"welcomeMessage" yaml:"welcomeMessage"`
	Temperature    float64 `json:"temperature" yaml:"temperature"`
	MaxTokens      int     `json:"maxTokens" yaml:"maxTokens"`
}

const (
	// DefaultAgentModel is the generative-language model generated widgets
	// call when the config does not pin one.
	DefaultAgentModel = "gemini-1.5-flash"

	MinAgentTokens = 100
	MaxAgentTokens = 2048
)

// Clone returns a copy of the config. Value semantics already suffice; the
// method exists for symmetry with Field and Form.
func (a AgentConfig) Clone() AgentConfig { return a }

// ModelName resolves the generative model the config targets.
func (a AgentConfig) ModelName() string {
	if name := strings.TrimSpace(a.Model); name != "" {
		return name
	}
	return DefaultAgentModel
}

// Form is the aggregate a single export consumes. Renderers read it and never
// mutate it; all edits go through the explicit mutator methods.
type Form struct {
	Title          string       `json:"title" yaml:"title"`
	Fields         []Field      `json:"fields" yaml:"fields"`
	Style          StyleTokens  `json:"style" yaml:"style"`
	WhatsAppNumber string       `json:"whatsappNumber" yaml:"whatsappNumber"`
	Agent          *AgentConfig `json:"aiAgent,omitempty" yaml:"aiAgent,omitempty"`
}

// New constructs an empty form with the default style applied.
func New(title string) Form {
	return Form{
		Title: title,
		Style: DefaultStyle(),
	}
}

// AgentEnabled reports whether the form carries an active chat assistant.
func (f Form) AgentEnabled() bool {
	return f.Agent != nil && f.Agent.Enabled
}

// Clone returns a deep copy: mutating the copy never leaks into the original.
func (f Form) Clone() Form {
	out := f
	if len(f.Fields) > 0 {
		out.Fields = make([]Field, len(f.Fields))
		for i, field := range f.Fields {
			out.Fields[i] = field.Clone()
		}
	}
	if f.Agent != nil {
		agent := f.Agent.Clone()
		out.Agent = &agent
	}
	return out
}
