package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errWhatsAppNumberMissing = errors.New("model: whatsapp number is required")
	errAgentKeyMissing       = errors.New("model: agent api key is required when the agent is enabled")
)

// Validate checks the invariants an export relies on. Renderers stay
// best-effort for per-field problems; Validate exists so authoring surfaces
// can warn before export rather than ship a degraded document.
func (f Form) Validate() error {
	if strings.TrimSpace(f.WhatsAppNumber) == "" {
		return errWhatsAppNumberMissing
	}
	seen := make(map[string]struct{}, len(f.Fields))
	for i, field := range f.Fields {
		if strings.TrimSpace(field.ID) == "" {
			return fmt.Errorf("model: field %d has no id", i)
		}
		if _, dup := seen[field.ID]; dup {
			return fmt.Errorf("model: duplicate field id %q", field.ID)
		}
		seen[field.ID] = struct{}{}
		if !field.Kind.Known() {
			return fmt.Errorf("model: field %q has unknown kind %q", field.ID, field.Kind)
		}
		if field.Kind.Choice() && len(field.Options) == 0 {
			return fmt.Errorf("model: field %q (%s) requires at least one option", field.ID, field.Kind)
		}
	}
	if f.AgentEnabled() {
		if err := f.Agent.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the agent configuration bounds.
func (a AgentConfig) Validate() error {
	if !a.Enabled {
		return nil
	}
	if strings.TrimSpace(a.APIKey) == "" {
		return errAgentKeyMissing
	}
	if a.Temperature < 0 || a.Temperature > 1 {
		return fmt.Errorf("model: agent temperature %v outside [0,1]", a.Temperature)
	}
	if a.MaxTokens < MinAgentTokens || a.MaxTokens > MaxAgentTokens {
		return fmt.Errorf("model: agent max tokens %d outside [%d,%d]", a.MaxTokens, MinAgentTokens, MaxAgentTokens)
	}
	return nil
}

// Normalize clamps agent bounds instead of rejecting them. Authoring surfaces
// that take raw user input (wizard, imported definitions) call this before
// export.
func (a *AgentConfig) Normalize() {
	if a == nil {
		return
	}
	if a.Temperature < 0 {
		a.Temperature = 0
	}
	if a.Temperature > 1 {
		a.Temperature = 1
	}
	if a.MaxTokens == 0 {
		a.MaxTokens = MaxAgentTokens / 2
	}
	if a.MaxTokens < MinAgentTokens {
		a.MaxTokens = MinAgentTokens
	}
	if a.MaxTokens > MaxAgentTokens {
		a.MaxTokens = MaxAgentTokens
	}
}
