package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// newFieldID mints identifiers for fields added without one. Overridable in
// tests that need stable ids.
var newFieldID = func() string { return uuid.NewString() }

// AddField appends a field to the form, assigning an identifier when the
// caller did not provide one. The assigned field is returned so callers can
// reference its ID.
func (f *Form) AddField(field Field) (Field, error) {
	if f == nil {
		return Field{}, fmt.Errorf("model: form is nil")
	}
	if !field.Kind.Known() {
		return Field{}, fmt.Errorf("model: unknown field kind %q", field.Kind)
	}
	if strings.TrimSpace(field.ID) == "" {
		field.ID = newFieldID()
	} else if f.fieldIndex(field.ID) >= 0 {
		return Field{}, fmt.Errorf("model: field id %q already in use", field.ID)
	}
	f.Fields = append(f.Fields, field.Clone())
	return field, nil
}

// UpdateField replaces the field with the matching ID. The ID itself is
// immutable: updates carrying a different ID are rejected.
func (f *Form) UpdateField(id string, field Field) error {
	if f == nil {
		return fmt.Errorf("model: form is nil")
	}
	idx := f.fieldIndex(id)
	if idx < 0 {
		return fmt.Errorf("model: field %q not found", id)
	}
	if field.ID != "" && field.ID != id {
		return fmt.Errorf("model: field id is immutable (have %q, got %q)", id, field.ID)
	}
	field.ID = id
	f.Fields[idx] = field.Clone()
	return nil
}

// RemoveField deletes the field with the matching ID. Removed ids are never
// reassigned.
func (f *Form) RemoveField(id string) error {
	if f == nil {
		return fmt.Errorf("model: form is nil")
	}
	idx := f.fieldIndex(id)
	if idx < 0 {
		return fmt.Errorf("model: field %q not found", id)
	}
	f.Fields = append(f.Fields[:idx], f.Fields[idx+1:]...)
	return nil
}

// MoveField repositions a field; position is clamped to the valid range.
// Field order is display order in every export.
func (f *Form) MoveField(id string, position int) error {
	if f == nil {
		return fmt.Errorf("model: form is nil")
	}
	idx := f.fieldIndex(id)
	if idx < 0 {
		return fmt.Errorf("model: field %q not found", id)
	}
	if position < 0 {
		position = 0
	}
	if position >= len(f.Fields) {
		position = len(f.Fields) - 1
	}
	field := f.Fields[idx]
	f.Fields = append(f.Fields[:idx], f.Fields[idx+1:]...)
	rest := append([]Field(nil), f.Fields[position:]...)
	f.Fields = append(f.Fields[:position], field)
	f.Fields = append(f.Fields, rest...)
	return nil
}

// FieldByID returns a copy of the field with the matching ID.
func (f Form) FieldByID(id string) (Field, bool) {
	idx := f.fieldIndex(id)
	if idx < 0 {
		return Field{}, false
	}
	return f.Fields[idx].Clone(), true
}

// SetTitle replaces the popup title.
func (f *Form) SetTitle(title string) {
	if f == nil {
		return
	}
	f.Title = title
}

// SetStyle replaces the whole token set.
func (f *Form) SetStyle(style StyleTokens) {
	if f == nil {
		return
	}
	f.Style = style
}

// SetWhatsAppNumber replaces the submission destination. The value is embedded
// into a wa.me URL as-is; no phone validation happens here.
func (f *Form) SetWhatsAppNumber(number string) {
	if f == nil {
		return
	}
	f.WhatsAppNumber = strings.TrimSpace(number)
}

// SetAgent installs or replaces the chat assistant config. Passing nil
// removes it entirely.
func (f *Form) SetAgent(agent *AgentConfig) {
	if f == nil {
		return
	}
	if agent == nil {
		f.Agent = nil
		return
	}
	cloned := agent.Clone()
	f.Agent = &cloned
}

func (f Form) fieldIndex(id string) int {
	for i, field := range f.Fields {
		if field.ID == id {
			return i
		}
	}
	return -1
}
