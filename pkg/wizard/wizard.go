// Package wizard walks a user through building a form definition in the
// terminal: title, WhatsApp number, fields one at a time, and an optional
// chat assistant. The result is a plain definition ready for rendering.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/whatsx/formkit/pkg/model"
)

// Option customises the wizard.
type Option func(*Wizard)

// WithDriver swaps the prompt driver. Defaults to the survey-backed driver.
func WithDriver(driver PromptDriver) Option {
	return func(w *Wizard) {
		w.driver = driver
	}
}

// WithMaxFields caps how many fields the wizard will collect. Zero means no
// cap.
func WithMaxFields(n int) Option {
	return func(w *Wizard) {
		w.maxFields = n
	}
}

// Wizard drives the interactive build flow.
type Wizard struct {
	driver    PromptDriver
	maxFields int
}

// New constructs a Wizard applying any provided options.
func New(options ...Option) *Wizard {
	w := &Wizard{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	if w.driver == nil {
		w.driver = NewSurveyDriver()
	}
	return w
}

var fieldKindOptions = []string{
	string(model.FieldKindText),
	string(model.FieldKindEmail),
	string(model.FieldKindTextarea),
	string(model.FieldKindSelect),
	string(model.FieldKindCheckbox),
	string(model.FieldKindRadio),
}

// Run executes the full flow and returns the built form. The form is
// validated before it is returned, so a completed run always yields a
// renderable definition.
func (w *Wizard) Run(ctx context.Context) (model.Form, error) {
	if ctx == nil {
		return model.Form{}, errors.New("wizard: context is required")
	}

	title, err := w.driver.Input(ctx, InputConfig{
		Message: "Form title",
		Default: "Contact us",
	})
	if err != nil {
		return model.Form{}, err
	}
	form := model.New(title)

	number, err := w.driver.Input(ctx, InputConfig{
		Message:   "WhatsApp number (digits only, with country code)",
		Help:      "Submissions open a wa.me chat with this number.",
		Validator: validateWhatsAppNumber,
	})
	if err != nil {
		return model.Form{}, err
	}
	form.SetWhatsAppNumber(number)

	if err := w.collectFields(ctx, &form); err != nil {
		return model.Form{}, err
	}

	if err := w.collectAgent(ctx, &form); err != nil {
		return model.Form{}, err
	}

	if err := form.Validate(); err != nil {
		return model.Form{}, fmt.Errorf("wizard: built form is invalid: %w", err)
	}
	return form, nil
}

func (w *Wizard) collectFields(ctx context.Context, form *model.Form) error {
	for {
		if w.maxFields > 0 && len(form.Fields) >= w.maxFields {
			return nil
		}
		more, err := w.driver.Confirm(ctx, ConfirmConfig{
			Message: "Add a field?",
			Default: len(form.Fields) == 0,
		})
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		field, err := w.collectField(ctx)
		if err != nil {
			return err
		}
		if _, err := form.AddField(field); err != nil {
			return err
		}
	}
}

func (w *Wizard) collectField(ctx context.Context) (model.Field, error) {
	idx, err := w.driver.Select(ctx, SelectConfig{
		Message: "Field type",
		Options: fieldKindOptions,
	})
	if err != nil {
		return model.Field{}, err
	}
	if idx < 0 || idx >= len(fieldKindOptions) {
		return model.Field{}, fmt.Errorf("wizard: field type index %d out of range", idx)
	}
	kind := model.FieldKind(fieldKindOptions[idx])

	label, err := w.driver.Input(ctx, InputConfig{
		Message:   "Label",
		Validator: validateNonEmpty("label"),
	})
	if err != nil {
		return model.Field{}, err
	}

	field := model.Field{Kind: kind, Label: label}

	if kind == model.FieldKindText || kind == model.FieldKindEmail || kind == model.FieldKindTextarea {
		placeholder, err := w.driver.Input(ctx, InputConfig{
			Message: "Placeholder (optional)",
		})
		if err != nil {
			return model.Field{}, err
		}
		field.Placeholder = placeholder
	}

	if kind.Choice() {
		options, err := w.collectOptions(ctx)
		if err != nil {
			return model.Field{}, err
		}
		field.Options = options
	}

	required, err := w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Required?",
	})
	if err != nil {
		return model.Field{}, err
	}
	field.Required = required

	return field, nil
}

func (w *Wizard) collectOptions(ctx context.Context) ([]string, error) {
	raw, err := w.driver.TextArea(ctx, TextAreaConfig{
		Message: "Options, one per line",
	})
	if err != nil {
		return nil, err
	}
	var options []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			options = append(options, line)
		}
	}
	if len(options) == 0 {
		return nil, errors.New("wizard: choice field needs at least one option")
	}
	return options, nil
}

func (w *Wizard) collectAgent(ctx context.Context, form *model.Form) error {
	enabled, err := w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Add an AI chat assistant?",
		Help:    "Embeds a Gemini-backed chat widget next to the form.",
	})
	if err != nil {
		return err
	}
	if !enabled {
		return nil
	}

	apiKey, err := w.driver.Password(ctx, InputConfig{
		Message:   "Gemini API key",
		Help:      "Stored in the exported document; anyone with the file can read it.",
		Validator: validateNonEmpty("api key"),
	})
	if err != nil {
		return err
	}

	name, err := w.driver.Input(ctx, InputConfig{
		Message: "Assistant name",
		Default: "Assistant",
	})
	if err != nil {
		return err
	}

	prompt, err := w.driver.TextArea(ctx, TextAreaConfig{
		Message: "System prompt",
		Default: "You are a helpful assistant answering questions about this business.",
	})
	if err != nil {
		return err
	}

	welcome, err := w.driver.Input(ctx, InputConfig{
		Message: "Welcome message",
		Default: "Hi! How can I help you today?",
	})
	if err != nil {
		return err
	}

	agent := &model.AgentConfig{
		Enabled:        true,
		APIKey:         apiKey,
		AgentName:      name,
		SystemPrompt:   prompt,
		WelcomeMessage: welcome,
	}
	agent.Normalize()
	form.SetAgent(agent)
	return nil
}

func validateWhatsAppNumber(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errors.New("number is required")
	}
	if _, err := strconv.ParseUint(trimmed, 10, 64); err != nil {
		return errors.New("digits only, e.g. 5511999999999")
	}
	return nil
}

func validateNonEmpty(what string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}
