package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/whatsx/formkit/pkg/model"
)

type stubDriver struct {
	inputs    []string
	passwords []string
	confirms  []bool
	selects   []int
	textAreas []string
	err       error
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if len(s.inputs) == 0 {
		return "", errors.New("stub: no input queued")
	}
	out := s.inputs[0]
	s.inputs = s.inputs[1:]
	return out, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if len(s.passwords) == 0 {
		return "", errors.New("stub: no password queued")
	}
	out := s.passwords[0]
	s.passwords = s.passwords[1:]
	return out, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if len(s.confirms) == 0 {
		return false, errors.New("stub: no confirm queued")
	}
	out := s.confirms[0]
	s.confirms = s.confirms[1:]
	return out, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if len(s.selects) == 0 {
		return 0, errors.New("stub: no select queued")
	}
	out := s.selects[0]
	s.selects = s.selects[1:]
	return out, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if len(s.textAreas) == 0 {
		return "", errors.New("stub: no textarea queued")
	}
	out := s.textAreas[0]
	s.textAreas = s.textAreas[1:]
	return out, nil
}

func TestWizard_RunBuildsForm(t *testing.T) {
	driver := &stubDriver{
		// title, number, email label, email placeholder, topic label
		inputs: []string{"Contact us", "5511999999999", "Email", "you@example.com", "Topic"},
		// add field, required, add field, required, stop, no agent
		confirms: []bool{true, true, true, false, false, false},
		// email kind, select kind
		selects:   []int{1, 3},
		textAreas: []string{"Sales\nSupport\n"},
	}

	form, err := New(WithDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run wizard: %v", err)
	}

	if form.Title != "Contact us" {
		t.Fatalf("unexpected title %q", form.Title)
	}
	if form.WhatsAppNumber != "5511999999999" {
		t.Fatalf("unexpected number %q", form.WhatsAppNumber)
	}
	if len(form.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(form.Fields))
	}
	if form.Fields[0].Kind != model.FieldKindEmail || !form.Fields[0].Required {
		t.Fatalf("unexpected first field %+v", form.Fields[0])
	}
	if form.Fields[0].Placeholder != "you@example.com" {
		t.Fatalf("placeholder lost: %+v", form.Fields[0])
	}
	if form.Fields[1].Kind != model.FieldKindSelect {
		t.Fatalf("unexpected second field %+v", form.Fields[1])
	}
	if len(form.Fields[1].Options) != 2 || form.Fields[1].Options[0] != "Sales" {
		t.Fatalf("options not parsed: %+v", form.Fields[1].Options)
	}
	if form.Fields[0].ID == "" || form.Fields[0].ID == form.Fields[1].ID {
		t.Fatalf("field ids not assigned uniquely")
	}
	if form.Agent != nil {
		t.Fatalf("agent should be absent")
	}
}

func TestWizard_RunWithAgent(t *testing.T) {
	driver := &stubDriver{
		// title, number, assistant name, welcome
		inputs: []string{"Help", "447700900000", "Maya", "Hi there!"},
		// add field? no; agent? yes
		confirms:  []bool{false, true},
		passwords: []string{"AIza-test-key"},
		textAreas: []string{"You answer questions about opening hours."},
	}

	form, err := New(WithDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run wizard: %v", err)
	}
	if !form.AgentEnabled() {
		t.Fatalf("expected agent enabled")
	}
	if form.Agent.AgentName != "Maya" {
		t.Fatalf("unexpected agent name %q", form.Agent.AgentName)
	}
	if form.Agent.Model != model.DefaultAgentModel {
		t.Fatalf("normalize should fill default model, got %q", form.Agent.Model)
	}
	if form.Agent.MaxTokens == 0 {
		t.Fatalf("normalize should fill max tokens")
	}
}

func TestWizard_AbortPropagates(t *testing.T) {
	driver := &stubDriver{err: ErrAborted}
	_, err := New(WithDriver(driver)).Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
