package model

import (
	"fmt"
	"testing"
)

func withStableFieldIDs(t *testing.T) {
	t.Helper()
	original := newFieldID
	n := 0
	newFieldID = func() string {
		n++
		return fmt.Sprintf("field-%d", n)
	}
	t.Cleanup(func() { newFieldID = original })
}

func TestForm_AddFieldAssignsID(t *testing.T) {
	withStableFieldIDs(t)

	form := New("Contact")
	added, err := form.AddField(Field{Kind: FieldKindText, Label: "Name"})
	if err != nil {
		t.Fatalf("add field: %v", err)
	}
	if added.ID != "field-1" {
		t.Fatalf("expected minted id, got %q", added.ID)
	}
	if len(form.Fields) != 1 || form.Fields[0].ID != "field-1" {
		t.Fatalf("field not appended: %+v", form.Fields)
	}
}

func TestForm_AddFieldRejectsDuplicateID(t *testing.T) {
	form := New("Contact")
	if _, err := form.AddField(Field{ID: "email", Kind: FieldKindEmail, Label: "Email"}); err != nil {
		t.Fatalf("add field: %v", err)
	}
	if _, err := form.AddField(Field{ID: "email", Kind: FieldKindText, Label: "Other"}); err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}
}

func TestForm_AddFieldRejectsUnknownKind(t *testing.T) {
	form := New("Contact")
	if _, err := form.AddField(Field{Kind: "color", Label: "Favourite"}); err == nil {
		t.Fatal("expected unknown kind to be rejected")
	}
}

func TestForm_UpdateFieldKeepsIDImmutable(t *testing.T) {
	form := New("Contact")
	if _, err := form.AddField(Field{ID: "name", Kind: FieldKindText, Label: "Name"}); err != nil {
		t.Fatalf("add field: %v", err)
	}

	if err := form.UpdateField("name", Field{ID: "renamed", Kind: FieldKindText, Label: "Name"}); err == nil {
		t.Fatal("expected id change to be rejected")
	}
	if err := form.UpdateField("name", Field{Kind: FieldKindText, Label: "Full name", Required: true}); err != nil {
		t.Fatalf("update field: %v", err)
	}
	got, ok := form.FieldByID("name")
	if !ok || got.Label != "Full name" || !got.Required {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestForm_MoveFieldClampsPosition(t *testing.T) {
	form := New("Contact")
	for _, id := range []string{"a", "b", "c"} {
		if _, err := form.AddField(Field{ID: id, Kind: FieldKindText, Label: id}); err != nil {
			t.Fatalf("add field %s: %v", id, err)
		}
	}

	if err := form.MoveField("a", 99); err != nil {
		t.Fatalf("move field: %v", err)
	}
	if form.Fields[2].ID != "a" {
		t.Fatalf("expected a at the end, got %+v", form.Fields)
	}
	if err := form.MoveField("a", -5); err != nil {
		t.Fatalf("move field: %v", err)
	}
	if form.Fields[0].ID != "a" {
		t.Fatalf("expected a at the front, got %+v", form.Fields)
	}
}

func TestForm_RemoveField(t *testing.T) {
	form := New("Contact")
	if _, err := form.AddField(Field{ID: "a", Kind: FieldKindText, Label: "A"}); err != nil {
		t.Fatalf("add field: %v", err)
	}
	if err := form.RemoveField("a"); err != nil {
		t.Fatalf("remove field: %v", err)
	}
	if len(form.Fields) != 0 {
		t.Fatalf("field not removed: %+v", form.Fields)
	}
	if err := form.RemoveField("a"); err == nil {
		t.Fatal("expected error removing missing field")
	}
}

func TestForm_CloneIsolatesMutations(t *testing.T) {
	form := New("Contact")
	form.SetWhatsAppNumber("5511999999999")
	if _, err := form.AddField(Field{ID: "topic", Kind: FieldKindSelect, Label: "Topic", Options: []string{"Sales"}}); err != nil {
		t.Fatalf("add field: %v", err)
	}
	form.SetAgent(&AgentConfig{Enabled: true, APIKey: "key"})

	clone := form.Clone()
	clone.Fields[0].Options[0] = "changed"
	clone.Fields[0].Label = "changed"
	clone.Agent.APIKey = "changed"

	if form.Fields[0].Options[0] != "Sales" {
		t.Fatal("options shared between clone and original")
	}
	if form.Fields[0].Label != "Topic" {
		t.Fatal("field shared between clone and original")
	}
	if form.Agent.APIKey != "key" {
		t.Fatal("agent shared between clone and original")
	}
}

func TestForm_SetAgentNilRemoves(t *testing.T) {
	form := New("Contact")
	form.SetAgent(&AgentConfig{Enabled: true, APIKey: "key"})
	if !form.AgentEnabled() {
		t.Fatal("agent should be enabled")
	}
	form.SetAgent(nil)
	if form.Agent != nil {
		t.Fatal("agent should be removed")
	}
}
