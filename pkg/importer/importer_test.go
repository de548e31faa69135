package importer

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/whatsx/formkit/pkg/model"
)

const sampleDocument = `
openapi: 3.0.3
info:
  title: Contact API
  version: 1.0.0
paths:
  /contact:
    post:
      operationId: createContact
      summary: Contact us
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required:
                - email
                - message
              properties:
                email:
                  type: string
                  format: email
                full_name:
                  type: string
                message:
                  type: string
                  maxLength: 2000
                topic:
                  type: string
                  enum:
                    - Sales
                    - Support
                subscribe:
                  type: boolean
                attachments:
                  type: array
                  items:
                    type: string
      responses:
        "200":
          description: ok
`

func TestImporter_Fields(t *testing.T) {
	fields, err := New().Fields(context.Background(), []byte(sampleDocument), "createContact")
	if err != nil {
		t.Fatalf("import fields: %v", err)
	}

	want := []model.Field{
		{ID: "email", Kind: model.FieldKindEmail, Label: "Email", Required: true},
		{ID: "full_name", Kind: model.FieldKindText, Label: "Full name"},
		{ID: "message", Kind: model.FieldKindTextarea, Label: "Message", Required: true},
		{ID: "subscribe", Kind: model.FieldKindCheckbox, Label: "Subscribe"},
		{ID: "topic", Kind: model.FieldKindSelect, Label: "Topic", Options: []string{"Sales", "Support"}},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestImporter_FormUsesOperationSummary(t *testing.T) {
	form, err := New().Form(context.Background(), []byte(sampleDocument), "createContact")
	if err != nil {
		t.Fatalf("import form: %v", err)
	}
	if form.Title != "Contact us" {
		t.Fatalf("expected summary as title, got %q", form.Title)
	}
	if len(form.Fields) != 5 {
		t.Fatalf("expected 5 fields, got %d", len(form.Fields))
	}
	if form.Style != model.DefaultStyle() {
		t.Fatalf("expected default style tokens")
	}
}

func TestImporter_UnknownOperation(t *testing.T) {
	_, err := New().Fields(context.Background(), []byte(sampleDocument), "missing")
	if err == nil {
		t.Fatal("expected error for unknown operation id")
	}
}

func TestImporter_EmptyDocument(t *testing.T) {
	_, err := New().Fields(context.Background(), nil, "createContact")
	if err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestLabelFromName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"fullName", "Full name"},
		{"full_name", "Full name"},
		{"email", "Email"},
		{"ñame", "Ñame"},
		{"übernachtungen_total", "Übernachtungen total"},
	}
	for _, tc := range cases {
		if got := labelFromName(tc.name); got != tc.want {
			t.Fatalf("labelFromName(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
