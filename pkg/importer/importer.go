// Package importer builds form definitions from OpenAPI 3 documents. The
// request body schema of a chosen operation becomes the field list, so teams
// with an existing API contract can bootstrap a form without retyping it.
package importer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/whatsx/formkit/pkg/model"
)

// Option customises importer behaviour.
type Option func(*Importer)

// WithExternalRefs allows the loader to chase external $ref targets. Off by
// default so importing an untrusted document never touches the network.
func WithExternalRefs(allowed bool) Option {
	return func(i *Importer) {
		i.externalRefs = allowed
	}
}

// Importer converts OpenAPI operations into form field lists.
type Importer struct {
	externalRefs bool
}

// New constructs an Importer with the given options.
func New(options ...Option) *Importer {
	i := &Importer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(i)
	}
	return i
}

// Form imports the named operation and wraps the extracted fields in a form
// definition. The operation summary becomes the title when present.
func (i *Importer) Form(ctx context.Context, data []byte, operationID string) (model.Form, error) {
	operation, err := i.operation(ctx, data, operationID)
	if err != nil {
		return model.Form{}, err
	}

	form := model.New(strings.TrimSpace(operation.Summary))
	form.Fields = fieldsFromSchema(requestSchema(operation))
	return form, nil
}

// Fields imports the named operation and returns only the extracted fields.
func (i *Importer) Fields(ctx context.Context, data []byte, operationID string) ([]model.Field, error) {
	operation, err := i.operation(ctx, data, operationID)
	if err != nil {
		return nil, err
	}
	return fieldsFromSchema(requestSchema(operation)), nil
}

func (i *Importer) operation(ctx context.Context, data []byte, operationID string) (*openapi3.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("importer: document payload is empty")
	}
	if operationID == "" {
		return nil, errors.New("importer: operation id is required")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: i.externalRefs,
	}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("importer: load document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("importer: document does not contain any paths")
	}

	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation, nil
			}
		}
	}
	return nil, fmt.Errorf("importer: operation %q not found", operationID)
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// fieldsFromSchema maps object properties to fields. Property order in an
// OpenAPI document is not preserved by the parser, so output is sorted by
// property name for stable results. Shapes with no form equivalent (objects,
// arrays, numbers without enums) are skipped rather than guessed at.
func fieldsFromSchema(schema *openapi3.Schema) []model.Field {
	if schema == nil || len(schema.Properties) == 0 {
		return nil
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]model.Field, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, ok := fieldFromProperty(name, ref.Value)
		if !ok {
			continue
		}
		field.Required = required[name]
		fields = append(fields, field)
	}
	return fields
}

func fieldFromProperty(name string, prop *openapi3.Schema) (model.Field, bool) {
	field := model.Field{
		ID:    name,
		Label: labelFromName(name),
	}
	if prop.Description != "" {
		field.Placeholder = prop.Description
	}

	switch schemaType(prop) {
	case "boolean":
		field.Kind = model.FieldKindCheckbox
		return field, true
	case "string":
		if len(prop.Enum) > 0 {
			field.Kind = model.FieldKindSelect
			field.Options = enumOptions(prop.Enum)
			return field, len(field.Options) > 0
		}
		field.Kind = stringKind(prop)
		return field, true
	default:
		return model.Field{}, false
	}
}

func schemaType(prop *openapi3.Schema) string {
	if prop.Type == nil {
		return ""
	}
	values := prop.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func stringKind(prop *openapi3.Schema) model.FieldKind {
	switch prop.Format {
	case "email":
		return model.FieldKindEmail
	}
	// Long free-text properties read better as a multi-line control.
	if prop.MaxLength != nil && *prop.MaxLength > 255 {
		return model.FieldKindTextarea
	}
	return model.FieldKindText
}

func enumOptions(enum []any) []string {
	options := make([]string, 0, len(enum))
	for _, value := range enum {
		text, ok := value.(string)
		if !ok || text == "" {
			continue
		}
		options = append(options, text)
	}
	return options
}

// labelFromName turns snake_case or camelCase property names into a
// human-readable label: "fullName" and "full_name" both become "Full name".
func labelFromName(name string) string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case r >= 'A' && r <= 'Z':
			flush()
			current.WriteRune(r + ('a' - 'A'))
		default:
			current.WriteRune(r)
		}
	}
	flush()
	if len(words) == 0 {
		return name
	}
	first, size := utf8.DecodeRuneInString(words[0])
	words[0] = string(unicode.ToUpper(first)) + words[0][size:]
	return strings.Join(words, " ")
}
