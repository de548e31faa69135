package popup

import (
	"github.com/whatsx/formkit/pkg/htmlgen"
	"github.com/whatsx/formkit/pkg/model"
	"github.com/whatsx/formkit/pkg/sanitize"
)

// Emitter turns one field definition into an HTML fragment. Styles are
// inlined so the emitted document stays a single paste-able block with no
// companion files.
type Emitter struct {
	Style model.StyleTokens

	// Token suffixes control ids so two exports can coexist on a host page.
	// Empty is allowed for callers that only need a bare fragment.
	Token string
}

// EmitField renders a single field with the given style and no id suffix.
func EmitField(field model.Field, style model.StyleTokens) string {
	return Emitter{Style: style}.EmitField(field)
}

// EmitField renders the fragment for one field. Unknown kinds yield an empty
// string and a missing options list yields an empty control; a malformed
// field never aborts the rest of the document.
func (e Emitter) EmitField(field model.Field) string {
	if !field.Kind.Known() {
		return ""
	}

	label := sanitize.Text(field.Label)

	var nodes []htmlgen.Node
	switch field.Kind {
	case model.FieldKindText, model.FieldKindEmail:
		nodes = e.emitInput(field, label, string(field.Kind))
	case model.FieldKindTextarea:
		nodes = e.emitTextarea(field, label)
	case model.FieldKindSelect:
		nodes = e.emitSelect(field, label)
	case model.FieldKindCheckbox:
		nodes = e.emitCheckbox(field, label)
	case model.FieldKindRadio:
		nodes = e.emitRadio(field, label)
	}

	wrapper := htmlgen.El("div", nodes...).
		WithAttr("style", htmlgen.Style{}.Decl("margin-bottom", e.Style.Spacing).String())
	return htmlgen.Render(wrapper)
}

func (e Emitter) emitInput(field model.Field, label, inputType string) []htmlgen.Node {
	input := htmlgen.El("input").
		WithAttr("type", inputType).
		WithAttr("id", e.controlID(field)).
		WithAttr("name", controlName(field)).
		WithAttr("style", e.controlStyle())
	if field.Placeholder != "" {
		input = input.WithAttr("placeholder", field.Placeholder)
	}
	if field.Required {
		input = input.WithBoolAttr("required")
	}
	return []htmlgen.Node{e.labelFor(field, label), input}
}

func (e Emitter) emitTextarea(field model.Field, label string) []htmlgen.Node {
	area := htmlgen.El("textarea").
		WithAttr("id", e.controlID(field)).
		WithAttr("name", controlName(field)).
		WithAttr("rows", "3").
		WithAttr("style", e.controlStyle())
	if field.Placeholder != "" {
		area = area.WithAttr("placeholder", field.Placeholder)
	}
	if field.Required {
		area = area.WithBoolAttr("required")
	}
	return []htmlgen.Node{e.labelFor(field, label), area}
}

func (e Emitter) emitSelect(field model.Field, label string) []htmlgen.Node {
	placeholder := field.Placeholder
	if placeholder == "" {
		placeholder = "Select an option"
	}
	sel := htmlgen.El("select",
		htmlgen.El("option", htmlgen.Text(placeholder)).WithAttr("value", ""),
	).
		WithAttr("id", e.controlID(field)).
		WithAttr("name", controlName(field)).
		WithAttr("style", e.controlStyle())
	if field.Required {
		sel = sel.WithBoolAttr("required")
	}
	// Option text doubles as the submitted value; there is no separate
	// value/label distinction in the exported message.
	for _, option := range field.Options {
		sel = sel.WithChildren(
			htmlgen.El("option", htmlgen.Text(option)).WithAttr("value", option),
		)
	}
	return []htmlgen.Node{e.labelFor(field, label), sel}
}

func (e Emitter) emitCheckbox(field model.Field, label string) []htmlgen.Node {
	box := htmlgen.El("input").
		WithAttr("type", "checkbox").
		WithAttr("id", e.controlID(field)).
		WithAttr("name", controlName(field)).
		WithAttr("style", htmlgen.Style{}.Decl("margin-right", "8px").String())
	if field.Required {
		box = box.WithBoolAttr("required")
	}
	combined := htmlgen.El("label", box, htmlgen.Text(label)).
		WithAttr("for", e.controlID(field)).
		WithAttr("style", e.inlineLabelStyle())
	return []htmlgen.Node{combined}
}

func (e Emitter) emitRadio(field model.Field, label string) []htmlgen.Node {
	nodes := []htmlgen.Node{e.groupLabel(label)}
	for i, option := range field.Options {
		radio := htmlgen.El("input").
			WithAttr("type", "radio").
			WithAttr("name", controlName(field)).
			WithAttr("value", option).
			WithAttr("style", htmlgen.Style{}.Decl("margin-right", "8px").String())
		// Native radio-group required semantics only need one member to
		// declare the attribute; the first rendered option carries it.
		if field.Required && i == 0 {
			radio = radio.WithBoolAttr("required")
		}
		nodes = append(nodes, htmlgen.El("label", radio, htmlgen.Text(option)).
			WithAttr("style", e.inlineLabelStyle()))
	}
	return nodes
}

func (e Emitter) labelFor(field model.Field, label string) htmlgen.Node {
	return htmlgen.El("label", htmlgen.Text(label)).
		WithAttr("for", e.controlID(field)).
		WithAttr("style", e.blockLabelStyle())
}

func (e Emitter) groupLabel(label string) htmlgen.Node {
	return htmlgen.El("label", htmlgen.Text(label)).
		WithAttr("style", e.blockLabelStyle())
}

func (e Emitter) controlID(field model.Field) string {
	id := "wx-field-" + field.ID
	if e.Token != "" {
		id += "-" + e.Token
	}
	return id
}

// controlName is the form-scoped lookup key the submit handler reads values
// through. It stays token-free because form.elements access is already scoped
// to one generated document.
func controlName(field model.Field) string {
	return "wx-" + field.ID
}

func (e Emitter) controlStyle() string {
	return htmlgen.Style{}.
		Decl("width", "100%").
		Decl("padding", "10px 12px").
		Decl("border", "1px solid #d1d5db").
		Decl("border-radius", e.Style.BorderRadius).
		Decl("font-family", e.Style.FontFamily).
		Decl("font-size", "14px").
		Decl("color", e.Style.TextColor).
		Decl("box-sizing", "border-box").
		String()
}

func (e Emitter) blockLabelStyle() string {
	return htmlgen.Style{}.
		Decl("display", "block").
		Decl("margin-bottom", "6px").
		Decl("color", e.Style.TextColor).
		Decl("font-family", e.Style.FontFamily).
		Decl("font-size", "14px").
		Decl("font-weight", "500").
		String()
}

func (e Emitter) inlineLabelStyle() string {
	return htmlgen.Style{}.
		Decl("display", "flex").
		Decl("align-items", "center").
		Decl("margin-bottom", "6px").
		Decl("color", e.Style.TextColor).
		Decl("font-family", e.Style.FontFamily).
		Decl("font-size", "14px").
		String()
}
