package popup

import (
	"strings"
	"testing"

	"github.com/whatsx/formkit/pkg/model"
)

func TestEmitField_TextInput(t *testing.T) {
	field := model.Field{ID: "name", Kind: model.FieldKindText, Label: "Name", Placeholder: "Your name"}
	out := EmitField(field, model.DefaultStyle())

	if !strings.Contains(out, `id="wx-field-name"`) {
		t.Fatalf("missing control id: %s", out)
	}
	if !strings.Contains(out, `name="wx-name"`) {
		t.Fatalf("missing control name: %s", out)
	}
	if !strings.Contains(out, `type="text"`) {
		t.Fatalf("missing input type: %s", out)
	}
	if !strings.Contains(out, `placeholder="Your name"`) {
		t.Fatalf("missing placeholder: %s", out)
	}
	if strings.Contains(out, "required") {
		t.Fatalf("optional field should not carry required: %s", out)
	}
}

func TestEmitField_RequiredAttribute(t *testing.T) {
	field := model.Field{ID: "email", Kind: model.FieldKindEmail, Label: "Email", Required: true}
	out := EmitField(field, model.DefaultStyle())
	if !strings.Contains(out, " required") {
		t.Fatalf("required field must carry the attribute: %s", out)
	}

	field.Required = false
	out = EmitField(field, model.DefaultStyle())
	if strings.Contains(out, " required") {
		t.Fatalf("optional field must not carry the attribute: %s", out)
	}
}

func TestEmitField_TokenSuffixesIDsNotNames(t *testing.T) {
	emitter := Emitter{Style: model.DefaultStyle(), Token: "tok1"}
	out := emitter.EmitField(model.Field{ID: "name", Kind: model.FieldKindText, Label: "Name"})

	if !strings.Contains(out, `id="wx-field-name-tok1"`) {
		t.Fatalf("token missing from id: %s", out)
	}
	if !strings.Contains(out, `name="wx-name"`) {
		t.Fatalf("name should stay token-free: %s", out)
	}
	if !strings.Contains(out, `for="wx-field-name-tok1"`) {
		t.Fatalf("label for should match control id: %s", out)
	}
}

func TestEmitField_SelectPreservesOptionOrder(t *testing.T) {
	field := model.Field{
		ID:      "topic",
		Kind:    model.FieldKindSelect,
		Label:   "Topic",
		Options: []string{"Zebra", "Apple", "Mango"},
	}
	out := EmitField(field, model.DefaultStyle())

	zebra := strings.Index(out, ">Zebra<")
	apple := strings.Index(out, ">Apple<")
	mango := strings.Index(out, ">Mango<")
	if zebra < 0 || apple < 0 || mango < 0 {
		t.Fatalf("options missing: %s", out)
	}
	if !(zebra < apple && apple < mango) {
		t.Fatalf("option order not preserved: %s", out)
	}
	// Option text is the literal submitted value.
	if !strings.Contains(out, `<option value="Zebra">Zebra</option>`) {
		t.Fatalf("option value should equal its text: %s", out)
	}
	// The leading placeholder option keeps required selects unsatisfied
	// until a real choice is made.
	if !strings.Contains(out, `<option value="">`) {
		t.Fatalf("missing placeholder option: %s", out)
	}
}

func TestEmitField_SelectWithoutOptionsStillRenders(t *testing.T) {
	field := model.Field{ID: "topic", Kind: model.FieldKindSelect, Label: "Topic"}
	out := EmitField(field, model.DefaultStyle())
	if out == "" {
		t.Fatal("empty options should degrade to an empty control, not drop the field")
	}
	if strings.Count(out, "<option") != 1 {
		t.Fatalf("expected only the placeholder option: %s", out)
	}
}

func TestEmitField_CheckboxCombinedLabel(t *testing.T) {
	field := model.Field{ID: "consent", Kind: model.FieldKindCheckbox, Label: "I agree", Required: true}
	out := EmitField(field, model.DefaultStyle())

	if !strings.Contains(out, `type="checkbox"`) {
		t.Fatalf("missing checkbox input: %s", out)
	}
	if !strings.Contains(out, `for="wx-field-consent"`) {
		t.Fatalf("label should reference the control: %s", out)
	}
	if !strings.Contains(out, "I agree") {
		t.Fatalf("label text missing: %s", out)
	}
	if !strings.Contains(out, " required") {
		t.Fatalf("required checkbox must carry the attribute: %s", out)
	}
}

func TestEmitField_RadioRequiredOnFirstOptionOnly(t *testing.T) {
	field := model.Field{
		ID:       "rating",
		Kind:     model.FieldKindRadio,
		Label:    "Rating",
		Required: true,
		Options:  []string{"Good", "Bad"},
	}
	out := EmitField(field, model.DefaultStyle())

	if got := strings.Count(out, " required"); got != 1 {
		t.Fatalf("expected required on exactly one radio, found %d: %s", got, out)
	}
	if strings.Index(out, " required") > strings.Index(out, `value="Bad"`) {
		t.Fatalf("required should sit on the first option: %s", out)
	}
	if got := strings.Count(out, `type="radio"`); got != 2 {
		t.Fatalf("expected 2 radios, found %d", got)
	}
	if got := strings.Count(out, `name="wx-rating"`); got != 2 {
		t.Fatalf("radio group must share one name, found %d", got)
	}
}

func TestEmitField_UnknownKindSkipped(t *testing.T) {
	out := EmitField(model.Field{ID: "x", Kind: "color", Label: "X"}, model.DefaultStyle())
	if out != "" {
		t.Fatalf("unknown kind should emit nothing, got %s", out)
	}
}

func TestEmitField_LabelMarkupStripped(t *testing.T) {
	field := model.Field{ID: "name", Kind: model.FieldKindText, Label: `Name <b>bold</b>`}
	out := EmitField(field, model.DefaultStyle())
	if strings.Contains(out, "<b>") {
		t.Fatalf("label markup leaked: %s", out)
	}
	if !strings.Contains(out, "Name bold") {
		t.Fatalf("label text lost: %s", out)
	}
}

func TestEmitField_StyleTokensApplied(t *testing.T) {
	style := model.DefaultStyle()
	style.Spacing = "31px"
	style.BorderRadius = "17px"
	out := EmitField(model.Field{ID: "name", Kind: model.FieldKindText, Label: "Name"}, style)
	if !strings.Contains(out, "margin-bottom:31px") {
		t.Fatalf("spacing token not applied: %s", out)
	}
	if !strings.Contains(out, "border-radius:17px") {
		t.Fatalf("radius token not applied: %s", out)
	}
}
