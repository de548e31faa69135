package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode parses a form definition from YAML (or JSON, which YAML accepts).
// Persistence itself is a caller concern; this is the document shape they
// load and store.
func Decode(data []byte) (Form, error) {
	var form Form
	if err := yaml.Unmarshal(data, &form); err != nil {
		return Form{}, fmt.Errorf("model: decode form: %w", err)
	}
	if (form.Style == StyleTokens{}) {
		form.Style = DefaultStyle()
	}
	form.Agent.Normalize()
	return form, nil
}

// DecodeFile reads and decodes a form definition from disk.
func DecodeFile(path string) (Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Form{}, fmt.Errorf("model: read form file: %w", err)
	}
	return Decode(data)
}

// Encode serialises a form definition to YAML.
func Encode(form Form) ([]byte, error) {
	data, err := yaml.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("model: encode form: %w", err)
	}
	return data, nil
}
