package model

import "strings"

// FieldType is the simplified enum for schema-level value kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeArray   FieldType = "array"
	FieldTypeObject  FieldType = "object"
)

// ControlKind names the physical control a host mounts for a field.
type ControlKind string

const (
	ControlText     ControlKind = "text"
	ControlPassword ControlKind = "password"
	ControlEmail    ControlKind = "email"
	ControlNumber   ControlKind = "number"
	ControlTextArea ControlKind = "textarea"
	ControlSelect   ControlKind = "select"
	ControlRadio    ControlKind = "radio"
	ControlCheckbox ControlKind = "checkbox"
	ControlHidden   ControlKind = "hidden"
)

var knownControls = map[ControlKind]struct{}{
	ControlText:     {},
	ControlPassword: {},
	ControlEmail:    {},
	ControlNumber:   {},
	ControlTextArea: {},
	ControlSelect:   {},
	ControlRadio:    {},
	ControlCheckbox: {},
	ControlHidden:   {},
}

// ParseControlKind normalises raw input; blank input maps to ControlText.
func ParseControlKind(raw string) (ControlKind, bool) {
	kind := ControlKind(strings.ToLower(strings.TrimSpace(raw)))
	if kind == "" {
		return ControlText, true
	}
	_, ok := knownControls[kind]
	return kind, ok
}

// Valid reports whether k is a known control kind.
func (k ControlKind) Valid() bool {
	_, ok := knownControls[k]
	return ok
}

// Grouped reports whether the control mounts as a mutually exclusive group.
func (k ControlKind) Grouped() bool {
	return k == ControlRadio
}

// NeedsOptions reports whether the control requires an option list.
func (k ControlKind) NeedsOptions() bool {
	return k == ControlRadio || k == ControlSelect
}

// Option is one choice offered by select and radio controls.
type Option struct {
	Value    string `json:"value" yaml:"value"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Field models an individual input inside a form declaration.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Control     ControlKind       `json:"control"`
	Format      string            `json:"format,omitempty"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Default     string            `json:"default,omitempty"`
	Options     []Option          `json:"options,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// DisplayLabel returns the label, falling back to the field name.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// OptionValues returns the option values in declaration order.
func (f Field) OptionValues() []string {
	out := make([]string, 0, len(f.Options))
	for _, opt := range f.Options {
		out = append(out, opt.Value)
	}
	return out
}

// FormModel is the top-level declaration hosts mount controls from.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Label       string            `json:"label,omitempty"`
	Endpoint    string            `json:"endpoint,omitempty"`
	Method      string            `json:"method,omitempty"`
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Names returns the field names in declaration order.
func (f FormModel) Names() []string {
	out := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		out = append(out, field.Name)
	}
	return out
}

// Field looks up a field by name.
func (f FormModel) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
