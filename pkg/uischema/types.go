package uischema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	pkgmodel "github.com/goliatone/go-formrefs/pkg/model"
)

// Store keeps the parsed form declarations. It is safe for concurrent readers
// when treated as immutable after construction.
type Store struct {
	forms map[string]Form
}

// Form is one declared form.
type Form struct {
	ID       string
	Source   string
	Label    string
	Endpoint string
	Method   string
	// Order lists field names that move to the front when the declaration
	// overlays an OpenAPI-derived model.
	Order  []string
	Fields []FieldConfig
}

// FieldConfig declares a single field.
type FieldConfig struct {
	Name        string            `json:"name" yaml:"name"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Control     string            `json:"control,omitempty" yaml:"control,omitempty"`
	Default     string            `json:"default,omitempty" yaml:"default,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Help        string            `json:"help,omitempty" yaml:"help,omitempty"`
	Required    bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Secret      bool              `json:"secret,omitempty" yaml:"secret,omitempty"`
	Options     []OptionConfig    `json:"options,omitempty" yaml:"options,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// OptionConfig declares a select or radio option. A bare scalar is accepted
// as shorthand for {value: <scalar>}.
type OptionConfig struct {
	Value    string `json:"value" yaml:"value"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

type optionFields OptionConfig

// UnmarshalYAML accepts scalar and mapping option forms.
func (o *OptionConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*o = OptionConfig{Value: node.Value}
		return nil
	}
	var raw optionFields
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*o = OptionConfig(raw)
	return nil
}

// UnmarshalJSON accepts scalar and object option forms.
func (o *OptionConfig) UnmarshalJSON(data []byte) error {
	var scalar any
	if err := json.Unmarshal(data, &scalar); err != nil {
		return err
	}
	switch v := scalar.(type) {
	case string:
		*o = OptionConfig{Value: v}
		return nil
	case float64, bool:
		*o = OptionConfig{Value: fmt.Sprint(v)}
		return nil
	}
	var raw optionFields
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*o = OptionConfig(raw)
	return nil
}

// Form returns the declared form as a model ready for mounting.
func (s *Store) Form(id string) (pkgmodel.FormModel, bool) {
	cfg, ok := s.Config(id)
	if !ok {
		return pkgmodel.FormModel{}, false
	}
	return cfg.Model(), true
}

// Resolve returns the declared form for id as a standalone model. Radio and
// select fields must list their options here; as overlays they may omit them
// and keep the options derived from OpenAPI.
func (s *Store) Resolve(id string) (pkgmodel.FormModel, error) {
	cfg, ok := s.Config(id)
	if !ok {
		return pkgmodel.FormModel{}, fmt.Errorf("uischema: form %q not declared", id)
	}
	for _, field := range cfg.Fields {
		if kind := field.controlKind(); kind.NeedsOptions() && len(field.Options) == 0 {
			return pkgmodel.FormModel{}, fmt.Errorf("uischema: form %q (file %s): %s field %q declares no options", cfg.ID, cfg.Source, kind, field.Name)
		}
	}
	return cfg.Model(), nil
}

// Config returns the raw declaration for id.
func (s *Store) Config(id string) (Form, bool) {
	if s == nil {
		return Form{}, false
	}
	form, ok := s.forms[id]
	return form, ok
}

// Forms returns the declared form ids sorted alphabetically.
func (s *Store) Forms() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

// Model converts the declaration into a FormModel. Fields without a control
// default to text inputs.
func (f Form) Model() pkgmodel.FormModel {
	form := pkgmodel.FormModel{
		OperationID: f.ID,
		Label:       f.Label,
		Endpoint:    f.Endpoint,
		Method:      f.Method,
		Fields:      make([]pkgmodel.Field, 0, len(f.Fields)),
	}
	if f.Source != "" {
		form.Metadata = map[string]string{"source": f.Source}
	}
	for _, cfg := range f.Fields {
		form.Fields = append(form.Fields, cfg.field())
	}
	return form
}

func (c FieldConfig) field() pkgmodel.Field {
	control := c.controlKind()
	field := pkgmodel.Field{
		Name:        c.Name,
		Type:        pkgmodel.FieldTypeString,
		Control:     control,
		Required:    c.Required,
		Label:       c.Label,
		Placeholder: c.Placeholder,
		Description: c.Help,
		Default:     c.Default,
		Options:     c.modelOptions(),
		Metadata:    cloneStringMap(c.Metadata),
	}
	if control == pkgmodel.ControlCheckbox {
		field.Type = pkgmodel.FieldTypeBoolean
	}
	return field
}

// controlKind resolves the declared control. Secret fields without an
// explicit control mount as password inputs.
func (c FieldConfig) controlKind() pkgmodel.ControlKind {
	if strings.TrimSpace(c.Control) == "" && c.Secret {
		return pkgmodel.ControlPassword
	}
	control, _ := pkgmodel.ParseControlKind(c.Control)
	return control
}

func (c FieldConfig) modelOptions() []pkgmodel.Option {
	if len(c.Options) == 0 {
		return nil
	}
	out := make([]pkgmodel.Option, 0, len(c.Options))
	for _, opt := range c.Options {
		out = append(out, pkgmodel.Option{Value: opt.Value, Label: opt.Label, Disabled: opt.Disabled})
	}
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
