package controls

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formrefs/pkg/fieldref"
	"github.com/goliatone/go-formrefs/pkg/model"
)

// Control is a mounted handle that knows its field name.
type Control interface {
	fieldref.Handle
	Name() string
}

// Set holds the controls mounted for one form. Radio fields map to their
// option inputs in option order; every other field maps to one control.
type Set struct {
	form   model.FormModel
	single map[string]Control
	groups map[string][]*Input
}

// Mount creates a control per field of form and hands each one to the
// registry binder for its name, the way a UI host invokes ref callbacks when
// elements mount. Field defaults seed the initial control state.
func Mount(reg *fieldref.Registry, form model.FormModel) (*Set, error) {
	if reg == nil {
		return nil, errors.New("controls: registry is required")
	}

	if err := validateFields(form.Fields); err != nil {
		return nil, err
	}

	set := &Set{
		form:   form,
		single: make(map[string]Control, len(form.Fields)),
		groups: make(map[string][]*Input),
	}

	for _, field := range form.Fields {
		bind := reg.Bind(field.Name)
		kind := controlKind(field)

		switch kind {
		case model.ControlRadio:
			group := make([]*Input, 0, len(field.Options))
			for _, opt := range field.Options {
				radio := NewRadio(field.Name, opt.Value, opt.Value == field.Default && field.Default != "")
				group = append(group, radio)
				bind(radio)
			}
			set.groups[field.Name] = group
			continue
		case model.ControlSelect:
			options := make([]SelectOption, 0, len(field.Options))
			for _, opt := range field.Options {
				options = append(options, SelectOption{Value: opt.Value, Label: opt.Label, Disabled: opt.Disabled})
			}
			set.single[field.Name] = NewSelect(field.Name, options, field.Default)
		case model.ControlTextArea:
			set.single[field.Name] = NewTextArea(field.Name, field.Default)
		case model.ControlCheckbox:
			checked, _ := strconv.ParseBool(field.Default)
			set.single[field.Name] = NewCheckbox(field.Name, "true", checked).WithOffValue("false")
		default:
			set.single[field.Name] = NewInput(field.Name, string(kind), field.Default)
		}
		bind(set.single[field.Name])
	}

	return set, nil
}

// validateFields rejects the whole form before any control is bound, so a
// failed mount leaves the registry untouched.
func validateFields(fields []model.Field) error {
	for _, field := range fields {
		kind := controlKind(field)
		switch kind {
		case model.ControlRadio, model.ControlSelect:
			if len(field.Options) == 0 {
				return fmt.Errorf("controls: %s field %q has no options", kind, field.Name)
			}
		case model.ControlTextArea, model.ControlCheckbox,
			model.ControlText, model.ControlPassword, model.ControlEmail, model.ControlNumber, model.ControlHidden:
		default:
			return fmt.Errorf("controls: field %q has unsupported control %q", field.Name, kind)
		}
	}
	return nil
}

func controlKind(field model.Field) model.ControlKind {
	if field.Control == "" {
		return model.ControlText
	}
	return field.Control
}

// Unmount notifies the registry that every control went away. The registry
// keeps its bindings; this only mirrors the host's unmount callbacks.
func Unmount(reg *fieldref.Registry, set *Set) {
	if reg == nil || set == nil {
		return
	}
	for _, field := range set.form.Fields {
		reg.Bind(field.Name)(nil)
	}
}

// Form returns the declaration the set was mounted from.
func (s *Set) Form() model.FormModel {
	return s.form
}

// Control returns the single control mounted for name.
func (s *Set) Control(name string) (Control, bool) {
	c, ok := s.single[name]
	return c, ok
}

// Group returns the radio inputs mounted for name.
func (s *Set) Group(name string) []*Input {
	return append([]*Input(nil), s.groups[name]...)
}

// SetValue drives the control(s) for name the way a user would: typing into
// text controls, choosing a select option, checking the matching radio (and
// clearing its siblings), or toggling a checkbox from a boolean string.
func (s *Set) SetValue(name, value string) error {
	if group, ok := s.groups[name]; ok {
		found := false
		for _, radio := range group {
			match := radio.Value() == value && !found
			radio.SetChecked(match)
			found = found || match
		}
		if !found && value != "" {
			return fmt.Errorf("controls: radio field %q has no option %q", name, value)
		}
		return nil
	}

	control, ok := s.single[name]
	if !ok {
		return fmt.Errorf("controls: field %q is not mounted", name)
	}
	switch c := control.(type) {
	case *Select:
		return c.Select(value)
	case *Checkbox:
		checked, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("controls: checkbox %q: %w", name, err)
		}
		c.SetChecked(checked)
	case *TextArea:
		c.SetValue(value)
	case *Input:
		c.SetValue(value)
	default:
		return fmt.Errorf("controls: field %q cannot be set", name)
	}
	return nil
}

// Fill applies SetValue for every entry of values, in form order, skipping
// names the form does not declare.
func (s *Set) Fill(values map[string]string) error {
	for _, field := range s.form.Fields {
		value, ok := values[field.Name]
		if !ok {
			continue
		}
		if err := s.SetValue(field.Name, value); err != nil {
			return err
		}
	}
	return nil
}
