package controls

import "strings"

// Input types that change how a control binds or reports its value.
const (
	TypeText     = "text"
	TypePassword = "password"
	TypeEmail    = "email"
	TypeNumber   = "number"
	TypeHidden   = "hidden"
	TypeRadio    = "radio"
)

// Input mirrors a single <input> element. Radio inputs report Grouped so that
// every input sharing a name binds into one group.
type Input struct {
	name    string
	typ     string
	value   string
	checked bool
}

// NewInput returns an input of the given type. A blank type means text.
func NewInput(name, typ, value string) *Input {
	typ = strings.ToLower(strings.TrimSpace(typ))
	if typ == "" {
		typ = TypeText
	}
	return &Input{name: name, typ: typ, value: value}
}

// NewRadio returns a radio input carrying value.
func NewRadio(name, value string, checked bool) *Input {
	in := NewInput(name, TypeRadio, value)
	in.checked = checked
	return in
}

func (i *Input) Name() string  { return i.name }
func (i *Input) Type() string  { return i.typ }
func (i *Input) Value() string { return i.value }
func (i *Input) Checked() bool { return i.checked }
func (i *Input) Grouped() bool { return i.typ == TypeRadio }

// SetValue replaces the input's value.
func (i *Input) SetValue(value string) {
	i.value = value
}

// SetChecked toggles the checked state.
func (i *Input) SetChecked(checked bool) {
	i.checked = checked
}
