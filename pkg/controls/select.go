package controls

import "fmt"

// SelectOption is one <option> of a Select.
type SelectOption struct {
	Value    string
	Label    string
	Disabled bool
}

// Select mirrors a single-choice <select> element.
type Select struct {
	name     string
	options  []SelectOption
	selected int
}

// NewSelect returns a select over options. The option whose value equals
// defaultValue starts selected, even when disabled (a placeholder option);
// otherwise the first enabled option is selected.
func NewSelect(name string, options []SelectOption, defaultValue string) *Select {
	s := &Select{
		name:     name,
		options:  append([]SelectOption(nil), options...),
		selected: -1,
	}
	if idx := s.indexOf(defaultValue); defaultValue != "" && idx >= 0 {
		s.selected = idx
		return s
	}
	for i, opt := range s.options {
		if !opt.Disabled {
			s.selected = i
			break
		}
	}
	return s
}

func (s *Select) Name() string  { return s.name }
func (s *Select) Checked() bool { return false }
func (s *Select) Grouped() bool { return false }

// Value returns the selected option's value or "" when nothing is selected.
func (s *Select) Value() string {
	if s.selected < 0 || s.selected >= len(s.options) {
		return ""
	}
	return s.options[s.selected].Value
}

// Options returns a copy of the option list.
func (s *Select) Options() []SelectOption {
	return append([]SelectOption(nil), s.options...)
}

// SelectedIndex returns the selected option index or -1.
func (s *Select) SelectedIndex() int {
	return s.selected
}

// Select chooses the option carrying value. Disabled options cannot be chosen.
func (s *Select) Select(value string) error {
	idx := s.indexOf(value)
	if idx < 0 {
		return fmt.Errorf("controls: select %q has no option %q", s.name, value)
	}
	return s.SelectIndex(idx)
}

// SelectIndex chooses the option at idx.
func (s *Select) SelectIndex(idx int) error {
	if idx < 0 || idx >= len(s.options) {
		return fmt.Errorf("controls: select %q index %d out of range", s.name, idx)
	}
	if s.options[idx].Disabled {
		return fmt.Errorf("controls: select %q option %q is disabled", s.name, s.options[idx].Value)
	}
	s.selected = idx
	return nil
}

func (s *Select) indexOf(value string) int {
	for i, opt := range s.options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}
