package controls

// DefaultCheckboxValue is submitted for a checked box without an explicit
// value.
const DefaultCheckboxValue = "on"

// Checkbox is a boolean toggle. Unlike a raw HTML checkbox, Value follows the
// checked state: the on value when checked and the off value otherwise.
type Checkbox struct {
	name    string
	on      string
	off     string
	checked bool
}

// NewCheckbox returns a checkbox submitting on when checked and "" otherwise.
func NewCheckbox(name, on string, checked bool) *Checkbox {
	if on == "" {
		on = DefaultCheckboxValue
	}
	return &Checkbox{name: name, on: on, checked: checked}
}

// WithOffValue sets the value reported while unchecked.
func (c *Checkbox) WithOffValue(off string) *Checkbox {
	c.off = off
	return c
}

func (c *Checkbox) Name() string  { return c.name }
func (c *Checkbox) Checked() bool { return c.checked }
func (c *Checkbox) Grouped() bool { return false }

func (c *Checkbox) Value() string {
	if c.checked {
		return c.on
	}
	return c.off
}

// SetChecked toggles the checked state.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}
