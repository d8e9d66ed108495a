package controls

// TextArea mirrors a <textarea> element.
type TextArea struct {
	name  string
	value string
}

// NewTextArea returns a textarea holding value.
func NewTextArea(name, value string) *TextArea {
	return &TextArea{name: name, value: value}
}

func (t *TextArea) Name() string  { return t.name }
func (t *TextArea) Value() string { return t.value }
func (t *TextArea) Checked() bool { return false }
func (t *TextArea) Grouped() bool { return false }

// SetValue replaces the text.
func (t *TextArea) SetValue(value string) {
	t.value = value
}
