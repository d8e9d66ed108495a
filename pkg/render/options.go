package render

// RenderOptions describe per-request data that renderers use without
// mutating the form model pipeline.
type RenderOptions struct {
	// Values pre-populates mounted controls keyed by field name. Radio and
	// select fields take the option value; checkboxes take a boolean string.
	Values map[string]string
	// Hidden fields are appended to the payload after the declared fields.
	Hidden map[string]string
	// HiddenFields are merged over Hidden, typically CSRFToken, AuthToken or
	// VersionField values.
	HiddenFields []HiddenField
	// Format overrides the renderer's configured output format.
	Format Format
	// Template is the inline pongo2 source used by FormatTemplate.
	Template string
}
