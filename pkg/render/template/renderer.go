package template

// TemplateRenderer is the seam payload encoders rely on. Engine is the
// pongo2-backed implementation.
type TemplateRenderer interface {
	// Render treats source as inline template content, or as the name of a
	// template known to the renderer when it has no template tags.
	Render(source string, data any) (string, error)
}
