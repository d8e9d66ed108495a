package tui

import (
	"github.com/goliatone/go-formrefs/pkg/fieldref"
	"github.com/goliatone/go-formrefs/pkg/render"
	"github.com/goliatone/go-formrefs/pkg/render/template"
)

// Theme captures optional prefixes the renderer applies to messages it
// prints through the driver.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// SubmitTransformer rewrites the collected payload before serialization.
type SubmitTransformer func(fieldref.Pairs) (fieldref.Pairs, error)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format render.Format) Option {
	return func(r *Renderer) {
		if format != "" {
			r.format = format
		}
	}
}

// WithTemplate sets the template used by render.FormatTemplate: inline
// source, or a name the configured engine loads from its directory.
func WithTemplate(source string) Option {
	return func(r *Renderer) {
		r.template = source
	}
}

// WithTemplateEngine overrides the engine used by render.FormatTemplate.
func WithTemplateEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.engine = engine
	}
}

// WithSanitizer strips markup from collected values before serialization.
func WithSanitizer(sanitizer render.Sanitizer) Option {
	return func(r *Renderer) {
		r.sanitizer = sanitizer
	}
}

// WithObserver receives the binding notifications of each session registry.
func WithObserver(observer fieldref.Observer) Option {
	return func(r *Renderer) {
		r.observer = observer
	}
}

// WithSubmitTransformer allows callers to rewrite the payload prior to
// serialization.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(r *Renderer) {
		r.submitTransformer = fn
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
