// Package static provides a non-interactive renderer: it mounts a form's
// controls, applies the supplied values the way a scripted user would, and
// returns the serialized payload.
package static

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formrefs/pkg/controls"
	"github.com/goliatone/go-formrefs/pkg/fieldref"
	"github.com/goliatone/go-formrefs/pkg/model"
	"github.com/goliatone/go-formrefs/pkg/render"
	"github.com/goliatone/go-formrefs/pkg/render/template"
)

// Name is the identifier the renderer registers under.
const Name = "static"

// Option configures the renderer.
type Option func(*Renderer)

// WithOutputFormat selects the default output format.
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

// WithSanitizer strips markup from values before serialization.
func WithSanitizer(sanitizer render.Sanitizer) Option {
	return func(r *Renderer) {
		r.sanitizer = sanitizer
	}
}

// WithObserver receives the binding notifications of each render.
func WithObserver(observer fieldref.Observer) Option {
	return func(r *Renderer) {
		r.observer = observer
	}
}

// Renderer implements render.Renderer without prompting.
type Renderer struct {
	format    render.Format
	template  string
	engine    template.TemplateRenderer
	sanitizer render.Sanitizer
	observer  fieldref.Observer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a renderer emitting JSON unless configured otherwise.
func New(options ...Option) *Renderer {
	r := &Renderer{format: render.FormatJSON}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string { return Name }

// ContentType reports the configured output media type.
func (r *Renderer) ContentType() string { return r.format.ContentType() }

// Render mounts form into a fresh registry, fills opts.Values and encodes the
// resulting payload. Unlisted fields keep their declared defaults.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("static: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var regOpts []fieldref.Option
	if r.observer != nil {
		regOpts = append(regOpts, fieldref.WithObserver(r.observer))
	}
	reg := fieldref.NewWithOptions(form.Names(), regOpts...)

	set, err := controls.Mount(reg, form)
	if err != nil {
		return nil, fmt.Errorf("static: mount: %w", err)
	}
	defer controls.Unmount(reg, set)

	if err := set.Fill(opts.Values); err != nil {
		return nil, fmt.Errorf("static: fill: %w", err)
	}

	pairs, err := render.BuildPayload(reg, render.PayloadOptions{
		Hidden:    opts.Hidden,
		Fields:    opts.HiddenFields,
		Sanitizer: r.sanitizer,
	})
	if err != nil {
		return nil, fmt.Errorf("static: collect payload: %w", err)
	}

	encode := render.EncodeOptions{Format: r.format, Template: r.template, Engine: r.engine}
	if opts.Format != "" {
		encode.Format = opts.Format
	}
	if opts.Template != "" {
		encode.Template = opts.Template
	}
	return render.EncodeWith(pairs, encode)
}
