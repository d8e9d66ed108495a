package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formrefs/pkg/controls"
	"github.com/goliatone/go-formrefs/pkg/fieldref"
	"github.com/goliatone/go-formrefs/pkg/model"
	"github.com/goliatone/go-formrefs/pkg/render"
	"github.com/goliatone/go-formrefs/pkg/render/template"
)

// Name is the identifier the renderer registers under.
const Name = "tui"

// Renderer implements render.Renderer for terminal-driven sessions. Each
// Render call mounts a fresh control set into a new registry, prompts for
// every visible field, and serializes the registry's payload.
type Renderer struct {
	driver            PromptDriver
	format            render.Format
	template          string
	engine            template.TemplateRenderer
	sanitizer         render.Sanitizer
	observer          fieldref.Observer
	submitTransformer SubmitTransformer
	theme             Theme
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		format: render.FormatJSON,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		driver, err := newSurveyDriver()
		if err != nil {
			return nil, err
		}
		r.driver = driver
	}

	return r, nil
}

var _ render.Renderer = (*Renderer)(nil)

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return r.format.ContentType()
}

// Render runs one prompt session for form. Values in opts seed the mounted
// controls and become the prompt defaults. Hidden controls are bound but
// never prompted.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	var regOpts []fieldref.Option
	if r.observer != nil {
		regOpts = append(regOpts, fieldref.WithObserver(r.observer))
	}
	reg := fieldref.NewWithOptions(form.Names(), regOpts...)

	set, err := controls.Mount(reg, form)
	if err != nil {
		return nil, fmt.Errorf("tui: mount: %w", err)
	}
	defer controls.Unmount(reg, set)

	if err := set.Fill(opts.Values); err != nil {
		return nil, fmt.Errorf("tui: prefill: %w", err)
	}

	for _, field := range form.Fields {
		if field.Control == model.ControlHidden {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.promptField(ctx, field, set, reg); err != nil {
			return nil, err
		}
	}

	pairs, err := render.BuildPayload(reg, render.PayloadOptions{
		Hidden:    opts.Hidden,
		Fields:    opts.HiddenFields,
		Sanitizer: r.sanitizer,
	})
	if err != nil {
		return nil, fmt.Errorf("tui: collect payload: %w", err)
	}

	if r.submitTransformer != nil {
		pairs, err = r.submitTransformer(pairs)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	return render.EncodeWith(pairs, r.encodeOptions(opts))
}

func (r *Renderer) encodeOptions(opts render.RenderOptions) render.EncodeOptions {
	out := render.EncodeOptions{
		Format:   r.format,
		Template: r.template,
		Engine:   r.engine,
	}
	if opts.Format != "" {
		out.Format = opts.Format
	}
	if opts.Template != "" {
		out.Template = opts.Template
	}
	return out
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, set *controls.Set, reg *fieldref.Registry) error {
	current, err := reg.Value(field.Name)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	switch field.Control {
	case model.ControlRadio, model.ControlSelect:
		return r.promptChoice(ctx, field, set, current)
	case model.ControlCheckbox:
		return r.promptCheckbox(ctx, field, set)
	case model.ControlPassword:
		return r.promptText(ctx, field, set, current, r.driver.Password)
	case model.ControlTextArea:
		response, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: field.DisplayLabel(),
			Default: current,
			Help:    displayHelp(field),
		})
		if err != nil {
			return err
		}
		return set.SetValue(field.Name, response)
	case model.ControlNumber:
		return r.promptNumber(ctx, field, set, current)
	default:
		return r.promptText(ctx, field, set, current, r.driver.Input)
	}
}

type textPrompt func(context.Context, InputConfig) (string, error)

func (r *Renderer) promptText(ctx context.Context, field model.Field, set *controls.Set, current string, ask textPrompt) error {
	response, err := ask(ctx, InputConfig{
		Message:     field.DisplayLabel(),
		Default:     current,
		Help:        displayHelp(field),
		Placeholder: field.Placeholder,
	})
	if err != nil {
		return err
	}
	return set.SetValue(field.Name, response)
}

func (r *Renderer) promptNumber(ctx context.Context, field model.Field, set *controls.Set, current string) error {
	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message:     field.DisplayLabel(),
			Default:     current,
			Help:        displayHelp(field),
			Placeholder: field.Placeholder,
			Validator:   validateNumber,
		})
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(response)
		if err := validateNumber(trimmed); err != nil {
			r.info(ctx, fmt.Sprintf("%s%s expects a number", r.theme.ErrorPrefix, field.DisplayLabel()))
			continue
		}
		return set.SetValue(field.Name, trimmed)
	}
}

func (r *Renderer) promptChoice(ctx context.Context, field model.Field, set *controls.Set, current string) error {
	labels := make([]string, 0, len(field.Options))
	defaultIdx := -1
	for i, opt := range field.Options {
		label := opt.Label
		if label == "" {
			label = opt.Value
		}
		if opt.Disabled {
			label += " (unavailable)"
		}
		labels = append(labels, label)
		if current != "" && opt.Value == current && defaultIdx < 0 {
			defaultIdx = i
		}
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      field.DisplayLabel(),
			Options:      labels,
			DefaultIndex: defaultIdx,
			Help:         displayHelp(field),
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Options) {
			r.info(ctx, fmt.Sprintf("%sinvalid %s selection", r.theme.ErrorPrefix, field.Name))
			continue
		}
		if field.Options[idx].Disabled {
			r.info(ctx, fmt.Sprintf("%s%s is unavailable", r.theme.ErrorPrefix, labels[idx]))
			continue
		}
		return set.SetValue(field.Name, field.Options[idx].Value)
	}
}

func (r *Renderer) promptCheckbox(ctx context.Context, field model.Field, set *controls.Set) error {
	checked := false
	if control, ok := set.Control(field.Name); ok {
		checked = control.Checked()
	}
	response, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: field.DisplayLabel(),
		Default: checked,
		Help:    displayHelp(field),
	})
	if err != nil {
		return err
	}
	return set.SetValue(field.Name, strconv.FormatBool(response))
}

func (r *Renderer) info(ctx context.Context, msg string) {
	_ = r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

// validateNumber accepts blank input or anything strconv parses as a float.
func validateNumber(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
		return fmt.Errorf("tui: %q is not a number", trimmed)
	}
	return nil
}

func displayHelp(field model.Field) string {
	if h := field.Metadata["cli.help"]; h != "" {
		return h
	}
	return field.Description
}
