package uischema

import (
	"fmt"

	pkgmodel "github.com/goliatone/go-formrefs/pkg/model"
)

// Decorator overlays declarations onto OpenAPI-derived form models.
type Decorator struct {
	store *Store
}

// NewDecorator builds a Decorator backed by the provided store. When store is
// nil or empty, the decorator becomes a no-op.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate applies the declaration whose id matches form.OperationID. When no
// declaration matches the form is left untouched. Declarations that reference
// fields missing from the model are rejected.
func (d *Decorator) Decorate(form *pkgmodel.FormModel) error {
	if d == nil || d.store.Empty() || form == nil {
		return nil
	}

	cfg, ok := d.store.Config(form.OperationID)
	if !ok {
		return nil
	}

	for _, field := range cfg.Fields {
		if _, exists := form.Field(field.Name); !exists {
			return fmt.Errorf("uischema: form %q (file %s) references unknown field %q", cfg.ID, cfg.Source, field.Name)
		}
	}

	*form = Decorate(*form, cfg)
	return nil
}

// Decorate returns a copy of form with the overlay applied. Labels, controls,
// options, defaults and placeholders declared in overlay replace the derived
// values; undeclared fields keep theirs. Fields named in overlay.Order move to
// the front in that order, and the remaining fields keep their relative order.
// Overlay fields missing from form are skipped.
func Decorate(form pkgmodel.FormModel, overlay Form) pkgmodel.FormModel {
	out := form
	out.Fields = make([]pkgmodel.Field, len(form.Fields))
	copy(out.Fields, form.Fields)

	if overlay.Label != "" {
		out.Label = overlay.Label
	}
	if overlay.Endpoint != "" {
		out.Endpoint = overlay.Endpoint
	}
	if overlay.Method != "" {
		out.Method = overlay.Method
	}

	index := make(map[string]int, len(out.Fields))
	for i, field := range out.Fields {
		index[field.Name] = i
	}
	for _, cfg := range overlay.Fields {
		i, ok := index[cfg.Name]
		if !ok {
			continue
		}
		out.Fields[i] = overlayField(out.Fields[i], cfg)
	}

	if len(overlay.Order) > 0 {
		out.Fields = reorder(out.Fields, overlay.Order)
	}
	return out
}

func overlayField(field pkgmodel.Field, cfg FieldConfig) pkgmodel.Field {
	if cfg.Label != "" {
		field.Label = cfg.Label
	}
	if cfg.Control != "" || cfg.Secret {
		field.Control = cfg.controlKind()
	}
	if cfg.Default != "" {
		field.Default = cfg.Default
	}
	if cfg.Placeholder != "" {
		field.Placeholder = cfg.Placeholder
	}
	if cfg.Help != "" {
		field.Description = cfg.Help
	}
	if cfg.Required {
		field.Required = true
	}
	if opts := cfg.modelOptions(); len(opts) > 0 {
		field.Options = opts
	} else if len(field.Options) > 0 {
		field.Options = append([]pkgmodel.Option(nil), field.Options...)
	}
	if len(cfg.Metadata) > 0 {
		merged := cloneStringMap(field.Metadata)
		if merged == nil {
			merged = make(map[string]string, len(cfg.Metadata))
		}
		for k, v := range cfg.Metadata {
			merged[k] = v
		}
		field.Metadata = merged
	}
	return field
}

func reorder(fields []pkgmodel.Field, order []string) []pkgmodel.Field {
	out := make([]pkgmodel.Field, 0, len(fields))
	placed := make(map[string]struct{}, len(order))
	for _, name := range order {
		if _, done := placed[name]; done {
			continue
		}
		for _, field := range fields {
			if field.Name == name {
				out = append(out, field)
				placed[name] = struct{}{}
				break
			}
		}
	}
	for _, field := range fields {
		if _, done := placed[field.Name]; !done {
			out = append(out, field)
		}
	}
	return out
}

var _ pkgmodel.Decorator = (*Decorator)(nil)
