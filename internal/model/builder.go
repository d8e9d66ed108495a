package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	pkgopenapi "github.com/goliatone/go-formrefs/pkg/openapi"
)


// Builder converts OpenAPI operations into form declarations.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	return &Builder{opts: opts}
}

// Build transforms the operation's request body into a FormModel. Top-level
// properties become fields; nested objects are flattened into dotted names.
// Field order follows the body's x-formgen-order list, then required fields,
// then the remaining names alphabetically.
func (b *Builder) Build(op pkgopenapi.Operation) (FormModel, error) {
	if strings.TrimSpace(op.ID) == "" {
		return FormModel{}, errors.New("model: operation id is required")
	}

	form := FormModel{
		OperationID: op.ID,
		Label:       extensionString(op.Extensions, "label"),
		Endpoint:    op.Path,
		Method:      strings.ToUpper(op.Method),
		Summary:     op.Summary,
		Description: op.Description,
	}
	if form.Label == "" {
		form.Label = op.Summary
	}

	fields := b.fieldsFromObject("", op.RequestBody)
	if len(fields) == 0 {
		return FormModel{}, fmt.Errorf("model: operation %q request body has no properties", op.ID)
	}
	form.Fields = fields

	return form, nil
}

func (b *Builder) fieldsFromObject(prefix string, schema pkgopenapi.Schema) []Field {
	var fields []Field
	for _, name := range orderedProperties(schema) {
		prop := schema.Properties[name]
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		if prop.Type == "object" && len(prop.Properties) > 0 {
			fields = append(fields, b.fieldsFromObject(path, prop)...)
			continue
		}
		fields = append(fields, b.fieldFromPrimitive(path, name, prop, contains(schema.Required, name)))
	}
	return fields
}

func (b *Builder) fieldFromPrimitive(path, name string, schema pkgopenapi.Schema, required bool) Field {
	field := Field{
		Name:        path,
		Type:        mapType(schema.Type),
		Format:      schema.Format,
		Required:    required,
		Label:       extensionString(schema.Extensions, "label"),
		Placeholder: extensionString(schema.Extensions, "placeholder"),
		Description: schema.Description,
	}
	if field.Label == "" {
		field.Label = b.opts.Labeler(name)
	}
	if schema.Default != nil {
		field.Default = fmt.Sprint(schema.Default)
	}

	enum := schema.Enum
	if len(enum) == 0 && schema.Items != nil {
		enum = schema.Items.Enum
	}
	for _, value := range enum {
		field.Options = append(field.Options, Option{
			Value: fmt.Sprint(value),
			Label: b.opts.Labeler(fmt.Sprint(value)),
		})
	}

	field.Control = controlFor(field, extensionString(schema.Extensions, "widget"))
	return field
}

func controlFor(field Field, widget string) ControlKind {
	if widget != "" {
		if kind, ok := ParseControlKind(widget); ok {
			if !kind.NeedsOptions() || len(field.Options) > 0 {
				return kind
			}
		}
	}
	if len(field.Options) > 0 {
		return ControlSelect
	}
	switch field.Type {
	case FieldTypeBoolean:
		return ControlCheckbox
	case FieldTypeInteger, FieldTypeNumber:
		return ControlNumber
	}
	switch strings.ToLower(field.Format) {
	case "password":
		return ControlPassword
	case "email":
		return ControlEmail
	case "textarea":
		return ControlTextArea
	}
	return ControlText
}

func orderedProperties(schema pkgopenapi.Schema) []string {
	if len(schema.Properties) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(schema.Properties))
	out := make([]string, 0, len(schema.Properties))
	for _, name := range extensionList(schema.Extensions, "order") {
		if _, ok := schema.Properties[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	rest := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		ri, rj := contains(schema.Required, rest[i]), contains(schema.Required, rest[j])
		if ri != rj {
			return ri
		}
		return rest[i] < rest[j]
	})
	return append(out, rest...)
}

func mapType(schemaType string) FieldType {
	switch schemaType {
	case "integer":
		return FieldTypeInteger
	case "number":
		return FieldTypeNumber
	case "boolean":
		return FieldTypeBoolean
	case "array":
		return FieldTypeArray
	case "object":
		return FieldTypeObject
	default:
		return FieldTypeString
	}
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
