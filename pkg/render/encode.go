package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-formrefs/pkg/fieldref"
	"github.com/goliatone/go-formrefs/pkg/render/template"
)

// Format names a payload serialization.
type Format string

const (
	// FormatJSON emits a JSON object whose keys follow declaration order.
	FormatJSON Format = "json"
	// FormatForm emits an application/x-www-form-urlencoded body.
	FormatForm Format = "form"
	// FormatPretty emits one name=value line per pair.
	FormatPretty Format = "pretty"
	// FormatTemplate renders a pongo2 template over the payload.
	FormatTemplate Format = "template"
)

// ParseFormat normalises raw input; blank input maps to FormatJSON.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatForm, FormatPretty, FormatTemplate:
		return f, nil
	default:
		return "", fmt.Errorf("render: unknown format %q", raw)
	}
}

// ContentType returns the media type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatForm:
		return "application/x-www-form-urlencoded"
	case FormatPretty, FormatTemplate:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// EncodeOptions configure EncodeWith.
type EncodeOptions struct {
	Format Format
	// Template is the inline source for FormatTemplate, or a template name
	// when Engine loads templates from a directory.
	Template string
	// Engine renders FormatTemplate. A default pongo2 engine is created when
	// nil.
	Engine template.TemplateRenderer
}

// Encode serializes pairs in the given format.
func Encode(pairs fieldref.Pairs, format Format) ([]byte, error) {
	return EncodeWith(pairs, EncodeOptions{Format: format})
}

// EncodeWith serializes pairs according to opts.
func EncodeWith(pairs fieldref.Pairs, opts EncodeOptions) ([]byte, error) {
	format := opts.Format
	if format == "" {
		format = FormatJSON
	}

	switch format {
	case FormatJSON:
		return encodeJSON(pairs)
	case FormatForm:
		return []byte(pairs.Encode()), nil
	case FormatPretty:
		return encodePretty(pairs), nil
	case FormatTemplate:
		return encodeTemplate(pairs, opts)
	default:
		return nil, fmt.Errorf("render: unknown format %q", format)
	}
}

func encodeJSON(pairs fieldref.Pairs) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalString(pair.Name)
		if err != nil {
			return nil, fmt.Errorf("render: encode name %q: %w", pair.Name, err)
		}
		value, err := marshalString(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("render: encode value for %q: %w", pair.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalString encodes s as a JSON string. Payload values are plain text, so
// HTML characters are written as-is rather than as \u escapes.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func encodePretty(pairs fieldref.Pairs) []byte {
	var buf bytes.Buffer
	for _, pair := range pairs {
		buf.WriteString(pair.Name)
		buf.WriteByte('=')
		buf.WriteString(pair.Value)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func encodeTemplate(pairs fieldref.Pairs, opts EncodeOptions) ([]byte, error) {
	if strings.TrimSpace(opts.Template) == "" {
		return nil, fmt.Errorf("render: template format requires a template")
	}
	engine := opts.Engine
	if engine == nil {
		created, err := template.New()
		if err != nil {
			return nil, fmt.Errorf("render: template engine: %w", err)
		}
		engine = created
	}

	if pairs == nil {
		pairs = fieldref.Pairs{}
	}
	out, err := engine.Render(opts.Template, map[string]any{
		"pairs":  pairs,
		"values": pairs.Map(),
	})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return []byte(out), nil
}
