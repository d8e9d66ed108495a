package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formrefs/pkg/fieldref"
)

// Default names for the well-known hidden fields. Backends that expect
// other names pass them explicitly.
const (
	DefaultCSRFField    = "_csrf"
	DefaultAuthField    = "auth_token"
	DefaultVersionField = "version"
)

// HiddenField is a name/value appended to a payload after the declared
// fields. It never has a control and is never bound to a registry.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// ParseHidden splits "name=value" into a HiddenField. The value may be empty
// and may itself contain '='.
func ParseHidden(raw string) (HiddenField, error) {
	name, value, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return HiddenField{}, fmt.Errorf("render: expected name=value, got %q", raw)
	}
	return Hidden(name, value), nil
}

// CSRFToken carries an anti-forgery token. A blank name uses
// DefaultCSRFField.
func CSRFToken(name, token string) HiddenField {
	return Hidden(defaultName(name, DefaultCSRFField), token)
}

// AuthToken carries an authentication token or session hint. A blank name
// uses DefaultAuthField.
func AuthToken(name, token string) HiddenField {
	return Hidden(defaultName(name, DefaultAuthField), token)
}

// VersionField carries a version for optimistic locking. A blank name uses
// DefaultVersionField.
func VersionField(name string, version any) HiddenField {
	return Hidden(defaultName(name, DefaultVersionField), version)
}

// Pair converts the field into a payload pair.
func (h HiddenField) Pair() fieldref.Pair {
	return fieldref.Pair{Name: h.Name, Value: h.Value}
}

// MergeHiddenFields returns a copy of base with fields applied. Empty names
// are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	if len(base) == 0 && len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		out[name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields trims names, drops empty ones and sorts the rest so
// payloads are deterministic.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	clean := MergeHiddenFields(fields)
	if len(clean) == 0 {
		return nil
	}

	result := make([]HiddenField, 0, len(clean))
	for name, value := range clean {
		result = append(result, HiddenField{Name: name, Value: value})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func defaultName(name, fallback string) string {
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}
