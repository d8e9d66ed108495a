package model

import (
	"fmt"
	"sort"
	"strings"
)

const extensionNamespace = "x-formgen"

// Extension keys understood by the builder, either as "x-formgen-<key>" or
// nested under "x-formgen".
var extensionKeys = map[string]struct{}{
	"label":       {},
	"placeholder": {},
	"widget":      {},
	"order":       {},
}

// ExtensionKeys returns the supported extension keys sorted.
func ExtensionKeys() []string {
	out := make([]string, 0, len(extensionKeys))
	for key := range extensionKeys {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// LintExtensions reports problems with the x-formgen extensions in ext: an
// x-formgen value that is not an object, unknown keys, widgets that are not
// control kinds, and non-scalar values. Messages are sorted.
func LintExtensions(ext map[string]any) []string {
	var problems []string
	for key, value := range ext {
		switch {
		case key == extensionNamespace:
			nested, ok := value.(map[string]any)
			if !ok {
				problems = append(problems, fmt.Sprintf("%s must be an object, found %T", extensionNamespace, value))
				continue
			}
			for nestedKey, nestedValue := range nested {
				problems = append(problems, lintExtension(nestedKey, nestedValue)...)
			}
		case strings.HasPrefix(key, extensionNamespace+"-"):
			problems = append(problems, lintExtension(strings.TrimPrefix(key, extensionNamespace+"-"), value)...)
		}
	}
	sort.Strings(problems)
	return problems
}

func lintExtension(key string, value any) []string {
	if key == "" {
		return []string{"extension key is empty"}
	}
	if _, ok := extensionKeys[key]; !ok {
		return []string{fmt.Sprintf("unsupported extension key %q (supported: %s)", key, strings.Join(ExtensionKeys(), ", "))}
	}

	switch key {
	case "order":
		switch value.(type) {
		case string, []any, []string:
			return nil
		}
		return []string{fmt.Sprintf("value for %q must be a list or comma separated string (got %T)", key, value)}
	case "widget":
		raw, ok := value.(string)
		if !ok {
			return []string{fmt.Sprintf("value for %q must be a string (got %T)", key, value)}
		}
		if _, ok := ParseControlKind(raw); !ok {
			return []string{fmt.Sprintf("widget %q is not a known control", raw)}
		}
		return nil
	}

	switch value.(type) {
	case string, bool, float64, int, int64:
		return nil
	}
	return []string{fmt.Sprintf("value for %q must be a string, number, or boolean (got %T)", key, value)}
}

// extensionValue resolves key from either the flat "x-formgen-<key>" form or
// the nested "x-formgen: {<key>: ...}" form; the flat form wins.
func extensionValue(ext map[string]any, key string) (any, bool) {
	if len(ext) == 0 {
		return nil, false
	}
	if value, ok := ext[extensionNamespace+"-"+key]; ok {
		return value, true
	}
	if nested, ok := ext[extensionNamespace].(map[string]any); ok {
		value, ok := nested[key]
		return value, ok
	}
	return nil, false
}

func extensionString(ext map[string]any, key string) string {
	value, ok := extensionValue(ext, key)
	if !ok || value == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(value))
}

func extensionList(ext map[string]any, key string) []string {
	value, ok := extensionValue(ext, key)
	if !ok {
		return nil
	}
	switch typed := value.(type) {
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			out = append(out, strings.TrimSpace(fmt.Sprint(item)))
		}
		return out
	case string:
		parts := strings.Split(typed, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}
	return nil
}
