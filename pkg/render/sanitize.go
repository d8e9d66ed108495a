package render

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer rewrites a single extracted value before serialization.
type Sanitizer interface {
	Sanitize(value string) string
}

// SanitizerFunc adapts a function into a Sanitizer.
type SanitizerFunc func(string) string

// Sanitize calls the underlying function.
func (fn SanitizerFunc) Sanitize(value string) string {
	return fn(value)
}

type policySanitizer struct {
	policy *bluemonday.Policy
}

// StrictSanitizer strips every HTML element from values. Entities produced by
// the policy are unescaped again so plain text survives unchanged.
func StrictSanitizer() Sanitizer {
	return policySanitizer{policy: bluemonday.StrictPolicy()}
}

// PolicySanitizer wraps a caller supplied bluemonday policy.
func PolicySanitizer(policy *bluemonday.Policy) Sanitizer {
	if policy == nil {
		return StrictSanitizer()
	}
	return policySanitizer{policy: policy}
}

func (s policySanitizer) Sanitize(value string) string {
	if value == "" {
		return value
	}
	return html.UnescapeString(s.policy.Sanitize(value))
}
