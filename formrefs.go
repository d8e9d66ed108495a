// Package formrefs is the entry point of the field reference registry. A UI
// host declares the closed set of field names a form submits, mounts one
// control per name (or several grouped controls for radio-style fields)
// through the registry's binders, and reads values individually or as an
// ordered, submission-ready payload.
//
//	reg, actions := formrefs.Use("username", "password", "age")
//	actions.Bind("username")(usernameInput)
//	for _, radio := range ageRadios {
//		actions.Bind("age")(radio)
//	}
//	pairs, err := actions.FormData()
//
// Subpackages add concrete controls (pkg/controls), form declarations
// (pkg/uischema, pkg/openapi), payload encoding (pkg/render) and hosts
// (pkg/renderers).
package formrefs

import "github.com/goliatone/go-formrefs/pkg/fieldref"

// Registry, Handle and the related types are re-exported for callers that
// only import the root package.
type (
	Registry = fieldref.Registry
	Handle   = fieldref.Handle
	Entry    = fieldref.Entry
	Binder   = fieldref.Binder
	Actions  = fieldref.Actions
	Pair     = fieldref.Pair
	Pairs    = fieldref.Pairs
	Observer = fieldref.Observer
	Option   = fieldref.Option

	UnboundFieldError = fieldref.UnboundFieldError
)

// ErrUnbound matches every unbound-field error via errors.Is.
var ErrUnbound = fieldref.ErrUnbound

// Use creates a registry for names and returns it with its action bundle.
func Use(names ...string) (*Registry, Actions) {
	reg := fieldref.New(names...)
	return reg, reg.Actions()
}

// UseWithOptions is Use with registry options such as fieldref.WithObserver.
func UseWithOptions(names []string, options ...Option) (*Registry, Actions) {
	reg := fieldref.NewWithOptions(names, options...)
	return reg, reg.Actions()
}

// WithObserver installs an observer for binding events.
func WithObserver(observer Observer) Option {
	return fieldref.WithObserver(observer)
}
