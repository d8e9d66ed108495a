package render

import (
	"fmt"

	"github.com/goliatone/go-formrefs/pkg/fieldref"
)

// PayloadOptions configure BuildPayload.
type PayloadOptions struct {
	// Hidden fields appended after the declared fields in name order.
	Hidden map[string]string
	// Fields are merged over Hidden; later entries win on name collisions.
	Fields []HiddenField
	// Sanitizer rewrites declared field values. Hidden values are trusted and
	// left untouched.
	Sanitizer Sanitizer
}

// BuildPayload aggregates the registry into submission pairs. It fails with
// the registry's unbound-field error when any declared field has no handle,
// so callers never see a partial payload. Hidden fields whose names collide
// with declared fields are dropped.
func BuildPayload(reg *fieldref.Registry, opts PayloadOptions) (fieldref.Pairs, error) {
	if reg == nil {
		return nil, fmt.Errorf("render: registry is required")
	}

	pairs, err := reg.FormData()
	if err != nil {
		return nil, err
	}

	if opts.Sanitizer != nil {
		for i := range pairs {
			pairs[i].Value = opts.Sanitizer.Sanitize(pairs[i].Value)
		}
	}

	for _, hidden := range SortedHiddenFields(MergeHiddenFields(opts.Hidden, opts.Fields...)) {
		if reg.Declared(hidden.Name) {
			continue
		}
		pairs = append(pairs, hidden.Pair())
	}
	return pairs, nil
}
