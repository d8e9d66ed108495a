package fieldref

import "reflect"

// Handle is the minimal capability a physical input control exposes to the
// registry. Implementations live on the host side (see pkg/controls).
type Handle interface {
	// Value returns the control's current textual value.
	Value() string
	// Checked reports the selection state for selectable controls.
	Checked() bool
	// Grouped reports whether the control belongs to a mutually exclusive
	// group kind (for example an HTML radio input).
	Grouped() bool
}

// IsHandlePresent reports whether h refers to a control. A typed nil pointer
// stored in the interface counts as absent.
func IsHandlePresent(h Handle) bool {
	return !isNil(h)
}

func isNil(h Handle) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
