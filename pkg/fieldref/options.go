package fieldref

// Observer receives binding notifications. Implementations must not call back
// into the registry that emitted the event.
type Observer interface {
	// Bound fires after a handle was stored for name; kind is the resulting
	// entry kind.
	Bound(name string, kind Kind)
	// Ignored fires when a binder call did not change the registry.
	Ignored(name string, reason IgnoreReason)
}

// IgnoreReason explains why a binder call was a no-op.
type IgnoreReason string

const (
	// IgnoreUndeclared is reported for binders obtained for undeclared names.
	IgnoreUndeclared IgnoreReason = "undeclared field"
	// IgnoreNilHandle is reported for unmount notifications.
	IgnoreNilHandle IgnoreReason = "nil handle"
	// IgnoreGroupMismatch is reported when a non-grouped handle targets a
	// field that is already a group.
	IgnoreGroupMismatch IgnoreReason = "non-grouped handle for group field"
)

// ObserverFuncs adapts plain functions to Observer. Nil members are skipped.
type ObserverFuncs struct {
	OnBound   func(name string, kind Kind)
	OnIgnored func(name string, reason IgnoreReason)
}

// Bound implements Observer.
func (o ObserverFuncs) Bound(name string, kind Kind) {
	if o.OnBound != nil {
		o.OnBound(name, kind)
	}
}

// Ignored implements Observer.
func (o ObserverFuncs) Ignored(name string, reason IgnoreReason) {
	if o.OnIgnored != nil {
		o.OnIgnored(name, reason)
	}
}

type nopObserver struct{}

func (nopObserver) Bound(string, Kind)           {}
func (nopObserver) Ignored(string, IgnoreReason) {}

// Option configures a Registry during construction.
type Option func(*Registry)

// WithObserver installs an observer for binding events.
func WithObserver(observer Observer) Option {
	return func(r *Registry) {
		if observer != nil {
			r.observer = observer
		}
	}
}
