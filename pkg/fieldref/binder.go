package fieldref

// Binder is the callback a host invokes with a control handle when the
// element mounts (and with nil when it unmounts).
type Binder func(Handle)

// Bind returns the binder for name. Binders for undeclared names are silent
// no-ops; nil handles never mutate the registry, so previously bound handles
// stay in place after an unmount.
func (r *Registry) Bind(name string) Binder {
	return func(h Handle) {
		if r == nil {
			return
		}
		r.write(name, h)
	}
}

// BindAll binds each handle to name in order. It is a shorthand for hosts
// mounting a whole group at once.
func (r *Registry) BindAll(name string, handles ...Handle) {
	bind := r.Bind(name)
	for _, h := range handles {
		bind(h)
	}
}
