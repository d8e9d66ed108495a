package fieldref

import "strings"

// Registry maps a closed set of field names to their bound controls. The name
// set is fixed at construction; entries change only through binders.
type Registry struct {
	names    []string
	entries  map[string]*Entry
	observer Observer
}

// New creates a registry with every name Unset. Names keep their declaration
// order; blank names are dropped and repeated names collapse onto the first
// occurrence.
func New(names ...string) *Registry {
	return NewWithOptions(names)
}

// NewWithOptions is New with construction options.
func NewWithOptions(names []string, options ...Option) *Registry {
	r := &Registry{
		names:    make([]string, 0, len(names)),
		entries:  make(map[string]*Entry, len(names)),
		observer: nopObserver{},
	}
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, exists := r.entries[name]; exists {
			continue
		}
		r.names = append(r.names, name)
		r.entries[name] = &Entry{}
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Names returns the declared field names in declaration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.names...)
}

// Len returns the number of declared fields.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Declared reports whether name belongs to the registry's name set.
func (r *Registry) Declared(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.entries[name]
	return ok
}

// Read returns the current entry for name. Undeclared names read as Unset.
func (r *Registry) Read(name string) Entry {
	if r == nil {
		return Entry{}
	}
	entry, ok := r.entries[name]
	if !ok {
		return Entry{}
	}
	return *entry
}

// Snapshot returns every declared entry keyed by name.
func (r *Registry) Snapshot() map[string]Entry {
	if r == nil {
		return nil
	}
	out := make(map[string]Entry, len(r.names))
	for _, name := range r.names {
		out[name] = *r.entries[name]
	}
	return out
}

// write applies the binding policy for a declared name:
//   - Unset becomes Group when h is grouped and Single otherwise.
//   - Group appends grouped handles and ignores non-grouped ones.
//   - Single is overwritten by the new handle.
func (r *Registry) write(name string, h Handle) {
	entry, ok := r.entries[name]
	if !ok {
		r.observer.Ignored(name, IgnoreUndeclared)
		return
	}
	if isNil(h) {
		r.observer.Ignored(name, IgnoreNilHandle)
		return
	}

	switch entry.kind {
	case KindUnset:
		if h.Grouped() {
			*entry = Entry{kind: KindGroup, group: []Handle{h}}
		} else {
			*entry = Entry{kind: KindSingle, single: h}
		}
	case KindGroup:
		if !h.Grouped() {
			r.observer.Ignored(name, IgnoreGroupMismatch)
			return
		}
		entry.group = append(entry.group, h)
	case KindSingle:
		entry.single = h
	}
	r.observer.Bound(name, entry.kind)
}
