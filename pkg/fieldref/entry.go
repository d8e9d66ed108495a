package fieldref

// Kind discriminates the Entry variants.
type Kind int

const (
	// KindUnset marks a declared field with no bound control.
	KindUnset Kind = iota
	// KindSingle marks a field bound to exactly one control.
	KindSingle
	// KindGroup marks a field bound to an ordered set of grouped controls.
	KindGroup
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindGroup:
		return "group"
	default:
		return "unset"
	}
}

// Entry is the registry value stored per field name. The zero value is Unset.
type Entry struct {
	kind   Kind
	single Handle
	group  []Handle
}

// SingleEntry wraps one handle.
func SingleEntry(h Handle) Entry {
	if isNil(h) {
		return Entry{}
	}
	return Entry{kind: KindSingle, single: h}
}

// GroupEntry wraps the supplied handles in binding order. Nil handles are
// skipped; an empty result is Unset.
func GroupEntry(handles ...Handle) Entry {
	group := make([]Handle, 0, len(handles))
	for _, h := range handles {
		if !isNil(h) {
			group = append(group, h)
		}
	}
	if len(group) == 0 {
		return Entry{}
	}
	return Entry{kind: KindGroup, group: group}
}

// Kind reports which variant the entry holds.
func (e Entry) Kind() Kind {
	return e.kind
}

// IsSet reports whether the entry holds at least one handle.
func (e Entry) IsSet() bool {
	return e.kind != KindUnset
}

// Single returns the bound handle for single entries and nil otherwise.
func (e Entry) Single() Handle {
	if e.kind != KindSingle {
		return nil
	}
	return e.single
}

// Group returns a copy of the group members in binding order, or nil when the
// entry is not a group.
func (e Entry) Group() []Handle {
	if e.kind != KindGroup {
		return nil
	}
	return append([]Handle(nil), e.group...)
}

// Len returns the number of handles held by the entry.
func (e Entry) Len() int {
	switch e.kind {
	case KindSingle:
		return 1
	case KindGroup:
		return len(e.group)
	default:
		return 0
	}
}

// IsPresent reports whether the entry is bound. It is the branching
// alternative to handling *UnboundFieldError.
func IsPresent(e Entry) bool {
	return e.IsSet()
}

// value extracts the uniform string value. Groups yield the first checked
// member in binding order, or "" when nothing is selected.
func (e Entry) value() string {
	switch e.kind {
	case KindSingle:
		return e.single.Value()
	case KindGroup:
		if h := firstChecked(e.group); h != nil {
			return h.Value()
		}
	}
	return ""
}

func firstChecked(group []Handle) Handle {
	for _, h := range group {
		if h.Checked() {
			return h
		}
	}
	return nil
}
