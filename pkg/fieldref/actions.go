package fieldref

// Actions bundles the registry operations as plain functions so a host can
// hand them to child components without exposing the registry itself.
type Actions struct {
	Bind      func(name string) Binder
	Value     func(name string) (string, error)
	Field     func(name string) (Entry, error)
	AllValues func() (map[string]string, error)
	FormData  func() (Pairs, error)
	IsPresent func(entry Entry) bool
}

// Actions returns the action bundle bound to r.
func (r *Registry) Actions() Actions {
	return Actions{
		Bind:      r.Bind,
		Value:     r.Value,
		Field:     r.Field,
		AllValues: r.Values,
		FormData:  r.FormData,
		IsPresent: IsPresent,
	}
}
