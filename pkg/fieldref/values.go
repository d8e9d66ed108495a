package fieldref

import (
	"net/url"
	"strings"
)

// Value returns the current string value for name. Single entries return the
// control's value verbatim; groups return the first checked member's value or
// "" when none is checked.
func (r *Registry) Value(name string) (string, error) {
	entry, err := AssertPresent(r.Read(name), name)
	if err != nil {
		return "", err
	}
	return entry.value(), nil
}

// Field returns the raw bound entry so callers can act on the control itself.
func (r *Registry) Field(name string) (Entry, error) {
	return AssertPresent(r.Read(name), name)
}

// Control returns the handle that currently represents name: the single
// control, or the checked member of a group (nil when nothing is checked).
func (r *Registry) Control(name string) (Handle, error) {
	entry, err := r.Field(name)
	if err != nil {
		return nil, err
	}
	if entry.Kind() == KindGroup {
		return firstChecked(entry.group), nil
	}
	return entry.single, nil
}

// FormData returns one pair per declared field in declaration order. It fails
// with the first unbound field and never returns a partial result.
func (r *Registry) FormData() (Pairs, error) {
	names := r.Names()
	for _, name := range names {
		if _, err := AssertPresent(r.Read(name), name); err != nil {
			return nil, err
		}
	}

	pairs := make(Pairs, 0, len(names))
	for _, name := range names {
		value, err := r.Value(name)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{Name: name, Value: value})
	}
	return pairs, nil
}

// Values returns FormData reshaped into a name to value map.
func (r *Registry) Values() (map[string]string, error) {
	pairs, err := r.FormData()
	if err != nil {
		return nil, err
	}
	return pairs.Map(), nil
}

// Pair is one submitted name/value.
type Pair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Pairs is an ordered submission payload.
type Pairs []Pair

// Map reshapes the pairs into a map. Later pairs win on duplicate names.
func (p Pairs) Map() map[string]string {
	out := make(map[string]string, len(p))
	for _, pair := range p {
		out[pair.Name] = pair.Value
	}
	return out
}

// Get returns the first value paired with name.
func (p Pairs) Get(name string) (string, bool) {
	for _, pair := range p {
		if pair.Name == name {
			return pair.Value, true
		}
	}
	return "", false
}

// Names returns the pair names in order.
func (p Pairs) Names() []string {
	out := make([]string, 0, len(p))
	for _, pair := range p {
		out = append(out, pair.Name)
	}
	return out
}

// URLValues converts the pairs into url.Values. Order is lost; use Encode for
// an order-preserving body.
func (p Pairs) URLValues() url.Values {
	out := make(url.Values, len(p))
	for _, pair := range p {
		out.Add(pair.Name, pair.Value)
	}
	return out
}

// Encode renders the pairs as application/x-www-form-urlencoded in order.
func (p Pairs) Encode() string {
	var b strings.Builder
	for i, pair := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.Value))
	}
	return b.String()
}
