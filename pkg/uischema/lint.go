package uischema

import (
	"fmt"
	"sort"
	"strings"

	pkgmodel "github.com/goliatone/go-formrefs/pkg/model"
)

// Violation is one problem found in a declaration document.
type Violation struct {
	Form    string
	Message string
}

// Lint parses a document and reports every problem instead of stopping at
// the first one. Parse failures are reported as a single violation with an
// empty form id.
func Lint(data []byte, source string) []Violation {
	doc, err := parseDocument(data, source)
	if err != nil {
		return []Violation{{Message: err.Error()}}
	}

	var out []Violation
	for id, raw := range doc.Forms {
		if strings.TrimSpace(id) == "" {
			out = append(out, Violation{Message: "empty form id"})
			continue
		}
		for _, problem := range validateForm(raw) {
			out = append(out, Violation{Form: id, Message: problem})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Form == out[j].Form {
			return out[i].Message < out[j].Message
		}
		return out[i].Form < out[j].Form
	})
	return out
}

func validateForm(raw formFile) []string {
	var problems []string
	if len(raw.Fields) == 0 {
		problems = append(problems, "declares no fields")
	}

	seen := make(map[string]struct{}, len(raw.Fields))
	for idx, cfg := range raw.Fields {
		name := strings.TrimSpace(cfg.Name)
		if name == "" {
			problems = append(problems, fmt.Sprintf("field at index %d has an empty name", idx))
			continue
		}
		if _, dup := seen[name]; dup {
			problems = append(problems, fmt.Sprintf("duplicate field %q", name))
		}
		seen[name] = struct{}{}

		if _, ok := pkgmodel.ParseControlKind(cfg.Control); !ok {
			problems = append(problems, fmt.Sprintf("field %q uses unknown control %q", name, cfg.Control))
			continue
		}
		optionSeen := make(map[string]struct{}, len(cfg.Options))
		for _, opt := range cfg.Options {
			if _, dup := optionSeen[opt.Value]; dup {
				problems = append(problems, fmt.Sprintf("field %q repeats option %q", name, opt.Value))
			}
			optionSeen[opt.Value] = struct{}{}
		}
	}

	for _, name := range raw.Order {
		if _, ok := seen[strings.TrimSpace(name)]; !ok && len(raw.Fields) > 0 {
			problems = append(problems, fmt.Sprintf("order references undeclared field %q", name))
		}
	}
	return problems
}
