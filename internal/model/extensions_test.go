package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLintExtensions(t *testing.T) {
	tests := []struct {
		name string
		ext  map[string]any
		want []string
	}{
		{name: "nil", ext: nil, want: nil},
		{name: "foreign keys ignored", ext: map[string]any{"x-other": 1}, want: nil},
		{
			name: "valid flat and nested",
			ext: map[string]any{
				"x-formgen-widget": "radio",
				"x-formgen":        map[string]any{"order": []any{"a", "b"}, "label": "Name"},
			},
			want: nil,
		},
		{
			name: "unknown widget",
			ext:  map[string]any{"x-formgen-widget": "slider"},
			want: []string{`widget "slider" is not a known control`},
		},
		{
			name: "namespace not an object",
			ext:  map[string]any{"x-formgen": "oops"},
			want: []string{"x-formgen must be an object, found string"},
		},
		{
			name: "unknown nested key",
			ext:  map[string]any{"x-formgen": map[string]any{"color": "red"}},
			want: []string{`unsupported extension key "color" (supported: label, order, placeholder, widget)`},
		},
		{
			name: "mixed flat and nested problems",
			ext: map[string]any{
				"x-formgen-widget": "slider",
				"x-formgen":        map[string]any{"label": "Name", "color": "red", "order": 3},
				"x-other":          "ignored",
			},
			want: []string{
				`unsupported extension key "color" (supported: label, order, placeholder, widget)`,
				`value for "order" must be a list or comma separated string (got int)`,
				`widget "slider" is not a known control`,
			},
		},
		{
			name: "order of wrong type",
			ext:  map[string]any{"x-formgen-order": 3.0},
			want: []string{`value for "order" must be a list or comma separated string (got float64)`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LintExtensions(tt.ext)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("problems mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
