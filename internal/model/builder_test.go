package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-formrefs/pkg/openapi"
)

func TestBuilder_BuildsOrderedControls(t *testing.T) {
	body := pkgopenapi.Schema{
		Type:     "object",
		Required: []string{"username", "password"},
		Extensions: map[string]any{
			"x-formgen-order": []any{"username", "password"},
		},
		Properties: map[string]pkgopenapi.Schema{
			"username": {Type: "string"},
			"password": {Type: "string", Format: "password"},
			"gender":   {Type: "string", Enum: []any{"male", "female", "other"}},
			"age": {
				Type:       "string",
				Enum:       []any{"minor", "major"},
				Extensions: map[string]any{"x-formgen": map[string]any{"widget": "radio"}},
			},
			"message": {
				Type:       "string",
				Extensions: map[string]any{"x-formgen-widget": "textarea", "x-formgen-label": "Your message"},
			},
			"newsletter": {Type: "boolean", Default: true},
			"address": {
				Type: "object",
				Properties: map[string]pkgopenapi.Schema{
					"city": {Type: "string"},
				},
			},
		},
	}
	op := pkgopenapi.MustNewOperation("signup", "post", "/signup", body)

	form, err := New(Options{}).Build(op)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	wantNames := []string{"username", "password", "address.city", "age", "gender", "message", "newsletter"}
	if diff := cmp.Diff(wantNames, form.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	wantControls := map[string]ControlKind{
		"username":     ControlText,
		"password":     ControlPassword,
		"address.city": ControlText,
		"age":          ControlRadio,
		"gender":       ControlSelect,
		"message":      ControlTextArea,
		"newsletter":   ControlCheckbox,
	}
	for _, field := range form.Fields {
		if field.Control != wantControls[field.Name] {
			t.Fatalf("field %q control = %s, want %s", field.Name, field.Control, wantControls[field.Name])
		}
	}

	age, _ := form.Field("age")
	if diff := cmp.Diff([]string{"minor", "major"}, age.OptionValues()); diff != "" {
		t.Fatalf("age options mismatch (-want +got):\n%s", diff)
	}
	message, _ := form.Field("message")
	if message.Label != "Your message" {
		t.Fatalf("message label = %q", message.Label)
	}
	city, _ := form.Field("address.city")
	if city.Label != "City" {
		t.Fatalf("city label = %q", city.Label)
	}
	newsletter, _ := form.Field("newsletter")
	if newsletter.Default != "true" {
		t.Fatalf("newsletter default = %q", newsletter.Default)
	}
	if form.Method != "POST" {
		t.Fatalf("method = %q", form.Method)
	}
}

func TestBuilder_RadioWidgetWithoutOptionsFallsBack(t *testing.T) {
	body := pkgopenapi.Schema{
		Type: "object",
		Properties: map[string]pkgopenapi.Schema{
			"choice": {Type: "string", Extensions: map[string]any{"x-formgen-widget": "radio"}},
		},
	}
	form, err := New(Options{}).Build(pkgopenapi.MustNewOperation("pick", "post", "/pick", body))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if form.Fields[0].Control != ControlText {
		t.Fatalf("control = %s, want text", form.Fields[0].Control)
	}
}

func TestBuilder_RejectsEmptyBody(t *testing.T) {
	op := pkgopenapi.MustNewOperation("empty", "post", "/empty", pkgopenapi.Schema{Type: "object"})
	if _, err := New(Options{}).Build(op); err == nil {
		t.Fatalf("expected error for body without properties")
	}
}

func TestDefaultLabeler(t *testing.T) {
	tests := map[string]string{
		"username":     "Username",
		"first_name":   "First Name",
		"address.city": "Address City",
		"":             "",
	}
	for in, want := range tests {
		if got := DefaultLabeler(in); got != want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", in, got, want)
		}
	}
}
