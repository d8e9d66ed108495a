package uischema_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	pkgmodel "github.com/goliatone/go-formrefs/pkg/model"
	"github.com/goliatone/go-formrefs/pkg/uischema"
)

const loginYAML = `
forms:
  login:
    label: Sign in
    endpoint: /session
    method: post
    fields:
      - name: username
        label: Username
      - name: password
        secret: true
      - name: age
        control: radio
        options: [minor, major]
      - name: plan
        control: select
        default: pro
        options:
          - value: free
            label: Free
          - value: pro
            label: Pro
          - value: legacy
            disabled: true
`

const signupJSON = `{
  "forms": {
    "signup": {
      "label": "Create account",
      "fields": [
        {"name": "email", "control": "email"},
        {"name": "terms", "control": "checkbox"}
      ]
    }
  }
}`

func TestLoadFS_YAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/login.yaml":  {Data: []byte(loginYAML)},
		"forms/signup.json": {Data: []byte(signupJSON)},
		"forms/README.md":   {Data: []byte("ignored")},
	}

	store, err := uischema.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"login", "signup"}, store.Forms()); diff != "" {
		t.Fatalf("forms mismatch (-want +got):\n%s", diff)
	}

	form, ok := store.Form("login")
	if !ok {
		t.Fatalf("login form missing")
	}
	if diff := cmp.Diff([]string{"username", "password", "age", "plan"}, form.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if form.Method != "POST" {
		t.Fatalf("expected method to be upper-cased, got %q", form.Method)
	}

	want := []pkgmodel.ControlKind{
		pkgmodel.ControlText,
		pkgmodel.ControlPassword,
		pkgmodel.ControlRadio,
		pkgmodel.ControlSelect,
	}
	got := make([]pkgmodel.ControlKind, 0, len(form.Fields))
	for _, field := range form.Fields {
		got = append(got, field.Control)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("controls mismatch (-want +got):\n%s", diff)
	}

	age, _ := form.Field("age")
	if diff := cmp.Diff([]string{"minor", "major"}, age.OptionValues()); diff != "" {
		t.Fatalf("radio options mismatch (-want +got):\n%s", diff)
	}

	plan, _ := form.Field("plan")
	wantOptions := []pkgmodel.Option{
		{Value: "free", Label: "Free"},
		{Value: "pro", Label: "Pro"},
		{Value: "legacy", Disabled: true},
	}
	if diff := cmp.Diff(wantOptions, plan.Options); diff != "" {
		t.Fatalf("select options mismatch (-want +got):\n%s", diff)
	}
	if plan.Default != "pro" {
		t.Fatalf("expected default pro, got %q", plan.Default)
	}

	signup, _ := store.Form("signup")
	terms, _ := signup.Field("terms")
	if terms.Type != pkgmodel.FieldTypeBoolean {
		t.Fatalf("expected checkbox to be boolean, got %q", terms.Type)
	}
}

func TestLoadFS_NilFilesystem(t *testing.T) {
	store, err := uischema.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forms.yaml")
	if err := os.WriteFile(path, []byte(loginYAML), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	store, err := uischema.LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg, ok := store.Config("login")
	if !ok {
		t.Fatalf("login config missing")
	}
	if cfg.Source != "forms.yaml" {
		t.Fatalf("expected source forms.yaml, got %q", cfg.Source)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "empty document",
			doc:  "   \n",
			want: "document is empty",
		},
		{
			name: "duplicate field",
			doc: `forms:
  f:
    fields:
      - name: a
      - name: a`,
			want: `duplicate field "a"`,
		},
		{
			name: "empty field name",
			doc: `forms:
  f:
    fields:
      - name: " "`,
			want: "empty name",
		},
		{
			name: "unknown control",
			doc: `forms:
  f:
    fields:
      - name: age
        control: slider`,
			want: `unknown control "slider"`,
		},
		{
			name: "invalid syntax",
			doc:  "forms: [",
			want: "invalid JSON or YAML",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uischema.Parse([]byte(tc.doc), "inline.yaml")
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadFS_DuplicateFormAcrossFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte(loginYAML)},
		"b.yaml": {Data: []byte(loginYAML)},
	}
	_, err := uischema.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), `duplicate form "login"`) {
		t.Fatalf("expected duplicate form error, got %v", err)
	}
}

func TestLint_CollectsEveryViolation(t *testing.T) {
	doc := `forms:
  a:
    order: [missing]
    fields:
      - name: x
      - name: x
      - name: y
        control: select
  b:
    fields: []
`
	got := uischema.Lint([]byte(doc), "lint.yaml")
	want := []uischema.Violation{
		{Form: "a", Message: `duplicate field "x"`},
		{Form: "a", Message: `order references undeclared field "missing"`},
		{Form: "b", Message: "declares no fields"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}

	if got := uischema.Lint([]byte(loginYAML), "login.yaml"); len(got) != 0 {
		t.Fatalf("expected clean document, got %#v", got)
	}
}

func TestStore_ResolveRequiresOptions(t *testing.T) {
	store, err := uischema.Parse([]byte(`forms:
  survey:
    fields:
      - name: age
        control: radio
`), "survey.yaml")
	if err != nil {
		t.Fatalf("option-less radio must parse for overlays: %v", err)
	}

	_, err = store.Resolve("survey")
	if err == nil || !strings.Contains(err.Error(), `radio field "age" declares no options`) {
		t.Fatalf("expected missing options error, got %v", err)
	}

	if _, err := store.Resolve("missing"); err == nil || !strings.Contains(err.Error(), "not declared") {
		t.Fatalf("expected not declared error, got %v", err)
	}

	full, err := uischema.Parse([]byte(loginYAML), "login.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	form, err := full.Resolve("login")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff([]string{"username", "password", "age", "plan"}, form.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}
