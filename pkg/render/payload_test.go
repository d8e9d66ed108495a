package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formrefs/pkg/controls"
	"github.com/goliatone/go-formrefs/pkg/fieldref"
	"github.com/goliatone/go-formrefs/pkg/render"
	"github.com/goliatone/go-formrefs/pkg/testsupport"
)

func mountLogin(t *testing.T) (*fieldref.Registry, *controls.Set) {
	t.Helper()

	form := testsupport.MustForm(t, testsupport.LoginForm, "login")
	reg := fieldref.New(form.Names()...)
	set, err := controls.Mount(reg, form)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	return reg, set
}

func TestBuildPayload_OrderAndHiddenFields(t *testing.T) {
	reg, set := mountLogin(t)
	if err := set.Fill(map[string]string{"password": "s3cret", "age": "major", "remember": "true"}); err != nil {
		t.Fatalf("fill: %v", err)
	}

	pairs, err := render.BuildPayload(reg, render.PayloadOptions{
		Hidden: render.MergeHiddenFields(nil,
			render.CSRFToken("_csrf", "tok"),
			render.Hidden("username", "spoofed"),
		),
	})
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}

	want := fieldref.Pairs{
		{Name: "username", Value: "ada"},
		{Name: "password", Value: "s3cret"},
		{Name: "age", Value: "major"},
		{Name: "plan", Value: "free"},
		{Name: "remember", Value: "true"},
		{Name: "_csrf", Value: "tok"},
	}
	if diff := cmp.Diff(want, pairs); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPayload_UnboundFieldFailsWhole(t *testing.T) {
	reg := fieldref.New("a", "b")
	reg.Bind("a")(controls.NewInput("a", controls.TypeText, "x"))

	pairs, err := render.BuildPayload(reg, render.PayloadOptions{Hidden: map[string]string{"_csrf": "tok"}})
	if pairs != nil {
		t.Fatalf("expected no partial payload, got %#v", pairs)
	}
	if !errors.Is(err, fieldref.ErrUnbound) {
		t.Fatalf("expected unbound error, got %v", err)
	}
	if key, _ := fieldref.UnboundKey(err); key != "b" {
		t.Fatalf("expected key b, got %q", key)
	}
}

func TestBuildPayload_Sanitizer(t *testing.T) {
	reg, set := mountLogin(t)
	if err := set.SetValue("username", `<b>ada</b> & "friends"<script>alert(1)</script>`); err != nil {
		t.Fatalf("set value: %v", err)
	}

	pairs, err := render.BuildPayload(reg, render.PayloadOptions{
		Sanitizer: render.StrictSanitizer(),
		Hidden:    map[string]string{"note": "<i>kept</i>"},
	})
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}

	if got, _ := pairs.Get("username"); got != `ada & "friends"` {
		t.Fatalf("unexpected sanitized value %q", got)
	}
	if got, _ := pairs.Get("note"); got != "<i>kept</i>" {
		t.Fatalf("hidden values must not be sanitized, got %q", got)
	}
}

func TestBuildPayload_NilRegistry(t *testing.T) {
	if _, err := render.BuildPayload(nil, render.PayloadOptions{}); err == nil {
		t.Fatalf("expected error for nil registry")
	}
}

func TestBuildPayload_FieldsOverrideHidden(t *testing.T) {
	reg, _ := mountLogin(t)

	pairs, err := render.BuildPayload(reg, render.PayloadOptions{
		Hidden: map[string]string{"_csrf": "stale", "redirect": "/home"},
		Fields: []render.HiddenField{render.CSRFToken("", "fresh"), render.VersionField("", 3)},
	})
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}

	want := fieldref.Pairs{
		{Name: "_csrf", Value: "fresh"},
		{Name: "redirect", Value: "/home"},
		{Name: "version", Value: "3"},
	}
	if diff := cmp.Diff(want, pairs[len(pairs)-3:]); diff != "" {
		t.Fatalf("hidden tail mismatch (-want +got):\n%s", diff)
	}
}
