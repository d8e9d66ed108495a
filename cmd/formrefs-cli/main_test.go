package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formrefs/pkg/render"
)

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		explicit bool
		tpl      string
		want     render.Format
	}{
		{name: "default json", raw: "json", want: render.FormatJSON},
		{name: "template implies format", raw: "json", tpl: "{{ values }}", want: render.FormatTemplate},
		{name: "explicit uppercase json keeps json", raw: "JSON", explicit: true, tpl: "{{ values }}", want: render.FormatJSON},
		{name: "explicit form keeps form", raw: "form", explicit: true, tpl: "payload", want: render.FormatForm},
		{name: "explicit template", raw: "Template", explicit: true, tpl: "payload", want: render.FormatTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outputFormat(tt.raw, tt.explicit, tt.tpl)
			if err != nil {
				t.Fatalf("outputFormat: %v", err)
			}
			if got != tt.want {
				t.Fatalf("outputFormat = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := outputFormat("xml", true, ""); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestWellKnownFields(t *testing.T) {
	got := wellKnownFields("csrf_token", "tok", "", "3")
	want := []render.HiddenField{
		{Name: "csrf_token", Value: "tok"},
		{Name: render.DefaultVersionField, Value: "3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
	if wellKnownFields(render.DefaultCSRFField, "", "", "") != nil {
		t.Fatalf("no flags should yield no fields")
	}
}

func TestKeyValues(t *testing.T) {
	kv := keyValues{}
	for _, raw := range []string{"b=2", " a =x=y"} {
		if err := kv.Set(raw); err != nil {
			t.Fatalf("set %q: %v", raw, err)
		}
	}
	if diff := cmp.Diff(keyValues{"a": "x=y", "b": "2"}, kv); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if kv.String() != "a=x=y,b=2" {
		t.Fatalf("unexpected String() %q", kv.String())
	}
	if err := kv.Set("novalue"); err == nil {
		t.Fatalf("expected error without '='")
	}
}
