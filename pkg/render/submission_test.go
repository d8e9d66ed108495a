package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formrefs/pkg/fieldref"
	"github.com/goliatone/go-formrefs/pkg/render"
)

func TestHiddenFieldHelpers_DefaultNames(t *testing.T) {
	got := []render.HiddenField{
		render.CSRFToken("", "tok"),
		render.AuthToken("  ", "abc"),
		render.VersionField("", 7),
		render.CSRFToken("csrf_token", "tok"),
	}
	want := []render.HiddenField{
		{Name: render.DefaultCSRFField, Value: "tok"},
		{Name: render.DefaultAuthField, Value: "abc"},
		{Name: render.DefaultVersionField, Value: "7"},
		{Name: "csrf_token", Value: "tok"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHidden(t *testing.T) {
	got, err := render.ParseHidden(" next = /home?a=b")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(fieldref.Pair{Name: "next", Value: " /home?a=b"}, got.Pair()); diff != "" {
		t.Fatalf("pair mismatch (-want +got):\n%s", diff)
	}

	for _, raw := range []string{"novalue", "=x", ""} {
		if _, err := render.ParseHidden(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestMergeAndSortHiddenFields(t *testing.T) {
	merged := render.MergeHiddenFields(
		map[string]string{" redirect ": "/done", "": "ignored"},
		render.CSRFToken("", "tok"),
		render.VersionField("", 4),
		render.Hidden("redirect", "/override"),
		render.Hidden("  ", "skip"),
	)

	want := []render.HiddenField{
		{Name: "_csrf", Value: "tok"},
		{Name: "redirect", Value: "/override"},
		{Name: "version", Value: "4"},
	}
	if diff := cmp.Diff(want, render.SortedHiddenFields(merged)); diff != "" {
		t.Fatalf("sorted hidden fields mismatch (-want +got):\n%s", diff)
	}

	if render.MergeHiddenFields(nil) != nil {
		t.Fatalf("merging nothing should return nil")
	}
	if render.SortedHiddenFields(map[string]string{" ": "x"}) != nil {
		t.Fatalf("blank names only should return nil")
	}
}
