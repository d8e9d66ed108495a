package render_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-formrefs/pkg/fieldref"
	"github.com/goliatone/go-formrefs/pkg/render"
	"github.com/goliatone/go-formrefs/pkg/render/template"
	"github.com/goliatone/go-formrefs/pkg/testsupport"
)

var samplePairs = fieldref.Pairs{
	{Name: "username", Value: "ada"},
	{Name: "bio", Value: "a & b"},
	{Name: "age", Value: ""},
}

func TestEncode(t *testing.T) {
	tests := []struct {
		format render.Format
		want   string
	}{
		{render.FormatJSON, `{"username":"ada","bio":"a & b","age":""}`},
		{render.FormatForm, "username=ada&bio=a+%26+b&age="},
		{render.FormatPretty, "username=ada\nbio=a & b\nage=\n"},
	}

	for _, tc := range tests {
		t.Run(string(tc.format), func(t *testing.T) {
			got, err := render.Encode(samplePairs, tc.format)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("encode mismatch\nwant: %q\n got: %q", tc.want, got)
			}
		})
	}
}

func TestEncode_JSONKeepsMarkupCharacters(t *testing.T) {
	pairs := fieldref.Pairs{{Name: "note", Value: `<b>"x"</b> & y`}}
	got, err := render.Encode(pairs, render.FormatJSON)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"note":"<b>\"x\"</b> & y"}`
	if string(got) != want {
		t.Fatalf("encode mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEncode_EmptyPayload(t *testing.T) {
	got, err := render.Encode(nil, render.FormatJSON)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(got) != "{}" {
		t.Fatalf("expected empty object, got %q", got)
	}
}

func TestEncodeWith_Template(t *testing.T) {
	got, err := render.EncodeWith(samplePairs, render.EncodeOptions{
		Format:   render.FormatTemplate,
		Template: `{% for p in pairs %}{{ p.name }}{% if not forloop.Last %},{% endif %}{% endfor %}|{{ values.username }}`,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(got) != "username,bio,age|ada" {
		t.Fatalf("unexpected template output %q", got)
	}
}

func TestEncodeWith_NamedTemplate(t *testing.T) {
	path := testsupport.WriteTempFile(t, "payload.tpl", []byte(`{{ site }}:{{ values.username }}`))
	engine, err := template.New(
		template.WithBaseDir(filepath.Dir(path)),
		template.WithGlobalData(map[string]any{"site": "docs"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := render.EncodeWith(samplePairs, render.EncodeOptions{
		Format:   render.FormatTemplate,
		Template: "payload",
		Engine:   engine,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(got) != "docs:ada" {
		t.Fatalf("unexpected template output %q", got)
	}
}

func TestEncodeWith_TemplateRequiresSource(t *testing.T) {
	if _, err := render.EncodeWith(samplePairs, render.EncodeOptions{Format: render.FormatTemplate}); err == nil {
		t.Fatalf("expected error without template source")
	}
}

func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]render.Format{
		"":         render.FormatJSON,
		" JSON ":   render.FormatJSON,
		"form":     render.FormatForm,
		"pretty":   render.FormatPretty,
		"Template": render.FormatTemplate,
	} {
		got, err := render.ParseFormat(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %q got %q", raw, want, got)
		}
	}
	if _, err := render.ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if render.FormatForm.ContentType() != "application/x-www-form-urlencoded" {
		t.Fatalf("unexpected form content type")
	}
}
