package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	pkgmodel "github.com/goliatone/go-formrefs/pkg/model"
	pkgopenapi "github.com/goliatone/go-formrefs/pkg/openapi"
	"github.com/goliatone/go-formrefs/pkg/uischema"
)

// LoginForm is a small declaration exercising single, grouped, select and
// checkbox controls.
const LoginForm = `
forms:
  login:
    label: Sign in
    fields:
      - name: username
        label: Username
        default: ada
      - name: password
        secret: true
      - name: age
        control: radio
        options: [minor, major]
      - name: plan
        control: select
        default: free
        options: [free, pro]
      - name: remember
        control: checkbox
`

// MustParseForms parses an inline declaration document.
func MustParseForms(t *testing.T, doc string) *uischema.Store {
	t.Helper()

	store, err := uischema.Parse([]byte(doc), "inline.yaml")
	if err != nil {
		t.Fatalf("parse forms: %v", err)
	}
	return store
}

// MustForm returns the declared form id from an inline document.
func MustForm(t *testing.T, doc, id string) pkgmodel.FormModel {
	t.Helper()

	form, ok := MustParseForms(t, doc).Form(id)
	if !ok {
		t.Fatalf("form %q not declared", id)
	}
	return form
}

// WriteTempFile writes data under a fresh temporary directory and returns the
// file path.
func WriteTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// MustDocument wraps raw bytes in a Document backed by a file source.
func MustDocument(t *testing.T, location string, raw []byte) pkgopenapi.Document {
	t.Helper()

	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(location), raw)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}
