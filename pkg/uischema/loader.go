package uischema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML declaration
// files. When fsys is nil or no declaration files are present, the returned
// store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]Form)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// LoadFile parses a single declaration file.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("uischema: read %s: %w", path, err)
	}
	return Parse(data, filepath.Base(path))
}

// Parse builds a store from one document. source names the document in
// error messages.
func Parse(data []byte, source string) (*Store, error) {
	store := &Store{forms: make(map[string]Form)}
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	for rawID, raw := range doc.Forms {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return fmt.Errorf("uischema: file %s defines an empty form id", source)
		}
		if _, exists := s.forms[id]; exists {
			return fmt.Errorf("uischema: duplicate form %q (file %s)", id, source)
		}
		if problems := validateForm(raw); len(problems) > 0 {
			return fmt.Errorf("uischema: form %q (file %s): %s", id, source, problems[0])
		}
		s.forms[id] = normaliseForm(raw, id, source)
	}
	return nil
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Label    string        `json:"label" yaml:"label"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Method   string        `json:"method" yaml:"method"`
	Order    []string      `json:"order" yaml:"order"`
	Fields   []FieldConfig `json:"fields" yaml:"fields"`
}

var errEmptyDocument = errors.New("document is empty")

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s: %w", source, errEmptyDocument)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}

func normaliseForm(raw formFile, id, source string) Form {
	form := Form{
		ID:       id,
		Source:   source,
		Label:    strings.TrimSpace(raw.Label),
		Endpoint: strings.TrimSpace(raw.Endpoint),
		Method:   strings.ToUpper(strings.TrimSpace(raw.Method)),
		Fields:   make([]FieldConfig, 0, len(raw.Fields)),
	}
	for _, name := range raw.Order {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			form.Order = append(form.Order, trimmed)
		}
	}
	for _, cfg := range raw.Fields {
		cfg.Name = strings.TrimSpace(cfg.Name)
		cfg.Control = strings.ToLower(strings.TrimSpace(cfg.Control))
		cfg.Options = append([]OptionConfig(nil), cfg.Options...)
		cfg.Metadata = cloneStringMap(cfg.Metadata)
		form.Fields = append(form.Fields, cfg)
	}
	return form
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
