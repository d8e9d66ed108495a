package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

const defaultExtension = ".tpl"

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir string
	globals map[string]any
}

// WithBaseDir loads named templates from dir. Names without an extension get
// ".tpl" appended.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithGlobalData exposes data to every template alongside the payload.
// Payload keys win on collisions.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		for key, value := range data {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			if cfg.globals == nil {
				cfg.globals = make(map[string]any, len(data))
			}
			cfg.globals[key] = value
		}
	}
}

// Engine renders payload templates with pongo2.
type Engine struct {
	set   *pongo2.TemplateSet
	named bool

	mu    sync.Mutex
	cache map[string]*pongo2.Template
}

var _ TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. Without WithBaseDir it renders inline templates
// only.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	var (
		loader pongo2.TemplateLoader
		err    error
	)
	if cfg.baseDir != "" {
		loader, err = pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("template: create loader for %s: %w", cfg.baseDir, err)
		}
	} else {
		loader = pongo2.MustNewLocalFileSystemLoader("")
	}

	set := pongo2.NewSet("formrefs", loader)
	if len(cfg.globals) > 0 {
		globals, err := toContext(cfg.globals)
		if err != nil {
			return nil, fmt.Errorf("template: global data: %w", err)
		}
		if set.Globals == nil {
			set.Globals = pongo2.Context{}
		}
		set.Globals.Update(globals)
	}
	registerFilters()

	return &Engine{
		set:   set,
		named: cfg.baseDir != "",
		cache: make(map[string]*pongo2.Template),
	}, nil
}

// Render implements TemplateRenderer. Sources containing "{{" or "{%" are
// parsed inline; anything else is loaded by name when a base directory is
// configured.
func (e *Engine) Render(source string, data any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("template: engine is nil")
	}
	if e.named && !isInline(source) {
		return e.RenderTemplate(source, data)
	}
	return e.RenderString(source, data)
}

// RenderTemplate renders the named template from the base directory.
func (e *Engine) RenderTemplate(name string, data any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("template: engine is nil")
	}
	if !e.named {
		return "", fmt.Errorf("template: no template directory configured for %q", name)
	}
	path := strings.TrimSpace(name)
	if filepath.Ext(path) == "" {
		path += defaultExtension
	}

	tmpl, err := e.load(path)
	if err != nil {
		return "", err
	}
	return execute(tmpl, data, fmt.Sprintf("template %q", path))
}

// RenderString renders inline template content.
func (e *Engine) RenderString(content string, data any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("template: engine is nil")
	}
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("template: parse template string: %w", err)
	}
	return execute(tmpl, data, "template string")
}

func (e *Engine) load(path string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("template: load %q: %w", path, err)
	}
	e.cache[path] = tmpl
	return tmpl, nil
}

func execute(tmpl *pongo2.Template, data any, label string) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("template: convert data: %w", err)
	}
	out, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("template: execute %s: %w", label, err)
	}
	return out, nil
}

// toContext round-trips data through JSON so templates address struct
// fields by their JSON names (a fieldref.Pair is {{ p.name }}).
func toContext(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	out := pongo2.Context{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("data must encode to a JSON object: %w", err)
	}
	return out, nil
}

func isInline(source string) bool {
	return strings.Contains(source, "{{") || strings.Contains(source, "{%")
}

func registerFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}
