package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	formrefs "github.com/goliatone/go-formrefs"
	"github.com/goliatone/go-formrefs/pkg/fieldref"
	pkgopenapi "github.com/goliatone/go-formrefs/pkg/openapi"
	"github.com/goliatone/go-formrefs/pkg/orchestrator"
	"github.com/goliatone/go-formrefs/pkg/render"
	"github.com/goliatone/go-formrefs/pkg/render/template"
	"github.com/goliatone/go-formrefs/pkg/renderers/static"
	"github.com/goliatone/go-formrefs/pkg/renderers/tui"
	"github.com/goliatone/go-formrefs/pkg/uischema"
)

// keyValues collects repeated name=value flags.
type keyValues map[string]string

func (kv keyValues) String() string {
	keys := make([]string, 0, len(kv))
	for key := range kv {
		keys = append(keys, key+"="+kv[key])
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

func (kv keyValues) Set(raw string) error {
	field, err := render.ParseHidden(raw)
	if err != nil {
		return err
	}
	kv[field.Name] = field.Value
	return nil
}

func main() {
	config := flag.String("config", "", "form declaration file (YAML or JSON)")
	formID := flag.String("form", "", "declared form id to render")
	source := flag.String("source", "", "OpenAPI document path or URL")
	opID := flag.String("operation", "", "OpenAPI operation id to render")
	renderer := flag.String("renderer", tui.Name, "renderer to use (tui or static)")
	format := flag.String("format", "json", "output format: json, form, pretty or template")
	tpl := flag.String("template", "", "inline pongo2 template, or a template name with -template-dir")
	tplDir := flag.String("template-dir", "", "directory holding named .tpl templates")
	sanitize := flag.Bool("sanitize", false, "strip HTML from collected values")
	verbose := flag.Bool("verbose", false, "log field binding activity")
	output := flag.String("output", "", "output file (stdout if empty)")
	csrf := flag.String("csrf", "", "append an anti-forgery token as a hidden field")
	csrfField := flag.String("csrf-field", render.DefaultCSRFField, "hidden field name for -csrf")
	authToken := flag.String("auth-token", "", "append an auth token as a hidden field")
	version := flag.String("version", "", "append a version for optimistic locking as a hidden field")
	values := keyValues{}
	hidden := keyValues{}
	tplVars := keyValues{}
	flag.Var(values, "set", "prefill a field as name=value (repeatable)")
	flag.Var(hidden, "hidden", "append a hidden field as name=value (repeatable)")
	flag.Var(tplVars, "template-var", "expose name=value to templates (repeatable)")
	flag.Parse()

	formatSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "format" {
			formatSet = true
		}
	})
	outFormat, err := outputFormat(*format, formatSet, *tpl)
	if err != nil {
		log.Fatalf("invalid format: %v", err)
	}

	var sanitizer render.Sanitizer
	if *sanitize {
		sanitizer = render.StrictSanitizer()
	}

	var observer fieldref.Observer
	if *verbose {
		observer = fieldref.ObserverFuncs{
			OnBound: func(name string, kind fieldref.Kind) {
				log.Printf("bound %s (%s)", name, kind)
			},
			OnIgnored: func(name string, reason fieldref.IgnoreReason) {
				log.Printf("ignored binding for %s: %s", name, reason)
			},
		}
	}

	engine, err := newTemplateEngine(*tplDir, tplVars)
	if err != nil {
		log.Fatalf("Failed to create template engine: %v", err)
	}

	tuiRenderer, err := tui.New(
		tui.WithOutputFormat(outFormat),
		tui.WithTemplate(*tpl),
		tui.WithTemplateEngine(engine),
		tui.WithSanitizer(sanitizer),
		tui.WithObserver(observer),
		tui.WithTheme(tui.Theme{ErrorPrefix: "! "}),
	)
	if err != nil {
		log.Fatalf("Failed to create tui renderer: %v", err)
	}

	registry := render.NewRegistry()
	registry.MustRegister(tuiRenderer)
	registry.MustRegister(static.New(
		static.WithOutputFormat(outFormat),
		static.WithTemplate(*tpl),
		static.WithTemplateEngine(engine),
		static.WithSanitizer(sanitizer),
		static.WithObserver(observer),
	))

	options := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithLoader(newLoader()),
	}
	if *config != "" {
		store, err := uischema.LoadFile(*config)
		if err != nil {
			log.Fatalf("Failed to load forms: %v", err)
		}
		options = append(options, orchestrator.WithForms(store))
	}

	req := orchestrator.Request{
		FormID:      *formID,
		OperationID: *opID,
		Renderer:    *renderer,
		RenderOptions: render.RenderOptions{
			Values:       values,
			Hidden:       hidden,
			HiddenFields: wellKnownFields(*csrfField, *csrf, *authToken, *version),
		},
	}
	if *formID == "" {
		src, err := pkgopenapi.ParseSource(*source)
		if err != nil {
			log.Fatalf("invalid source: %v", err)
		}
		req.Source = src
	}

	ctx := context.Background()
	payload, err := orchestrator.New(options...).Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Payload written to %s\n", *output)
		return
	}
	fmt.Println(string(payload))
}

// outputFormat picks the payload format. A template without an explicit
// -format selects the template format.
func outputFormat(raw string, explicit bool, tpl string) (render.Format, error) {
	format, err := render.ParseFormat(raw)
	if err != nil {
		return "", err
	}
	if tpl != "" && !explicit {
		return render.FormatTemplate, nil
	}
	return format, nil
}

func newTemplateEngine(dir string, vars keyValues) (*template.Engine, error) {
	globals := make(map[string]any, len(vars))
	for name, value := range vars {
		globals[name] = value
	}
	return template.New(template.WithBaseDir(dir), template.WithGlobalData(globals))
}

func wellKnownFields(csrfField, csrf, authToken, version string) []render.HiddenField {
	var fields []render.HiddenField
	if csrf != "" {
		fields = append(fields, render.CSRFToken(csrfField, csrf))
	}
	if authToken != "" {
		fields = append(fields, render.AuthToken("", authToken))
	}
	if version != "" {
		fields = append(fields, render.VersionField("", version))
	}
	return fields
}

func newLoader() pkgopenapi.Loader {
	return formrefs.NewLoader(pkgopenapi.WithHTTPFallback(15 * time.Second))
}
