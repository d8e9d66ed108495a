package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	formrefs "github.com/goliatone/go-formrefs"
	internalmodel "github.com/goliatone/go-formrefs/internal/model"
	pkgopenapi "github.com/goliatone/go-formrefs/pkg/openapi"
	"github.com/goliatone/go-formrefs/pkg/uischema"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint form declarations and the x-formgen extensions of OpenAPI documents.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	parser := formrefs.NewParser(
		pkgopenapi.WithPartialDocuments(true),
		pkgopenapi.WithReferenceResolution(false),
	)

	var violations []violation
	for _, path := range paths {
		linted, err := lintFile(ctx, parser, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func lintFile(ctx context.Context, parser pkgopenapi.Parser, path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	if isOpenAPI(raw) {
		return lintOpenAPI(ctx, parser, path, raw)
	}

	var result []violation
	for _, v := range uischema.Lint(raw, path) {
		location := "document"
		if v.Form != "" {
			location = "form " + v.Form
		}
		result = append(result, violation{file: path, location: location, message: v.Message})
	}
	return result, nil
}

func lintOpenAPI(ctx context.Context, parser pkgopenapi.Parser, path string, raw []byte) ([]violation, error) {
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), raw)
	if err != nil {
		return nil, fmt.Errorf("construct document: %w", err)
	}

	operations, err := parser.Operations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("parse operations: %w", err)
	}

	var result []violation
	for id, op := range operations {
		base := []string{"operation", id}
		result = append(result, lintExtensions(path, base, op.Extensions)...)
		result = append(result, lintSchema(path, append(base, "requestBody"), op.RequestBody)...)
	}
	return result, nil
}

func lintSchema(file string, path []string, schema pkgopenapi.Schema) []violation {
	result := lintExtensions(file, path, schema.Extensions)

	if len(schema.Properties) > 0 {
		keys := make([]string, 0, len(schema.Properties))
		for key := range schema.Properties {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			next := appendPath(path, "properties."+key)
			result = append(result, lintSchema(file, next, schema.Properties[key])...)
		}
	}

	if schema.Items != nil {
		result = append(result, lintSchema(file, appendPath(path, "items"), *schema.Items)...)
	}

	return result
}

func lintExtensions(file string, path []string, extensions map[string]any) []violation {
	var result []violation
	for _, message := range internalmodel.LintExtensions(extensions) {
		result = append(result, violation{
			file:     file,
			location: formatLocation(path),
			message:  message,
		})
	}
	return result
}

// isOpenAPI sniffs for the top-level openapi version key in JSON or YAML.
func isOpenAPI(raw []byte) bool {
	for _, line := range strings.Split(string(raw), "\n") {
		trimmed := strings.TrimPrefix(strings.TrimSpace(line), "{")
		if strings.HasPrefix(trimmed, `"openapi"`) || strings.HasPrefix(trimmed, "openapi:") {
			return true
		}
	}
	return false
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	next = append(next, segment)
	return next
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
