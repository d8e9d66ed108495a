package formrefs

import (
	"context"

	pkgopenapi "github.com/goliatone/go-formrefs/pkg/openapi"
	"github.com/goliatone/go-formrefs/pkg/orchestrator"
	"github.com/goliatone/go-formrefs/pkg/render"
)

// RenderOptions carries prefilled values, hidden fields and output format
// overrides for a render call.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Submit loads the OpenAPI source, builds the form for operationID, and
// renders its payload with the named renderer (the non-interactive static
// renderer when empty).
func Submit(ctx context.Context, source pkgopenapi.Source, operationID, rendererName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:        source,
		OperationID:   operationID,
		Renderer:      rendererName,
		RenderOptions: opts,
	})
}

// SubmitDeclared renders the payload of a declared form.
func SubmitDeclared(ctx context.Context, formID, rendererName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		FormID:        formID,
		Renderer:      rendererName,
		RenderOptions: opts,
	})
}
