package render

import (
	"context"

	"github.com/goliatone/go-formrefs/pkg/model"
)

// Renderer hosts a form: it mounts controls for the model, collects input,
// and returns the serialized submission payload.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
