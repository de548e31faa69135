package render

import (
	"context"

	"github.com/whatsx/formkit/pkg/model"
)

// Renderer converts a Form into an exportable byte representation: the popup
// fragment, the standalone chat widget document, or whatever a custom
// implementation produces.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.Form, options RenderOptions) ([]byte, error)
}
