package interfaces

import (
	"context"

	"offertehub/internal/domain/entities"
)

// IPreviewGenerator abstracts the external AI image-generation service that
// renders a visual preview of the project onto a customer photo.
//
// Best-effort: when generation fails the caller falls back to the original
// photo URL with a "preview unavailable" annotation; a generation failure must
// never fail the overall submission.
type IPreviewGenerator interface {
	GeneratePreview(ctx context.Context, photoURL string, req entities.QuoteRequest) (previewURL string, err error)
}
