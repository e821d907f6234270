package interfaces

import "context"

// IPhotoStorage abstracts object storage for customer photos (MinIO/S3).
//
// Implementations must reject non-image content types and payloads over the
// 10MB cap before touching the backing store.
type IPhotoStorage interface {
	Upload(ctx context.Context, data []byte, contentType, filename string) (url string, err error)
}
