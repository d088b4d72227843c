package storage

import "context"

// ImageArchive defines the interface for archiving analyzed food photos in
// object storage. Archiving is best-effort: a failed put is logged by the
// caller and never fails the request that produced the image.
type ImageArchive interface {
	// Archive stores the image bytes under objectKey with the given content
	// type.
	Archive(ctx context.Context, objectKey, contentType string, data []byte) error

	// Delete removes an archived object.
	Delete(ctx context.Context, objectKey string) error
}
