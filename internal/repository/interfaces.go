package repository

import "context"

// ImageRepository acquires the raw bytes of the image a submission
// refers to, whether uploaded directly or referenced by URL.
type ImageRepository interface {
	// ResolveImage returns the image bytes for a submission. Exactly
	// one of upload and imageURL is expected to be set; upload wins
	// when both are.
	ResolveImage(ctx context.Context, upload []byte, imageURL string) ([]byte, error)

	// ValidateImageURL validates if the provided URL is acceptable
	ValidateImageURL(imageURL string) error
}
