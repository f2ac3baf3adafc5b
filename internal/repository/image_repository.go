package repository

import (
	"context"
	"net/http"

	"github.com/Ebiethub/AI-image-chat/internal/storage"
	"github.com/Ebiethub/AI-image-chat/pkg/validation"
)

// imageRepository resolves image bytes from uploads, plain HTTP URLs
// or Azure blob URLs. The blob client is optional.
type imageRepository struct {
	fetcher   storage.ImageFetcher
	blob      storage.BlobStorage
	validator *validation.URLValidator
}

// NewImageRepository creates an image repository. blob may be nil when
// Azure storage is not configured.
func NewImageRepository(fetcher storage.ImageFetcher, blob storage.BlobStorage) ImageRepository {
	return &imageRepository{
		fetcher:   fetcher,
		blob:      blob,
		validator: validation.NewURLValidator(),
	}
}

func (r *imageRepository) ResolveImage(ctx context.Context, upload []byte, imageURL string) ([]byte, error) {
	var data []byte
	switch {
	case len(upload) > 0:
		data = upload
	case imageURL != "":
		if err := r.ValidateImageURL(imageURL); err != nil {
			return nil, err
		}
		var err error
		if r.blob != nil && storage.IsBlobURL(imageURL) {
			data, err = r.blob.GetImage(ctx, imageURL)
		} else {
			data, err = r.fetcher.FetchImage(ctx, imageURL)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrNoImage
	}

	if !isSupportedImage(data) {
		return nil, ErrUnsupportedImageType
	}
	return data, nil
}

func (r *imageRepository) ValidateImageURL(imageURL string) error {
	return r.validator.ValidateImageURL(imageURL)
}

// isSupportedImage sniffs the content type; only JPEG and PNG uploads
// are accepted.
func isSupportedImage(data []byte) bool {
	switch http.DetectContentType(data) {
	case "image/jpeg", "image/png":
		return true
	default:
		return false
	}
}
