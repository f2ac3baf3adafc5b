package repository

import "errors"

var (
	// ErrNoImage indicates the submission carried neither an upload
	// nor an image URL
	ErrNoImage = errors.New("no image provided")

	// ErrUnsupportedImageType indicates the bytes are not JPEG or PNG
	ErrUnsupportedImageType = errors.New("unsupported image type (want JPEG or PNG)")

	// ErrInvalidImageURL indicates an invalid image URL
	ErrInvalidImageURL = errors.New("invalid image URL")
)
