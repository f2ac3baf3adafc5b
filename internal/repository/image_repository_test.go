package repository

import (
	"context"
	"errors"
	"testing"
)

var (
	pngBytes  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}
)

type stubFetcher struct {
	data []byte
	err  error
	got  string
}

func (s *stubFetcher) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	s.got = imageURL
	return s.data, s.err
}

func TestResolveImage_Upload(t *testing.T) {
	repo := NewImageRepository(&stubFetcher{}, nil)

	data, err := repo.ResolveImage(context.Background(), pngBytes, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(data) != string(pngBytes) {
		t.Error("Expected upload bytes returned unchanged")
	}
}

func TestResolveImage_UploadWinsOverURL(t *testing.T) {
	fetcher := &stubFetcher{data: jpegBytes}
	repo := NewImageRepository(fetcher, nil)

	_, err := repo.ResolveImage(context.Background(), jpegBytes, "https://example.com/a.jpg")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fetcher.got != "" {
		t.Error("Fetcher must not be called when an upload is present")
	}
}

func TestResolveImage_FetchByURL(t *testing.T) {
	fetcher := &stubFetcher{data: jpegBytes}
	repo := NewImageRepository(fetcher, nil)

	data, err := repo.ResolveImage(context.Background(), nil, "https://example.com/a.jpg")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fetcher.got != "https://example.com/a.jpg" {
		t.Errorf("Fetcher got %q", fetcher.got)
	}
	if string(data) != string(jpegBytes) {
		t.Error("Expected fetched bytes returned")
	}
}

func TestResolveImage_InvalidURL(t *testing.T) {
	repo := NewImageRepository(&stubFetcher{}, nil)

	if _, err := repo.ResolveImage(context.Background(), nil, "ftp://example.com/a.jpg"); err == nil {
		t.Error("Expected validation error for disallowed scheme")
	}
}

func TestResolveImage_NoImage(t *testing.T) {
	repo := NewImageRepository(&stubFetcher{}, nil)

	_, err := repo.ResolveImage(context.Background(), nil, "")
	if !errors.Is(err, ErrNoImage) {
		t.Errorf("Expected ErrNoImage, got %v", err)
	}
}

func TestResolveImage_UnsupportedType(t *testing.T) {
	repo := NewImageRepository(&stubFetcher{}, nil)

	_, err := repo.ResolveImage(context.Background(), []byte("plain text, not an image"), "")
	if !errors.Is(err, ErrUnsupportedImageType) {
		t.Errorf("Expected ErrUnsupportedImageType, got %v", err)
	}
}
