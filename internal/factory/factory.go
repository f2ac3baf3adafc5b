package factory

import (
	"fmt"

	"github.com/Ebiethub/AI-image-chat/internal/config"
	"github.com/Ebiethub/AI-image-chat/internal/ocr"
	"github.com/Ebiethub/AI-image-chat/internal/storage"
)

// SourceType represents different image source backends
type SourceType string

const (
	// HTTPSource for HTTP-based image fetching
	HTTPSource SourceType = "http"
	// AzureSource for Azure blob storage
	AzureSource SourceType = "azure"
)

// StorageFactory creates image source implementations from config
type StorageFactory interface {
	CreateFetcher() storage.ImageFetcher
	CreateBlobStorage() (storage.BlobStorage, error)
}

type storageFactory struct {
	cfg *config.Config
}

// NewStorageFactory creates a new storage factory
func NewStorageFactory(cfg *config.Config) StorageFactory {
	return &storageFactory{cfg: cfg}
}

// CreateFetcher builds the plain HTTP image fetcher.
func (f *storageFactory) CreateFetcher() storage.ImageFetcher {
	return storage.NewHTTPImageFetcher(f.cfg.MaxRequestBodySize)
}

// CreateBlobStorage builds the Azure blob source, or nil when the
// account is not configured.
func (f *storageFactory) CreateBlobStorage() (storage.BlobStorage, error) {
	if !f.cfg.AzureEnabled() {
		return nil, nil
	}
	blob, err := storage.NewAzureStorage(f.cfg.AzureAccountName, f.cfg.AzureAccountKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure storage: %w", err)
	}
	return blob, nil
}

// CreateTextExtractor builds the OCR extractor, or nil when OCR
// enrichment is disabled.
func CreateTextExtractor(cfg *config.Config) ocr.TextExtractor {
	if !cfg.OCREnabled {
		return nil
	}
	return ocr.NewTesseractExtractor(cfg.OCRLanguage)
}
