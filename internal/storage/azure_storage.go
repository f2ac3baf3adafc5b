package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// BlobStorage retrieves raw image bytes from Azure blob storage.
type BlobStorage interface {
	GetImage(ctx context.Context, blobURL string) ([]byte, error)
}

type azureStorage struct {
	client *azblob.Client
}

func NewAzureStorage(accountName string, accountKey string) (BlobStorage, error) {
	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, err
	}

	client, err := azblob.NewClientWithSharedKeyCredential(
		fmt.Sprintf("https://%s.blob.core.windows.net", accountName),
		credential,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &azureStorage{client: client}, nil
}

// IsBlobURL reports whether a URL points at Azure blob storage.
func IsBlobURL(imageURL string) bool {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return false
	}
	return strings.HasSuffix(parsed.Host, ".blob.core.windows.net")
}

// GetImage downloads a blob addressed as /container/blobname.
func (s *azureStorage) GetImage(ctx context.Context, blobURL string) ([]byte, error) {
	parsedURL, err := url.Parse(blobURL)
	if err != nil {
		return nil, fmt.Errorf("invalid blob URL: %w", err)
	}

	parts := strings.SplitN(strings.TrimPrefix(parsedURL.Path, "/"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("blob URL must contain container and blob name: %s", parsedURL.Path)
	}
	containerName, blobName := parts[0], parts[1]

	downloadResponse, err := s.client.DownloadStream(ctx, containerName, blobName, nil)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}

	retryReader := downloadResponse.Body
	defer retryReader.Close()

	return io.ReadAll(retryReader)
}
