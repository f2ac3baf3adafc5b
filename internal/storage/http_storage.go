package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ImageFetcher retrieves raw image bytes from a URL. The tagging
// endpoint consumes the original encoded bytes, so nothing is decoded
// here beyond a size cap.
type ImageFetcher interface {
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

// HTTPImageFetcher implements ImageFetcher over plain HTTP(S).
type HTTPImageFetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewHTTPImageFetcher creates an HTTP image fetcher. maxBytes caps the
// downloaded size; <= 0 means 10MB.
func NewHTTPImageFetcher(maxBytes int64) *HTTPImageFetcher {
	if maxBytes <= 0 {
		maxBytes = 10 * 1024 * 1024
	}

	transport := &http.Transport{
		// Connection pooling sized for single image downloads
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     30 * time.Second,

		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,

		MaxResponseHeaderBytes: 4096,
	}

	return &HTTPImageFetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("too many redirects (limit: 3)")
				}
				return nil
			},
		},
		maxBytes: maxBytes,
	}
}

// FetchImage downloads the image, retrying up to 3 times on transport
// errors and 5xx responses. 4xx responses fail immediately.
func (h *HTTPImageFetcher) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("Accept", "image/jpeg, image/png, */*")
	req.Header.Set("User-Agent", "AI-Image-Chat/1.0")

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		resp, err := h.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusOK {
			data, err := io.ReadAll(io.LimitReader(resp.Body, h.maxBytes+1))
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("failed to read image body: %w", err)
			}
			if int64(len(data)) > h.maxBytes {
				return nil, fmt.Errorf("image exceeds size limit of %d bytes", h.maxBytes)
			}
			return data, nil
		}

		resp.Body.Close()
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			// Client errors are non-retryable
			return nil, fmt.Errorf("client error: status code %d", resp.StatusCode)
		}
		lastErr = fmt.Errorf("server error: status code %d", resp.StatusCode)
	}

	return nil, fmt.Errorf("failed to fetch image after 3 attempts: %w", lastErr)
}
