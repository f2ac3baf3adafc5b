package tagging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Ebiethub/AI-image-chat/internal/logger"
	"github.com/sirupsen/logrus"
)

const maxResponseBytes = 1 << 20 // 1MB is plenty for a tag list

// Extractor sends image bytes to an image-analysis endpoint and
// returns whatever it says as a Result. It never returns a Go error:
// tagging is best-effort enrichment and must not abort a submission.
type Extractor interface {
	Extract(ctx context.Context, imageBytes []byte, model string) Result
}

// Client talks to a Hugging Face style inference API: POST of raw
// image bytes to baseURL+model with a bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:          10,
				MaxIdleConnsPerHost:   2,
				IdleConnTimeout:       30 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
			},
		},
	}
}

// Extract issues a single POST. No retries: a non-200 degrades to an
// empty tag list and a transport failure degrades to the error
// variant, both of which flow on through the pipeline.
func (c *Client) Extract(ctx context.Context, imageBytes []byte, model string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+model, bytes.NewReader(imageBytes))
	if err != nil {
		return ExtractionError(err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).WithField("model", model).Warn("Image tagging call failed")
		return ExtractionError(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.WithFields(logrus.Fields{
			"model":       model,
			"status_code": resp.StatusCode,
		}).Warn("Image tagging returned non-200, degrading to empty tags")
		return Empty()
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return ExtractionError(err.Error())
	}

	return decodeBody(body)
}

// decodeBody classifies a 200 response: a JSON list of {label, score}
// objects becomes the tag-list variant, everything else is kept as an
// opaque blob.
func decodeBody(body []byte) Result {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var tags []Tag
		if err := json.Unmarshal(body, &tags); err == nil {
			return Tags(tags, trimmed)
		}
	}
	return Blob(trimmed)
}
