package models

import (
	"github.com/Ebiethub/AI-image-chat/internal/category"
	"github.com/Ebiethub/AI-image-chat/internal/ocr"
)

// AnalysisRequest is one user submission: image bytes (from a
// multipart upload) or an image URL, plus the category and question.
type AnalysisRequest struct {
	Image        []byte
	ImageURL     string
	Category     category.Category
	Query        string
	OCR          bool
	ExpectedText string
}

// HasImage reports whether the submission carries an image at all.
func (r *AnalysisRequest) HasImage() bool {
	return len(r.Image) > 0 || r.ImageURL != ""
}

// AnalysisReport is the terminal artifact of a submission: the
// generated answer plus the category's disclaimer (empty for general).
type AnalysisReport struct {
	Category          category.Category `json:"category"`
	Query             string            `json:"query"`
	Result            string            `json:"result"`
	Disclaimer        string            `json:"disclaimer,omitempty"`
	OCR               *ocr.Result       `json:"ocr,omitempty"`
	Timestamp         string            `json:"timestamp"`
	ProcessingTimeSec float64           `json:"processing_time_sec"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// CategoryInfo describes one analysis category for the guide endpoint.
type CategoryInfo struct {
	Name       string `json:"name"`
	Guide      string `json:"guide"`
	Disclaimer string `json:"disclaimer,omitempty"`
}

// CategoriesResponse is the category guide plus usage steps, the API
// rendering of the original sidebar help text.
type CategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
	HowItWorks []string       `json:"how_it_works"`
}
