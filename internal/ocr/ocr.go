// Package ocr provides optional text extraction from uploaded images.
// When enabled, the extracted text is appended to the analysis string
// before prompt composition so the language model can quote it.
package ocr

import (
	"strings"

	"github.com/arbovm/levenshtein"
	"github.com/otiai10/gosseract/v2"
)

// Result carries extracted text and, when the caller supplied expected
// text, a similarity score in [0, 1].
type Result struct {
	ExtractedText string   `json:"extracted_text"`
	ExpectedText  string   `json:"expected_text,omitempty"`
	MatchScore    *float64 `json:"match_score,omitempty"`
}

// TextExtractor extracts text from raw image bytes.
type TextExtractor interface {
	ExtractText(imageBytes []byte) (string, error)
}

// TesseractExtractor runs a local tesseract instance via gosseract.
type TesseractExtractor struct {
	language string
}

func NewTesseractExtractor(language string) *TesseractExtractor {
	if language == "" {
		language = "eng"
	}
	return &TesseractExtractor{language: language}
}

func (t *TesseractExtractor) ExtractText(imageBytes []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.language); err != nil {
		return "", err
	}
	if err := client.SetImageFromBytes(imageBytes); err != nil {
		return "", err
	}
	text, err := client.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// MatchScore scores extracted against expected text using normalized
// Levenshtein distance. 1 means identical, 0 means nothing in common.
// Comparison is case-insensitive and whitespace-normalized.
func MatchScore(extracted, expected string) float64 {
	a := normalize(extracted)
	b := normalize(expected)
	if a == "" && b == "" {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.Distance(a, b)
	score := 1 - float64(dist)/float64(longest)
	if score < 0 {
		return 0
	}
	return score
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
