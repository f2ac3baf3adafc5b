package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Ebiethub/AI-image-chat/internal/category"
	"github.com/Ebiethub/AI-image-chat/internal/config"
	apperrors "github.com/Ebiethub/AI-image-chat/internal/errors"
	"github.com/Ebiethub/AI-image-chat/internal/generation"
	"github.com/Ebiethub/AI-image-chat/internal/logger"
	"github.com/Ebiethub/AI-image-chat/internal/observer"
	"github.com/Ebiethub/AI-image-chat/internal/ocr"
	"github.com/Ebiethub/AI-image-chat/internal/prompt"
	"github.com/Ebiethub/AI-image-chat/internal/repository"
	"github.com/Ebiethub/AI-image-chat/internal/tagging"
	"github.com/Ebiethub/AI-image-chat/pkg/models"
)

// ErrIncompleteInput marks a submission missing its image or query.
// Callers treat it as a silent no-op, not as a reportable error.
var ErrIncompleteInput = errors.New("incomplete input: image and query are both required")

// AssistantService runs one submission through the full pipeline:
// validate, extract tags, compose the prompt, generate the answer,
// attach the disclaimer.
type AssistantService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisReport, error)
}

type assistantService struct {
	cfg       *config.Config
	images    repository.ImageRepository
	extractor tagging.Extractor
	generator generation.Generator
	texts     ocr.TextExtractor // nil when OCR enrichment is disabled
	events    observer.Subject
}

// NewAssistantService creates the orchestrator. texts may be nil.
func NewAssistantService(
	cfg *config.Config,
	images repository.ImageRepository,
	extractor tagging.Extractor,
	generator generation.Generator,
	texts ocr.TextExtractor,
	events observer.Subject,
) AssistantService {
	return &assistantService{
		cfg:       cfg,
		images:    images,
		extractor: extractor,
		generator: generator,
		texts:     texts,
		events:    events,
	}
}

func (s *assistantService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisReport, error) {
	start := time.Now()

	if !req.HasImage() || strings.TrimSpace(req.Query) == "" {
		return nil, ErrIncompleteInput
	}

	s.publish(ctx, observer.SubmissionEvent{
		EventType: observer.SubmissionStarted,
		Category:  string(req.Category),
	})

	imageBytes, err := s.images.ResolveImage(ctx, req.Image, req.ImageURL)
	if err != nil {
		if errors.Is(err, repository.ErrUnsupportedImageType) || errors.Is(err, repository.ErrNoImage) {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
		if _, ok := err.(*apperrors.AppError); ok {
			return nil, err
		}
		return nil, apperrors.NewNetworkError("failed to fetch image", err)
	}

	// Tagging is best-effort: Extract never fails outward, it degrades
	// to an empty tag list or an inline error string.
	tagCtx, cancel := context.WithTimeout(ctx, s.cfg.TaggingTimeout)
	result := s.extractor.Extract(tagCtx, imageBytes, s.cfg.TaggingModel(req.Category))
	cancel()

	if result.Kind() == tagging.KindError {
		s.publish(ctx, observer.SubmissionEvent{
			EventType:    observer.TaggingDegraded,
			Category:     string(req.Category),
			ErrorMessage: result.String(),
		})
	} else {
		s.publish(ctx, observer.SubmissionEvent{
			EventType: observer.TagsExtracted,
			Category:  string(req.Category),
			Success:   true,
			Metadata:  map[string]interface{}{"tag_count": len(result.Tags())},
		})
	}

	analysisText := collapseAnalysis(req.Category, result)

	ocrResult := s.enrichWithOCR(req, imageBytes)
	if ocrResult != nil && ocrResult.ExtractedText != "" {
		analysisText = strings.TrimSpace(analysisText + "\nExtracted text: " + ocrResult.ExtractedText)
	}

	promptText := prompt.Compose(req.Category, analysisText, req.Query)

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.GenerationTimeout)
	defer cancel()
	answer, err := s.generator.Generate(genCtx, promptText)
	if err != nil {
		s.publish(ctx, observer.SubmissionEvent{
			EventType:      observer.SubmissionFailed,
			Category:       string(req.Category),
			ErrorMessage:   err.Error(),
			ProcessingTime: time.Since(start),
		})
		return nil, apperrors.NewGenerationError("analysis failed", err)
	}

	elapsed := time.Since(start)
	s.publish(ctx, observer.SubmissionEvent{
		EventType:      observer.SubmissionCompleted,
		Category:       string(req.Category),
		Success:        true,
		ProcessingTime: elapsed,
	})

	return &models.AnalysisReport{
		Category:          req.Category,
		Query:             req.Query,
		Result:            answer,
		Disclaimer:        req.Category.Disclaimer(),
		OCR:               ocrResult,
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		ProcessingTimeSec: elapsed.Seconds(),
	}, nil
}

// collapseAnalysis turns a tagging result into the single analysis
// string a template consumes. Medical tag lists become a comma-joined
// label string; every other variant is stringified as-is, including
// the inline "Analysis error" text.
func collapseAnalysis(cat category.Category, result tagging.Result) string {
	if cat == category.Medical && result.Kind() == tagging.KindTags {
		return strings.Join(result.Labels(), ", ")
	}
	return result.String()
}

// enrichWithOCR runs optional text extraction. OCR failures are logged
// and swallowed: like tagging, enrichment never aborts a submission.
func (s *assistantService) enrichWithOCR(req models.AnalysisRequest, imageBytes []byte) *ocr.Result {
	if !req.OCR || s.texts == nil {
		return nil
	}

	text, err := s.texts.ExtractText(imageBytes)
	if err != nil {
		logger.WithError(err).Warn("OCR enrichment failed, continuing without it")
		return nil
	}

	result := &ocr.Result{ExtractedText: text}
	if req.ExpectedText != "" {
		score := ocr.MatchScore(text, req.ExpectedText)
		result.ExpectedText = req.ExpectedText
		result.MatchScore = &score
	}
	return result
}

func (s *assistantService) publish(ctx context.Context, event observer.SubmissionEvent) {
	if s.events == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	s.events.NotifyObservers(ctx, event)
}
