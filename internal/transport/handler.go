package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Ebiethub/AI-image-chat/internal/category"
	"github.com/Ebiethub/AI-image-chat/internal/config"
	apperrors "github.com/Ebiethub/AI-image-chat/internal/errors"
	"github.com/Ebiethub/AI-image-chat/internal/logger"
	"github.com/Ebiethub/AI-image-chat/internal/observer"
	"github.com/Ebiethub/AI-image-chat/internal/service"
	"github.com/Ebiethub/AI-image-chat/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewHandler wires the HTTP routes: health, the category guide and the
// analysis endpoint itself.
func NewHandler(assistant service.AssistantService, metrics *observer.MetricsObserver, cfg *config.Config) http.Handler {
	r := gin.Default()

	// Add middleware
	r.Use(
		requestSizeLimiter(cfg.MaxRequestBodySize),
		errorHandler(),
	)

	// Configure routes
	r.GET("/health", healthCheck(metrics))
	r.GET("/categories", listCategories)
	r.POST("/analyze", analyzeImage(assistant, cfg))

	return r
}

// analyzeImage accepts a multipart form: an "image" file or an
// "image_url" field, a "category", a "query" and optional "ocr" /
// "expected_text" fields.
func analyzeImage(assistant service.AssistantService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"user_agent": c.Request.UserAgent(),
			"ip":         c.ClientIP(),
		}).Info("Processing analysis request")

		cat, err := category.Parse(c.PostForm("category"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid category", err)
			return
		}

		req := models.AnalysisRequest{
			Category:     cat,
			Query:        c.PostForm("query"),
			ImageURL:     c.PostForm("image_url"),
			OCR:          c.PostForm("ocr") == "true",
			ExpectedText: c.PostForm("expected_text"),
		}

		if fileHeader, err := c.FormFile("image"); err == nil {
			data, err := readUpload(fileHeader)
			if err != nil {
				respondError(c, http.StatusBadRequest, "failed to read uploaded image", err)
				return
			}
			req.Image = data
		}

		report, err := assistant.Analyze(ctx, req)
		if err != nil {
			// An incomplete submission is dropped without an error,
			// mirroring the no-op behavior of the original form.
			if errors.Is(err, service.ErrIncompleteInput) {
				c.Status(http.StatusNoContent)
				return
			}

			if apperrors.IsType(err, apperrors.ErrorTypeGeneration) {
				// The one fatal pipeline path: report a single generic
				// failure message, never a partial result.
				logger.WithError(err).WithField("category", string(cat)).Error("Generation failed")
				c.AbortWithStatusJSON(http.StatusBadGateway, models.ErrorResponse{
					Error:   http.StatusText(http.StatusBadGateway),
					Message: "Analysis failed",
				})
				return
			}

			respondError(c, apperrors.GetStatusCode(err), "analysis request failed", err)
			return
		}

		logger.WithFields(logrus.Fields{
			"category":           string(cat),
			"processing_time_ms": time.Since(startTime).Milliseconds(),
			"has_disclaimer":     report.Disclaimer != "",
		}).Info("Analysis completed successfully")

		c.JSON(http.StatusOK, report)
	}
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func listCategories(c *gin.Context) {
	resp := models.CategoriesResponse{
		HowItWorks: []string{
			"Select image type",
			"Upload image",
			"Ask your question",
			"Get AI-powered analysis",
		},
	}
	for _, cat := range category.All() {
		resp.Categories = append(resp.Categories, models.CategoryInfo{
			Name:       string(cat),
			Guide:      cat.Guide(),
			Disclaimer: cat.Disclaimer(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func healthCheck(metrics *observer.MetricsObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := gin.H{
			"status":  "available",
			"version": "1.0.0",
			"time":    time.Now().UTC().Format(time.RFC3339),
		}
		if metrics != nil {
			payload["metrics"] = metrics.GetMetrics()
		}
		c.JSON(http.StatusOK, payload)
	}
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last()
			respondError(c, determineStatusCode(err), "request processing failed", err)
		}
	}
}

func determineStatusCode(err error) int {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, models.ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
