package container

import (
	"net/http"

	"github.com/Ebiethub/AI-image-chat/internal/config"
	"github.com/Ebiethub/AI-image-chat/internal/factory"
	"github.com/Ebiethub/AI-image-chat/internal/generation"
	"github.com/Ebiethub/AI-image-chat/internal/logger"
	"github.com/Ebiethub/AI-image-chat/internal/observer"
	"github.com/Ebiethub/AI-image-chat/internal/repository"
	"github.com/Ebiethub/AI-image-chat/internal/service"
	"github.com/Ebiethub/AI-image-chat/internal/tagging"
	"github.com/Ebiethub/AI-image-chat/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config    *config.Config
	assistant service.AssistantService
	metrics   *observer.MetricsObserver
	handler   http.Handler
}

// NewContainer builds the dependency graph from config.
func NewContainer(cfg *config.Config) (*Container, error) {
	storageFactory := factory.NewStorageFactory(cfg)
	blob, err := storageFactory.CreateBlobStorage()
	if err != nil {
		return nil, err
	}
	images := repository.NewImageRepository(storageFactory.CreateFetcher(), blob)

	extractor := tagging.NewClient(cfg.TaggingBaseURL, cfg.TaggingToken, cfg.TaggingTimeout)
	generator := generation.NewGroqGenerator(
		cfg.GroqAPIKey,
		cfg.GroqBaseURL,
		cfg.GroqModel,
		cfg.GroqTemperature,
		cfg.GenerationTimeout,
	)

	metrics := observer.NewMetricsObserver()
	events := observer.NewEventPublisher()
	events.Subscribe(observer.NewLoggingObserver(logger.Logger))
	events.Subscribe(metrics)

	assistant := service.NewAssistantService(
		cfg,
		images,
		extractor,
		generator,
		factory.CreateTextExtractor(cfg),
		events,
	)
	handler := transport.NewHandler(assistant, metrics, cfg)

	return &Container{
		config:    cfg,
		assistant: assistant,
		metrics:   metrics,
		handler:   handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}
