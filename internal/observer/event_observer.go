package observer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// SubmissionEvent is emitted by the assistant pipeline as a submission
// moves through its stages.
type SubmissionEvent struct {
	EventType      EventType              `json:"event_type"`
	Timestamp      time.Time              `json:"timestamp"`
	Category       string                 `json:"category"`
	ProcessingTime time.Duration          `json:"processing_time"`
	Success        bool                   `json:"success"`
	ErrorMessage   string                 `json:"error_message,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// EventType represents the type of submission event
type EventType string

const (
	// SubmissionStarted when a validated submission enters the pipeline
	SubmissionStarted EventType = "submission_started"
	// TagsExtracted when the tagging call returned a usable result
	TagsExtracted EventType = "tags_extracted"
	// TaggingDegraded when the tagging call failed and the pipeline
	// continues with degraded analysis text
	TaggingDegraded EventType = "tagging_degraded"
	// SubmissionCompleted when the generated answer is ready
	SubmissionCompleted EventType = "submission_completed"
	// SubmissionFailed when generation aborted the submission
	SubmissionFailed EventType = "submission_failed"
)

// Observer defines the interface for event observers
type Observer interface {
	OnEvent(ctx context.Context, event SubmissionEvent)
	GetObserverName() string
}

// Subject defines the interface for event publishers
type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	NotifyObservers(ctx context.Context, event SubmissionEvent)
}

// LoggingObserver logs submission events
type LoggingObserver struct {
	logger *logrus.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(logger *logrus.Logger) Observer {
	return &LoggingObserver{logger: logger}
}

// OnEvent handles submission events by logging them
func (o *LoggingObserver) OnEvent(ctx context.Context, event SubmissionEvent) {
	fields := logrus.Fields{
		"event_type":      event.EventType,
		"category":        event.Category,
		"processing_time": event.ProcessingTime,
		"success":         event.Success,
	}

	if event.ErrorMessage != "" {
		fields["error"] = event.ErrorMessage
	}

	for k, v := range event.Metadata {
		fields[k] = v
	}

	switch event.EventType {
	case SubmissionStarted:
		o.logger.WithFields(fields).Info("Submission started")
	case TagsExtracted:
		o.logger.WithFields(fields).Debug("Image tags extracted")
	case TaggingDegraded:
		o.logger.WithFields(fields).Warn("Tagging degraded, continuing with inline error text")
	case SubmissionCompleted:
		o.logger.WithFields(fields).Info("Submission completed")
	case SubmissionFailed:
		o.logger.WithFields(fields).Error("Submission failed")
	default:
		o.logger.WithFields(fields).Info("Submission event occurred")
	}
}

// GetObserverName returns the observer name
func (o *LoggingObserver) GetObserverName() string {
	return "logging_observer"
}

// MetricsObserver collects counters from submission events
type MetricsObserver struct {
	mu                    sync.RWMutex
	totalSubmissions      int64
	successfulSubmissions int64
	failedSubmissions     int64
	degradedTaggings      int64
	totalProcessingTime   time.Duration
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

// OnEvent handles submission events by collecting metrics
func (o *MetricsObserver) OnEvent(ctx context.Context, event SubmissionEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch event.EventType {
	case SubmissionStarted:
		o.totalSubmissions++
	case TaggingDegraded:
		o.degradedTaggings++
	case SubmissionCompleted:
		o.successfulSubmissions++
		o.totalProcessingTime += event.ProcessingTime
	case SubmissionFailed:
		o.failedSubmissions++
	}
}

// GetObserverName returns the observer name
func (o *MetricsObserver) GetObserverName() string {
	return "metrics_observer"
}

// GetMetrics returns current counters
func (o *MetricsObserver) GetMetrics() map[string]interface{} {
	o.mu.RLock()
	defer o.mu.RUnlock()

	avgProcessingTime := time.Duration(0)
	if o.successfulSubmissions > 0 {
		avgProcessingTime = o.totalProcessingTime / time.Duration(o.successfulSubmissions)
	}

	return map[string]interface{}{
		"total_submissions":      o.totalSubmissions,
		"successful_submissions": o.successfulSubmissions,
		"failed_submissions":     o.failedSubmissions,
		"degraded_taggings":      o.degradedTaggings,
		"avg_processing_time":    avgProcessingTime.String(),
	}
}

// EventPublisher implements the Subject interface
type EventPublisher struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher() Subject {
	return &EventPublisher{
		observers: make([]Observer, 0),
	}
}

// Subscribe adds an observer
func (p *EventPublisher) Subscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}

// Unsubscribe removes an observer
func (p *EventPublisher) Unsubscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, obs := range p.observers {
		if obs.GetObserverName() == observer.GetObserverName() {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			break
		}
	}
}

// NotifyObservers notifies all observers of an event
func (p *EventPublisher) NotifyObservers(ctx context.Context, event SubmissionEvent) {
	p.mu.RLock()
	observers := make([]Observer, len(p.observers))
	copy(observers, p.observers)
	p.mu.RUnlock()

	for _, observer := range observers {
		go func(obs Observer) {
			defer func() {
				if r := recover(); r != nil {
					logrus.WithField("observer", obs.GetObserverName()).
						WithField("panic", r).
						Error("Observer panicked while handling event")
				}
			}()
			obs.OnEvent(ctx, event)
		}(observer)
	}
}
