package observer

import (
	"context"
	"testing"
	"time"
)

func TestMetricsObserver_Counters(t *testing.T) {
	m := NewMetricsObserver()
	ctx := context.Background()

	m.OnEvent(ctx, SubmissionEvent{EventType: SubmissionStarted})
	m.OnEvent(ctx, SubmissionEvent{EventType: SubmissionStarted})
	m.OnEvent(ctx, SubmissionEvent{EventType: TaggingDegraded})
	m.OnEvent(ctx, SubmissionEvent{EventType: SubmissionCompleted, ProcessingTime: 2 * time.Second})
	m.OnEvent(ctx, SubmissionEvent{EventType: SubmissionFailed})

	metrics := m.GetMetrics()
	if metrics["total_submissions"] != int64(2) {
		t.Errorf("total_submissions = %v", metrics["total_submissions"])
	}
	if metrics["successful_submissions"] != int64(1) {
		t.Errorf("successful_submissions = %v", metrics["successful_submissions"])
	}
	if metrics["failed_submissions"] != int64(1) {
		t.Errorf("failed_submissions = %v", metrics["failed_submissions"])
	}
	if metrics["degraded_taggings"] != int64(1) {
		t.Errorf("degraded_taggings = %v", metrics["degraded_taggings"])
	}
	if metrics["avg_processing_time"] != (2 * time.Second).String() {
		t.Errorf("avg_processing_time = %v", metrics["avg_processing_time"])
	}
}

func TestEventPublisher_SubscribeUnsubscribe(t *testing.T) {
	p := NewEventPublisher()
	m := NewMetricsObserver()

	p.Subscribe(m)
	p.Unsubscribe(m)

	p.NotifyObservers(context.Background(), SubmissionEvent{EventType: SubmissionStarted})
	// Notification is asynchronous; give stray goroutines a moment.
	time.Sleep(50 * time.Millisecond)

	if m.GetMetrics()["total_submissions"] != int64(0) {
		t.Error("Unsubscribed observer must not receive events")
	}
}
