package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func completionServer(t *testing.T, content string, capture *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if capture != nil {
			var body map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode request: %v", err)
			}
			*capture = body
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"choices": []map[string]interface{}{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
		})
	}))
}

func TestGenerate_ReturnsCompletionText(t *testing.T) {
	var captured map[string]interface{}
	server := completionServer(t, "  That is a red bicycle.\n", &captured)
	defer server.Close()

	g := NewGroqGenerator("key", server.URL+"/v1", "llama-3.3-70b-specdec", 0.3, 5*time.Second)

	got, err := g.Generate(context.Background(), "Analyze image description: ...")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "That is a red bicycle." {
		t.Errorf("Expected trimmed completion text, got %q", got)
	}

	if captured["model"] != "llama-3.3-70b-specdec" {
		t.Errorf("Expected fixed model id, got %v", captured["model"])
	}
	if temp, ok := captured["temperature"].(float64); !ok || temp < 0.29 || temp > 0.31 {
		t.Errorf("Expected temperature 0.3, got %v", captured["temperature"])
	}
	msgs, ok := captured["messages"].([]interface{})
	if !ok || len(msgs) != 1 {
		t.Fatalf("Expected exactly one message, got %v", captured["messages"])
	}
}

func TestGenerate_BackendError_Propagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"backend down"}}`))
	}))
	defer server.Close()

	g := NewGroqGenerator("key", server.URL+"/v1", "m", 0.3, 5*time.Second)

	if _, err := g.Generate(context.Background(), "p"); err == nil {
		t.Fatal("Expected error from failed backend")
	}
}

func TestGenerate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cmpl-2","object":"chat.completion","choices":[]}`))
	}))
	defer server.Close()

	g := NewGroqGenerator("key", server.URL+"/v1", "m", 0.3, 5*time.Second)

	if _, err := g.Generate(context.Background(), "p"); err == nil {
		t.Fatal("Expected error when no completion is returned")
	}
}
