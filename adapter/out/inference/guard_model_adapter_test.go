package inference

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestModelAdapter_Classify(t *testing.T) {
	var gotBody predictRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(predictResponse{
			IsGambling: true,
			Confidence: "high",
			RawScore:   0.97,
		})
	}))
	defer server.Close()

	adapter := NewModelAdapter(server.URL, 0)
	result, err := adapter.Classify(context.Background(), "free coins casino")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if gotBody.Text != "free coins casino" {
		t.Errorf("request text = %q, want the input verbatim", gotBody.Text)
	}
	if !result.Flagged {
		t.Error("Flagged = false, want true")
	}
	if result.Confidence != "high" {
		t.Errorf("Confidence = %q, want %q", result.Confidence, "high")
	}
	if result.Score != 0.97 {
		t.Errorf("Score = %v, want 0.97", result.Score)
	}
}

func TestModelAdapter_ForwardsEmptyText(t *testing.T) {
	var gotBody predictRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(predictResponse{})
	}))
	defer server.Close()

	adapter := NewModelAdapter(server.URL, 0)
	if _, err := adapter.Classify(context.Background(), ""); err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if gotBody.Text != "" {
		t.Errorf("request text = %q, want empty", gotBody.Text)
	}
}

func TestModelAdapter_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	adapter := NewModelAdapter(server.URL, 0)
	result, err := adapter.Classify(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if result != nil {
		t.Error("no partial result allowed on failure")
	}
}

func TestModelAdapter_ConfiguredTimeout(t *testing.T) {
	adapter := NewModelAdapter("http://inference:8000", 3*time.Second)
	if adapter.client.Timeout != 3*time.Second {
		t.Errorf("client timeout = %v, want the configured 3s", adapter.client.Timeout)
	}

	withDefault := NewModelAdapter("http://inference:8000", 0)
	if withDefault.client.Timeout != 20*time.Second {
		t.Errorf("client timeout = %v, want the 20s inference default", withDefault.client.Timeout)
	}
}

func TestModelAdapter_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	adapter := NewModelAdapter(server.URL, 0)
	if _, err := adapter.Classify(context.Background(), "anything"); err == nil {
		t.Fatal("expected error when the service is unreachable")
	}
}
