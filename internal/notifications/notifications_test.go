package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/danishanwar/portfolio/internal/contact"
)

func TestDispatcherWebhook(t *testing.T) {
	var (
		mu       sync.Mutex
		received []Payload
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var p Payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
		mu.Lock()
		received = append(received, p)
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	d := NewDispatcher(server.URL, nil)
	d.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }

	ctx := contact.WithRemoteAddr(context.Background(), "203.0.113.7:5000")
	sub := contact.Submission{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
	if err := d.Record(ctx, sub); err != nil {
		t.Fatalf("Record: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 1 {
		t.Fatalf("webhook calls = %d, want 1", len(received))
	}
	got := received[0]
	if got.Event != EventContact || got.Name != "Ada" || got.Email != "ada@example.com" || got.Message != "Hello" {
		t.Errorf("unexpected payload: %+v", got)
	}
	if got.RemoteAddr != "203.0.113.7:5000" {
		t.Errorf("remote_addr = %q", got.RemoteAddr)
	}
	if !got.ReceivedAt.Equal(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("received_at = %v", got.ReceivedAt)
	}
}

func TestDispatcherFailureDoesNotFailSubmission(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	core, logs := observer.New(zapcore.WarnLevel)
	d := NewDispatcher(server.URL, zap.New(core))

	if err := d.Record(context.Background(), contact.Submission{Name: "a", Email: "b", Message: "c"}); err != nil {
		t.Fatalf("Record returned %v, want nil", err)
	}
	if n := logs.FilterMessage("contact webhook delivery failed").Len(); n != 1 {
		t.Errorf("warn logs = %d, want 1", n)
	}
}

func TestSendWebhookStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	d := NewDispatcher(server.URL, nil)
	if err := d.SendWebhook(context.Background(), []byte(`{}`)); err == nil {
		t.Error("expected error for 500 response")
	}
}
