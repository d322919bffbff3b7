package inbox

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/danishanwar/portfolio/internal/contact"
	"github.com/danishanwar/portfolio/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestRecordAndGet(t *testing.T) {
	store := setupStore(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	ctx := contact.WithRemoteAddr(context.Background(), "203.0.113.7:5000")
	sub := contact.Submission{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
	if err := store.Record(ctx, sub); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	got, err := store.Get(context.Background(), entries[0].ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Ada" || got.Email != "ada@example.com" || got.Message != "Hello" {
		t.Errorf("unexpected entry %+v", got)
	}
	if got.RemoteAddr != "203.0.113.7:5000" {
		t.Errorf("RemoteAddr = %q", got.RemoteAddr)
	}
	if !got.ReceivedAt.Equal(fixed) {
		t.Errorf("ReceivedAt = %v, want %v", got.ReceivedAt, fixed)
	}
	if len(got.ID) != 36 {
		t.Errorf("expected a UUID id, got %q", got.ID)
	}
}

func TestGetNotFound(t *testing.T) {
	store := setupStore(t)
	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListNewestFirstWithLimit(t *testing.T) {
	store := setupStore(t)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		at := base.Add(time.Duration(i) * time.Minute)
		store.now = func() time.Time { return at }
		if err := store.Record(context.Background(), contact.Submission{Name: name, Email: "e", Message: "m"}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := store.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "third" || entries[1].Name != "second" {
		t.Errorf("unexpected order: %q, %q", entries[0].Name, entries[1].Name)
	}

	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
}

func TestArchiveThroughContactHandler(t *testing.T) {
	store := setupStore(t)
	r := chi.NewRouter()
	contact.RegisterRoutes(r, contact.NewHandler(store, 0, 0, nil))

	for _, body := range []string{
		`{"name":"Ada","email":"ada@example.com","message":"Hello"}`,
		`{"name":"Ada","email":"","message":"Hello"}`,
		`{"name":"Ada","email":"ada@example.com","message":"Hello"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	// Two identical valid payloads are both archived; the invalid one is not.
	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}
