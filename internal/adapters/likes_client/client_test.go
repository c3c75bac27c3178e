package likes_api_client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	likes_api_client "listing-view-service/internal/adapters/likes_client"
	"listing-view-service/internal/contextkeys"

	"github.com/google/uuid"
)

func TestFetchLikedSet_Success(t *testing.T) {
	userID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/v1/liked-listings" {
			t.Errorf("path = %s, want /api/v1/liked-listings", r.URL.Path)
		}
		if got := r.URL.Query().Get("user"); got != userID.String() {
			t.Errorf("user query param = %s, want %s", got, userID)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[2, 7]`))
	}))
	defer server.Close()

	client := likes_api_client.NewLikesAPIClient(server.URL)
	got, err := client.FetchLikedSet(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != 2 || got[1] != 7 {
		t.Errorf("liked set = %v, want [2 7]", got)
	}
}

func TestFetchLikedSet_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := likes_api_client.NewLikesAPIClient(server.URL)
	if _, err := client.FetchLikedSet(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestFetchLikedSet_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer server.Close()

	client := likes_api_client.NewLikesAPIClient(server.URL)
	if _, err := client.FetchLikedSet(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected a decode error for a malformed body")
	}
}

func TestFetchLikedSet_PropagatesTraceID(t *testing.T) {
	var gotTraceID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = r.Header.Get("X-Trace-ID")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-123")
	client := likes_api_client.NewLikesAPIClient(server.URL)
	if _, err := client.FetchLikedSet(ctx, uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTraceID != "trace-123" {
		t.Errorf("X-Trace-ID = %q, want trace-123", gotTraceID)
	}
}

func TestToggleLike_Success(t *testing.T) {
	userID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/v1/like-toggle" {
			t.Errorf("path = %s, want /api/v1/like-toggle", r.URL.Path)
		}
		if got := r.Header.Get("X-User-ID"); got != userID.String() {
			t.Errorf("X-User-ID = %s, want %s", got, userID)
		}

		body, _ := io.ReadAll(r.Body)
		var payload map[string]int64
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if payload["listingId"] != 42 {
			t.Errorf("listingId = %d, want 42", payload["listingId"])
		}

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := likes_api_client.NewLikesAPIClient(server.URL)
	if err := client.ToggleLike(context.Background(), userID, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestToggleLike_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := likes_api_client.NewLikesAPIClient(server.URL)
	if err := client.ToggleLike(context.Background(), uuid.New(), 42); err == nil {
		t.Fatal("expected an error for a non-success response")
	}
}
