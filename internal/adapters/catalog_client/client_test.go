package catalog_api_client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	catalog_api_client "listing-view-service/internal/adapters/catalog_client"
)

const validPayload = `[
	{
		"id": 1,
		"title": "T2 lumineux proche gare",
		"price": 650.0,
		"publishedAt": "2025-03-04T10:30:00Z",
		"location": "Lyon",
		"description": "Refait a neuf",
		"images": ["https://img.example/1.jpg"],
		"adLink": "https://ads.example/1",
		"rooms": 2,
		"surfaceArea": 38.5,
		"isShared": false,
		"hasGarage": true,
		"isFurnished": true,
		"hasBalcony": false
	},
	{
		"id": 2,
		"title": "Studio centre",
		"price": 420.0,
		"publishedAt": "2025-03-01T09:00:00Z",
		"location": "Bordeaux"
	}
]`

func TestFetchListings_MapsPayloadToDomain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/listings" {
			t.Errorf("path = %s, want /api/v1/listings", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validPayload))
	}))
	defer server.Close()

	client := catalog_api_client.NewCatalogAPIClient(server.URL, time.Minute)
	got, err := client.FetchListings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d listings, want 2", len(got))
	}

	first := got[0]
	if first.ID != 1 || first.Title != "T2 lumineux proche gare" || first.Price != 650 {
		t.Errorf("first listing mapped incorrectly: %+v", first)
	}
	if first.Location != "Lyon" || !first.HasGarage || !first.IsFurnished || first.HasBalcony {
		t.Errorf("first listing flags mapped incorrectly: %+v", first)
	}
	wantTime := time.Date(2025, time.March, 4, 10, 30, 0, 0, time.UTC)
	if !first.PublishedAt.Equal(wantTime) {
		t.Errorf("PublishedAt = %v, want %v", first.PublishedAt, wantTime)
	}
	if got[1].ID != 2 || got[1].Location != "Bordeaux" {
		t.Errorf("second listing mapped incorrectly: %+v", got[1])
	}
}

func TestFetchListings_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := catalog_api_client.NewCatalogAPIClient(server.URL, time.Minute)
	if _, err := client.FetchListings(context.Background()); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestFetchListings_RejectsPayloadMissingRequiredFields(t *testing.T) {
	// Объект без price и location не проходит проверку по схеме.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "title": "incomplete", "publishedAt": "2025-03-01T09:00:00Z"}]`))
	}))
	defer server.Close()

	client := catalog_api_client.NewCatalogAPIClient(server.URL, time.Minute)
	if _, err := client.FetchListings(context.Background()); err == nil {
		t.Fatal("expected a schema validation error")
	}
}

func TestFetchListings_RejectsNonArrayPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"listings": []}`))
	}))
	defer server.Close()

	client := catalog_api_client.NewCatalogAPIClient(server.URL, time.Minute)
	if _, err := client.FetchListings(context.Background()); err == nil {
		t.Fatal("expected a schema validation error for a non-array payload")
	}
}

func TestFetchListings_ServesSecondCallFromCache(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(validPayload))
	}))
	defer server.Close()

	client := catalog_api_client.NewCatalogAPIClient(server.URL, time.Minute)

	if _, err := client.FetchListings(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := client.FetchListings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if requests != 1 {
		t.Errorf("catalog requests = %d, want 1 (second call should hit the cache)", requests)
	}
	if len(got) != 2 {
		t.Errorf("cached result has %d listings, want 2", len(got))
	}
}

func TestFetchListings_ExpiredCacheRefetches(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(validPayload))
	}))
	defer server.Close()

	client := catalog_api_client.NewCatalogAPIClient(server.URL, 10*time.Millisecond)

	if _, err := client.FetchListings(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := client.FetchListings(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if requests != 2 {
		t.Errorf("catalog requests = %d, want 2 (TTL expired)", requests)
	}
}
