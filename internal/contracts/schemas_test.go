package contracts_test

import (
	"testing"

	"listing-view-service/internal/contracts"
)

func TestValidatePayload_AcceptsValidListings(t *testing.T) {
	body := []byte(`[{"id": 1, "title": "Studio", "price": 420, "publishedAt": "2025-03-01T09:00:00Z", "location": "Bordeaux"}]`)
	if err := contracts.ValidatePayload("ListingsPayload", "1.0.0", body); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestValidatePayload_RejectsMissingRequiredField(t *testing.T) {
	body := []byte(`[{"id": 1, "title": "Studio", "publishedAt": "2025-03-01T09:00:00Z", "location": "Bordeaux"}]`)
	if err := contracts.ValidatePayload("ListingsPayload", "1.0.0", body); err == nil {
		t.Fatal("payload without price must be rejected")
	}
}

func TestValidatePayload_RejectsNegativePrice(t *testing.T) {
	body := []byte(`[{"id": 1, "title": "Studio", "price": -5, "publishedAt": "2025-03-01T09:00:00Z", "location": "Bordeaux"}]`)
	if err := contracts.ValidatePayload("ListingsPayload", "1.0.0", body); err == nil {
		t.Fatal("payload with a negative price must be rejected")
	}
}

func TestValidatePayload_RejectsInvalidJSON(t *testing.T) {
	if err := contracts.ValidatePayload("ListingsPayload", "1.0.0", []byte(`not json`)); err == nil {
		t.Fatal("invalid JSON must be rejected")
	}
}

func TestValidatePayload_UnknownSchema(t *testing.T) {
	if err := contracts.ValidatePayload("NopePayload", "1.0.0", []byte(`[]`)); err == nil {
		t.Fatal("unknown payload type must be rejected")
	}
}
