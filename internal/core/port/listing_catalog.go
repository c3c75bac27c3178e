package port

import (
	"context"
	"listing-view-service/internal/core/domain"
)

// ListingCatalogPort - контракт клиента, который получает сырой список
// объявлений у сервиса каталога.
type ListingCatalogPort interface {
	FetchListings(ctx context.Context) ([]domain.Listing, error)
}
