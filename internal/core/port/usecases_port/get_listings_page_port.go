package usecases_port

import (
	"context"
	"listing-view-service/internal/core/domain"
)

type GetListingsPageUseCasePort interface {
	Execute(ctx context.Context, criteria domain.Criteria, page, perPage int) (*domain.ListingsPage, error)
}
