package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type ToggleLikeUseCasePort interface {
	// Возвращает новое локальное значение отметки Liked.
	Execute(ctx context.Context, userID uuid.UUID, listingID int64) (bool, error)
}
