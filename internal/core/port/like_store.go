package port

import (
	"context"

	"github.com/google/uuid"
)

// LikeStorePort - контракт клиента сервиса избранного.
type LikeStorePort interface {
	// FetchLikedSet возвращает набор ID объявлений, отмеченных пользователем.
	FetchLikedSet(ctx context.Context, userID uuid.UUID) ([]int64, error)

	// ToggleLike переключает отметку одного объявления на стороне сервиса.
	// Успех означает, что серверное состояние уже изменено.
	ToggleLike(ctx context.Context, userID uuid.UUID, listingID int64) error
}
