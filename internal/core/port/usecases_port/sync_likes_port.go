package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type SyncLikesUseCasePort interface {
	// Подтягивает набор избранного пользователя в рабочее состояние вида.
	Execute(ctx context.Context, userID uuid.UUID) error
}
