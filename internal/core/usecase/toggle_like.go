package usecase

import (
	"context"
	"listing-view-service/internal/contextkeys"
	"listing-view-service/internal/core/port"
	"listing-view-service/internal/viewstate"

	"github.com/google/uuid"
)

type ToggleLikeUseCase struct {
	likes port.LikeStorePort
	state *viewstate.Store
}

func NewToggleLikeUseCase(likes port.LikeStorePort, state *viewstate.Store) *ToggleLikeUseCase {
	return &ToggleLikeUseCase{
		likes: likes,
		state: state,
	}
}

// Execute переключает отметку сначала на сервере и только после
// подтверждения - локально. Оптимистичного переключения до ответа нет:
// при ошибке откатывать нечего, локальная отметка не менялась.
func (uc *ToggleLikeUseCase) Execute(ctx context.Context, userID uuid.UUID, listingID int64) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ToggleLike",
		"user_id":    userID,
		"listing_id": listingID,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.likes.ToggleLike(ctx, userID, listingID); err != nil {
		ucLogger.Error("Like store rejected the toggle, local state unchanged", err, nil)
		return false, err
	}

	liked, found := uc.state.FlipLiked(listingID)
	if !found {
		// Сервер уже переключил отметку, а в рабочей копии такого
		// объявления нет (каталог успел обновиться). Влияет только на
		// текущий вид; при следующей синхронизации все сойдется.
		ucLogger.Warn("Listing is not in the working copy, nothing to flip locally", nil)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"liked": liked})
	return liked, nil
}
