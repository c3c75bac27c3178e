package usecase

import (
	"context"
	"listing-view-service/internal/contextkeys"
	"listing-view-service/internal/core/port"
	"listing-view-service/internal/viewstate"

	"github.com/google/uuid"
)

type SyncLikesUseCase struct {
	likes port.LikeStorePort
	state *viewstate.Store
}

func NewSyncLikesUseCase(likes port.LikeStorePort, state *viewstate.Store) *SyncLikesUseCase {
	return &SyncLikesUseCase{
		likes: likes,
		state: state,
	}
}

// Execute подтягивает набор избранного пользователя и вливает его в
// рабочее состояние. Ошибка не считается фатальной для вывода списка:
// вызывающий логирует ее и продолжает без отметок Liked.
func (uc *SyncLikesUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SyncLikes",
		"user_id":  userID,
	})

	if !uc.state.NeedsSync(userID) {
		ucLogger.Debug("Liked set already synced for this user, skipping", nil)
		return nil
	}

	ucLogger.Info("Use case started", nil)

	gen := uc.state.BeginSync(userID)

	likedIDs, err := uc.likes.FetchLikedSet(ctx, userID)
	if err != nil {
		// Состояние остается несинхронизированным; повторов нет,
		// следующий запрос с этим пользователем попробует еще раз.
		uc.state.FailSync(gen)
		ucLogger.Error("Failed to fetch liked set, view stays unsynced", err, nil)
		return err
	}

	if !uc.state.CompleteSync(gen, likedIDs) {
		// За время запроса началась новая синхронизация (например,
		// сменился пользователь) - этот ответ уже никому не нужен.
		ucLogger.Warn("Discarded stale liked set: a newer sync has started", port.Fields{
			"generation": gen,
		})
		return nil
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"liked_count": len(likedIDs),
	})
	return nil
}
