package usecase

import (
	"context"
	"fmt"
	"listing-view-service/internal/contextkeys"
	"listing-view-service/internal/core/domain"
	"listing-view-service/internal/core/port"
	"listing-view-service/internal/viewstate"
)

type GetListingsPageUseCase struct {
	catalog port.ListingCatalogPort
	state   *viewstate.Store
}

func NewGetListingsPageUseCase(catalog port.ListingCatalogPort, state *viewstate.Store) *GetListingsPageUseCase {
	return &GetListingsPageUseCase{
		catalog: catalog,
		state:   state,
	}
}

func (uc *GetListingsPageUseCase) Execute(ctx context.Context, criteria domain.Criteria, page, perPage int) (*domain.ListingsPage, error) {
	// Получаем и обогащаем логгер
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetListingsPage",
		"page":     page,
		"per_page": perPage,
		"sort":     string(criteria.Sort),
	})

	ucLogger.Info("Use case started", nil)

	// Шаг 1: Получаем сырой список у каталога (клиент сам решает,
	// отдать кэш или сходить по сети).
	items, err := uc.catalog.FetchListings(ctx)
	if err != nil {
		ucLogger.Error("Catalog client returned an error", err, nil)
		return nil, fmt.Errorf("failed to fetch listings from catalog: %w", err)
	}

	// Шаг 2: Обновляем рабочую копию. Отметки Liked при этом переживают
	// обновление каталога.
	uc.state.ReplaceListings(items)
	uc.state.SetCurrentPage(page)

	// Шаг 3: Чистый конвейер вывода поверх копии рабочего состояния.
	derived := domain.Derive(uc.state.Listings(), criteria)
	pageItems, totalPages := domain.Paginate(derived, page, perPage)

	result := &domain.ListingsPage{
		Items:        pageItems,
		TotalCount:   len(derived),
		CurrentPage:  page,
		ItemsPerPage: perPage,
		TotalPages:   totalPages,
		Window:       domain.WindowFor(page, totalPages),
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   len(derived),
		"items_on_page": len(pageItems),
		"total_pages":   totalPages,
	})

	return result, nil
}
