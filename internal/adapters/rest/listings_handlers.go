package rest

import (
	"listing-view-service/internal/contextkeys"
	"listing-view-service/internal/core/domain"
	"listing-view-service/internal/core/port"
	"listing-view-service/internal/core/port/usecases_port"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Размер страницы по умолчанию задан версткой: сетка 3x3.
const defaultPerPage = 9

// ListingsHandler обслуживает страницу списка и переключение отметок.
type ListingsHandler struct {
	getPageUC usecases_port.GetListingsPageUseCasePort
	syncUC    usecases_port.SyncLikesUseCasePort
	toggleUC  usecases_port.ToggleLikeUseCasePort
}

// NewListingsHandler - конструктор.
func NewListingsHandler(getPageUC usecases_port.GetListingsPageUseCasePort,
	syncUC usecases_port.SyncLikesUseCasePort,
	toggleUC usecases_port.ToggleLikeUseCasePort) *ListingsHandler {
	return &ListingsHandler{
		getPageUC: getPageUC,
		syncUC:    syncUC,
		toggleUC:  toggleUC,
	}
}

// GetListingsPage обрабатывает GET /api/v1/listings
func (h *ListingsHandler) GetListingsPage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetListingsPage"})

	// --- Шаг 1: Парсим пагинацию ---
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(query.Get("perPage"))
	if perPage < 1 || perPage > 100 {
		perPage = defaultPerPage
	}

	// --- Шаг 2: Собираем критерии вывода ---
	criteria := domain.Criteria{
		Sort:      domain.SortKey(query.Get("sort")),
		Price:     parsePriceRange(query),
		Locations: parseStringSlice(query, "locations"),
		Amenities: domain.AmenityFilters{
			Shared:    domain.TriState(query.Get("shared")),
			Garage:    domain.TriState(query.Get("garage")),
			Furnished: domain.TriState(query.Get("furnished")),
			Balcony:   domain.TriState(query.Get("balcony")),
		},
	}

	handlerLogger := logger.WithFields(port.Fields{
		"page":     page,
		"per_page": perPage,
		"sort":     string(criteria.Sort),
	})
	handlerLogger.Debug("Processing request to get listings page", nil)

	// --- Шаг 3: Если пользователь известен, подтягиваем его избранное.
	// Ошибка синхронизации только логируется: страница отдается и без
	// отметок Liked.
	if userIDStr := r.Header.Get("X-User-ID"); userIDStr != "" {
		if userID, err := uuid.Parse(userIDStr); err == nil {
			if err := h.syncUC.Execute(r.Context(), userID); err != nil {
				handlerLogger.Warn("Like-set sync failed, serving page without liked marks", port.Fields{"error": err.Error()})
			}
		} else {
			handlerLogger.Warn("Invalid X-User-ID header, skipping like sync", port.Fields{"provided_id": userIDStr})
		}
	}

	// --- Шаг 4: Вызываем use-case ---
	result, err := h.getPageUC.Execute(r.Context(), criteria, page, perPage)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to retrieve listings")
		return
	}

	// --- Шаг 5: Маппим результат в DTO для ответа ---
	response := PaginatedListingsResponse{
		Data:       make([]ListingCardResponse, len(result.Items)),
		Total:      result.TotalCount,
		Page:       result.CurrentPage,
		PerPage:    result.ItemsPerPage,
		TotalPages: result.TotalPages,
		Window: PageWindowResponse{
			Start:       result.Window.Start,
			End:         result.Window.End,
			ShowFirst:   result.Window.ShowFirst,
			LeadingGap:  result.Window.LeadingGap,
			ShowLast:    result.Window.ShowLast,
			TrailingGap: result.Window.TrailingGap,
		},
	}

	for i, l := range result.Items {
		response.Data[i] = ListingCardResponse{
			ID:          l.ID,
			Title:       l.Title,
			Price:       l.Price,
			PublishedAt: l.PublishedAt,
			Location:    l.Location,
			Description: l.Description,
			Images:      l.Images,
			AdLink:      l.AdLink,
			Rooms:       l.Rooms,
			SurfaceArea: l.SurfaceArea,
			IsShared:    l.IsShared,
			HasGarage:   l.HasGarage,
			IsFurnished: l.IsFurnished,
			HasBalcony:  l.HasBalcony,
			Liked:       l.Liked,
		}
	}

	handlerLogger.Info("Successfully served listings page", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Items),
	})
	RespondWithJSON(w, http.StatusOK, response)
}

// ToggleLike обрабатывает POST /api/v1/listings/{listingID}/like
func (h *ListingsHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ToggleLike"})

	// Извлекаем userID из контекста, который был добавлен middleware
	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	listingIDStr := chi.URLParam(r, "listingID")
	listingID, err := strconv.ParseInt(listingIDStr, 10, 64)
	if err != nil {
		logger.Warn("Invalid listing ID in URL", port.Fields{"provided_id": listingIDStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid listing ID in URL")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":    userID,
		"listing_id": listingID,
	})
	handlerLogger.Info("Processing request to toggle like", nil)

	liked, err := h.toggleUC.Execute(r.Context(), userID, listingID)
	if err != nil {
		// Локальное состояние не изменилось; фронтенд оставляет кнопку как была.
		handlerLogger.Error("Toggle like use case failed", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "Failed to toggle like")
		return
	}

	handlerLogger.Info("Successfully toggled like", port.Fields{"liked": liked})
	RespondWithJSON(w, http.StatusOK, ToggleLikeResponse{Liked: liked})
}
