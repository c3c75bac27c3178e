package catalog_api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"listing-view-service/internal/contextkeys"
	"listing-view-service/internal/contracts"
	"listing-view-service/internal/core/domain"
	"listing-view-service/internal/core/port"
	"net/http"
	"time"

	"github.com/karlseguin/ccache/v3"
)

// Ключ кэша один: каталог отдает весь список целиком, фильтрация и
// сортировка всегда выполняются заново на нашей стороне.
const listingsCacheKey = "catalog:listings"

// CatalogAPIClient - клиент для взаимодействия с сервисом каталога объявлений.
type CatalogAPIClient struct {
	baseURL    string // Например, "http://catalog-service:8080"
	httpClient *http.Client

	cache    *ccache.Cache[[]domain.Listing]
	cacheTTL time.Duration
}

// NewCatalogAPIClient - конструктор.
func NewCatalogAPIClient(baseURL string, cacheTTL time.Duration) *CatalogAPIClient {
	return &CatalogAPIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		cache:      ccache.New(ccache.Configure[[]domain.Listing]().MaxSize(16)),
		cacheTTL:   cacheTTL,
	}
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *CatalogAPIClient) doRequest(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	// 1. Извлекаем trace_id из контекста
	traceID := contextkeys.TraceIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// 2. Устанавливаем заголовок для трассировки
	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// FetchListings реализует порт ListingCatalogPort.
// Ответ каталога кэшируется на cacheTTL; обновление - только по
// истечении TTL, принудительного сброса нет.
func (c *CatalogAPIClient) FetchListings(ctx context.Context) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "CatalogAPIClient",
		"method":    "FetchListings",
	})

	if item := c.cache.Get(listingsCacheKey); item != nil && !item.Expired() {
		clientLogger.Debug("Serving listings from local cache", nil)
		return item.Value(), nil
	}

	url := c.baseURL + "/api/v1/listings"
	resp, err := c.doRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to catalog service", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	// Проверяем статус-код ответа
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("catalog service returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
		clientLogger.Error("Received non-OK response from catalog service", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		clientLogger.Error("Failed to read response body from catalog service", err, nil)
		return nil, fmt.Errorf("failed to read catalog response body: %w", err)
	}

	// Сначала проверяем сырой ответ по схеме, и только потом маппим в домен.
	if err := contracts.ValidatePayload("ListingsPayload", "1.0.0", body); err != nil {
		clientLogger.Error("Catalog payload failed schema validation", err, nil)
		return nil, fmt.Errorf("invalid catalog payload: %w", err)
	}

	var dtos []listingResponse
	if err := json.Unmarshal(body, &dtos); err != nil {
		clientLogger.Error("Failed to decode response from catalog service", err, nil)
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	// Маппим DTO ответа в нашу доменную модель.
	// Это изолирует ядро от деталей API каталога.
	result := make([]domain.Listing, len(dtos))
	for i, dto := range dtos {
		result[i] = domain.Listing{
			ID:          dto.ID,
			Title:       dto.Title,
			Price:       dto.Price,
			PublishedAt: dto.PublishedAt,
			Location:    dto.Location,
			Description: dto.Description,
			Images:      dto.Images,
			AdLink:      dto.AdLink,
			Rooms:       dto.Rooms,
			SurfaceArea: dto.SurfaceArea,
			IsShared:    dto.IsShared,
			HasGarage:   dto.HasGarage,
			IsFurnished: dto.IsFurnished,
			HasBalcony:  dto.HasBalcony,
		}
	}

	c.cache.Set(listingsCacheKey, result, c.cacheTTL)

	clientLogger.Info("Successfully fetched and decoded listings from catalog", port.Fields{
		"listings_count": len(result),
	})
	return result, nil
}
