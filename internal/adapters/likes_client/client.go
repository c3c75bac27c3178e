package likes_api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"listing-view-service/internal/contextkeys"
	"listing-view-service/internal/core/port"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// LikesAPIClient - клиент для взаимодействия с сервисом избранного.
type LikesAPIClient struct {
	baseURL    string // Например, "http://likes-service:8080"
	httpClient *http.Client
}

// NewLikesAPIClient - конструктор клиента.
func NewLikesAPIClient(baseURL string) *LikesAPIClient {
	return &LikesAPIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *LikesAPIClient) doRequest(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	traceID := contextkeys.TraceIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// FetchLikedSet реализует порт LikeStorePort.
// Возвращает ID объявлений, которые пользователь отметил как избранные.
func (c *LikesAPIClient) FetchLikedSet(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "LikesAPIClient",
		"method":    "FetchLikedSet",
		"user_id":   userID,
	})

	reqURL := fmt.Sprintf("%s/api/v1/liked-listings?user=%s", c.baseURL, url.QueryEscape(userID.String()))
	resp, err := c.doRequest(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to likes service", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	// Любой неуспешный статус - отказ; набор не вливается.
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("likes service returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
		clientLogger.Error("Received non-OK response from likes service", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var likedIDs []int64
	if err := json.NewDecoder(resp.Body).Decode(&likedIDs); err != nil {
		clientLogger.Error("Failed to decode response from likes service", err, nil)
		return nil, fmt.Errorf("failed to decode liked set response: %w", err)
	}

	clientLogger.Info("Successfully received liked set", port.Fields{"liked_count": len(likedIDs)})
	return likedIDs, nil
}

// ToggleLike реализует порт LikeStorePort.
// Контракт сервиса - только статус успеха, тела ответа нет.
func (c *LikesAPIClient) ToggleLike(ctx context.Context, userID uuid.UUID, listingID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component":  "LikesAPIClient",
		"method":     "ToggleLike",
		"user_id":    userID,
		"listing_id": listingID,
	})

	reqBody, err := json.Marshal(toggleLikeRequest{ListingID: listingID})
	if err != nil {
		clientLogger.Error("Failed to marshal request body", err, nil)
		return fmt.Errorf("failed to marshal toggle request: %w", err)
	}

	reqURL := c.baseURL + "/api/v1/like-toggle"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create toggle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID.String())

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		clientLogger.Error("Failed to perform request to likes service", err, nil)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("likes service returned non-success status: %d, body: %s", resp.StatusCode, string(bodyBytes))
		clientLogger.Error("Received non-success response from likes service", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	clientLogger.Info("Like toggled on the server side", nil)
	return nil
}
