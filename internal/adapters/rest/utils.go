package rest

import (
	"encoding/json"
	"listing-view-service/internal/core/domain"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// parseStringSlice читает параметр как список значений через запятую.
func parseStringSlice(query url.Values, key string) []string {
	raw := query.Get(key)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parsePriceRange собирает диапазон цены из priceMin/priceMax.
// Если не задан ни один параметр, диапазон отсутствует (nil).
// Отсутствующая граница заменяется на 0 или +inf соответственно.
func parsePriceRange(query url.Values) *domain.PriceRange {
	minStr := query.Get("priceMin")
	maxStr := query.Get("priceMax")
	if minStr == "" && maxStr == "" {
		return nil
	}

	r := &domain.PriceRange{Min: 0, Max: math.MaxFloat64}
	if minStr != "" {
		if v, err := strconv.ParseFloat(minStr, 64); err == nil {
			r.Min = v
		}
	}
	if maxStr != "" {
		if v, err := strconv.ParseFloat(maxStr, 64); err == nil {
			r.Max = v
		}
	}
	return r
}
