package likes_api_client

// DTO для запроса на переключение отметки.
type toggleLikeRequest struct {
	ListingID int64 `json:"listingId"`
}
