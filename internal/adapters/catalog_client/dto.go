package catalog_api_client

import "time"

// DTO для ответа от сервиса каталога.
// Эта структура должна в точности совпадать со схемой "catalog/listings/v1.json".
type listingResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	PublishedAt time.Time `json:"publishedAt"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	AdLink      string    `json:"adLink"`
	Rooms       int       `json:"rooms"`
	SurfaceArea float64   `json:"surfaceArea"`
	IsShared    bool      `json:"isShared"`
	HasGarage   bool      `json:"hasGarage"`
	IsFurnished bool      `json:"isFurnished"`
	HasBalcony  bool      `json:"hasBalcony"`
}
