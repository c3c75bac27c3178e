package rest

import "time"

// ListingCardResponse - карточка объявления в ответе.
// Каждая ссылка из images рендерится фронтендом как тайл 200x200,
// ad_link - как внешняя ссылка на оригинал объявления.
type ListingCardResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	PublishedAt time.Time `json:"published_at"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	AdLink      string    `json:"ad_link"`
	Rooms       int       `json:"rooms"`
	SurfaceArea float64   `json:"surface_area"`

	IsShared    bool `json:"is_shared"`
	HasGarage   bool `json:"has_garage"`
	IsFurnished bool `json:"is_furnished"`
	HasBalcony  bool `json:"has_balcony"`

	Liked bool `json:"liked"`
}

// PageWindowResponse - блок кнопок пагинации для фронтенда.
type PageWindowResponse struct {
	Start       int  `json:"start"`
	End         int  `json:"end"`
	ShowFirst   bool `json:"show_first"`
	LeadingGap  bool `json:"leading_gap"`
	ShowLast    bool `json:"show_last"`
	TrailingGap bool `json:"trailing_gap"`
}

// PaginatedListingsResponse - структура для ответа со страницей списка.
type PaginatedListingsResponse struct {
	Data       []ListingCardResponse `json:"data"`
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	PerPage    int                   `json:"per_page"`
	TotalPages int                   `json:"total_pages"`
	Window     PageWindowResponse    `json:"window"`
}

// ToggleLikeResponse - ответ на переключение отметки.
type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
}

// ErrorResponse - стандартная структура для ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
