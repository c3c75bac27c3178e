package domain

import "time"

// Listing - карточка объявления об аренде квартиры в том виде,
// в котором с ней работает конвейер вывода.
// Данные каталога доступны только для чтения: единственное поле,
// которое компонент когда-либо меняет, - это Liked, и меняет он его
// только заменой среза целиком, а не правкой элемента на месте.
type Listing struct {
	ID          int64
	Title       string
	Price       float64
	PublishedAt time.Time
	Location    string
	Description string
	Images      []string
	AdLink      string
	Rooms       int
	SurfaceArea float64

	IsShared    bool
	HasGarage   bool
	IsFurnished bool
	HasBalcony  bool

	// Liked вычисляется по данным сервиса избранного для текущего
	// пользователя; при загрузке из каталога всегда false.
	Liked bool
}
