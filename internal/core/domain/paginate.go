package domain

// Paginate возвращает страницу списка (нумерация страниц с единицы) и
// общее количество страниц. Страница вне диапазона дает пустой срез,
// а не ошибку; подгонка номера страницы - ответственность вызывающего.
func Paginate(in []Listing, page, perPage int) ([]Listing, int) {
	if perPage <= 0 {
		return []Listing{}, 0
	}

	totalPages := (len(in) + perPage - 1) / perPage

	start := (page - 1) * perPage
	if page < 1 || start >= len(in) {
		return []Listing{}, totalPages
	}

	end := start + perPage
	if end > len(in) {
		end = len(in)
	}

	out := make([]Listing, end-start)
	copy(out, in[start:end])
	return out, totalPages
}

// PageWindow описывает блок кнопок пагинации: окно максимум из трех
// последовательных страниц вокруг текущей плюс якорные кнопки первой и
// последней страницы, с многоточием при разрыве.
type PageWindow struct {
	Start int
	End   int

	ShowFirst   bool
	LeadingGap  bool
	ShowLast    bool
	TrailingGap bool
}

// WindowFor вычисляет окно кнопок: start = max(1, current-1),
// end = min(total, start+2). Пересчитывается при каждой смене страницы.
func WindowFor(current, total int) PageWindow {
	start := current - 1
	if start < 1 {
		start = 1
	}
	end := start + 2
	if end > total {
		end = total
	}

	return PageWindow{
		Start:       start,
		End:         end,
		ShowFirst:   start > 1,
		LeadingGap:  start > 2,
		ShowLast:    end < total,
		TrailingGap: end < total-1,
	}
}

// ListingsPage - итоговое представление одной страницы списка.
type ListingsPage struct {
	Items        []Listing
	TotalCount   int
	CurrentPage  int
	ItemsPerPage int
	TotalPages   int
	Window       PageWindow
}
