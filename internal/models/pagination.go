package models

// Page is the envelope returned by every listing endpoint.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// NewPage computes page number and page count from skip/limit pagination.
func NewPage[T any](items []T, total int64, skip, limit int) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	page := 1
	pages := 0
	if limit > 0 {
		page = skip/limit + 1
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Page[T]{
		Data:  items,
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}
