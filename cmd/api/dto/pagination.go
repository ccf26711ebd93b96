package dto

import "flight-booking/pagination"

// Pagination is a generic pagination envelope for list results.
// Total is the number of rows matching the filters; Pagination is the
// navigation strip (previous/next, page window, ellipses) for the current page.
type Pagination[T any] struct {
	Data       []T             `json:"data"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Total      int64           `json:"total"`
	Pagination pagination.View `json:"pagination"`
}

// FromPage 는 서비스 결과 Page 를 응답 DTO 로 변환한다.
func FromPage[T, U any](p pagination.Page[T], fn func(T) U) Pagination[U] {
	data := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		data = append(data, fn(item))
	}
	return Pagination[U]{
		Data:       data,
		Page:       p.Number,
		PageSize:   p.Size,
		Total:      p.TotalCount,
		Pagination: p.View,
	}
}
