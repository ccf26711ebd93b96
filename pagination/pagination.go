package pagination

// PageSize 는 모든 목록 화면/엔드포인트에서 사용하는 고정 페이지 크기다.
const PageSize = 10

// window 는 현재 페이지 양옆으로 노출하는 최대 페이지 수다.
const window = 3

// Request 는 1부터 시작하는 페이지 요청이다.
type Request struct {
	Number int
	Size   int
}

// NewRequest 는 고정 페이지 크기(PageSize)로 Request 를 만든다.
func NewRequest(number int) Request {
	return Request{Number: number, Size: PageSize}
}

// PageSize 는 Size 가 지정되지 않은 경우 기본값을 돌려준다.
func (r Request) PageSize() int {
	if r.Size <= 0 {
		return PageSize
	}
	return r.Size
}

// Offset 은 (page-1)*size 이다. Number 검증은 호출자(listquery)가 담당한다.
func (r Request) Offset() int {
	if r.Number <= 1 {
		return 0
	}
	return (r.Number - 1) * r.PageSize()
}

// TotalPages returns ceil(totalCount/pageSize); zero rows means zero pages.
func TotalPages(totalCount int64, pageSize int) int {
	if totalCount <= 0 {
		return 0
	}
	if pageSize <= 0 {
		pageSize = PageSize
	}
	size := int64(pageSize)
	return int((totalCount + size - 1) / size)
}

// View 는 화면 하단 페이지 네비게이션을 그리기 위한 파생 데이터다.
// 요청마다 다시 계산되며 저장되지 않는다.
type View struct {
	Current       int   `json:"current"`
	Total         int   `json:"total"`
	TotalCount    int64 `json:"total_count"`
	Previous      *int  `json:"previous,omitempty"`
	Next          *int  `json:"next,omitempty"`
	PagesLeft     []int `json:"pages_left,omitempty"`
	PagesRight    []int `json:"pages_right,omitempty"`
	LeftEllipsis  bool  `json:"left_ellipsis,omitempty"`
	RightEllipsis bool  `json:"right_ellipsis,omitempty"`
}

// Empty 는 렌더링할 네비게이션이 없는 경우 true 다.
func (v View) Empty() bool {
	return v.Total == 0
}

// Compute 는 전체 건수와 현재 페이지로부터 "1 … 4 5 [6] 7 8 … 20" 형태의
// 네비게이션을 계산한다. 범위를 벗어난 current 도 에러 없이 처리한다.
func Compute(totalCount int64, pageSize, current int) View {
	totalPages := TotalPages(totalCount, pageSize)
	if totalPages == 0 {
		return View{}
	}

	v := View{
		Current:    current,
		Total:      totalPages,
		TotalCount: totalCount,
	}
	if current > 1 {
		prev := current - 1
		v.Previous = &prev
	}
	if current < totalPages {
		next := current + 1
		v.Next = &next
	}

	lower := current - window
	upper := current + window
	if lower > 2 {
		v.LeftEllipsis = true
	} else {
		lower = 1
	}
	if upper < totalPages-1 {
		v.RightEllipsis = true
	} else {
		upper = totalPages
	}

	for p := lower; p < current; p++ {
		v.PagesLeft = append(v.PagesLeft, p)
	}
	for p := current + 1; p <= upper; p++ {
		v.PagesRight = append(v.PagesRight, p)
	}
	return v
}

// Page 는 한 페이지 분량의 레코드와 네비게이션을 함께 담는다.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalCount int64
	View       View
}

// NewPage 는 조회 결과로부터 Page 를 구성한다. items 가 nil 이면 빈 슬라이스로 바꾼다.
func NewPage[T any](items []T, req Request, totalCount int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Number:     req.Number,
		Size:       req.PageSize(),
		TotalCount: totalCount,
		View:       Compute(totalCount, req.PageSize(), req.Number),
	}
}

// Map 은 Page 의 레코드 타입을 바꾼다. 네비게이션 정보는 그대로 유지된다.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		out = append(out, fn(item))
	}
	return Page[U]{
		Items:      out,
		Number:     p.Number,
		Size:       p.Size,
		TotalCount: p.TotalCount,
		View:       p.View,
	}
}
