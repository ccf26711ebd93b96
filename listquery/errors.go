package listquery

import (
	"errors"
	"fmt"
)

// InvalidPageError 는 1 미만의 페이지 번호가 요청된 경우 반환된다.
type InvalidPageError struct {
	Page int
}

func (e *InvalidPageError) Error() string {
	return fmt.Sprintf("invalid page number %d: must be >= 1", e.Page)
}

// InvalidFilterError 는 엔티티의 허용 목록에 없는 컬럼(또는 지원하지 않는 연산자)으로
// 필터를 구성하려 한 경우 반환된다.
type InvalidFilterError struct {
	Column string
	Op     Op
}

func (e *InvalidFilterError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("invalid filter: unsupported operator %q on column %q", e.Op, e.Column)
	}
	return fmt.Sprintf("invalid filter: column %q is not allowed", e.Column)
}

// IsInvalidPage reports whether err wraps an *InvalidPageError.
func IsInvalidPage(err error) bool {
	var target *InvalidPageError
	return errors.As(err, &target)
}

// IsInvalidFilter reports whether err wraps an *InvalidFilterError.
func IsInvalidFilter(err error) bool {
	var target *InvalidFilterError
	return errors.As(err, &target)
}
