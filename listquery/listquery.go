// Package listquery 는 목록/검색 화면에서 공통으로 사용하는 COUNT 쿼리와
// 페이지 쿼리를 한 번에 구성한다. 값은 항상 PostgreSQL 바인딩 파라미터($n)로만
// 전달되며 SQL 문자열에 직접 이어붙이지 않는다.
package listquery

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"flight-booking/pagination"
)

// Op 는 필터 비교 연산자다.
type Op string

const (
	OpEqual   Op = "="
	OpLess    Op = "<"
	OpGreater Op = ">"
)

// Filter 는 하나의 컬럼에 대한 선택적 조건이다.
// Value 가 nil, nil 포인터, 빈 문자열이면 WHERE 절에서 제외된다.
type Filter struct {
	Column string
	Value  any
	Op     Op
}

// Equal 은 column = value 필터를 만든다.
func Equal(column string, value any) Filter {
	return Filter{Column: column, Value: value, Op: OpEqual}
}

// Less 는 column < value 필터를 만든다.
func Less(column string, value any) Filter {
	return Filter{Column: column, Value: value, Op: OpLess}
}

// Greater 는 column > value 필터를 만든다.
func Greater(column string, value any) Filter {
	return Filter{Column: column, Value: value, Op: OpGreater}
}

// Condition 은 호출자가 고정으로 추가하는 조건이다. SQL 안의 '?' 는 순서대로
// $n 으로 치환되며, Args 개수와 반드시 일치해야 한다.
type Condition struct {
	SQL  string
	Args []any
}

// Where 는 Condition 생성 헬퍼다.
func Where(sql string, args ...any) Condition {
	return Condition{SQL: sql, Args: args}
}

// AllowList 는 엔티티별로 필터에 사용할 수 있는 컬럼 집합이다.
type AllowList map[string]struct{}

// Columns 는 주어진 컬럼들로 AllowList 를 만든다.
func Columns(columns ...string) AllowList {
	allow := make(AllowList, len(columns))
	for _, c := range columns {
		allow[c] = struct{}{}
	}
	return allow
}

func (a AllowList) Allows(column string) bool {
	_, ok := a[column]
	return ok
}

// Spec 은 하나의 목록 쿼리 정의다.
type Spec struct {
	// From 은 FROM/JOIN 절이다. (예: "orders o JOIN flightinfo f ON f.flight_number = o.flight_number")
	From string
	// Select 는 projection 이다. 비어 있으면 "*".
	Select  string
	OrderBy string
	Allowed AllowList
	Filters []Filter
	Where   []Condition
}

// Query 는 실행 가능한 SQL 과 바인딩 값 묶음이다.
type Query struct {
	SQL  string
	Args []any
}

// Queries 는 동일한 WHERE 의미를 공유하는 COUNT/페이지 쿼리 쌍이다.
type Queries struct {
	Count Query
	Page  Query
}

// Build 는 spec 과 page 로부터 COUNT 쿼리와 페이지 쿼리를 만든다.
// 필터 컬럼 검증이 가장 먼저 수행되므로 허용되지 않은 컬럼은 SQL 구성 단계에 도달하지 않는다.
func Build(spec Spec, page pagination.Request) (Queries, error) {
	for _, f := range spec.Filters {
		if !spec.Allowed.Allows(f.Column) {
			return Queries{}, &InvalidFilterError{Column: f.Column}
		}
		switch f.Op {
		case "", OpEqual, OpLess, OpGreater:
		default:
			return Queries{}, &InvalidFilterError{Column: f.Column, Op: f.Op}
		}
	}
	if page.Number < 1 {
		return Queries{}, &InvalidPageError{Page: page.Number}
	}

	var (
		predicates []string
		args       []any
	)
	for _, c := range spec.Where {
		sql, err := bindPlaceholders(c.SQL, len(args)+1, len(c.Args))
		if err != nil {
			return Queries{}, err
		}
		predicates = append(predicates, sql)
		args = append(args, c.Args...)
	}
	for _, f := range spec.Filters {
		value, ok := present(f.Value)
		if !ok {
			continue
		}
		op := f.Op
		if op == "" {
			op = OpEqual
		}
		args = append(args, value)
		predicates = append(predicates, fmt.Sprintf("%s %s $%d", f.Column, op, len(args)))
	}

	where := ""
	if len(predicates) > 0 {
		where = " WHERE " + strings.Join(predicates, " AND ")
	}

	projection := spec.Select
	if projection == "" {
		projection = "*"
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(projection)
	sb.WriteString(" FROM ")
	sb.WriteString(spec.From)
	sb.WriteString(where)
	if spec.OrderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(spec.OrderBy)
	}
	// LIMIT/OFFSET 은 내부에서 계산한 정수이므로 리터럴로 기록한다.
	sb.WriteString(" LIMIT ")
	sb.WriteString(strconv.Itoa(page.PageSize()))
	sb.WriteString(" OFFSET ")
	sb.WriteString(strconv.Itoa(page.Offset()))

	return Queries{
		Count: Query{
			SQL:  "SELECT COUNT(*) FROM " + spec.From + where,
			Args: args,
		},
		Page: Query{
			SQL:  sb.String(),
			Args: args,
		},
	}, nil
}

// bindPlaceholders 는 '?' 마커를 start 부터 시작하는 $n 으로 바꾼다.
func bindPlaceholders(sql string, start, want int) (string, error) {
	var b strings.Builder
	n := 0
	for _, r := range sql {
		if r == '?' {
			b.WriteString("$")
			b.WriteString(strconv.Itoa(start + n))
			n++
			continue
		}
		b.WriteRune(r)
	}
	if n != want {
		return "", fmt.Errorf("listquery: condition %q has %d placeholders, got %d args", sql, n, want)
	}
	return b.String(), nil
}

// present 는 필터 값이 "제공됨" 상태인지 판단하고, 포인터는 역참조한 값을 돌려준다.
// 빈 문자열은 값이 없는 것으로 취급한다.
func present(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	if s, ok := v.(string); ok {
		return s, s != ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		return present(rv.Elem().Interface())
	}
	return v, true
}
