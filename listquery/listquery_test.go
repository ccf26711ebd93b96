package listquery

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-booking/pagination"
)

var flightColumns = Columns("departure", "destination", "airline")

func flightSpec(filters ...Filter) Spec {
	return Spec{
		From:    "flightinfo",
		OrderBy: "dept_time ASC",
		Allowed: flightColumns,
		Filters: filters,
	}
}

func TestBuildWithoutActiveFiltersOmitsWhere(t *testing.T) {
	testCases := []struct {
		name    string
		filters []Filter
	}{
		{name: "no filters"},
		{name: "all empty strings", filters: []Filter{
			Equal("departure", ""),
			Equal("destination", ""),
			Equal("airline", ""),
		}},
		{name: "nil values", filters: []Filter{
			Equal("departure", nil),
			Equal("airline", (*string)(nil)),
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := Build(flightSpec(tc.filters...), pagination.NewRequest(1))
			require.NoError(t, err)

			assert.Equal(t, "SELECT COUNT(*) FROM flightinfo", q.Count.SQL)
			assert.Equal(t, "SELECT * FROM flightinfo ORDER BY dept_time ASC LIMIT 10 OFFSET 0", q.Page.SQL)
			assert.Empty(t, q.Count.Args)
			assert.Empty(t, q.Page.Args)
		})
	}
}

func TestBuildKeepsFilterOrderAndBindsValues(t *testing.T) {
	q, err := Build(flightSpec(
		Equal("departure", "Seoul"),
		Equal("destination", ""),
		Equal("airline", "Korean Air"),
	), pagination.NewRequest(3))
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM flightinfo WHERE departure = $1 AND airline = $2", q.Count.SQL)
	assert.Equal(t,
		"SELECT * FROM flightinfo WHERE departure = $1 AND airline = $2 ORDER BY dept_time ASC LIMIT 10 OFFSET 20",
		q.Page.SQL)
	assert.Equal(t, []any{"Seoul", "Korean Air"}, q.Count.Args)
	assert.Equal(t, q.Count.Args, q.Page.Args)
}

func TestBuildNeverInlinesValues(t *testing.T) {
	injection := "x' OR '1'='1"
	q, err := Build(flightSpec(Equal("airline", injection)), pagination.NewRequest(1))
	require.NoError(t, err)

	assert.NotContains(t, q.Count.SQL, injection)
	assert.NotContains(t, q.Page.SQL, injection)
	assert.Equal(t, []any{injection}, q.Page.Args)
}

func TestBuildRejectsPageBelowOne(t *testing.T) {
	for _, page := range []int{0, -1} {
		_, err := Build(flightSpec(), pagination.NewRequest(page))

		var pageErr *InvalidPageError
		require.True(t, errors.As(err, &pageErr), "page %d", page)
		assert.Equal(t, page, pageErr.Page)
		assert.True(t, IsInvalidPage(err))
	}
}

func TestBuildRejectsColumnOutsideAllowList(t *testing.T) {
	// 값이 비어 있어도 허용되지 않은 컬럼은 거부된다.
	for _, value := range []any{"1", ""} {
		q, err := Build(flightSpec(Equal("password", value)), pagination.NewRequest(1))

		var filterErr *InvalidFilterError
		require.True(t, errors.As(err, &filterErr))
		assert.Equal(t, "password", filterErr.Column)
		assert.True(t, IsInvalidFilter(err))
		assert.Empty(t, q.Count.SQL)
		assert.Empty(t, q.Page.SQL)
	}
}

func TestBuildFilterErrorTakesPrecedenceOverPage(t *testing.T) {
	_, err := Build(flightSpec(Equal("1=1; --", "x")), pagination.NewRequest(0))
	assert.True(t, IsInvalidFilter(err))
	assert.False(t, IsInvalidPage(err))
}

func TestBuildRejectsUnknownOperator(t *testing.T) {
	_, err := Build(flightSpec(Filter{Column: "airline", Value: "x", Op: "LIKE"}), pagination.NewRequest(1))
	assert.True(t, IsInvalidFilter(err))
}

func TestBuildWithProjectionConditionsAndComparisons(t *testing.T) {
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	spec := Spec{
		From:    "orders o JOIN flightinfo f ON f.flight_number = o.flight_number",
		Select:  "o.id AS order_id, f.flight_number",
		OrderBy: "f.dept_time",
		Allowed: Columns("f.departure", "f.dept_time"),
		Where:   []Condition{Where("o.username = ?", "alice")},
		Filters: []Filter{
			Equal("f.departure", "Busan"),
			Less("f.dept_time", &at),
		},
	}

	q, err := Build(spec, pagination.NewRequest(2))
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT COUNT(*) FROM orders o JOIN flightinfo f ON f.flight_number = o.flight_number "+
			"WHERE o.username = $1 AND f.departure = $2 AND f.dept_time < $3",
		q.Count.SQL)
	assert.Equal(t,
		"SELECT o.id AS order_id, f.flight_number FROM orders o JOIN flightinfo f ON f.flight_number = o.flight_number "+
			"WHERE o.username = $1 AND f.departure = $2 AND f.dept_time < $3 ORDER BY f.dept_time LIMIT 10 OFFSET 10",
		q.Page.SQL)
	assert.Equal(t, []any{"alice", "Busan", at}, q.Page.Args)
}

func TestBuildConditionPlaceholderMismatch(t *testing.T) {
	spec := flightSpec()
	spec.Where = []Condition{Where("flight_number NOT IN (SELECT flight_number FROM orders WHERE username = ?)")}

	_, err := Build(spec, pagination.NewRequest(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "placeholders")
}

func TestBuildPageBeyondLastPageIsNotAnError(t *testing.T) {
	q, err := Build(flightSpec(), pagination.NewRequest(1000))
	require.NoError(t, err)
	assert.Contains(t, q.Page.SQL, "OFFSET 9990")
}

func TestPresent(t *testing.T) {
	empty := ""
	value := "ICN"
	active := false

	testCases := []struct {
		name      string
		in        any
		wantValue any
		wantOK    bool
	}{
		{name: "nil", in: nil, wantOK: false},
		{name: "empty string", in: "", wantOK: false},
		{name: "pointer to empty string", in: &empty, wantOK: false},
		{name: "pointer to value", in: &value, wantValue: "ICN", wantOK: true},
		{name: "false bool pointer is present", in: &active, wantValue: false, wantOK: true},
		{name: "zero int is present", in: 0, wantValue: 0, wantOK: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := present(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantValue, got)
			}
		})
	}
}
