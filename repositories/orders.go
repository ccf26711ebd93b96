package repositories

import (
	"context"
	"fmt"
	"time"

	"flight-booking/listquery"
	"flight-booking/models"
	"flight-booking/pagination"
)

const orderDetailFrom = "orders o JOIN flightinfo f ON f.flight_number = o.flight_number"

// orderDetailSelect 는 models.OrderDetail 의 db 태그와 1:1 로 맞춘 projection 이다.
const orderDetailSelect = "o.id AS order_id, o.username, o.flight_number, f.departure, f.destination, " +
	"f.dept_time, f.dept_ap, f.arrv_time, f.arrv_ap, f.airline, f.price, o.created_at AS ordered_at"

var orderColumns = listquery.Columns(
	"o.username", "o.flight_number",
	"f.departure", "f.destination", "f.airline",
	"f.dept_time", "f.arrv_time",
)

// TimeBound 는 출발/도착 시각 비교 조건이다. Before 면 '<', 아니면 '>'.
type TimeBound struct {
	Before bool
	At     time.Time
}

func (b *TimeBound) filter(column string) listquery.Filter {
	if b == nil {
		return listquery.Equal(column, nil)
	}
	if b.Before {
		return listquery.Less(column, b.At)
	}
	return listquery.Greater(column, b.At)
}

// OrderFilter 는 주문(⋈ 항공편) 목록/검색 조건이다.
type OrderFilter struct {
	Username     string
	FlightNumber string
	Departure    string
	Destination  string
	Airline      string
	DeptTime     *TimeBound
	ArrvTime     *TimeBound
}

func (f OrderFilter) filters() []listquery.Filter {
	return []listquery.Filter{
		listquery.Equal("o.username", f.Username),
		listquery.Equal("o.flight_number", f.FlightNumber),
		listquery.Equal("f.departure", f.Departure),
		listquery.Equal("f.destination", f.Destination),
		listquery.Equal("f.airline", f.Airline),
		f.DeptTime.filter("f.dept_time"),
		f.ArrvTime.filter("f.arrv_time"),
	}
}

type orderRepo struct {
	db DBTX
}

func (r *orderRepo) Create(ctx context.Context, username, flightNumber string) (models.Order, error) {
	o, err := getOne[models.Order](ctx, r.db, `
		INSERT INTO orders (username, flight_number) VALUES ($1, $2)
		RETURNING id, username, flight_number, created_at`,
		username, flightNumber,
	)
	if err != nil {
		return models.Order{}, fmt.Errorf("insert order %s/%s: %w", username, flightNumber, mapError(err))
	}
	return o, nil
}

func (r *orderRepo) Delete(ctx context.Context, username, flightNumber string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM orders WHERE username = $1 AND flight_number = $2`, username, flightNumber)
	if err != nil {
		return fmt.Errorf("delete order %s/%s: %w", username, flightNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepo) CountByFlight(ctx context.Context, flightNumber string) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE flight_number = $1`, flightNumber,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders of %s: %w", flightNumber, err)
	}
	return n, nil
}

// RenameUser 는 사용자 이름 변경 시 주문의 조인 키를 함께 옮긴다.
func (r *orderRepo) RenameUser(ctx context.Context, from, to string) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET username = $2 WHERE username = $1`, from, to)
	if err != nil {
		return 0, fmt.Errorf("rename orders %s -> %s: %w", from, to, mapError(err))
	}
	return tag.RowsAffected(), nil
}

func (r *orderRepo) List(ctx context.Context, f OrderFilter, page pagination.Request) (pagination.Page[models.OrderDetail], error) {
	return listPage[models.OrderDetail](ctx, r.db, listquery.Spec{
		From:    orderDetailFrom,
		Select:  orderDetailSelect,
		OrderBy: "f.dept_time, o.id",
		Allowed: orderColumns,
		Filters: f.filters(),
	}, page)
}
