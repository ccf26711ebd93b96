package repositories

import (
	"context"
	"fmt"

	"flight-booking/listquery"
	"flight-booking/models"
	"flight-booking/pagination"
)

var flightColumns = listquery.Columns("flight_number", "departure", "destination", "airline")

// FlightFilter 는 항공편 목록/검색 조건이다.
// ExcludeOrderedBy 가 지정되면 해당 사용자가 이미 예약한 항공편은 제외한다.
type FlightFilter struct {
	FlightNumber     string
	Departure        string
	Destination      string
	Airline          string
	ExcludeOrderedBy string
}

func (f FlightFilter) spec() listquery.Spec {
	spec := listquery.Spec{
		From:    "flightinfo",
		OrderBy: "dept_time ASC, id",
		Allowed: flightColumns,
		Filters: []listquery.Filter{
			listquery.Equal("flight_number", f.FlightNumber),
			listquery.Equal("departure", f.Departure),
			listquery.Equal("destination", f.Destination),
			listquery.Equal("airline", f.Airline),
		},
	}
	if f.ExcludeOrderedBy != "" {
		spec.Where = append(spec.Where, listquery.Where(
			"flight_number NOT IN (SELECT flight_number FROM orders WHERE username = ?)", f.ExcludeOrderedBy,
		))
	}
	return spec
}

type flightRepo struct {
	db DBTX
}

func (r *flightRepo) GetByNumber(ctx context.Context, number string) (models.Flight, error) {
	return getOne[models.Flight](ctx, r.db, `SELECT * FROM flightinfo WHERE flight_number = $1`, number)
}

func (r *flightRepo) LockByNumber(ctx context.Context, number string) (models.Flight, error) {
	return getOne[models.Flight](ctx, r.db, `SELECT * FROM flightinfo WHERE flight_number = $1 FOR UPDATE`, number)
}

func (r *flightRepo) Create(ctx context.Context, f *models.Flight) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO flightinfo (flight_number, departure, destination, dept_time, dept_ap,
		                        arrv_time, arrv_ap, airline, price, total_seat, available_seat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		f.FlightNumber, f.Departure, f.Destination, f.DeptTime, f.DeptAirport,
		f.ArrvTime, f.ArrvAirport, f.Airline, f.Price, f.TotalSeat, f.AvailableSeat,
	).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("insert flight %s: %w", f.FlightNumber, mapError(err))
	}
	return nil
}

// Update 는 flight_number 를 키로 나머지 컬럼을 모두 갱신한다.
func (r *flightRepo) Update(ctx context.Context, f models.Flight) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE flightinfo
		SET departure = $2, destination = $3, dept_time = $4, dept_ap = $5, arrv_time = $6,
		    arrv_ap = $7, airline = $8, price = $9, total_seat = $10, available_seat = $11
		WHERE flight_number = $1`,
		f.FlightNumber, f.Departure, f.Destination, f.DeptTime, f.DeptAirport, f.ArrvTime,
		f.ArrvAirport, f.Airline, f.Price, f.TotalSeat, f.AvailableSeat,
	)
	if err != nil {
		return fmt.Errorf("update flight %s: %w", f.FlightNumber, mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AdjustAvailableSeats 는 available_seat 에 delta 를 더한다. 음수가 되면 ErrConstraint.
func (r *flightRepo) AdjustAvailableSeats(ctx context.Context, number string, delta int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE flightinfo SET available_seat = available_seat + $2 WHERE flight_number = $1`,
		number, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust seats of %s by %d: %w", number, delta, mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *flightRepo) Delete(ctx context.Context, number string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM flightinfo WHERE flight_number = $1`, number)
	if err != nil {
		return fmt.Errorf("delete flight %s: %w", number, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *flightRepo) List(ctx context.Context, f FlightFilter, page pagination.Request) (pagination.Page[models.Flight], error) {
	return listPage[models.Flight](ctx, r.db, f.spec(), page)
}
