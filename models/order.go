package models

import "time"

// Order links a user to a flight. username/flight_number are the join keys.
// Table: orders
type Order struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	FlightNumber string    `db:"flight_number" json:"flight_number"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// OrderDetail 는 orders ⋈ flightinfo 조회 결과 한 행이다.
type OrderDetail struct {
	OrderID      int64     `db:"order_id" json:"order_id"`
	Username     string    `db:"username" json:"username"`
	FlightNumber string    `db:"flight_number" json:"flight_number"`
	Departure    string    `db:"departure" json:"departure"`
	Destination  string    `db:"destination" json:"destination"`
	DeptTime     time.Time `db:"dept_time" json:"dept_time"`
	DeptAirport  string    `db:"dept_ap" json:"dept_ap"`
	ArrvTime     time.Time `db:"arrv_time" json:"arrv_time"`
	ArrvAirport  string    `db:"arrv_ap" json:"arrv_ap"`
	Airline      string    `db:"airline" json:"airline"`
	Price        float64   `db:"price" json:"price"`
	OrderedAt    time.Time `db:"ordered_at" json:"ordered_at"`
}
