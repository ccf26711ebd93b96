package models

import "time"

// Flight represents a scheduled flight with its seat inventory.
// Table: flightinfo
type Flight struct {
	ID            int64     `db:"id" json:"id"`
	FlightNumber  string    `db:"flight_number" json:"flight_number"`
	Departure     string    `db:"departure" json:"departure"`
	Destination   string    `db:"destination" json:"destination"`
	DeptTime      time.Time `db:"dept_time" json:"dept_time"`
	DeptAirport   string    `db:"dept_ap" json:"dept_ap"`
	ArrvTime      time.Time `db:"arrv_time" json:"arrv_time"`
	ArrvAirport   string    `db:"arrv_ap" json:"arrv_ap"`
	Airline       string    `db:"airline" json:"airline"`
	Price         float64   `db:"price" json:"price"`
	TotalSeat     int       `db:"total_seat" json:"total_seat"`
	AvailableSeat int       `db:"available_seat" json:"available_seat"`
}

// OrderedSeats 는 현재 예약되어 있는 좌석 수다.
func (f Flight) OrderedSeats() int {
	return f.TotalSeat - f.AvailableSeat
}
