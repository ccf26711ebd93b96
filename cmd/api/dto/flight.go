package dto

import (
	"time"

	"flight-booking/models"
)

type FlightDTO struct {
	ID            int64     `json:"id" example:"1"`
	FlightNumber  string    `json:"flight_number" example:"KE123"`
	Departure     string    `json:"departure" example:"Seoul"`
	Destination   string    `json:"destination" example:"Tokyo"`
	DeptTime      time.Time `json:"dept_time" example:"2026-03-01T09:00:00Z"`
	DeptAirport   string    `json:"dept_ap" example:"ICN"`
	ArrvTime      time.Time `json:"arrv_time" example:"2026-03-01T11:20:00Z"`
	ArrvAirport   string    `json:"arrv_ap" example:"NRT"`
	Airline       string    `json:"airline" example:"Korean Air"`
	Price         float64   `json:"price" example:"320.5"`
	TotalSeat     int       `json:"total_seat" example:"180"`
	AvailableSeat int       `json:"available_seat" example:"42"`
}

func NewFlightDTO(f models.Flight) FlightDTO {
	return FlightDTO{
		ID:            f.ID,
		FlightNumber:  f.FlightNumber,
		Departure:     f.Departure,
		Destination:   f.Destination,
		DeptTime:      f.DeptTime,
		DeptAirport:   f.DeptAirport,
		ArrvTime:      f.ArrvTime,
		ArrvAirport:   f.ArrvAirport,
		Airline:       f.Airline,
		Price:         f.Price,
		TotalSeat:     f.TotalSeat,
		AvailableSeat: f.AvailableSeat,
	}
}

// FlightSearchQuery 는 항공편/내 예약 검색 쿼리다. 빈 값은 조건에서 빠진다.
type FlightSearchQuery struct {
	Departure   string `form:"departure"`
	Destination string `form:"destination"`
	Airline     string `form:"airline"`
}

// AdminFlightQuery 는 관리자 항공편 검색 쿼리다.
type AdminFlightQuery struct {
	FlightSearchQuery
	FlightNumber string `form:"flight_number" binding:"omitempty,flightno"`
}

// FlightRequest 는 관리자 항공편 추가/재설정 요청이다.
// 시각은 RFC3339 또는 "2006-01-02 15:04" 형식 문자열이다.
type FlightRequest struct {
	FlightNumber string  `json:"flight_number" form:"flight_number" binding:"required,flightno" example:"KE123"`
	Departure    string  `json:"departure" form:"departure" binding:"required" example:"Seoul"`
	Destination  string  `json:"destination" form:"destination" binding:"required" example:"Tokyo"`
	DeptTime     string  `json:"dept_time" form:"dept_time" binding:"required" example:"2026-03-01T09:00:00Z"`
	DeptAirport  string  `json:"dept_ap" form:"dept_ap" example:"ICN"`
	ArrvTime     string  `json:"arrv_time" form:"arrv_time" binding:"required" example:"2026-03-01T11:20:00Z"`
	ArrvAirport  string  `json:"arrv_ap" form:"arrv_ap" example:"NRT"`
	Airline      string  `json:"airline" form:"airline" binding:"required" example:"Korean Air"`
	Price        float64 `json:"price" form:"price" binding:"gte=0" example:"320.5"`
	TotalSeat    int     `json:"total_seat" form:"total_seat" binding:"gte=0" example:"180"`
}

// FlightNumberRequest 는 예약/취소/항공편 취소처럼 항공편 번호 하나만 받는 요청이다.
type FlightNumberRequest struct {
	FlightNumber string `json:"flight_number" form:"flight_number" binding:"required,flightno" example:"KE123"`
}
