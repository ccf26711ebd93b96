package dto

import (
	"time"

	"flight-booking/models"
)

type OrderDTO struct {
	ID           int64     `json:"id" example:"10"`
	Username     string    `json:"username" example:"alice"`
	FlightNumber string    `json:"flight_number" example:"KE123"`
	CreatedAt    time.Time `json:"created_at" example:"2026-02-01T10:00:00Z"`
}

func NewOrderDTO(o models.Order) OrderDTO {
	return OrderDTO{ID: o.ID, Username: o.Username, FlightNumber: o.FlightNumber, CreatedAt: o.CreatedAt}
}

// OrderDetailDTO 는 예약 + 항공편 정보 한 행이다.
type OrderDetailDTO struct {
	OrderID      int64     `json:"order_id" example:"10"`
	Username     string    `json:"username" example:"alice"`
	FlightNumber string    `json:"flight_number" example:"KE123"`
	Departure    string    `json:"departure" example:"Seoul"`
	Destination  string    `json:"destination" example:"Tokyo"`
	DeptTime     time.Time `json:"dept_time" example:"2026-03-01T09:00:00Z"`
	DeptAirport  string    `json:"dept_ap" example:"ICN"`
	ArrvTime     time.Time `json:"arrv_time" example:"2026-03-01T11:20:00Z"`
	ArrvAirport  string    `json:"arrv_ap" example:"NRT"`
	Airline      string    `json:"airline" example:"Korean Air"`
	Price        float64   `json:"price" example:"320.5"`
	OrderedAt    time.Time `json:"ordered_at" example:"2026-02-01T10:00:00Z"`
}

func NewOrderDetailDTO(o models.OrderDetail) OrderDetailDTO {
	return OrderDetailDTO{
		OrderID:      o.OrderID,
		Username:     o.Username,
		FlightNumber: o.FlightNumber,
		Departure:    o.Departure,
		Destination:  o.Destination,
		DeptTime:     o.DeptTime,
		DeptAirport:  o.DeptAirport,
		ArrvTime:     o.ArrvTime,
		ArrvAirport:  o.ArrvAirport,
		Airline:      o.Airline,
		Price:        o.Price,
		OrderedAt:    o.OrderedAt,
	}
}

// AdminOrderQuery 는 관리자 주문 검색 쿼리다.
// dept_boa/arrv_boa 는 before 또는 after 이고 dept_time/arrv_time 과 함께 쓴다.
type AdminOrderQuery struct {
	FlightNumber string `form:"flight_number"`
	Departure    string `form:"departure"`
	Destination  string `form:"destination"`
	Airline      string `form:"airline"`
	Username     string `form:"username"`
	DeptBoa      string `form:"dept_boa" binding:"omitempty,boa"`
	DeptTime     string `form:"dept_time"`
	ArrvBoa      string `form:"arrv_boa" binding:"omitempty,boa"`
	ArrvTime     string `form:"arrv_time"`
}

// AdminDeleteOrderRequest 는 관리자 주문 삭제 요청이다.
type AdminDeleteOrderRequest struct {
	FlightNumber string `json:"flight_number" form:"flight_number" binding:"required,flightno" example:"KE123"`
	Username     string `json:"username" form:"username" binding:"required" example:"alice"`
}
