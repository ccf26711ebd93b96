package dto

import (
	"time"

	"flight-booking/models"
)

// BookingEventDTO 는 감사 로그 한 건이다.
type BookingEventDTO struct {
	EventID      string    `json:"event_id" example:"0b8f3c9e-8a51-4c53-9c0b-1b2f1e0f2d11"`
	Type         string    `json:"type" example:"order.placed"`
	Username     string    `json:"username,omitempty" example:"alice"`
	FlightNumber string    `json:"flight_number,omitempty" example:"KE123"`
	Actor        string    `json:"actor,omitempty" example:"root"`
	OccurredAt   time.Time `json:"occurred_at" example:"2026-02-01T10:00:00Z"`
	RecordedAt   time.Time `json:"recorded_at" example:"2026-02-01T10:00:01Z"`
}

func NewBookingEventDTO(e models.BookingEvent) BookingEventDTO {
	return BookingEventDTO{
		EventID:      e.EventID,
		Type:         e.Type,
		Username:     e.Username,
		FlightNumber: e.FlightNumber,
		Actor:        e.Actor,
		OccurredAt:   e.OccurredAt,
		RecordedAt:   e.RecordedAt,
	}
}
