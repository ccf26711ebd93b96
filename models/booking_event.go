package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingEvent 는 notifier 가 기록하는 예약 감사 로그 한 건이다.
// Collection: booking_events
type BookingEvent struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID      string             `bson:"event_id" json:"event_id"`
	Type         string             `bson:"type" json:"type"`
	Username     string             `bson:"username,omitempty" json:"username,omitempty"`
	FlightNumber string             `bson:"flight_number,omitempty" json:"flight_number,omitempty"`
	Actor        string             `bson:"actor,omitempty" json:"actor,omitempty"`
	OccurredAt   time.Time          `bson:"occurred_at" json:"occurred_at"`
	RecordedAt   time.Time          `bson:"recorded_at" json:"recorded_at"`
}
