package main

import (
	"context"
	"fmt"

	"flight-booking/cmd/internal/eventbus"
	"flight-booking/cmd/internal/logger"
	"flight-booking/events"
	"flight-booking/models"
)

// EventStore 는 감사 로그 저장소다. 중복 event_id 는 (false, nil) 을 돌려준다.
type EventStore interface {
	Insert(ctx context.Context, e *models.BookingEvent) (bool, error)
}

// Recorder 는 예약 토픽의 이벤트를 감사 로그로 남긴다.
type Recorder struct {
	store EventStore
}

func NewRecorder(store EventStore) *Recorder {
	return &Recorder{store: store}
}

// Handle 은 eventbus.EventHandler 시그니처다. 에러를 돌려주면 재시도 토픽으로 보내진다.
func (r *Recorder) Handle(ctx context.Context, ev eventbus.Event) error {
	e, err := events.DeserializeEvent(ev.Payload)
	if err != nil {
		// 모르는 타입은 재시도해도 해결되지 않으므로 커밋한다.
		logger.WarnWithFields("skip undecodable booking event", logger.Fields{
			"event_id": ev.ID,
			"error":    err.Error(),
		})
		return nil
	}

	record := toBookingEvent(e)
	inserted, err := r.store.Insert(ctx, &record)
	if err != nil {
		return fmt.Errorf("record %s (%s): %w", record.Type, record.EventID, err)
	}

	base := e.Base()
	fields := logger.Fields{
		"event_id":      record.EventID,
		"event_type":    record.Type,
		"username":      record.Username,
		"flight_number": record.FlightNumber,
		"request_id":    base.RequestID,
		"retry":         ev.Retry,
	}
	if !inserted {
		logger.DebugWithFields("duplicate booking event ignored", fields)
		return nil
	}
	logger.InfoWithFields(notice(e), fields)
	return nil
}

func toBookingEvent(e events.Event) models.BookingEvent {
	base := e.Base()
	out := models.BookingEvent{
		EventID:    base.ID,
		Type:       string(base.Type),
		OccurredAt: base.Timestamp,
	}
	switch ev := e.(type) {
	case *events.UserRegisteredEvent:
		out.Username = ev.Username
	case *events.UserStatusChangedEvent:
		out.Username = ev.Username
		out.Actor = ev.Actor
	case *events.OrderPlacedEvent:
		out.Username = ev.Username
		out.FlightNumber = ev.FlightNumber
		out.Actor = ev.Username
	case *events.OrderCancelledEvent:
		out.Username = ev.Username
		out.FlightNumber = ev.FlightNumber
		out.Actor = ev.Actor
	case *events.FlightCancelledEvent:
		out.FlightNumber = ev.FlightNumber
		out.Actor = ev.Actor
	}
	return out
}

// notice 는 운영 로그에 남길 한 줄 요약이다.
func notice(e events.Event) string {
	switch ev := e.(type) {
	case *events.UserRegisteredEvent:
		if ev.IsSuperuser {
			return fmt.Sprintf("superuser %s registered", ev.Username)
		}
		return fmt.Sprintf("user %s registered", ev.Username)
	case *events.UserStatusChangedEvent:
		if ev.IsActive {
			return fmt.Sprintf("user %s activated by %s", ev.Username, ev.Actor)
		}
		return fmt.Sprintf("user %s deactivated by %s", ev.Username, ev.Actor)
	case *events.OrderPlacedEvent:
		return fmt.Sprintf("%s booked %s (%d seats left)", ev.Username, ev.FlightNumber, ev.AvailableSeats)
	case *events.OrderCancelledEvent:
		return fmt.Sprintf("order %s/%s cancelled by %s", ev.Username, ev.FlightNumber, ev.Actor)
	case *events.FlightCancelledEvent:
		return fmt.Sprintf("flight %s cancelled by %s", ev.FlightNumber, ev.Actor)
	}
	return string(e.GetType())
}
