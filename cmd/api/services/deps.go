package services

import (
	"context"
	"time"

	"flight-booking/cmd/api/trace"
	"flight-booking/cmd/internal/logger"
	"flight-booking/events"
	"flight-booking/models"
	"flight-booking/pagination"
)

// EventSource 는 API 서버가 발행하는 이벤트의 source 값이다.
const EventSource = "api"

// Publisher 는 커밋이 끝난 변경을 이벤트로 내보낸다.
type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// SessionStore 는 브라우저 세션 저장소다. (MongoDB sessions 컬렉션)
type SessionStore interface {
	Create(ctx context.Context, s *models.Session) error
	FindValid(ctx context.Context, token string, now time.Time) (*models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}

// EventLog 는 notifier 가 기록한 예약 감사 로그 조회용이다.
type EventLog interface {
	List(ctx context.Context, page pagination.Request) (pagination.Page[models.BookingEvent], error)
}

// newBase 는 요청의 request/span id 를 붙인 BaseEvent 를 만든다.
func newBase(ctx context.Context, t events.EventType) events.BaseEvent {
	base := events.NewBaseEvent(t, EventSource)
	base.RequestID, base.SpanID = trace.NextSpanID(ctx)
	return base
}

// publish 는 커밋 이후에 호출된다. 실패해도 요청은 성공으로 처리하고 로그만 남긴다.
func publish(ctx context.Context, pub Publisher, e events.Event) {
	if pub == nil {
		return
	}
	base := e.Base()
	if err := pub.Publish(ctx, e); err != nil {
		logger.ErrorWithFields("event publish failed", logger.Fields{
			"event_id":   base.ID,
			"event_type": string(base.Type),
			"request_id": base.RequestID,
			"span_id":    base.SpanID,
			"error":      err.Error(),
		})
		return
	}
	logger.DebugWithFields("event published", logger.Fields{
		"event_id":   base.ID,
		"event_type": string(base.Type),
		"request_id": base.RequestID,
		"span_id":    base.SpanID,
	})
}
