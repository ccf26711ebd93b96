package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	UserRegistered    EventType = "user.registered"
	UserStatusChanged EventType = "user.status_changed"
	OrderPlaced       EventType = "order.placed"
	OrderCancelled    EventType = "order.cancelled"
	FlightCancelled   EventType = "flight.cancelled"
)

const Version = "1"

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"` // "api", "flightctl" 등
	Version   string    `json:"version"`
	RequestID string    `json:"request_id,omitempty"`
	SpanID    string    `json:"span_id,omitempty"`
}

// NewBaseEvent 는 새 이벤트 ID 와 현재 시각으로 BaseEvent 를 만든다.
func NewBaseEvent(t EventType, source string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now().UTC(),
		Source:    source,
		Version:   Version,
	}
}

// GetType 이벤트 타입을 반환
func (e BaseEvent) GetType() EventType {
	return e.Type
}

// Event 는 모든 예약 이벤트가 만족하는 인터페이스다.
type Event interface {
	GetType() EventType
	Base() BaseEvent
}

func (e BaseEvent) Base() BaseEvent { return e }

// UserRegisteredEvent 회원 가입(또는 관리자 추가) 완료 이벤트
type UserRegisteredEvent struct {
	BaseEvent
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UserStatusChangedEvent 관리자에 의한 활성/비활성 전환 이벤트
type UserStatusChangedEvent struct {
	BaseEvent
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
	Actor    string `json:"actor"`
}

// OrderPlacedEvent 좌석 예약 완료 이벤트
type OrderPlacedEvent struct {
	BaseEvent
	Username       string `json:"username"`
	FlightNumber   string `json:"flight_number"`
	AvailableSeats int    `json:"available_seats"`
}

// OrderCancelledEvent 예약 취소 이벤트. Actor 는 본인 또는 관리자 이름이다.
type OrderCancelledEvent struct {
	BaseEvent
	Username     string `json:"username"`
	FlightNumber string `json:"flight_number"`
	Actor        string `json:"actor"`
}

// FlightCancelledEvent 관리자에 의한 항공편 취소 이벤트
type FlightCancelledEvent struct {
	BaseEvent
	FlightNumber string `json:"flight_number"`
	Actor        string `json:"actor"`
}

// PeekType 은 페이로드에서 type 필드만 먼저 읽는다.
func PeekType(data []byte) (EventType, error) {
	var peek struct {
		Type EventType `json:"type"`
	}
	if err := json.Unmarshal(data, &peek); err != nil {
		return "", fmt.Errorf("failed to read event type: %w", err)
	}
	return peek.Type, nil
}

// DeserializeEvent 이벤트 타입에 따라 적절한 구조체로 역직렬화
func DeserializeEvent(data []byte) (Event, error) {
	eventType, err := PeekType(data)
	if err != nil {
		return nil, err
	}

	var event Event
	switch eventType {
	case UserRegistered:
		event = &UserRegisteredEvent{}
	case UserStatusChanged:
		event = &UserStatusChangedEvent{}
	case OrderPlaced:
		event = &OrderPlacedEvent{}
	case OrderCancelled:
		event = &OrderCancelledEvent{}
	case FlightCancelled:
		event = &FlightCancelledEvent{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	if err := json.Unmarshal(data, event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return event, nil
}

// PartitionKey 는 같은 항공편(또는 사용자)의 이벤트가 한 파티션에 모이도록 하는 키다.
func PartitionKey(e Event) string {
	switch ev := e.(type) {
	case *OrderPlacedEvent:
		return ev.FlightNumber
	case *OrderCancelledEvent:
		return ev.FlightNumber
	case *FlightCancelledEvent:
		return ev.FlightNumber
	case *UserRegisteredEvent:
		return ev.Username
	case *UserStatusChangedEvent:
		return ev.Username
	}
	return e.Base().ID
}
