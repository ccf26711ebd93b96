package eventbus

import (
	"context"
	"fmt"

	"flight-booking/events"
)

// BookingPublisher 는 도메인 이벤트를 Event 봉투에 담아 예약 토픽으로 발행한다.
type BookingPublisher struct {
	bus      EventBus
	topic    Topic
	maxRetry int
}

func NewBookingPublisher(bus EventBus, maxRetry int) *BookingPublisher {
	return &BookingPublisher{bus: bus, topic: TopicBookingEvents, maxRetry: maxRetry}
}

func (p *BookingPublisher) Publish(ctx context.Context, e events.Event) error {
	base := e.Base()
	env, err := NewJSONEvent(base.ID, e, p.maxRetry)
	if err != nil {
		return err
	}
	env.Key = events.PartitionKey(e)
	if err := p.bus.Publish(ctx, p.topic.Base(), env); err != nil {
		return fmt.Errorf("publish %s (%s): %w", base.Type, base.ID, err)
	}
	return nil
}
