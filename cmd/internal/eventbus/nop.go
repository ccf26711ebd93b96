package eventbus

import (
	"context"

	"flight-booking/cmd/internal/logger"
)

// NopBus 는 Kafka 가 설정되지 않은 환경(로컬 개발, 테스트)에서 쓰는 EventBus 다.
// Publish 는 디버그 로그만 남기고 성공한다.
type NopBus struct{}

func (NopBus) Publish(_ context.Context, topic string, event Event) error {
	logger.DebugWithFields("event dropped (no broker)", logger.Fields{
		"topic":    topic,
		"event_id": event.ID,
	})
	return nil
}

// Subscribe 는 ctx 가 끝날 때까지 대기한다.
func (NopBus) Subscribe(ctx context.Context, _ string, _ Topic, _ EventHandler) error {
	<-ctx.Done()
	return ctx.Err()
}

func (NopBus) StartRetryReinjector(ctx context.Context, _ string, _ Topic) error {
	<-ctx.Done()
	return ctx.Err()
}

func (NopBus) Close() {}
