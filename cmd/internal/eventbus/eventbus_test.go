package eventbus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-booking/events"
)

func TestTopicNames(t *testing.T) {
	topic := NewTopic("flight-booking.booking.events")

	assert.Equal(t, "flight-booking.booking.events", topic.Base())
	assert.Equal(t, "flight-booking.booking.events.dlq", topic.DLQ())
	assert.Equal(t, []string{
		"flight-booking.booking.events.retry.10s",
		"flight-booking.booking.events.retry.30s",
		"flight-booking.booking.events.retry.1m0s",
		"flight-booking.booking.events.retry.5m0s",
	}, topic.GetRetryTopics())
}

func TestGetRetryTopic(t *testing.T) {
	topic := NewTopic("t")

	name, err := topic.GetRetryTopic(1)
	require.NoError(t, err)
	assert.Equal(t, "t.retry.10s", name)

	_, err = topic.GetRetryTopic(0)
	assert.ErrorIs(t, err, ErrMaxRetryExceeded)
	_, err = topic.GetRetryTopic(len(RetryDelays) + 1)
	assert.ErrorIs(t, err, ErrMaxRetryExceeded)
}

func TestParseRetryDelayFromTopicName(t *testing.T) {
	tests := []struct {
		name string
		want time.Duration
		ok   bool
	}{
		{"flight-booking.booking.events.retry.30s", 30 * time.Second, true},
		{"flight-booking.booking.events.retry.1m0s", time.Minute, true},
		{"flight-booking.booking.events.retry.2m0s", 0, false},
		{"flight-booking.booking.events.retry.", 0, false},
		{"flight-booking.booking.events", 0, false},
		{"x.retry.soon", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRetryDelayFromTopicName(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewJSONEventClampsMaxRetry(t *testing.T) {
	ev, err := NewJSONEvent("", map[string]int{"n": 1}, 99)
	require.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, len(RetryDelays), ev.MaxRetry)

	ev, err = NewJSONEvent("fixed", map[string]int{"n": 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, "fixed", ev.ID)
	assert.Equal(t, 2, ev.MaxRetry)

	decoded, err := DecodeJSON[map[string]int](ev)
	require.NoError(t, err)
	assert.Equal(t, 1, decoded["n"])
}

func TestPartitionKeyFallsBackToID(t *testing.T) {
	assert.Equal(t, []byte("KE1"), Event{ID: "a", Key: "KE1"}.partitionKey())
	assert.Equal(t, []byte("a"), Event{ID: "a"}.partitionKey())
}

type recordingBus struct {
	NopBus
	topic string
	got   []Event
	err   error
}

func (b *recordingBus) Publish(_ context.Context, topic string, event Event) error {
	if b.err != nil {
		return b.err
	}
	b.topic = topic
	b.got = append(b.got, event)
	return nil
}

func TestBookingPublisherWrapsEvent(t *testing.T) {
	bus := &recordingBus{}
	pub := NewBookingPublisher(bus, 3)

	e := &events.OrderPlacedEvent{
		BaseEvent:      events.NewBaseEvent(events.OrderPlaced, "api"),
		Username:       "alice",
		FlightNumber:   "KE123",
		AvailableSeats: 41,
	}
	require.NoError(t, pub.Publish(context.Background(), e))

	require.Len(t, bus.got, 1)
	env := bus.got[0]
	assert.Equal(t, TopicBookingEvents.Base(), bus.topic)
	assert.Equal(t, e.ID, env.ID)
	assert.Equal(t, "KE123", env.Key)
	assert.Equal(t, 3, env.MaxRetry)
	assert.Zero(t, env.Retry)

	back, err := events.DeserializeEvent(env.Payload)
	require.NoError(t, err)
	placed, ok := back.(*events.OrderPlacedEvent)
	require.True(t, ok)
	assert.Equal(t, 41, placed.AvailableSeats)
}

func TestBookingPublisherWrapsBusError(t *testing.T) {
	bus := &recordingBus{err: errors.New("broker down")}
	pub := NewBookingPublisher(bus, 0)

	e := &events.FlightCancelledEvent{
		BaseEvent:    events.NewBaseEvent(events.FlightCancelled, "api"),
		FlightNumber: "KE123",
	}
	err := pub.Publish(context.Background(), e)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "flight.cancelled")
	assert.Contains(t, err.Error(), "broker down")
}

func TestNopBusSubscribeReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NopBus{}.Subscribe(ctx, "g", TopicBookingEvents, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, NopBus{}.Publish(context.Background(), "t", Event{ID: "x"}))
}
