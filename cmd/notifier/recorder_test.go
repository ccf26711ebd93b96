package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-booking/cmd/internal/eventbus"
	"flight-booking/events"
	"flight-booking/models"
)

type memEvents struct {
	byID map[string]models.BookingEvent
	err  error
}

func (m *memEvents) Insert(_ context.Context, e *models.BookingEvent) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.byID[e.EventID]; ok {
		return false, nil
	}
	m.byID[e.EventID] = *e
	return true, nil
}

func envelope(t *testing.T, e events.Event) eventbus.Event {
	t.Helper()
	ev, err := eventbus.NewJSONEvent(e.Base().ID, e, 0)
	require.NoError(t, err)
	return ev
}

func TestRecorderStoresOrderCancelled(t *testing.T) {
	store := &memEvents{byID: map[string]models.BookingEvent{}}
	r := NewRecorder(store)

	e := &events.OrderCancelledEvent{
		BaseEvent:    events.NewBaseEvent(events.OrderCancelled, "api"),
		Username:     "alice",
		FlightNumber: "KE123",
		Actor:        "root",
	}
	require.NoError(t, r.Handle(context.Background(), envelope(t, e)))

	got, ok := store.byID[e.ID]
	require.True(t, ok)
	assert.Equal(t, "order.cancelled", got.Type)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "KE123", got.FlightNumber)
	assert.Equal(t, "root", got.Actor)
	assert.WithinDuration(t, e.Timestamp, got.OccurredAt, time.Millisecond)
}

func TestRecorderIgnoresDuplicates(t *testing.T) {
	store := &memEvents{byID: map[string]models.BookingEvent{}}
	r := NewRecorder(store)

	e := &events.OrderPlacedEvent{
		BaseEvent:      events.NewBaseEvent(events.OrderPlaced, "api"),
		Username:       "bob",
		FlightNumber:   "OZ201",
		AvailableSeats: 3,
	}
	ev := envelope(t, e)
	require.NoError(t, r.Handle(context.Background(), ev))
	ev.Retry = 1
	require.NoError(t, r.Handle(context.Background(), ev))

	assert.Len(t, store.byID, 1)
	assert.Equal(t, "bob", store.byID[e.ID].Actor)
}

func TestRecorderSkipsUnknownType(t *testing.T) {
	store := &memEvents{byID: map[string]models.BookingEvent{}}
	r := NewRecorder(store)

	payload, _ := json.Marshal(map[string]string{"id": "x", "type": "post.created"})
	err := r.Handle(context.Background(), eventbus.Event{ID: "x", Payload: payload})

	assert.NoError(t, err)
	assert.Empty(t, store.byID)
}

func TestRecorderReturnsStoreErrorForRetry(t *testing.T) {
	store := &memEvents{byID: map[string]models.BookingEvent{}, err: errors.New("mongo down")}
	r := NewRecorder(store)

	e := &events.FlightCancelledEvent{
		BaseEvent:    events.NewBaseEvent(events.FlightCancelled, "api"),
		FlightNumber: "KE123",
		Actor:        "root",
	}
	err := r.Handle(context.Background(), envelope(t, e))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo down")
}

func TestNotice(t *testing.T) {
	cases := []struct {
		name string
		in   events.Event
		want string
	}{
		{"superuser", &events.UserRegisteredEvent{Username: "root", IsSuperuser: true}, "superuser root registered"},
		{"deactivated", &events.UserStatusChangedEvent{Username: "bob", Actor: "root"}, "user bob deactivated by root"},
		{"placed", &events.OrderPlacedEvent{Username: "bob", FlightNumber: "KE1", AvailableSeats: 0}, "bob booked KE1 (0 seats left)"},
		{"flight", &events.FlightCancelledEvent{FlightNumber: "KE1", Actor: "root"}, "flight KE1 cancelled by root"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, notice(tc.in))
		})
	}
}
