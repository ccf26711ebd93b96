package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeserializeEvent(t *testing.T) {
	in := &UserStatusChangedEvent{
		BaseEvent: NewBaseEvent(UserStatusChanged, "api"),
		UserID:    7,
		Username:  "bob",
		IsActive:  false,
		Actor:     "root",
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	out, err := DeserializeEvent(data)
	require.NoError(t, err)

	got, ok := out.(*UserStatusChangedEvent)
	require.True(t, ok)
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, UserStatusChanged, got.GetType())
	assert.Equal(t, Version, got.Version)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "root", got.Actor)
}

func TestDeserializeEventErrors(t *testing.T) {
	_, err := DeserializeEvent([]byte(`{"type":"post.created"}`))
	assert.ErrorContains(t, err, "unknown event type")

	_, err = DeserializeEvent([]byte(`not json`))
	assert.Error(t, err)
}

func TestPartitionKey(t *testing.T) {
	base := NewBaseEvent(OrderPlaced, "api")
	cases := []struct {
		name string
		in   Event
		want string
	}{
		{"order placed", &OrderPlacedEvent{BaseEvent: base, FlightNumber: "KE1", Username: "a"}, "KE1"},
		{"order cancelled", &OrderCancelledEvent{BaseEvent: base, FlightNumber: "KE2", Username: "a"}, "KE2"},
		{"flight cancelled", &FlightCancelledEvent{BaseEvent: base, FlightNumber: "KE3"}, "KE3"},
		{"user registered", &UserRegisteredEvent{BaseEvent: base, Username: "alice"}, "alice"},
		{"user status", &UserStatusChangedEvent{BaseEvent: base, Username: "bob"}, "bob"},
		{"base only", base, base.ID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PartitionKey(tc.in))
		})
	}
}
