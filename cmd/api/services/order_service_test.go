package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-booking/cmd/api/auth"
	"flight-booking/events"
	"flight-booking/pagination"
	"flight-booking/repositories/memstore"
)

func TestListMineOnlyReturnsOwnOrders(t *testing.T) {
	store := memstore.New()
	store.AddFlight("KE001", baseTime.Add(time.Hour), 10, 8)
	store.AddFlight("KE002", baseTime, 10, 9)
	store.AddOrder("alice", "KE001")
	store.AddOrder("alice", "KE002")
	store.AddOrder("bob", "KE001")
	svc := NewOrderService(store, nil)
	alice := &auth.Principal{UserID: 1, Username: "alice"}

	page, err := svc.ListMine(context.Background(), alice, pagination.NewRequest(1))
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "KE002", page.Items[0].FlightNumber, "earliest departure first")
	assert.Equal(t, "Tokyo", page.Items[0].Destination)

	page, err = svc.SearchMine(context.Background(), alice, OrderSearch{Airline: "OZ"}, pagination.NewRequest(1))
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	_, err = svc.ListMine(context.Background(), nil, pagination.NewRequest(1))
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestCancelReleasesSeatAndPublishes(t *testing.T) {
	store := memstore.New()
	store.AddFlight("KE001", baseTime, 10, 4)
	store.AddOrder("alice", "KE001")
	pub := &fakePublisher{}
	svc := NewOrderService(store, pub)
	alice := &auth.Principal{UserID: 1, Username: "alice"}

	require.NoError(t, svc.Cancel(context.Background(), alice, "KE001"))
	assert.False(t, store.HasOrder("alice", "KE001"))
	assert.Equal(t, 5, store.Flight("KE001").AvailableSeat)

	require.Len(t, pub.published, 1)
	cancelled := pub.published[0].(*events.OrderCancelledEvent)
	assert.Equal(t, "alice", cancelled.Actor)

	err := svc.Cancel(context.Background(), alice, "KE001")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, 5, store.Flight("KE001").AvailableSeat, "failed cancel leaves seats alone")
}

func TestCancelValidatesInput(t *testing.T) {
	svc := NewOrderService(memstore.New(), nil)

	assert.ErrorIs(t, svc.Cancel(context.Background(), nil, "KE001"), ErrLoginRequired)
	assert.ErrorIs(t, svc.Cancel(context.Background(), &auth.Principal{Username: "a"}, ""), ErrInvalidInput)
}
