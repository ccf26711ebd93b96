package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-booking/cmd/api/auth"
	"flight-booking/events"
	"flight-booking/pagination"
	"flight-booking/repositories/memstore"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestSearchExcludesFlightsOrderedByUser(t *testing.T) {
	store := memstore.New()
	store.AddFlight("KE001", baseTime, 10, 10)
	store.AddFlight("KE002", baseTime.Add(time.Hour), 10, 9)
	store.AddOrder("alice", "KE002")
	svc := NewFlightService(store, nil)
	ctx := context.Background()

	alice := &auth.Principal{UserID: 1, Username: "alice"}
	page, err := svc.ListAvailable(ctx, alice, pagination.NewRequest(1))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "KE001", page.Items[0].FlightNumber)

	admin := &auth.Principal{UserID: 2, Username: "root", IsSuperuser: true}
	page, err = svc.ListAvailable(ctx, admin, pagination.NewRequest(1))
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	page, err = svc.ListAvailable(ctx, nil, pagination.NewRequest(1))
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "KE001", page.Items[0].FlightNumber)
}

func TestPurchaseDecrementsSeatAndPublishes(t *testing.T) {
	store := memstore.New()
	store.AddFlight("KE001", baseTime, 10, 2)
	pub := &fakePublisher{}
	svc := NewFlightService(store, pub)
	alice := &auth.Principal{UserID: 1, Username: "alice"}

	order, err := svc.Purchase(context.Background(), alice, "KE001")
	require.NoError(t, err)
	assert.Equal(t, "alice", order.Username)
	assert.Equal(t, 1, store.Flight("KE001").AvailableSeat)

	require.Len(t, pub.published, 1)
	placed, ok := pub.published[0].(*events.OrderPlacedEvent)
	require.True(t, ok)
	assert.Equal(t, 1, placed.AvailableSeats)
	assert.Equal(t, "KE001", events.PartitionKey(placed))
}

func TestPurchaseWithoutSeat(t *testing.T) {
	store := memstore.New()
	store.AddFlight("KE001", baseTime, 1, 0)
	svc := NewFlightService(store, nil)

	_, err := svc.Purchase(context.Background(), &auth.Principal{Username: "alice"}, "KE001")
	require.ErrorIs(t, err, ErrNoAvailableSeat)
	assert.Equal(t, "No available seat!", err.Error())
	assert.False(t, store.HasOrder("alice", "KE001"))
}

func TestPurchaseTwiceIsConflictAndKeepsSeat(t *testing.T) {
	store := memstore.New()
	store.AddFlight("KE001", baseTime, 10, 5)
	svc := NewFlightService(store, nil)
	alice := &auth.Principal{Username: "alice"}

	_, err := svc.Purchase(context.Background(), alice, "KE001")
	require.NoError(t, err)
	_, err = svc.Purchase(context.Background(), alice, "KE001")
	require.ErrorIs(t, err, ErrAlreadyOrdered)
	assert.Equal(t, 4, store.Flight("KE001").AvailableSeat)
}

func TestPurchaseRequiresLoginAndKnownFlight(t *testing.T) {
	svc := NewFlightService(memstore.New(), nil)

	_, err := svc.Purchase(context.Background(), nil, "KE001")
	assert.ErrorIs(t, err, ErrLoginRequired)

	_, err = svc.Purchase(context.Background(), &auth.Principal{Username: "alice"}, "ZZ999")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestListAvailableLastPartialPage(t *testing.T) {
	store := memstore.New()
	for i := 1; i <= 23; i++ {
		store.AddFlight(fmt.Sprintf("KE%03d", i), baseTime.Add(time.Duration(i)*time.Hour), 10, 10)
	}
	svc := NewFlightService(store, nil)

	page, err := svc.ListAvailable(context.Background(), nil, pagination.NewRequest(3))
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.EqualValues(t, 23, page.TotalCount)
	assert.Equal(t, 3, page.View.Total)
	assert.Equal(t, 3, page.View.Current)
	assert.Nil(t, page.View.Next)
	assert.Equal(t, "KE021", page.Items[0].FlightNumber)
	assert.Equal(t, "KE023", page.Items[2].FlightNumber)
}
