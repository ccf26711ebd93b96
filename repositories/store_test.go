package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-booking/listquery"
	"flight-booking/models"
	"flight-booking/pagination"
)

func seedFlight(t *testing.T, s *Store, number string, dept time.Time, seats int) models.Flight {
	t.Helper()
	f := models.Flight{
		FlightNumber:  number,
		Departure:     "Seoul",
		Destination:   "Tokyo",
		DeptTime:      dept,
		DeptAirport:   "ICN",
		ArrvTime:      dept.Add(2 * time.Hour),
		ArrvAirport:   "NRT",
		Airline:       "Korean Air",
		Price:         320.5,
		TotalSeat:     seats,
		AvailableSeat: seats,
	}
	require.NoError(t, s.Flights().Create(context.Background(), &f))
	return f
}

func TestStoreIntegration(t *testing.T) {
	pool := startPostgres(t)
	s := NewStore(pool)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("users", func(t *testing.T) {
		u := models.User{Username: "alice", Password: "hash", IsActive: true}
		require.NoError(t, s.Users().Create(ctx, &u))
		assert.NotZero(t, u.ID)
		assert.False(t, u.DateJoined.IsZero())

		dup := models.User{Username: "alice", Password: "hash"}
		err := s.Users().Create(ctx, &dup)
		assert.ErrorIs(t, err, ErrDuplicate)

		require.NoError(t, s.Users().SetActive(ctx, u.ID, false))
		got, err := s.Users().GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, got.IsActive)

		_, err = s.Users().GetByID(ctx, 9999)
		assert.ErrorIs(t, err, ErrNotFound)

		inactive := false
		page, err := s.Users().List(ctx, UserFilter{IsActive: &inactive}, pagination.NewRequest(1))
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "alice", page.Items[0].Username)
	})

	t.Run("flights and orders", func(t *testing.T) {
		seedFlight(t, s, "KE1", base, 2)
		seedFlight(t, s, "KE2", base.Add(24*time.Hour), 1)
		seedFlight(t, s, "OZ3", base.Add(-24*time.Hour), 0)

		_, err := s.Orders().Create(ctx, "bob", "KE1")
		require.NoError(t, err)
		require.NoError(t, s.Flights().AdjustAvailableSeats(ctx, "KE1", -1))

		_, err = s.Orders().Create(ctx, "bob", "KE1")
		assert.ErrorIs(t, err, ErrDuplicate)

		err = s.Flights().AdjustAvailableSeats(ctx, "OZ3", -1)
		assert.ErrorIs(t, err, ErrConstraint)

		all, err := s.Flights().List(ctx, FlightFilter{}, pagination.NewRequest(1))
		require.NoError(t, err)
		require.Len(t, all.Items, 3)
		assert.Equal(t, "OZ3", all.Items[0].FlightNumber, "ordered by departure time")
		assert.Equal(t, 320.5, all.Items[1].Price)

		forBob, err := s.Flights().List(ctx, FlightFilter{ExcludeOrderedBy: "bob"}, pagination.NewRequest(1))
		require.NoError(t, err)
		assert.Equal(t, int64(2), forBob.TotalCount)

		n, err := s.Orders().CountByFlight(ctx, "KE1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		after := &TimeBound{At: base.Add(-time.Hour)}
		orders, err := s.Orders().List(ctx, OrderFilter{Username: "bob", DeptTime: after}, pagination.NewRequest(1))
		require.NoError(t, err)
		require.Len(t, orders.Items, 1)
		assert.Equal(t, "Tokyo", orders.Items[0].Destination)

		before := &TimeBound{Before: true, At: base.Add(-time.Hour)}
		orders, err = s.Orders().List(ctx, OrderFilter{DeptTime: before}, pagination.NewRequest(1))
		require.NoError(t, err)
		assert.Empty(t, orders.Items)

		moved, err := s.Orders().RenameUser(ctx, "bob", "robert")
		require.NoError(t, err)
		assert.Equal(t, int64(1), moved)
		assert.ErrorIs(t, s.Orders().Delete(ctx, "bob", "KE1"), ErrNotFound)
		assert.NoError(t, s.Orders().Delete(ctx, "robert", "KE1"))
	})

	t.Run("last partial page", func(t *testing.T) {
		for i := 1; i <= 23; i++ {
			f := models.Flight{
				FlightNumber: fmt.Sprintf("7C%03d", i), Departure: "Busan", Destination: "Jeju",
				DeptTime: base.Add(time.Duration(i) * time.Hour), ArrvTime: base.Add(time.Duration(i+1) * time.Hour),
				Airline: "Jeju Air", TotalSeat: 5, AvailableSeat: 5,
			}
			require.NoError(t, s.Flights().Create(ctx, &f))
		}

		page, err := s.Flights().List(ctx, FlightFilter{Airline: "Jeju Air"}, pagination.NewRequest(3))
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Equal(t, int64(23), page.TotalCount)
		assert.Equal(t, 3, page.View.Total)
		assert.Equal(t, "7C021", page.Items[0].FlightNumber)
		assert.Equal(t, "7C023", page.Items[2].FlightNumber)
	})

	t.Run("invalid page", func(t *testing.T) {
		_, err := s.Flights().List(ctx, FlightFilter{}, pagination.NewRequest(0))
		assert.True(t, listquery.IsInvalidPage(err))
	})

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.WithTx(ctx, func(ctx context.Context, tx Repository) error {
			f := models.Flight{
				FlightNumber: "TX1", Departure: "A", Destination: "B",
				DeptTime: base, ArrvTime: base, Airline: "X", TotalSeat: 1, AvailableSeat: 1,
			}
			if err := tx.Flights().Create(ctx, &f); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = s.Flights().GetByNumber(ctx, "TX1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
