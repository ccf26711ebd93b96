package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterValidators(v))
	return v
}

func TestFlightNumberRule(t *testing.T) {
	v := newValidator(t)

	for _, ok := range []string{"KE123", "OZ1085", "7C1101", "LJ1A"} {
		assert.NoError(t, v.Struct(FlightNumberRequest{FlightNumber: ok}), ok)
	}
	for _, bad := range []string{"", "ke123", "KE", "KE12345", "KE 12", "KE12;--"} {
		assert.Error(t, v.Struct(FlightNumberRequest{FlightNumber: bad}), bad)
	}
}

func TestBoaRule(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(AdminOrderQuery{}))
	assert.NoError(t, v.Struct(AdminOrderQuery{DeptBoa: "before", ArrvBoa: "After"}))
	assert.Error(t, v.Struct(AdminOrderQuery{DeptBoa: "during"}))
}

func TestFlightRequestRules(t *testing.T) {
	v := newValidator(t)

	req := FlightRequest{
		FlightNumber: "KE123", Departure: "Seoul", Destination: "Tokyo",
		DeptTime: "2026-03-01 09:00", ArrvTime: "2026-03-01 11:00", Airline: "KE",
		Price: 10, TotalSeat: 100,
	}
	assert.NoError(t, v.Struct(req))

	req.TotalSeat = -1
	assert.Error(t, v.Struct(req))
}
