package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"flight-booking/cmd/api/services"
	"flight-booking/listquery"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid", services.ErrPasswordMismatch, http.StatusBadRequest, "'Password' wrongly repeated"},
		{"unauthorized", services.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username/password"},
		{"forbidden", services.ErrAdminRequired, http.StatusForbidden, "Administrator privileges required"},
		{"not found", services.ErrFlightNotFound, http.StatusNotFound, "Requested flight does not exist"},
		{"conflict wrapped", fmt.Errorf("purchase: %w", services.ErrNoAvailableSeat), http.StatusConflict, "No available seat!"},
		{"invalid page", &listquery.InvalidPageError{Page: 0}, http.StatusBadRequest, "invalid page number 0: must be >= 1"},
		{"invalid filter", &listquery.InvalidFilterError{Column: "password"}, http.StatusBadRequest, `invalid filter: column "password" is not allowed`},
		{"unknown", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal_server_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusFor(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestParseOptionalBool(t *testing.T) {
	assert.Nil(t, parseOptionalBool(""))
	assert.Nil(t, parseOptionalBool("maybe"))

	v := parseOptionalBool("true")
	if assert.NotNil(t, v) {
		assert.True(t, *v)
	}
}
