package main

import (
	"os"
	"testing"
	"time"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeedFile(t *testing.T) {
	data, err := os.ReadFile("testdata/flights.yaml")
	require.NoError(t, err)

	flights, err := parseSeed(data)
	require.NoError(t, err)
	require.Len(t, flights, 2)

	ke := flights[0]
	assert.Equal(t, "KE123", ke.FlightNumber)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), ke.DeptTime)
	assert.Equal(t, time.Date(2026, 3, 1, 11, 20, 0, 0, time.UTC), ke.ArrvTime.UTC())
	assert.Equal(t, 320.5, ke.Price)
	assert.Equal(t, 180, ke.TotalSeat)

	assert.Equal(t, "Asiana", flights[1].Airline)
	assert.Equal(t, "KIX", flights[1].ArrvAirport)
}

func TestParseSeedRejectsBadTime(t *testing.T) {
	_, err := parseSeed([]byte(`
flights:
  - flight_number: KE9
    dept_time: tomorrow
    arrv_time: "2026-03-01 10:00"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dept_time")
}

func TestGeneratePassword(t *testing.T) {
	p, err := generatePassword()
	require.NoError(t, err)
	assert.Len(t, p, generatedPasswordLength)

	digits := 0
	for _, r := range p {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	assert.Equal(t, 4, digits)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"migrate", "create-admin", "seed-flights"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	admin, _, _ := root.Find([]string{"create-admin"})
	assert.NotNil(t, admin.Flags().Lookup("username"))
	assert.NotNil(t, root.PersistentFlags().Lookup("dsn"))
}
