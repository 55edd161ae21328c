package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/cineticket/internal/core/domain"
)

func TestSeatID_RoundTrip(t *testing.T) {
	assert.Equal(t, "F7", domain.SeatID(5, 7))
	row, col, err := domain.ParseSeatID("F7")
	require.NoError(t, err)
	assert.Equal(t, 5, row)
	assert.Equal(t, 7, col)

	for _, bad := range []string{"", "F", "Z1", "A0", "A9", "Ax"} {
		_, _, err := domain.ParseSeatID(bad)
		assert.Error(t, err, bad)
	}
	assert.Len(t, domain.AllSeatIDs(), 64)
}

func TestSeatStatusFromPayment(t *testing.T) {
	assert.Equal(t, domain.SeatAvailable, domain.SeatStatusFromPayment(domain.PaymentCancelled))
	assert.Equal(t, domain.SeatPending, domain.SeatStatusFromPayment(domain.PaymentPending))
	assert.Equal(t, domain.SeatOccupied, domain.SeatStatusFromPayment(domain.PaymentPaid))
	assert.Equal(t, domain.SeatOccupied, domain.SeatStatusFromPayment(domain.PaymentFailed))
	assert.Equal(t, domain.SeatOccupied, domain.SeatStatusFromPayment("unknown"))
}

func TestSeatMap_MergesKnownSeats(t *testing.T) {
	m := domain.NewSeatMap([]domain.Seat{
		{ID: "A1", Status: domain.SeatOccupied},
		{ID: "A1", Status: domain.SeatAvailable},
		{ID: "B2", Status: domain.SeatPending, VIP: true},
		{ID: "Q9", Status: domain.SeatOccupied},
	})

	assert.True(t, m.Occupied("A1"))
	assert.True(t, m.Occupied("B2"))
	assert.False(t, m.Occupied("C3"))
	assert.False(t, m.Occupied("Q9"))
	assert.Equal(t, []string{"A1", "B2"}, m.OccupiedIDs())

	s, ok := m.Seat("B2")
	require.True(t, ok)
	assert.True(t, s.VIP)

	rows := m.Rows()
	require.Len(t, rows, domain.GridRows)
	assert.Equal(t, "A1", rows[0][0].ID)
	assert.Equal(t, "H8", rows[7][7].ID)
}
