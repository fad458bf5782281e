package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeatID(t *testing.T) {
	label, number, err := ParseSeatID("S1-12")
	require.NoError(t, err)
	assert.Equal(t, "S1", label)
	assert.Equal(t, 12, number)
}

func TestParseSeatID_Malformed(t *testing.T) {
	for _, seatID := range []string{"", "S1", "-5", "S1-", "S1-abc", "S1-0", "S1--3", "S1-2-3"} {
		_, _, err := ParseSeatID(seatID)
		assert.Error(t, err, "seat id %q", seatID)
	}
}

func TestFormatSeatID_RoundTrip(t *testing.T) {
	res := SeatReservation{CoachLabel: "B2", SeatNumber: 7}
	label, number, err := ParseSeatID(res.SeatID())
	require.NoError(t, err)
	assert.Equal(t, "B2", label)
	assert.Equal(t, 7, number)
}

func TestInvalidSeatsError_IsValidation(t *testing.T) {
	err := &InvalidSeatsError{Seats: []string{"bad-seat"}}
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "bad-seat")
}

func TestFare(t *testing.T) {
	assert.Equal(t, 1250.0, Fare(2400, 0.5, 50))
	assert.Equal(t, 50.0, Fare(0, 0.5, 50))
}

func TestTrainFare_PerSeat(t *testing.T) {
	f := TrainFare{RatePerKm: 0.45, BaseFare: 170}
	assert.InDelta(t, 170+2400*0.45, f.PerSeat(2400), 1e-9)
}

func TestSchedule_IsBookable(t *testing.T) {
	assert.True(t, (&Schedule{Status: ScheduleStatusRunning}).IsBookable())
	assert.True(t, (&Schedule{Status: ScheduleStatusRescheduled}).IsBookable())
	assert.False(t, (&Schedule{Status: ScheduleStatusCancelled}).IsBookable())
}
