package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStationNotFound     = errors.New("station not found")
	ErrTrainNotFound       = errors.New("train not found")
	ErrCoachTypeNotFound   = errors.New("coach type not found")
	ErrScheduleNotFound    = errors.New("schedule not found")
	ErrFareNotFound        = errors.New("fare not configured for this train and coach type")
	ErrUserNotFound        = errors.New("user not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrBookingNotFound     = errors.New("booking not found")
)

var (
	ErrScheduleNotBookable     = errors.New("schedule is not open for booking")
	ErrCoachTypeNotOnTrain     = errors.New("selected coach type is not available on this train")
	ErrSameStations            = errors.New("source and destination stations cannot be the same")
	ErrPassengerCountMismatch  = errors.New("passenger count does not match reserved seat count")
	ErrReservationExpired      = errors.New("reservation has expired, please reserve seats again")
	ErrReservationForbidden    = errors.New("reservation belongs to another user")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
)

var (
	// ErrSeatConflict signals that a concurrent hold won the partial unique
	// index race. Repositories return it; the service translates it into a
	// SEAT_UNAVAILABLE result, never into an API error.
	ErrSeatConflict = errors.New("seat already held")

	// ErrDuplicatePNR signals a PNR uniqueness violation; the booking
	// service regenerates and retries.
	ErrDuplicatePNR = errors.New("duplicate pnr")
)

var (
	ErrValidation = errors.New("validation error")
	ErrEmailTaken = errors.New("email is already registered")
)

// InvalidSeatsError lists the malformed or non-existent seat identifiers of
// a rejected hold request.
type InvalidSeatsError struct {
	Seats []string
}

func (e *InvalidSeatsError) Error() string {
	return fmt.Sprintf("invalid seat selections: %s", strings.Join(e.Seats, ", "))
}

func (e *InvalidSeatsError) Is(target error) bool {
	return target == ErrValidation
}
