package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type ReservationStatus string

const (
	ReservationStatusReserved ReservationStatus = "RESERVED"
	ReservationStatusExpired  ReservationStatus = "EXPIRED"
)

// SeatReservation is a time-limited exclusive hold on one seat of one
// schedule+coach type, owned by a single user. At most one RESERVED,
// unexpired row may exist per (schedule, coach type, coach label, seat
// number); the partial unique index in the migrations enforces this.
type SeatReservation struct {
	ID          int64             `json:"id"`
	ScheduleID  int64             `json:"schedule_id"`
	CoachTypeID int64             `json:"coach_type_id"`
	CoachLabel  string            `json:"coach_label"`
	SeatNumber  int               `json:"seat_number"`
	UserID      int64             `json:"user_id"`
	SessionID   string            `json:"session_id"`
	ReservedAt  time.Time         `json:"reserved_at"`
	ExpiresAt   time.Time         `json:"expires_at"`
	Status      ReservationStatus `json:"status"`
}

// SeatID returns the reservation's seat identifier, e.g. "S1-12".
func (r *SeatReservation) SeatID() string {
	return FormatSeatID(r.CoachLabel, r.SeatNumber)
}

// FormatSeatID builds the "<coachLabel>-<seatNumber>" identifier.
func FormatSeatID(coachLabel string, seatNumber int) string {
	return fmt.Sprintf("%s-%d", coachLabel, seatNumber)
}

// ParseSeatID splits a "<coachLabel>-<seatNumber>" identifier.
func ParseSeatID(seatID string) (coachLabel string, seatNumber int, err error) {
	parts := strings.Split(seatID, "-")
	if len(parts) != 2 || parts[0] == "" {
		return "", 0, fmt.Errorf("malformed seat id %q", seatID)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n <= 0 {
		return "", 0, fmt.Errorf("malformed seat id %q", seatID)
	}
	return parts[0], n, nil
}

const (
	ReservationResultSuccess         = "SUCCESS"
	ReservationResultSeatUnavailable = "SEAT_UNAVAILABLE"
)

// ReservationResult is the outcome of a hold attempt. A seat conflict is a
// normal outcome the caller branches on, not an error: Status is then
// SEAT_UNAVAILABLE, UnavailableSeats lists exactly the contested
// identifiers and no holds were created.
type ReservationResult struct {
	Status                string            `json:"status"`
	ReservationID         int64             `json:"reservation_id,omitempty"`
	LockedSeats           []string          `json:"locked_seats,omitempty"`
	ExpiresAt             time.Time         `json:"expires_at,omitempty"`
	TimeoutMinutes        int               `json:"timeout_minutes,omitempty"`
	UnavailableSeats      []string          `json:"unavailable_seats,omitempty"`
	SuggestedAlternatives []string          `json:"suggested_alternatives,omitempty"`
	Reservations          []SeatReservation `json:"-"`
}

type ReserveSeatsInput struct {
	ScheduleID    int64
	CoachTypeID   int64
	SourceID      int64
	DestinationID int64
	SelectedSeats []string
	SessionID     string
}

// Seat statuses as the availability index classifies them.
type SeatStatus string

const (
	SeatStatusAvailable       SeatStatus = "AVAILABLE"
	SeatStatusConfirmed       SeatStatus = "CONFIRMED"
	SeatStatusReservedBySelf  SeatStatus = "RESERVED_BY_SELF"
	SeatStatusReservedByOther SeatStatus = "RESERVED_BY_OTHER"
)

// Presenter statuses, relative to the requesting user.
const (
	MatrixSeatAvailable     = "AVAILABLE"
	MatrixSeatLocked        = "LOCKED"
	MatrixSeatMyReservation = "MY_RESERVATION"
)

// MatrixSeat is one seat of the rendered per-coach grid.
type MatrixSeat struct {
	SeatNumber int       `json:"seat_number"`
	SeatClass  SeatClass `json:"seat_type"`
	Status     string    `json:"status"`
}

// CoachMatrix is the seat grid of one physical coach.
type CoachMatrix struct {
	CoachLabel string       `json:"coach_label"`
	Seats      []MatrixSeat `json:"seats"`
}

type SeatMatrixInput struct {
	ScheduleID    int64
	CoachTypeID   int64
	SourceID      int64
	DestinationID int64
}
