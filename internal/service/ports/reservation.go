package ports

import (
	"context"
	"time"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
)

type ReservationRepo interface {
	// HeldSeats returns the requested seat identifiers that are currently
	// held (RESERVED, unexpired) for the schedule+coach type. Stale rows
	// touching the schedule+coach type are marked EXPIRED first.
	HeldSeats(ctx context.Context, scheduleID, coachTypeID int64, seatIDs []string, now time.Time) ([]string, error)

	// CreateBatch inserts all holds in one transaction, filling their IDs.
	// A concurrent winner surfaces as domain.ErrSeatConflict and nothing
	// is inserted.
	CreateBatch(ctx context.Context, reservations []*domain.SeatReservation) error

	GetByID(ctx context.Context, id int64) (*domain.SeatReservation, error)
	ListActiveByUser(ctx context.Context, userID, scheduleID int64, now time.Time) ([]domain.SeatReservation, error)

	// ListActiveForMatrix returns the live holds of a schedule+coach type,
	// lazily expiring stale ones as a side effect.
	ListActiveForMatrix(ctx context.Context, scheduleID, coachTypeID int64, now time.Time) ([]domain.SeatReservation, error)

	// ExpireStale marks every stale RESERVED row EXPIRED and reports how
	// many were flipped.
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}
