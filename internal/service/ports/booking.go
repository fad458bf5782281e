package ports

import (
	"context"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
)

type BookingRepo interface {
	// Create persists the booking, its tickets and the payment record and
	// deletes the consumed reservations, all in one transaction. A PNR
	// collision surfaces as domain.ErrDuplicatePNR; a missing reservation
	// row rolls everything back with domain.ErrReservationExpired.
	Create(ctx context.Context, b *domain.Booking, tickets []domain.Ticket, payment *domain.Payment, reservationIDs []int64) error

	// BookedSeatsForSegment returns the seat identifiers occupied by
	// confirmed tickets whose journey overlaps [sourceID, destinationID).
	BookedSeatsForSegment(ctx context.Context, scheduleID, coachTypeID, sourceID, destinationID int64) ([]string, error)

	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByPNR(ctx context.Context, pnr string) (*domain.BookingDetails, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Cancel(ctx context.Context, bookingID int64) error
}
