package ports

import (
	"context"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, confirmation *domain.BookingConfirmation)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, booking *domain.Booking)
}
