package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
	"github.com/KD4-Mahesh-92414/RailBooker/internal/service/ports"
)

type SeatMatrixService struct {
	reservationRepo ports.ReservationRepo
	bookingRepo     ports.BookingRepo
	scheduleRepo    ports.ScheduleRepo
	stationRepo     ports.StationRepo
	coachRepo       ports.CoachRepo
	logger          logger.Logger
}

func NewSeatMatrixService(
	reservationRepo ports.ReservationRepo,
	bookingRepo ports.BookingRepo,
	scheduleRepo ports.ScheduleRepo,
	stationRepo ports.StationRepo,
	coachRepo ports.CoachRepo,
	logger logger.Logger,
) *SeatMatrixService {
	return &SeatMatrixService{
		reservationRepo: reservationRepo,
		bookingRepo:     bookingRepo,
		scheduleRepo:    scheduleRepo,
		stationRepo:     stationRepo,
		coachRepo:       coachRepo,
		logger:          logger,
	}
}

// SeatMatrix renders the per-coach seat grid of a schedule+coach type for
// the requesting user's segment. Statuses are relative to the user: their
// own active holds show as MY_RESERVATION, everything else occupied shows
// as LOCKED.
func (s *SeatMatrixService) SeatMatrix(ctx context.Context, userID int64, in domain.SeatMatrixInput) ([]domain.CoachMatrix, error) {
	if in.SourceID == in.DestinationID {
		return nil, domain.ErrSameStations
	}

	details, err := s.scheduleRepo.GetDetails(ctx, in.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	if _, err = s.stationRepo.GetByID(ctx, in.SourceID); err != nil {
		return nil, fmt.Errorf("check source station: %w", err)
	}
	if _, err = s.stationRepo.GetByID(ctx, in.DestinationID); err != nil {
		return nil, fmt.Errorf("check destination station: %w", err)
	}

	coaches, err := s.coachRepo.ListCoaches(ctx, details.Train.ID, in.CoachTypeID)
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	if len(coaches) == 0 {
		return nil, domain.ErrCoachTypeNotOnTrain
	}

	layout, err := s.coachRepo.ListLayout(ctx, in.CoachTypeID)
	if err != nil {
		return nil, fmt.Errorf("load coach layout: %w", err)
	}

	booked, err := s.bookingRepo.BookedSeatsForSegment(ctx, in.ScheduleID, in.CoachTypeID, in.SourceID, in.DestinationID)
	if err != nil {
		return nil, fmt.Errorf("load booked seats: %w", err)
	}
	bookedSet := make(map[string]struct{}, len(booked))
	for _, seatID := range booked {
		bookedSet[seatID] = struct{}{}
	}

	holds, err := s.reservationRepo.ListActiveForMatrix(ctx, in.ScheduleID, in.CoachTypeID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("load active holds: %w", err)
	}
	holdOwner := make(map[string]int64, len(holds))
	for _, h := range holds {
		holdOwner[h.SeatID()] = h.UserID
	}

	matrix := make([]domain.CoachMatrix, 0, len(coaches))
	for _, coach := range coaches {
		seats := make([]domain.MatrixSeat, 0, len(layout))
		for _, ls := range layout {
			seatID := domain.FormatSeatID(coach.Label, ls.SeatNumber)
			seats = append(seats, domain.MatrixSeat{
				SeatNumber: ls.SeatNumber,
				SeatClass:  ls.SeatClass,
				Status:     presentSeatStatus(classifySeat(seatID, userID, bookedSet, holdOwner)),
			})
		}
		matrix = append(matrix, domain.CoachMatrix{CoachLabel: coach.Label, Seats: seats})
	}

	s.logger.Debug("seat matrix built",
		logger.Int64("schedule_id", in.ScheduleID),
		logger.Int64("coach_type_id", in.CoachTypeID),
		logger.Int("coaches", len(matrix)),
	)

	return matrix, nil
}

func classifySeat(seatID string, userID int64, booked map[string]struct{}, holdOwner map[string]int64) domain.SeatStatus {
	if _, ok := booked[seatID]; ok {
		return domain.SeatStatusConfirmed
	}
	if owner, ok := holdOwner[seatID]; ok {
		if owner == userID {
			return domain.SeatStatusReservedBySelf
		}
		return domain.SeatStatusReservedByOther
	}
	return domain.SeatStatusAvailable
}

func presentSeatStatus(status domain.SeatStatus) string {
	switch status {
	case domain.SeatStatusConfirmed, domain.SeatStatusReservedByOther:
		return domain.MatrixSeatLocked
	case domain.SeatStatusReservedBySelf:
		return domain.MatrixSeatMyReservation
	default:
		return domain.MatrixSeatAvailable
	}
}
