package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
	"github.com/KD4-Mahesh-92414/RailBooker/internal/service/ports"
)

const pnrAttempts = 3

type BookingService struct {
	reservationRepo ports.ReservationRepo
	bookingRepo     ports.BookingRepo
	scheduleRepo    ports.ScheduleRepo
	stationRepo     ports.StationRepo
	coachRepo       ports.CoachRepo
	fareRepo        ports.FareRepo
	userRepo        ports.UserRepo
	notifier        ports.BookingNotifier
	logger          logger.Logger
	holdTTL         time.Duration
}

func NewBookingService(
	reservationRepo ports.ReservationRepo,
	bookingRepo ports.BookingRepo,
	scheduleRepo ports.ScheduleRepo,
	stationRepo ports.StationRepo,
	coachRepo ports.CoachRepo,
	fareRepo ports.FareRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	holdTTL time.Duration,
) *BookingService {
	return &BookingService{
		reservationRepo: reservationRepo,
		bookingRepo:     bookingRepo,
		scheduleRepo:    scheduleRepo,
		stationRepo:     stationRepo,
		coachRepo:       coachRepo,
		fareRepo:        fareRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		logger:          logger,
		holdTTL:         holdTTL,
	}
}

// ReserveSeats attempts to hold every selected seat for the user. The call
// is all-or-nothing: either all seats are held until ExpiresAt, or none
// are and the result carries the contested seat identifiers.
func (s *BookingService) ReserveSeats(ctx context.Context, userID int64, in domain.ReserveSeatsInput) (*domain.ReservationResult, error) {
	if len(in.SelectedSeats) == 0 {
		return nil, fmt.Errorf("%w: no seats selected", domain.ErrValidation)
	}
	if in.SourceID == in.DestinationID {
		return nil, domain.ErrSameStations
	}

	details, err := s.scheduleRepo.GetDetails(ctx, in.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("check schedule: %w", err)
	}
	if !details.Schedule.IsBookable() {
		return nil, domain.ErrScheduleNotBookable
	}

	if _, err = s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if _, err = s.stationRepo.GetByID(ctx, in.SourceID); err != nil {
		return nil, fmt.Errorf("check source station: %w", err)
	}
	if _, err = s.stationRepo.GetByID(ctx, in.DestinationID); err != nil {
		return nil, fmt.Errorf("check destination station: %w", err)
	}

	offered, err := s.coachRepo.TypeOfferedOnTrain(ctx, details.Train.ID, in.CoachTypeID)
	if err != nil {
		return nil, fmt.Errorf("check coach type: %w", err)
	}
	if !offered {
		return nil, domain.ErrCoachTypeNotOnTrain
	}

	seats, err := s.validateSeats(ctx, details.Train.ID, in.CoachTypeID, in.SelectedSeats)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	held, err := s.reservationRepo.HeldSeats(ctx, in.ScheduleID, in.CoachTypeID, in.SelectedSeats, now)
	if err != nil {
		return nil, fmt.Errorf("check held seats: %w", err)
	}
	if len(held) > 0 {
		return unavailableResult(held), nil
	}

	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	expiresAt := now.Add(s.holdTTL)
	reservations := make([]*domain.SeatReservation, 0, len(seats))
	for _, seat := range seats {
		reservations = append(reservations, &domain.SeatReservation{
			ScheduleID:  in.ScheduleID,
			CoachTypeID: in.CoachTypeID,
			CoachLabel:  seat.coachLabel,
			SeatNumber:  seat.seatNumber,
			UserID:      userID,
			SessionID:   sessionID,
			ReservedAt:  now,
			ExpiresAt:   expiresAt,
			Status:      domain.ReservationStatusReserved,
		})
	}

	if err = s.reservationRepo.CreateBatch(ctx, reservations); err != nil {
		if errors.Is(err, domain.ErrSeatConflict) {
			// Lost the race after the availability check. Report the
			// contested seats; nothing was inserted.
			held, herr := s.reservationRepo.HeldSeats(ctx, in.ScheduleID, in.CoachTypeID, in.SelectedSeats, time.Now().UTC())
			if herr != nil || len(held) == 0 {
				held = in.SelectedSeats
			}
			return unavailableResult(held), nil
		}
		return nil, fmt.Errorf("create reservations: %w", err)
	}

	locked := make([]string, 0, len(reservations))
	result := make([]domain.SeatReservation, 0, len(reservations))
	for _, res := range reservations {
		locked = append(locked, res.SeatID())
		result = append(result, *res)
	}

	s.logger.Info("seats reserved",
		logger.Int64("user_id", userID),
		logger.Int64("schedule_id", in.ScheduleID),
		logger.Int64("reservation_id", reservations[0].ID),
		logger.Int("seats", len(locked)),
	)

	return &domain.ReservationResult{
		Status:         domain.ReservationResultSuccess,
		ReservationID:  reservations[0].ID,
		LockedSeats:    locked,
		ExpiresAt:      expiresAt,
		TimeoutMinutes: int(s.holdTTL.Minutes()),
		Reservations:   result,
	}, nil
}

type parsedSeat struct {
	coachLabel string
	seatNumber int
}

func (s *BookingService) validateSeats(ctx context.Context, trainID, coachTypeID int64, seatIDs []string) ([]parsedSeat, error) {
	layout, err := s.coachRepo.ListLayout(ctx, coachTypeID)
	if err != nil {
		return nil, fmt.Errorf("load coach layout: %w", err)
	}
	layoutSeats := make(map[int]struct{}, len(layout))
	for _, ls := range layout {
		layoutSeats[ls.SeatNumber] = struct{}{}
	}

	var invalid []string
	seen := make(map[string]struct{}, len(seatIDs))
	coachOK := make(map[string]bool)
	seats := make([]parsedSeat, 0, len(seatIDs))

	for _, seatID := range seatIDs {
		if _, dup := seen[seatID]; dup {
			return nil, fmt.Errorf("%w: seat %s selected twice", domain.ErrValidation, seatID)
		}
		seen[seatID] = struct{}{}

		label, number, perr := domain.ParseSeatID(seatID)
		if perr != nil {
			invalid = append(invalid, seatID)
			continue
		}
		if _, ok := layoutSeats[number]; !ok {
			invalid = append(invalid, seatID)
			continue
		}

		exists, ok := coachOK[label]
		if !ok {
			exists, err = s.coachRepo.CoachExists(ctx, trainID, coachTypeID, label)
			if err != nil {
				return nil, fmt.Errorf("check coach %s: %w", label, err)
			}
			coachOK[label] = exists
		}
		if !exists {
			invalid = append(invalid, seatID)
			continue
		}

		seats = append(seats, parsedSeat{coachLabel: label, seatNumber: number})
	}

	if len(invalid) > 0 {
		return nil, &domain.InvalidSeatsError{Seats: invalid}
	}
	return seats, nil
}

func unavailableResult(held []string) *domain.ReservationResult {
	return &domain.ReservationResult{
		Status:                domain.ReservationResultSeatUnavailable,
		UnavailableSeats:      held,
		SuggestedAlternatives: []string{},
	}
}

// ConfirmBooking converts the user's active hold into a confirmed booking.
// The conversion is atomic: the booking, tickets and payment are written
// and the holds consumed in one transaction, so a hold that expired in
// flight rolls the whole confirm back.
func (s *BookingService) ConfirmBooking(ctx context.Context, userID int64, in domain.ConfirmBookingInput) (*domain.BookingConfirmation, error) {
	if in.SourceID == in.DestinationID {
		return nil, domain.ErrSameStations
	}
	if len(in.Passengers) == 0 {
		return nil, fmt.Errorf("%w: no passengers", domain.ErrValidation)
	}

	anchor, err := s.reservationRepo.GetByID(ctx, in.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if anchor.UserID != userID {
		return nil, domain.ErrReservationForbidden
	}

	now := time.Now().UTC()
	if anchor.Status != domain.ReservationStatusReserved || !anchor.ExpiresAt.After(now) {
		return nil, domain.ErrReservationExpired
	}

	// The hold is the whole batch created together, not just the anchor
	// row. ListActiveByUser returns them in creation order, which is the
	// order seats were selected in, so passengers map to seats by index.
	siblings, err := s.reservationRepo.ListActiveByUser(ctx, userID, anchor.ScheduleID, now)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	if len(siblings) == 0 {
		return nil, domain.ErrReservationExpired
	}
	if len(in.Passengers) != len(siblings) {
		return nil, domain.ErrPassengerCountMismatch
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	source, err := s.stationRepo.GetByID(ctx, in.SourceID)
	if err != nil {
		return nil, fmt.Errorf("check source station: %w", err)
	}
	destination, err := s.stationRepo.GetByID(ctx, in.DestinationID)
	if err != nil {
		return nil, fmt.Errorf("check destination station: %w", err)
	}

	details, err := s.scheduleRepo.GetDetails(ctx, anchor.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	if !details.Schedule.IsBookable() {
		return nil, domain.ErrScheduleNotBookable
	}

	coachType, err := s.coachRepo.GetCoachType(ctx, anchor.CoachTypeID)
	if err != nil {
		return nil, fmt.Errorf("get coach type: %w", err)
	}

	farePerSeat := in.FarePerSeat
	if farePerSeat <= 0 {
		fare, ferr := s.fareRepo.GetActive(ctx, details.Train.ID, anchor.CoachTypeID)
		if ferr != nil {
			return nil, fmt.Errorf("get fare: %w", ferr)
		}
		farePerSeat = fare.PerSeat(details.Train.DistanceKm)
	}
	totalFare := farePerSeat * float64(len(siblings))

	booking := &domain.Booking{
		UserID:        userID,
		ScheduleID:    anchor.ScheduleID,
		CoachTypeID:   anchor.CoachTypeID,
		SourceID:      in.SourceID,
		DestinationID: in.DestinationID,
		JourneyDate:   details.Schedule.DepartureDate,
		TotalFare:     totalFare,
		Status:        domain.BookingStatusConfirmed,
		ContactEmail:  in.ContactEmail,
		ContactPhone:  in.ContactPhone,
		BookedAt:      now,
	}

	tickets := make([]domain.Ticket, 0, len(siblings))
	reservationIDs := make([]int64, 0, len(siblings))
	for i, res := range siblings {
		p := in.Passengers[i]
		tickets = append(tickets, domain.Ticket{
			PassengerName: p.Name,
			Age:           p.Age,
			Gender:        p.Gender,
			CoachLabel:    res.CoachLabel,
			SeatNumber:    res.SeatNumber,
			Fare:          farePerSeat,
			Status:        domain.TicketStatusConfirmed,
		})
		reservationIDs = append(reservationIDs, res.ID)
	}

	payment := &domain.Payment{
		UserID:        userID,
		TransactionID: newTransactionID(),
		Amount:        totalFare,
		Method:        "SIMULATED",
		Status:        domain.PaymentStatusSuccess,
		PaidAt:        now,
	}

	for attempt := 0; ; attempt++ {
		booking.PNR = newPNR()
		err = s.bookingRepo.Create(ctx, booking, tickets, payment, reservationIDs)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicatePNR) && attempt < pnrAttempts-1 {
			continue
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.Int64("user_id", userID),
		logger.String("pnr", booking.PNR),
		logger.Int64("schedule_id", booking.ScheduleID),
		logger.Int("passengers", len(tickets)),
	)

	passengers := make([]domain.PassengerDetails, 0, len(tickets))
	for _, t := range tickets {
		passengers = append(passengers, domain.PassengerDetails{
			Name:       t.PassengerName,
			Age:        t.Age,
			Gender:     t.Gender,
			SeatNumber: domain.FormatSeatID(t.CoachLabel, t.SeatNumber),
			Status:     t.Status,
			Fare:       t.Fare,
		})
	}

	confirmation := &domain.BookingConfirmation{
		PNR:           booking.PNR,
		BookingStatus: booking.Status,
		TotalFare:     totalFare,
		JourneyDate:   booking.JourneyDate,
		Train: domain.TrainSummary{
			TrainNumber:        details.Train.Number,
			TrainName:          details.Train.Name,
			SourceStation:      source.Name,
			DestinationStation: destination.Name,
			CoachType:          coachType.Name,
		},
		Passengers: passengers,
	}

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), user, confirmation)

	return confirmation, nil
}

// ReservationStatus reports whether the user's hold is still ACTIVE or has
// EXPIRED, without mutating it.
func (s *BookingService) ReservationStatus(ctx context.Context, userID, reservationID int64) (*domain.SeatReservation, string, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, "", fmt.Errorf("get reservation: %w", err)
	}
	if res.UserID != userID {
		return nil, "", domain.ErrReservationForbidden
	}

	state := domain.ReservationStateActive
	if res.Status != domain.ReservationStatusReserved || !res.ExpiresAt.After(time.Now().UTC()) {
		state = domain.ReservationStateExpired
	}
	return res, state, nil
}

func (s *BookingService) GetBookingByPNR(ctx context.Context, pnr string) (*domain.BookingDetails, error) {
	details, err := s.bookingRepo.GetByPNR(ctx, pnr)
	if err != nil {
		return nil, fmt.Errorf("get booking by pnr: %w", err)
	}
	return details, nil
}

func (s *BookingService) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, userID, bookingID int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != userID {
		return domain.ErrReservationForbidden
	}
	if booking.Status == domain.BookingStatusCancelled {
		return domain.ErrBookingAlreadyCancelled
	}

	if err = s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.Int64("user_id", userID),
		logger.String("pnr", booking.PNR),
	)

	booking.Status = domain.BookingStatusCancelled
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.Int64("user_id", userID),
			logger.Any("error", err),
		)
		return nil
	}
	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), user, booking)

	return nil
}

// ExpireStale sweeps every stale hold in the store. The scheduler calls it
// periodically; lazy expiry in the read paths makes correctness independent
// of the sweep interval.
func (s *BookingService) ExpireStale(ctx context.Context) (int64, error) {
	n, err := s.reservationRepo.ExpireStale(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("expire stale reservations: %w", err)
	}
	return n, nil
}

// newPNR builds a booking reference of the form 20260829A1B2C3.
func newPNR() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return time.Now().UTC().Format("20060102") + suffix
}

func newTransactionID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("TXN%d%s", time.Now().UnixMilli(), suffix)
}
