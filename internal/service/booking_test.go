package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
	"github.com/KD4-Mahesh-92414/RailBooker/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	reservations *mocks.MockReservationRepo
	bookings     *mocks.MockBookingRepo
	schedules    *mocks.MockScheduleRepo
	stations     *mocks.MockStationRepo
	coaches      *mocks.MockCoachRepo
	fares        *mocks.MockFareRepo
	users        *mocks.MockUserRepo
	notifier     *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (bookingMocks, *BookingService) {
	t.Helper()
	m := bookingMocks{
		reservations: mocks.NewMockReservationRepo(t),
		bookings:     mocks.NewMockBookingRepo(t),
		schedules:    mocks.NewMockScheduleRepo(t),
		stations:     mocks.NewMockStationRepo(t),
		coaches:      mocks.NewMockCoachRepo(t),
		fares:        mocks.NewMockFareRepo(t),
		users:        mocks.NewMockUserRepo(t),
		notifier:     mocks.NewMockBookingNotifier(t),
	}

	svc := NewBookingService(
		m.reservations, m.bookings, m.schedules, m.stations,
		m.coaches, m.fares, m.users, m.notifier,
		newTestLogger(t), 5*time.Minute,
	)
	return m, svc
}

func runningSchedule() *domain.ScheduleDetails {
	return &domain.ScheduleDetails{
		Schedule: domain.Schedule{
			ID:            1,
			TrainID:       5,
			DepartureDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			Status:        domain.ScheduleStatusRunning,
		},
		Train: domain.Train{
			ID:            5,
			Number:        "12628",
			Name:          "Karnataka Express",
			SourceID:      3,
			DestinationID: 4,
			DistanceKm:    2400,
			Status:        domain.TrainStatusActive,
		},
	}
}

func reserveInput(seats ...string) domain.ReserveSeatsInput {
	return domain.ReserveSeatsInput{
		ScheduleID:    1,
		CoachTypeID:   2,
		SourceID:      3,
		DestinationID: 4,
		SelectedSeats: seats,
	}
}

// --- ReserveSeats ---

func TestBookingService_ReserveSeats_Success(t *testing.T) {
	m, svc := newBookingService(t)

	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(runningSchedule(), nil)
	m.users.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.User{ID: 42}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.coaches.EXPECT().TypeOfferedOnTrain(mock.Anything, int64(5), int64(2)).Return(true, nil)
	m.coaches.EXPECT().ListLayout(mock.Anything, int64(2)).Return([]domain.LayoutSeat{
		{SeatNumber: 5, SeatClass: domain.SeatClassLower},
		{SeatNumber: 6, SeatClass: domain.SeatClassMiddle},
	}, nil)
	m.coaches.EXPECT().CoachExists(mock.Anything, int64(5), int64(2), "S1").Return(true, nil)
	m.reservations.EXPECT().HeldSeats(mock.Anything, int64(1), int64(2), mock.Anything, mock.Anything).
		Return(nil, nil)
	m.reservations.EXPECT().CreateBatch(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, reservations []*domain.SeatReservation) {
			for i, res := range reservations {
				res.ID = int64(101 + i)
			}
		}).
		Return(nil)

	result, err := svc.ReserveSeats(context.Background(), 42, reserveInput("S1-5", "S1-6"))

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationResultSuccess, result.Status)
	assert.Equal(t, int64(101), result.ReservationID)
	assert.Equal(t, []string{"S1-5", "S1-6"}, result.LockedSeats)
	assert.Equal(t, 5, result.TimeoutMinutes)
	assert.WithinDuration(t, time.Now().UTC().Add(5*time.Minute), result.ExpiresAt, 2*time.Second)
	require.Len(t, result.Reservations, 2)
	assert.Equal(t, int64(42), result.Reservations[0].UserID)
	assert.NotEmpty(t, result.Reservations[0].SessionID)
}

func TestBookingService_ReserveSeats_NoSeats(t *testing.T) {
	_, svc := newBookingService(t)

	_, err := svc.ReserveSeats(context.Background(), 42, reserveInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ReserveSeats_SameStations(t *testing.T) {
	_, svc := newBookingService(t)

	in := reserveInput("S1-5")
	in.DestinationID = in.SourceID

	_, err := svc.ReserveSeats(context.Background(), 42, in)

	assert.ErrorIs(t, err, domain.ErrSameStations)
}

func TestBookingService_ReserveSeats_ScheduleNotBookable(t *testing.T) {
	m, svc := newBookingService(t)

	details := runningSchedule()
	details.Schedule.Status = domain.ScheduleStatusCancelled
	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(details, nil)

	_, err := svc.ReserveSeats(context.Background(), 42, reserveInput("S1-5"))

	assert.ErrorIs(t, err, domain.ErrScheduleNotBookable)
}

func TestBookingService_ReserveSeats_ScheduleNotFound(t *testing.T) {
	m, svc := newBookingService(t)

	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(nil, domain.ErrScheduleNotFound)

	_, err := svc.ReserveSeats(context.Background(), 42, reserveInput("S1-5"))

	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

func TestBookingService_ReserveSeats_CoachTypeNotOnTrain(t *testing.T) {
	m, svc := newBookingService(t)

	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(runningSchedule(), nil)
	m.users.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.User{ID: 42}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.coaches.EXPECT().TypeOfferedOnTrain(mock.Anything, int64(5), int64(2)).Return(false, nil)

	_, err := svc.ReserveSeats(context.Background(), 42, reserveInput("S1-5"))

	assert.ErrorIs(t, err, domain.ErrCoachTypeNotOnTrain)
}

func TestBookingService_ReserveSeats_DuplicateSeat(t *testing.T) {
	m, svc := newBookingService(t)

	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(runningSchedule(), nil)
	m.users.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.User{ID: 42}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.coaches.EXPECT().TypeOfferedOnTrain(mock.Anything, int64(5), int64(2)).Return(true, nil)
	m.coaches.EXPECT().ListLayout(mock.Anything, int64(2)).Return([]domain.LayoutSeat{
		{SeatNumber: 5, SeatClass: domain.SeatClassLower},
	}, nil)
	m.coaches.EXPECT().CoachExists(mock.Anything, int64(5), int64(2), "S1").Return(true, nil)

	_, err := svc.ReserveSeats(context.Background(), 42, reserveInput("S1-5", "S1-5"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ReserveSeats_InvalidSeats(t *testing.T) {
	m, svc := newBookingService(t)

	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(runningSchedule(), nil)
	m.users.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.User{ID: 42}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.coaches.EXPECT().TypeOfferedOnTrain(mock.Anything, int64(5), int64(2)).Return(true, nil)
	m.coaches.EXPECT().ListLayout(mock.Anything, int64(2)).Return([]domain.LayoutSeat{
		{SeatNumber: 5, SeatClass: domain.SeatClassLower},
	}, nil)

	_, err := svc.ReserveSeats(context.Background(), 42, reserveInput("garbage", "S1-99"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var invalid *domain.InvalidSeatsError
	require.ErrorAs(t, err, &invalid)
	assert.ElementsMatch(t, []string{"garbage", "S1-99"}, invalid.Seats)
}

func TestBookingService_ReserveSeats_AlreadyHeld(t *testing.T) {
	m, svc := newBookingService(t)

	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(runningSchedule(), nil)
	m.users.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.User{ID: 42}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.coaches.EXPECT().TypeOfferedOnTrain(mock.Anything, int64(5), int64(2)).Return(true, nil)
	m.coaches.EXPECT().ListLayout(mock.Anything, int64(2)).Return([]domain.LayoutSeat{
		{SeatNumber: 5, SeatClass: domain.SeatClassLower},
	}, nil)
	m.coaches.EXPECT().CoachExists(mock.Anything, int64(5), int64(2), "S1").Return(true, nil)
	m.reservations.EXPECT().HeldSeats(mock.Anything, int64(1), int64(2), mock.Anything, mock.Anything).
		Return([]string{"S1-5"}, nil)

	result, err := svc.ReserveSeats(context.Background(), 42, reserveInput("S1-5"))

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationResultSeatUnavailable, result.Status)
	assert.Equal(t, []string{"S1-5"}, result.UnavailableSeats)
	assert.NotNil(t, result.SuggestedAlternatives)
}

func TestBookingService_ReserveSeats_ConflictOnInsert(t *testing.T) {
	m, svc := newBookingService(t)

	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(runningSchedule(), nil)
	m.users.EXPECT().GetByID(mock.Anything, int64(42)).Return(&domain.User{ID: 42}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.coaches.EXPECT().TypeOfferedOnTrain(mock.Anything, int64(5), int64(2)).Return(true, nil)
	m.coaches.EXPECT().ListLayout(mock.Anything, int64(2)).Return([]domain.LayoutSeat{
		{SeatNumber: 5, SeatClass: domain.SeatClassLower},
	}, nil)
	m.coaches.EXPECT().CoachExists(mock.Anything, int64(5), int64(2), "S1").Return(true, nil)

	// Free at the availability check, gone by the insert.
	m.reservations.EXPECT().HeldSeats(mock.Anything, int64(1), int64(2), mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	m.reservations.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(domain.ErrSeatConflict)
	m.reservations.EXPECT().HeldSeats(mock.Anything, int64(1), int64(2), mock.Anything, mock.Anything).
		Return([]string{"S1-5"}, nil).Once()

	result, err := svc.ReserveSeats(context.Background(), 42, reserveInput("S1-5"))

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationResultSeatUnavailable, result.Status)
	assert.Equal(t, []string{"S1-5"}, result.UnavailableSeats)
}

// --- ConfirmBooking ---

func activeAnchor() *domain.SeatReservation {
	return &domain.SeatReservation{
		ID:          101,
		ScheduleID:  1,
		CoachTypeID: 2,
		CoachLabel:  "S1",
		SeatNumber:  5,
		UserID:      42,
		Status:      domain.ReservationStatusReserved,
		ExpiresAt:   time.Now().UTC().Add(3 * time.Minute),
	}
}

func confirmInput() domain.ConfirmBookingInput {
	return domain.ConfirmBookingInput{
		ReservationID: 101,
		SourceID:      3,
		DestinationID: 4,
		FarePerSeat:   1250.50,
		Passengers: []domain.Passenger{
			{Name: "Asha Rao", Age: 34, Gender: domain.GenderFemale},
		},
		ContactEmail: "asha@example.com",
		ContactPhone: "9876543210",
	}
}

func TestBookingService_ConfirmBooking_Success(t *testing.T) {
	m, svc := newBookingService(t)

	anchor := activeAnchor()
	m.reservations.EXPECT().GetByID(mock.Anything, int64(101)).Return(anchor, nil)
	m.reservations.EXPECT().ListActiveByUser(mock.Anything, int64(42), int64(1), mock.Anything).
		Return([]domain.SeatReservation{*anchor}, nil)
	user := &domain.User{ID: 42, Email: "asha@example.com", FullName: "Asha Rao"}
	m.users.EXPECT().GetByID(mock.Anything, int64(42)).Return(user, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3, Name: "Bengaluru City"}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4, Name: "New Delhi"}, nil)
	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(runningSchedule(), nil)
	m.coaches.EXPECT().GetCoachType(mock.Anything, int64(2)).Return(&domain.CoachType{ID: 2, Code: "3A", Name: "AC 3 Tier"}, nil)

	var created *domain.Booking
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, b *domain.Booking, tickets []domain.Ticket, payment *domain.Payment, reservationIDs []int64) {
			created = b
			assert.Equal(t, []int64{101}, reservationIDs)
			assert.Equal(t, domain.PaymentStatusSuccess, payment.Status)
			assert.Equal(t, "SIMULATED", payment.Method)
			assert.WithinDuration(t, time.Now().UTC(), b.BookedAt, 2*time.Second)
			assert.WithinDuration(t, time.Now().UTC(), payment.PaidAt, 2*time.Second)
		}).
		Return(nil)
	m.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, mock.Anything).Return()

	confirmation, err := svc.ConfirmBooking(context.Background(), 42, confirmInput())

	require.NoError(t, err)
	assert.NotEmpty(t, confirmation.PNR)
	assert.Equal(t, created.PNR, confirmation.PNR)
	assert.Equal(t, domain.BookingStatusConfirmed, confirmation.BookingStatus)
	assert.Equal(t, 1250.50, confirmation.TotalFare)
	assert.Equal(t, "Karnataka Express", confirmation.Train.TrainName)
	assert.Equal(t, "AC 3 Tier", confirmation.Train.CoachType)
	require.Len(t, confirmation.Passengers, 1)
	assert.Equal(t, "S1-5", confirmation.Passengers[0].SeatNumber)
	assert.Equal(t, domain.TicketStatusConfirmed, confirmation.Passengers[0].Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_ConfirmBooking_FareFromTable(t *testing.T) {
	m, svc := newBookingService(t)

	anchor := activeAnchor()
	m.reservations.EXPECT().GetByID(mock.Anything, int64(101)).Return(anchor, nil)
	m.reservations.EXPECT().ListActiveByUser(mock.Anything, int64(42), int64(1), mock.Anything).
		Return([]domain.SeatReservation{*anchor}, nil)
	user := &domain.User{ID: 42}
	m.users.EXPECT().GetByID(mock.Anything, int64(42)).Return(user, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(runningSchedule(), nil)
	m.coaches.EXPECT().GetCoachType(mock.Anything, int64(2)).Return(&domain.CoachType{ID: 2, Name: "AC 3 Tier"}, nil)
	m.fares.EXPECT().GetActive(mock.Anything, int64(5), int64(2)).
		Return(&domain.TrainFare{RatePerKm: 0.5, BaseFare: 50}, nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, mock.Anything).Return()

	in := confirmInput()
	in.FarePerSeat = 0

	confirmation, err := svc.ConfirmBooking(context.Background(), 42, in)

	require.NoError(t, err)
	// base 50 + 2400 km * 0.5/km
	assert.Equal(t, 1250.0, confirmation.TotalFare)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ConfirmBooking_Forbidden(t *testing.T) {
	m, svc := newBookingService(t)

	anchor := activeAnchor()
	anchor.UserID = 99
	m.reservations.EXPECT().GetByID(mock.Anything, int64(101)).Return(anchor, nil)

	_, err := svc.ConfirmBooking(context.Background(), 42, confirmInput())

	assert.ErrorIs(t, err, domain.ErrReservationForbidden)
}

func TestBookingService_ConfirmBooking_Expired(t *testing.T) {
	m, svc := newBookingService(t)

	anchor := activeAnchor()
	anchor.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	m.reservations.EXPECT().GetByID(mock.Anything, int64(101)).Return(anchor, nil)

	_, err := svc.ConfirmBooking(context.Background(), 42, confirmInput())

	assert.ErrorIs(t, err, domain.ErrReservationExpired)
}

func TestBookingService_ConfirmBooking_PassengerCountMismatch(t *testing.T) {
	m, svc := newBookingService(t)

	anchor := activeAnchor()
	second := *anchor
	second.ID = 102
	second.SeatNumber = 6

	m.reservations.EXPECT().GetByID(mock.Anything, int64(101)).Return(anchor, nil)
	m.reservations.EXPECT().ListActiveByUser(mock.Anything, int64(42), int64(1), mock.Anything).
		Return([]domain.SeatReservation{*anchor, second}, nil)

	_, err := svc.ConfirmBooking(context.Background(), 42, confirmInput())

	assert.ErrorIs(t, err, domain.ErrPassengerCountMismatch)
}

func TestBookingService_ConfirmBooking_RetriesDuplicatePNR(t *testing.T) {
	m, svc := newBookingService(t)

	anchor := activeAnchor()
	m.reservations.EXPECT().GetByID(mock.Anything, int64(101)).Return(anchor, nil)
	m.reservations.EXPECT().ListActiveByUser(mock.Anything, int64(42), int64(1), mock.Anything).
		Return([]domain.SeatReservation{*anchor}, nil)
	user := &domain.User{ID: 42}
	m.users.EXPECT().GetByID(mock.Anything, int64(42)).Return(user, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(runningSchedule(), nil)
	m.coaches.EXPECT().GetCoachType(mock.Anything, int64(2)).Return(&domain.CoachType{ID: 2, Name: "AC 3 Tier"}, nil)

	m.bookings.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrDuplicatePNR).Once()
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()
	m.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, mock.Anything).Return()

	confirmation, err := svc.ConfirmBooking(context.Background(), 42, confirmInput())

	require.NoError(t, err)
	assert.NotEmpty(t, confirmation.PNR)

	time.Sleep(50 * time.Millisecond)
}

// --- ReservationStatus ---

func TestBookingService_ReservationStatus_Active(t *testing.T) {
	m, svc := newBookingService(t)

	m.reservations.EXPECT().GetByID(mock.Anything, int64(101)).Return(activeAnchor(), nil)

	res, state, err := svc.ReservationStatus(context.Background(), 42, 101)

	require.NoError(t, err)
	assert.Equal(t, int64(101), res.ID)
	assert.Equal(t, domain.ReservationStateActive, state)
}

func TestBookingService_ReservationStatus_Expired(t *testing.T) {
	m, svc := newBookingService(t)

	anchor := activeAnchor()
	anchor.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	m.reservations.EXPECT().GetByID(mock.Anything, int64(101)).Return(anchor, nil)

	_, state, err := svc.ReservationStatus(context.Background(), 42, 101)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStateExpired, state)
}

func TestBookingService_ReservationStatus_Forbidden(t *testing.T) {
	m, svc := newBookingService(t)

	anchor := activeAnchor()
	anchor.UserID = 99
	m.reservations.EXPECT().GetByID(mock.Anything, int64(101)).Return(anchor, nil)

	_, _, err := svc.ReservationStatus(context.Background(), 42, 101)

	assert.ErrorIs(t, err, domain.ErrReservationForbidden)
}

// --- CancelBooking ---

func TestBookingService_CancelBooking_Success(t *testing.T) {
	m, svc := newBookingService(t)

	booking := &domain.Booking{ID: 9, UserID: 42, PNR: "20260829AB12CD", Status: domain.BookingStatusConfirmed}
	user := &domain.User{ID: 42}

	m.bookings.EXPECT().GetByID(mock.Anything, int64(9)).Return(booking, nil)
	m.bookings.EXPECT().Cancel(mock.Anything, int64(9)).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, int64(42)).Return(user, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, mock.Anything).Return()

	err := svc.CancelBooking(context.Background(), 42, 9)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CancelBooking_AlreadyCancelled(t *testing.T) {
	m, svc := newBookingService(t)

	booking := &domain.Booking{ID: 9, UserID: 42, Status: domain.BookingStatusCancelled}
	m.bookings.EXPECT().GetByID(mock.Anything, int64(9)).Return(booking, nil)

	err := svc.CancelBooking(context.Background(), 42, 9)

	assert.ErrorIs(t, err, domain.ErrBookingAlreadyCancelled)
}

func TestBookingService_CancelBooking_Forbidden(t *testing.T) {
	m, svc := newBookingService(t)

	booking := &domain.Booking{ID: 9, UserID: 99, Status: domain.BookingStatusConfirmed}
	m.bookings.EXPECT().GetByID(mock.Anything, int64(9)).Return(booking, nil)

	err := svc.CancelBooking(context.Background(), 42, 9)

	assert.ErrorIs(t, err, domain.ErrReservationForbidden)
}

// --- ExpireStale ---

func TestBookingService_ExpireStale(t *testing.T) {
	m, svc := newBookingService(t)

	m.reservations.EXPECT().ExpireStale(mock.Anything, mock.Anything).Return(4, nil)

	n, err := svc.ExpireStale(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
