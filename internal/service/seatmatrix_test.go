package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
	"github.com/KD4-Mahesh-92414/RailBooker/internal/service/ports/mocks"
)

type matrixMocks struct {
	reservations *mocks.MockReservationRepo
	bookings     *mocks.MockBookingRepo
	schedules    *mocks.MockScheduleRepo
	stations     *mocks.MockStationRepo
	coaches      *mocks.MockCoachRepo
}

func newMatrixService(t *testing.T) (matrixMocks, *SeatMatrixService) {
	t.Helper()
	m := matrixMocks{
		reservations: mocks.NewMockReservationRepo(t),
		bookings:     mocks.NewMockBookingRepo(t),
		schedules:    mocks.NewMockScheduleRepo(t),
		stations:     mocks.NewMockStationRepo(t),
		coaches:      mocks.NewMockCoachRepo(t),
	}
	svc := NewSeatMatrixService(m.reservations, m.bookings, m.schedules, m.stations, m.coaches, newTestLogger(t))
	return m, svc
}

func matrixInput() domain.SeatMatrixInput {
	return domain.SeatMatrixInput{
		ScheduleID:    1,
		CoachTypeID:   2,
		SourceID:      3,
		DestinationID: 4,
	}
}

func TestSeatMatrixService_SeatMatrix_Classification(t *testing.T) {
	m, svc := newMatrixService(t)

	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(runningSchedule(), nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.coaches.EXPECT().ListCoaches(mock.Anything, int64(5), int64(2)).Return([]domain.TrainCoach{
		{ID: 1, TrainID: 5, CoachTypeID: 2, Label: "S1"},
	}, nil)
	m.coaches.EXPECT().ListLayout(mock.Anything, int64(2)).Return([]domain.LayoutSeat{
		{SeatNumber: 1, SeatClass: domain.SeatClassLower},
		{SeatNumber: 2, SeatClass: domain.SeatClassMiddle},
		{SeatNumber: 3, SeatClass: domain.SeatClassUpper},
		{SeatNumber: 4, SeatClass: domain.SeatClassSideLower},
	}, nil)
	m.bookings.EXPECT().BookedSeatsForSegment(mock.Anything, int64(1), int64(2), int64(3), int64(4)).
		Return([]string{"S1-1"}, nil)
	m.reservations.EXPECT().ListActiveForMatrix(mock.Anything, int64(1), int64(2), mock.Anything).
		Return([]domain.SeatReservation{
			{CoachLabel: "S1", SeatNumber: 2, UserID: 42, Status: domain.ReservationStatusReserved, ExpiresAt: time.Now().Add(time.Minute)},
			{CoachLabel: "S1", SeatNumber: 3, UserID: 99, Status: domain.ReservationStatusReserved, ExpiresAt: time.Now().Add(time.Minute)},
		}, nil)

	matrix, err := svc.SeatMatrix(context.Background(), 42, matrixInput())

	require.NoError(t, err)
	require.Len(t, matrix, 1)
	assert.Equal(t, "S1", matrix[0].CoachLabel)
	require.Len(t, matrix[0].Seats, 4)

	// booked by someone, my own hold, another user's hold, free
	assert.Equal(t, domain.MatrixSeatLocked, matrix[0].Seats[0].Status)
	assert.Equal(t, domain.MatrixSeatMyReservation, matrix[0].Seats[1].Status)
	assert.Equal(t, domain.MatrixSeatLocked, matrix[0].Seats[2].Status)
	assert.Equal(t, domain.MatrixSeatAvailable, matrix[0].Seats[3].Status)
}

func TestSeatMatrixService_SeatMatrix_MultipleCoaches(t *testing.T) {
	m, svc := newMatrixService(t)

	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(runningSchedule(), nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.coaches.EXPECT().ListCoaches(mock.Anything, int64(5), int64(2)).Return([]domain.TrainCoach{
		{Label: "S1"}, {Label: "S2"},
	}, nil)
	m.coaches.EXPECT().ListLayout(mock.Anything, int64(2)).Return([]domain.LayoutSeat{
		{SeatNumber: 1, SeatClass: domain.SeatClassLower},
	}, nil)
	m.bookings.EXPECT().BookedSeatsForSegment(mock.Anything, int64(1), int64(2), int64(3), int64(4)).
		Return([]string{"S2-1"}, nil)
	m.reservations.EXPECT().ListActiveForMatrix(mock.Anything, int64(1), int64(2), mock.Anything).
		Return(nil, nil)

	matrix, err := svc.SeatMatrix(context.Background(), 42, matrixInput())

	require.NoError(t, err)
	require.Len(t, matrix, 2)
	// the same seat number is independent per coach
	assert.Equal(t, domain.MatrixSeatAvailable, matrix[0].Seats[0].Status)
	assert.Equal(t, domain.MatrixSeatLocked, matrix[1].Seats[0].Status)
}

func TestSeatMatrixService_SeatMatrix_ExpiredHoldReadsAvailableTwice(t *testing.T) {
	m, svc := newMatrixService(t)

	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(runningSchedule(), nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.coaches.EXPECT().ListCoaches(mock.Anything, int64(5), int64(2)).Return([]domain.TrainCoach{
		{Label: "S1"},
	}, nil)
	m.coaches.EXPECT().ListLayout(mock.Anything, int64(2)).Return([]domain.LayoutSeat{
		{SeatNumber: 5, SeatClass: domain.SeatClassLower},
	}, nil)
	m.bookings.EXPECT().BookedSeatsForSegment(mock.Anything, int64(1), int64(2), int64(3), int64(4)).
		Return(nil, nil)
	// The repository flips a stale hold on the first read, so neither read
	// reports it as active.
	m.reservations.EXPECT().ListActiveForMatrix(mock.Anything, int64(1), int64(2), mock.Anything).
		Return(nil, nil)

	first, err := svc.SeatMatrix(context.Background(), 42, matrixInput())
	require.NoError(t, err)
	assert.Equal(t, domain.MatrixSeatAvailable, first[0].Seats[0].Status)

	second, err := svc.SeatMatrix(context.Background(), 42, matrixInput())
	require.NoError(t, err)
	assert.Equal(t, domain.MatrixSeatAvailable, second[0].Seats[0].Status)

	assert.Len(t, m.reservations.Calls, 2)
}

func TestSeatMatrixService_SeatMatrix_SameStations(t *testing.T) {
	_, svc := newMatrixService(t)

	in := matrixInput()
	in.DestinationID = in.SourceID

	_, err := svc.SeatMatrix(context.Background(), 42, in)

	assert.ErrorIs(t, err, domain.ErrSameStations)
}

func TestSeatMatrixService_SeatMatrix_CoachTypeNotOnTrain(t *testing.T) {
	m, svc := newMatrixService(t)

	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(runningSchedule(), nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.coaches.EXPECT().ListCoaches(mock.Anything, int64(5), int64(2)).Return(nil, nil)

	_, err := svc.SeatMatrix(context.Background(), 42, matrixInput())

	assert.ErrorIs(t, err, domain.ErrCoachTypeNotOnTrain)
}

func TestSeatMatrixService_SeatMatrix_ScheduleNotFound(t *testing.T) {
	m, svc := newMatrixService(t)

	m.schedules.EXPECT().GetDetails(mock.Anything, int64(1)).Return(nil, domain.ErrScheduleNotFound)

	_, err := svc.SeatMatrix(context.Background(), 42, matrixInput())

	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}
