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

type scheduleMocks struct {
	schedules *mocks.MockScheduleRepo
	stations  *mocks.MockStationRepo
	trains    *mocks.MockTrainRepo
	fares     *mocks.MockFareRepo
	coaches   *mocks.MockCoachRepo
}

func newScheduleService(t *testing.T) (scheduleMocks, *ScheduleService) {
	t.Helper()
	m := scheduleMocks{
		schedules: mocks.NewMockScheduleRepo(t),
		stations:  mocks.NewMockStationRepo(t),
		trains:    mocks.NewMockTrainRepo(t),
		fares:     mocks.NewMockFareRepo(t),
		coaches:   mocks.NewMockCoachRepo(t),
	}
	svc := NewScheduleService(m.schedules, m.stations, m.trains, m.fares, m.coaches, newTestLogger(t))
	return m, svc
}

func TestScheduleService_Search_Success(t *testing.T) {
	m, svc := newScheduleService(t)

	date := time.Now().UTC().Add(48 * time.Hour)

	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.schedules.EXPECT().Search(mock.Anything, int64(3), int64(4), mock.Anything).
		Return([]domain.ScheduleDetails{*runningSchedule()}, nil)
	m.coaches.EXPECT().ListCoachTypes(mock.Anything).Return([]domain.CoachType{
		{ID: 2, Code: "3A", Name: "AC 3 Tier"},
		{ID: 7, Code: "SL", Name: "Sleeper"},
	}, nil)
	m.fares.EXPECT().ListActiveByTrain(mock.Anything, int64(5)).Return([]domain.TrainFare{
		{TrainID: 5, CoachTypeID: 2, RatePerKm: 0.5, BaseFare: 50},
		{TrainID: 5, CoachTypeID: 7, RatePerKm: 0.2, BaseFare: 30},
	}, nil)

	results, err := svc.Search(context.Background(), 3, 4, date)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "12628", results[0].TrainNumber)
	require.Len(t, results[0].Fares, 2)
	assert.Equal(t, "3A", results[0].Fares[0].CoachTypeCode)
	assert.Equal(t, 50+2400*0.5, results[0].Fares[0].FarePerSeat)
	assert.Equal(t, "SL", results[0].Fares[1].CoachTypeCode)
	assert.Equal(t, 30+2400*0.2, results[0].Fares[1].FarePerSeat)
}

func TestScheduleService_Search_SameStations(t *testing.T) {
	_, svc := newScheduleService(t)

	_, err := svc.Search(context.Background(), 3, 3, time.Now().Add(24*time.Hour))

	assert.ErrorIs(t, err, domain.ErrSameStations)
}

func TestScheduleService_Search_PastDate(t *testing.T) {
	_, svc := newScheduleService(t)

	_, err := svc.Search(context.Background(), 3, 4, time.Now().UTC().Add(-48*time.Hour))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduleService_Search_BeyondWindow(t *testing.T) {
	_, svc := newScheduleService(t)

	_, err := svc.Search(context.Background(), 3, 4, time.Now().UTC().Add(120*24*time.Hour))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduleService_Search_StationNotFound(t *testing.T) {
	m, svc := newScheduleService(t)

	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(nil, domain.ErrStationNotFound)

	_, err := svc.Search(context.Background(), 3, 4, time.Now().UTC().Add(24*time.Hour))

	assert.ErrorIs(t, err, domain.ErrStationNotFound)
}

func TestScheduleService_Create_Success(t *testing.T) {
	m, svc := newScheduleService(t)

	date := time.Now().UTC().Add(72 * time.Hour)

	m.trains.EXPECT().GetByID(mock.Anything, int64(5)).Return(&domain.Train{ID: 5}, nil)
	m.schedules.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, s *domain.Schedule) {
			s.ID = 11
		}).
		Return(nil)

	schedule, err := svc.Create(context.Background(), domain.CreateScheduleInput{
		TrainID:       5,
		DepartureDate: date,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), schedule.ID)
	assert.Equal(t, domain.ScheduleStatusRunning, schedule.Status)
	assert.Equal(t, date.Truncate(24*time.Hour), schedule.DepartureDate)
}

func TestScheduleService_Create_TrainNotFound(t *testing.T) {
	m, svc := newScheduleService(t)

	m.trains.EXPECT().GetByID(mock.Anything, int64(5)).Return(nil, domain.ErrTrainNotFound)

	_, err := svc.Create(context.Background(), domain.CreateScheduleInput{
		TrainID:       5,
		DepartureDate: time.Now().UTC().Add(24 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrTrainNotFound)
}

func TestScheduleService_Create_PastDate(t *testing.T) {
	m, svc := newScheduleService(t)

	m.trains.EXPECT().GetByID(mock.Anything, int64(5)).Return(&domain.Train{ID: 5}, nil)

	_, err := svc.Create(context.Background(), domain.CreateScheduleInput{
		TrainID:       5,
		DepartureDate: time.Now().UTC().Add(-48 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
