package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
	"github.com/KD4-Mahesh-92414/RailBooker/internal/service/ports/mocks"
)

type catalogMocks struct {
	stations *mocks.MockStationRepo
	trains   *mocks.MockTrainRepo
	coaches  *mocks.MockCoachRepo
	fares    *mocks.MockFareRepo
}

func newCatalogService(t *testing.T) (catalogMocks, *CatalogService) {
	t.Helper()
	m := catalogMocks{
		stations: mocks.NewMockStationRepo(t),
		trains:   mocks.NewMockTrainRepo(t),
		coaches:  mocks.NewMockCoachRepo(t),
		fares:    mocks.NewMockFareRepo(t),
	}
	svc := NewCatalogService(m.stations, m.trains, m.coaches, m.fares, newTestLogger(t))
	return m, svc
}

func TestCatalogService_CreateStation_Success(t *testing.T) {
	m, svc := newCatalogService(t)

	m.stations.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, s *domain.Station) {
			s.ID = 3
		}).
		Return(nil)

	station, err := svc.CreateStation(context.Background(), domain.CreateStationInput{
		Code: "SBC",
		Name: "Bengaluru City",
		City: "Bengaluru",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), station.ID)
	assert.True(t, station.IsActive)
}

func TestCatalogService_CreateTrain_Success(t *testing.T) {
	m, svc := newCatalogService(t)

	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.coaches.EXPECT().GetCoachType(mock.Anything, int64(2)).Return(&domain.CoachType{ID: 2}, nil)
	m.trains.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, tr *domain.Train, coaches map[int64][]string) {
			tr.ID = 5
			assert.Equal(t, []string{"S1", "S2"}, coaches[2])
		}).
		Return(nil)

	train, err := svc.CreateTrain(context.Background(), domain.CreateTrainInput{
		Number:        "12628",
		Name:          "Karnataka Express",
		SourceID:      3,
		DestinationID: 4,
		DistanceKm:    2400,
		Coaches:       map[int64][]string{2: {"S1", "S2"}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), train.ID)
}

func TestCatalogService_CreateTrain_SameStations(t *testing.T) {
	_, svc := newCatalogService(t)

	_, err := svc.CreateTrain(context.Background(), domain.CreateTrainInput{
		Number:        "12628",
		Name:          "Karnataka Express",
		SourceID:      3,
		DestinationID: 3,
		DistanceKm:    2400,
		Coaches:       map[int64][]string{2: {"S1"}},
	})

	assert.ErrorIs(t, err, domain.ErrSameStations)
}

func TestCatalogService_CreateTrain_NoCoaches(t *testing.T) {
	_, svc := newCatalogService(t)

	_, err := svc.CreateTrain(context.Background(), domain.CreateTrainInput{
		Number:        "12628",
		Name:          "Karnataka Express",
		SourceID:      3,
		DestinationID: 4,
		DistanceKm:    2400,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_CreateTrain_UnknownCoachType(t *testing.T) {
	m, svc := newCatalogService(t)

	m.stations.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Station{ID: 3}, nil)
	m.stations.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Station{ID: 4}, nil)
	m.coaches.EXPECT().GetCoachType(mock.Anything, int64(99)).Return(nil, domain.ErrCoachTypeNotFound)

	_, err := svc.CreateTrain(context.Background(), domain.CreateTrainInput{
		Number:        "12628",
		Name:          "Karnataka Express",
		SourceID:      3,
		DestinationID: 4,
		DistanceKm:    2400,
		Coaches:       map[int64][]string{99: {"S1"}},
	})

	assert.ErrorIs(t, err, domain.ErrCoachTypeNotFound)
}

func TestCatalogService_SetFare_Success(t *testing.T) {
	m, svc := newCatalogService(t)

	in := domain.CreateFareInput{TrainID: 5, CoachTypeID: 2, RatePerKm: 0.45, BaseFare: 170}

	m.trains.EXPECT().GetByID(mock.Anything, int64(5)).Return(&domain.Train{ID: 5}, nil)
	m.coaches.EXPECT().GetCoachType(mock.Anything, int64(2)).Return(&domain.CoachType{ID: 2}, nil)
	m.coaches.EXPECT().TypeOfferedOnTrain(mock.Anything, int64(5), int64(2)).Return(true, nil)
	m.fares.EXPECT().Upsert(mock.Anything, in).
		Return(&domain.TrainFare{ID: 1, TrainID: 5, CoachTypeID: 2, RatePerKm: 0.45, BaseFare: 170, IsActive: true}, nil)

	fare, err := svc.SetFare(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(1), fare.ID)
	assert.True(t, fare.IsActive)
}

func TestCatalogService_SetFare_NegativeRate(t *testing.T) {
	_, svc := newCatalogService(t)

	_, err := svc.SetFare(context.Background(), domain.CreateFareInput{
		TrainID:     5,
		CoachTypeID: 2,
		RatePerKm:   -0.1,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_SetFare_CoachTypeNotOnTrain(t *testing.T) {
	m, svc := newCatalogService(t)

	m.trains.EXPECT().GetByID(mock.Anything, int64(5)).Return(&domain.Train{ID: 5}, nil)
	m.coaches.EXPECT().GetCoachType(mock.Anything, int64(2)).Return(&domain.CoachType{ID: 2}, nil)
	m.coaches.EXPECT().TypeOfferedOnTrain(mock.Anything, int64(5), int64(2)).Return(false, nil)

	_, err := svc.SetFare(context.Background(), domain.CreateFareInput{
		TrainID:     5,
		CoachTypeID: 2,
		RatePerKm:   0.45,
	})

	assert.ErrorIs(t, err, domain.ErrCoachTypeNotOnTrain)
}

func TestCatalogService_ListStations(t *testing.T) {
	m, svc := newCatalogService(t)

	m.stations.EXPECT().List(mock.Anything).Return([]domain.Station{{ID: 3}, {ID: 4}}, nil)

	stations, err := svc.ListStations(context.Background())

	require.NoError(t, err)
	assert.Len(t, stations, 2)
}
