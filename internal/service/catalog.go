package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
	"github.com/KD4-Mahesh-92414/RailBooker/internal/service/ports"
)

// CatalogService maintains the reference data bookings are made against:
// stations, trains with their coaches, and fare tables.
type CatalogService struct {
	stationRepo ports.StationRepo
	trainRepo   ports.TrainRepo
	coachRepo   ports.CoachRepo
	fareRepo    ports.FareRepo
	logger      logger.Logger
}

func NewCatalogService(
	stationRepo ports.StationRepo,
	trainRepo ports.TrainRepo,
	coachRepo ports.CoachRepo,
	fareRepo ports.FareRepo,
	logger logger.Logger,
) *CatalogService {
	return &CatalogService{
		stationRepo: stationRepo,
		trainRepo:   trainRepo,
		coachRepo:   coachRepo,
		fareRepo:    fareRepo,
		logger:      logger,
	}
}

func (s *CatalogService) CreateStation(ctx context.Context, in domain.CreateStationInput) (*domain.Station, error) {
	station := &domain.Station{
		Code:     in.Code,
		Name:     in.Name,
		City:     in.City,
		State:    in.State,
		Zone:     in.Zone,
		IsActive: true,
	}
	if err := s.stationRepo.Create(ctx, station); err != nil {
		return nil, fmt.Errorf("create station: %w", err)
	}

	s.logger.Info("station created",
		logger.Int64("station_id", station.ID),
		logger.String("code", station.Code),
	)

	return station, nil
}

func (s *CatalogService) ListStations(ctx context.Context) ([]domain.Station, error) {
	stations, err := s.stationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}
	return stations, nil
}

func (s *CatalogService) CreateTrain(ctx context.Context, in domain.CreateTrainInput) (*domain.Train, error) {
	if in.SourceID == in.DestinationID {
		return nil, domain.ErrSameStations
	}
	if in.DistanceKm <= 0 {
		return nil, fmt.Errorf("%w: distance must be positive", domain.ErrValidation)
	}
	if len(in.Coaches) == 0 {
		return nil, fmt.Errorf("%w: a train needs at least one coach", domain.ErrValidation)
	}

	if _, err := s.stationRepo.GetByID(ctx, in.SourceID); err != nil {
		return nil, fmt.Errorf("check source station: %w", err)
	}
	if _, err := s.stationRepo.GetByID(ctx, in.DestinationID); err != nil {
		return nil, fmt.Errorf("check destination station: %w", err)
	}
	for coachTypeID, labels := range in.Coaches {
		if _, err := s.coachRepo.GetCoachType(ctx, coachTypeID); err != nil {
			return nil, fmt.Errorf("check coach type %d: %w", coachTypeID, err)
		}
		if len(labels) == 0 {
			return nil, fmt.Errorf("%w: coach type %d has no coach labels", domain.ErrValidation, coachTypeID)
		}
	}

	train := &domain.Train{
		Number:        in.Number,
		Name:          in.Name,
		SourceID:      in.SourceID,
		DestinationID: in.DestinationID,
		DistanceKm:    in.DistanceKm,
	}
	if err := s.trainRepo.Create(ctx, train, in.Coaches); err != nil {
		return nil, fmt.Errorf("create train: %w", err)
	}

	s.logger.Info("train created",
		logger.Int64("train_id", train.ID),
		logger.String("train_number", train.Number),
	)

	return train, nil
}

func (s *CatalogService) ListCoachTypes(ctx context.Context) ([]domain.CoachType, error) {
	types, err := s.coachRepo.ListCoachTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coach types: %w", err)
	}
	return types, nil
}

func (s *CatalogService) SetFare(ctx context.Context, in domain.CreateFareInput) (*domain.TrainFare, error) {
	if in.RatePerKm < 0 || in.BaseFare < 0 {
		return nil, fmt.Errorf("%w: fare components cannot be negative", domain.ErrValidation)
	}
	if _, err := s.trainRepo.GetByID(ctx, in.TrainID); err != nil {
		return nil, fmt.Errorf("check train: %w", err)
	}
	if _, err := s.coachRepo.GetCoachType(ctx, in.CoachTypeID); err != nil {
		return nil, fmt.Errorf("check coach type: %w", err)
	}

	offered, err := s.coachRepo.TypeOfferedOnTrain(ctx, in.TrainID, in.CoachTypeID)
	if err != nil {
		return nil, fmt.Errorf("check coach type on train: %w", err)
	}
	if !offered {
		return nil, domain.ErrCoachTypeNotOnTrain
	}

	fare, err := s.fareRepo.Upsert(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("set fare: %w", err)
	}

	s.logger.Info("fare configured",
		logger.Int64("train_id", in.TrainID),
		logger.Int64("coach_type_id", in.CoachTypeID),
	)

	return fare, nil
}
