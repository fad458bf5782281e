package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
	"github.com/KD4-Mahesh-92414/RailBooker/internal/service/ports"
)

// searchWindow bounds how far ahead journeys can be searched and scheduled.
const searchWindow = 90 * 24 * time.Hour

type ScheduleService struct {
	scheduleRepo ports.ScheduleRepo
	stationRepo  ports.StationRepo
	trainRepo    ports.TrainRepo
	fareRepo     ports.FareRepo
	coachRepo    ports.CoachRepo
	logger       logger.Logger
}

func NewScheduleService(
	scheduleRepo ports.ScheduleRepo,
	stationRepo ports.StationRepo,
	trainRepo ports.TrainRepo,
	fareRepo ports.FareRepo,
	coachRepo ports.CoachRepo,
	logger logger.Logger,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		stationRepo:  stationRepo,
		trainRepo:    trainRepo,
		fareRepo:     fareRepo,
		coachRepo:    coachRepo,
		logger:       logger,
	}
}

// Search lists the bookable trains running between two stations on a date,
// with the computed per-seat fare of every coach class priced on them.
func (s *ScheduleService) Search(ctx context.Context, sourceID, destinationID int64, date time.Time) ([]domain.SearchResult, error) {
	if sourceID == destinationID {
		return nil, domain.ErrSameStations
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	day := date.UTC().Truncate(24 * time.Hour)
	if day.Before(today) {
		return nil, fmt.Errorf("%w: journey date is in the past", domain.ErrValidation)
	}
	if day.After(today.Add(searchWindow)) {
		return nil, fmt.Errorf("%w: journey date is beyond the booking window", domain.ErrValidation)
	}

	if _, err := s.stationRepo.GetByID(ctx, sourceID); err != nil {
		return nil, fmt.Errorf("check source station: %w", err)
	}
	if _, err := s.stationRepo.GetByID(ctx, destinationID); err != nil {
		return nil, fmt.Errorf("check destination station: %w", err)
	}

	schedules, err := s.scheduleRepo.Search(ctx, sourceID, destinationID, day)
	if err != nil {
		return nil, fmt.Errorf("search schedules: %w", err)
	}

	coachTypes, err := s.coachRepo.ListCoachTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coach types: %w", err)
	}
	typeCode := make(map[int64]string, len(coachTypes))
	for _, ct := range coachTypes {
		typeCode[ct.ID] = ct.Code
	}

	results := make([]domain.SearchResult, 0, len(schedules))
	for _, sd := range schedules {
		fares, ferr := s.fareRepo.ListActiveByTrain(ctx, sd.Train.ID)
		if ferr != nil {
			return nil, fmt.Errorf("list fares for train %d: %w", sd.Train.ID, ferr)
		}

		coachFares := make([]domain.CoachFare, 0, len(fares))
		for _, f := range fares {
			coachFares = append(coachFares, domain.CoachFare{
				CoachTypeID:   f.CoachTypeID,
				CoachTypeCode: typeCode[f.CoachTypeID],
				FarePerSeat:   f.PerSeat(sd.Train.DistanceKm),
			})
		}

		results = append(results, domain.SearchResult{
			ScheduleID:    sd.Schedule.ID,
			TrainNumber:   sd.Train.Number,
			TrainName:     sd.Train.Name,
			DepartureDate: sd.Schedule.DepartureDate,
			Status:        sd.Schedule.Status,
			DistanceKm:    sd.Train.DistanceKm,
			Fares:         coachFares,
		})
	}

	s.logger.Debug("train search",
		logger.Int64("source_station_id", sourceID),
		logger.Int64("destination_station_id", destinationID),
		logger.Int("results", len(results)),
	)

	return results, nil
}

func (s *ScheduleService) Create(ctx context.Context, in domain.CreateScheduleInput) (*domain.Schedule, error) {
	if _, err := s.trainRepo.GetByID(ctx, in.TrainID); err != nil {
		return nil, fmt.Errorf("check train: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	day := in.DepartureDate.UTC().Truncate(24 * time.Hour)
	if day.Before(today) {
		return nil, fmt.Errorf("%w: departure date is in the past", domain.ErrValidation)
	}
	if day.After(today.Add(searchWindow)) {
		return nil, fmt.Errorf("%w: departure date is beyond the booking window", domain.ErrValidation)
	}

	schedule := &domain.Schedule{
		TrainID:       in.TrainID,
		DepartureDate: day,
		Status:        domain.ScheduleStatusRunning,
	}
	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	s.logger.Info("schedule created",
		logger.Int64("schedule_id", schedule.ID),
		logger.Int64("train_id", schedule.TrainID),
		logger.String("departure_date", day.Format("2006-01-02")),
	)

	return schedule, nil
}
