package ports

import (
	"context"
	"time"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
)

type StationRepo interface {
	Create(ctx context.Context, s *domain.Station) error
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
	List(ctx context.Context) ([]domain.Station, error)
}

type TrainRepo interface {
	// Create inserts the train and its physical coaches in one transaction.
	Create(ctx context.Context, t *domain.Train, coaches map[int64][]string) error
	GetByID(ctx context.Context, id int64) (*domain.Train, error)
}

type CoachRepo interface {
	GetCoachType(ctx context.Context, id int64) (*domain.CoachType, error)
	ListCoachTypes(ctx context.Context) ([]domain.CoachType, error)
	TypeOfferedOnTrain(ctx context.Context, trainID, coachTypeID int64) (bool, error)
	CoachExists(ctx context.Context, trainID, coachTypeID int64, label string) (bool, error)
	ListCoaches(ctx context.Context, trainID, coachTypeID int64) ([]domain.TrainCoach, error)
	ListLayout(ctx context.Context, coachTypeID int64) ([]domain.LayoutSeat, error)
}

type FareRepo interface {
	Upsert(ctx context.Context, in domain.CreateFareInput) (*domain.TrainFare, error)
	GetActive(ctx context.Context, trainID, coachTypeID int64) (*domain.TrainFare, error)
	ListActiveByTrain(ctx context.Context, trainID int64) ([]domain.TrainFare, error)
}

type ScheduleRepo interface {
	Create(ctx context.Context, s *domain.Schedule) error
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	GetDetails(ctx context.Context, id int64) (*domain.ScheduleDetails, error)
	Search(ctx context.Context, sourceID, destinationID int64, date time.Time) ([]domain.ScheduleDetails, error)
}
