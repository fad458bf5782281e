package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
)

type ScheduleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewScheduleRepo(db *dbpg.DB) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ScheduleRepository) Create(ctx context.Context, s *domain.Schedule) error {
	query := `INSERT INTO train_schedules (train_id, departure_date, status, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING schedule_id`

	s.CreatedAt = time.Now().UTC()
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, s.TrainID, s.DepartureDate, s.Status, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}
	if err = row.Scan(&s.ID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: schedule already exists for this train and date", domain.ErrValidation)
		}
		return fmt.Errorf("scan schedule id: %w", err)
	}

	return nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	query := `SELECT schedule_id, train_id, departure_date, status, created_at
			  FROM train_schedules
			  WHERE schedule_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	var s domain.Schedule
	if err = row.Scan(&s.ID, &s.TrainID, &s.DepartureDate, &s.Status, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("scan schedule: %w", err)
	}

	return &s, nil
}

const scheduleDetailsColumns = `s.schedule_id, s.train_id, s.departure_date, s.status, s.created_at,
	t.train_id, t.train_number, t.train_name, t.source_station_id, t.destination_station_id,
	t.total_distance_km, t.status, t.created_at`

// GetDetails loads a schedule with its train in one eager join.
func (r *ScheduleRepository) GetDetails(ctx context.Context, id int64) (*domain.ScheduleDetails, error) {
	query := `SELECT ` + scheduleDetailsColumns + `
			  FROM train_schedules s
			  JOIN trains t ON t.train_id = s.train_id
			  WHERE s.schedule_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule details: %w", err)
	}

	d, err := scanScheduleDetails(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *ScheduleRepository) Search(ctx context.Context, sourceID, destinationID int64, date time.Time) ([]domain.ScheduleDetails, error) {
	query := `SELECT ` + scheduleDetailsColumns + `
			  FROM train_schedules s
			  JOIN trains t ON t.train_id = s.train_id
			  WHERE t.source_station_id = $1
			    AND t.destination_station_id = $2
			    AND s.departure_date = $3
			    AND s.status = ANY($4)
			    AND t.status = 'ACTIVE'
			  ORDER BY t.train_number`

	bookable := []domain.ScheduleStatus{domain.ScheduleStatusRunning, domain.ScheduleStatusRescheduled}
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, sourceID, destinationID, date, pq.Array(bookable))
	if err != nil {
		return nil, fmt.Errorf("search schedules: %w", err)
	}
	defer rows.Close()

	var res []domain.ScheduleDetails
	for rows.Next() {
		d, err := scanScheduleDetails(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, *d)
	}

	return res, rows.Err()
}

func scanScheduleDetails(scan func(dest ...any) error) (*domain.ScheduleDetails, error) {
	var d domain.ScheduleDetails
	if err := scan(
		&d.Schedule.ID, &d.Schedule.TrainID, &d.Schedule.DepartureDate, &d.Schedule.Status, &d.Schedule.CreatedAt,
		&d.Train.ID, &d.Train.Number, &d.Train.Name, &d.Train.SourceID, &d.Train.DestinationID,
		&d.Train.DistanceKm, &d.Train.Status, &d.Train.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan schedule details: %w", err)
	}
	return &d, nil
}
