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

type TrainRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTrainRepo(db *dbpg.DB) *TrainRepository {
	return &TrainRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TrainRepository) Create(ctx context.Context, t *domain.Train, coaches map[int64][]string) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO trains (train_number, train_name, source_station_id, destination_station_id, total_distance_km, status)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING train_id, created_at`

	t.Status = domain.TrainStatusActive
	err = tx.QueryRowContext(ctx, query, t.Number, t.Name, t.SourceID, t.DestinationID, t.DistanceKm, t.Status).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: train number %s already exists", domain.ErrValidation, t.Number)
		}
		return fmt.Errorf("insert train: %w", err)
	}

	coachQuery := `INSERT INTO train_coaches (train_id, coach_type_id, coach_label)
				   VALUES ($1, $2, $3)`

	for coachTypeID, labels := range coaches {
		for _, label := range labels {
			if _, err = tx.ExecContext(ctx, coachQuery, t.ID, coachTypeID, label); err != nil {
				var pgErr *pq.Error
				if errors.As(err, &pgErr) && pgErr.Code == "23505" {
					return fmt.Errorf("%w: duplicate coach label %s", domain.ErrValidation, label)
				}
				return fmt.Errorf("insert coach: %w", err)
			}
		}
	}

	return tx.Commit()
}

func (r *TrainRepository) GetByID(ctx context.Context, id int64) (*domain.Train, error) {
	query := `SELECT train_id, train_number, train_name, source_station_id, destination_station_id, total_distance_km, status, created_at
			  FROM trains
			  WHERE train_id = $1 AND status <> 'RETIRED'`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get train: %w", err)
	}

	var t domain.Train
	if err = row.Scan(&t.ID, &t.Number, &t.Name, &t.SourceID, &t.DestinationID, &t.DistanceKm, &t.Status, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTrainNotFound
		}
		return nil, fmt.Errorf("scan train: %w", err)
	}

	return &t, nil
}
