package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
)

type FareRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFareRepo(db *dbpg.DB) *FareRepository {
	return &FareRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *FareRepository) Upsert(ctx context.Context, in domain.CreateFareInput) (*domain.TrainFare, error) {
	query := `INSERT INTO train_fares (train_id, coach_type_id, rate_per_km, base_fare)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (train_id, coach_type_id)
			  DO UPDATE SET rate_per_km = EXCLUDED.rate_per_km,
			                base_fare   = EXCLUDED.base_fare,
			                is_active   = TRUE,
			                is_deleted  = FALSE
			  RETURNING fare_id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, in.TrainID, in.CoachTypeID, in.RatePerKm, in.BaseFare)
	if err != nil {
		return nil, fmt.Errorf("upsert fare: %w", err)
	}

	fare := &domain.TrainFare{
		TrainID:     in.TrainID,
		CoachTypeID: in.CoachTypeID,
		RatePerKm:   in.RatePerKm,
		BaseFare:    in.BaseFare,
		IsActive:    true,
	}
	if err = row.Scan(&fare.ID); err != nil {
		return nil, fmt.Errorf("scan fare id: %w", err)
	}

	return fare, nil
}

func (r *FareRepository) GetActive(ctx context.Context, trainID, coachTypeID int64) (*domain.TrainFare, error) {
	query := `SELECT fare_id, train_id, coach_type_id, rate_per_km, base_fare, is_active
			  FROM train_fares
			  WHERE train_id = $1 AND coach_type_id = $2 AND is_active AND NOT is_deleted`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, trainID, coachTypeID)
	if err != nil {
		return nil, fmt.Errorf("get fare: %w", err)
	}

	var f domain.TrainFare
	if err = row.Scan(&f.ID, &f.TrainID, &f.CoachTypeID, &f.RatePerKm, &f.BaseFare, &f.IsActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFareNotFound
		}
		return nil, fmt.Errorf("scan fare: %w", err)
	}

	return &f, nil
}

func (r *FareRepository) ListActiveByTrain(ctx context.Context, trainID int64) ([]domain.TrainFare, error) {
	query := `SELECT fare_id, train_id, coach_type_id, rate_per_km, base_fare, is_active
			  FROM train_fares
			  WHERE train_id = $1 AND is_active AND NOT is_deleted
			  ORDER BY coach_type_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, trainID)
	if err != nil {
		return nil, fmt.Errorf("list fares: %w", err)
	}
	defer rows.Close()

	var res []domain.TrainFare
	for rows.Next() {
		var f domain.TrainFare
		if err = rows.Scan(&f.ID, &f.TrainID, &f.CoachTypeID, &f.RatePerKm, &f.BaseFare, &f.IsActive); err != nil {
			return nil, fmt.Errorf("scan fare: %w", err)
		}
		res = append(res, f)
	}

	return res, rows.Err()
}
