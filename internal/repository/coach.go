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

type CoachRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCoachRepo(db *dbpg.DB) *CoachRepository {
	return &CoachRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CoachRepository) GetCoachType(ctx context.Context, id int64) (*domain.CoachType, error) {
	query := `SELECT coach_type_id, type_code, type_name, total_seats, description
			  FROM coach_types
			  WHERE coach_type_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get coach type: %w", err)
	}

	var ct domain.CoachType
	if err = row.Scan(&ct.ID, &ct.Code, &ct.Name, &ct.TotalSeats, &ct.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCoachTypeNotFound
		}
		return nil, fmt.Errorf("scan coach type: %w", err)
	}

	return &ct, nil
}

func (r *CoachRepository) ListCoachTypes(ctx context.Context) ([]domain.CoachType, error) {
	query := `SELECT coach_type_id, type_code, type_name, total_seats, description
			  FROM coach_types
			  ORDER BY type_code`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list coach types: %w", err)
	}
	defer rows.Close()

	var res []domain.CoachType
	for rows.Next() {
		var ct domain.CoachType
		if err = rows.Scan(&ct.ID, &ct.Code, &ct.Name, &ct.TotalSeats, &ct.Description); err != nil {
			return nil, fmt.Errorf("scan coach type: %w", err)
		}
		res = append(res, ct)
	}

	return res, rows.Err()
}

func (r *CoachRepository) TypeOfferedOnTrain(ctx context.Context, trainID, coachTypeID int64) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM train_coaches
				  WHERE train_id = $1 AND coach_type_id = $2 AND NOT is_deleted
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, trainID, coachTypeID)
	if err != nil {
		return false, fmt.Errorf("check coach type on train: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan coach type check: %w", err)
	}
	return exists, nil
}

func (r *CoachRepository) CoachExists(ctx context.Context, trainID, coachTypeID int64, label string) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM train_coaches
				  WHERE train_id = $1 AND coach_type_id = $2 AND coach_label = $3 AND NOT is_deleted
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, trainID, coachTypeID, label)
	if err != nil {
		return false, fmt.Errorf("check coach label: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan coach label check: %w", err)
	}
	return exists, nil
}

func (r *CoachRepository) ListCoaches(ctx context.Context, trainID, coachTypeID int64) ([]domain.TrainCoach, error) {
	query := `SELECT train_coach_id, train_id, coach_type_id, coach_label
			  FROM train_coaches
			  WHERE train_id = $1 AND coach_type_id = $2 AND NOT is_deleted
			  ORDER BY coach_label`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, trainID, coachTypeID)
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	defer rows.Close()

	var res []domain.TrainCoach
	for rows.Next() {
		var c domain.TrainCoach
		if err = rows.Scan(&c.ID, &c.TrainID, &c.CoachTypeID, &c.Label); err != nil {
			return nil, fmt.Errorf("scan coach: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func (r *CoachRepository) ListLayout(ctx context.Context, coachTypeID int64) ([]domain.LayoutSeat, error) {
	query := `SELECT seat_number, seat_class
			  FROM seat_layouts
			  WHERE coach_type_id = $1
			  ORDER BY seat_number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, coachTypeID)
	if err != nil {
		return nil, fmt.Errorf("list seat layout: %w", err)
	}
	defer rows.Close()

	var res []domain.LayoutSeat
	for rows.Next() {
		var ls domain.LayoutSeat
		if err = rows.Scan(&ls.SeatNumber, &ls.SeatClass); err != nil {
			return nil, fmt.Errorf("scan layout seat: %w", err)
		}
		res = append(res, ls)
	}

	return res, rows.Err()
}
