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

type StationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewStationRepo(db *dbpg.DB) *StationRepository {
	return &StationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *StationRepository) Create(ctx context.Context, s *domain.Station) error {
	query := `INSERT INTO stations (station_code, station_name, city, state, zone, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING station_id`

	s.CreatedAt = time.Now().UTC()
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, s.Code, s.Name, s.City, s.State, s.Zone, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert station: %w", err)
	}
	if err = row.Scan(&s.ID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: station code %s already exists", domain.ErrValidation, s.Code)
		}
		return fmt.Errorf("scan station id: %w", err)
	}
	s.IsActive = true

	return nil
}

func (r *StationRepository) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	query := `SELECT station_id, station_code, station_name, city, state, zone, is_active, created_at
			  FROM stations
			  WHERE station_id = $1 AND NOT is_deleted`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get station: %w", err)
	}

	var s domain.Station
	if err = row.Scan(&s.ID, &s.Code, &s.Name, &s.City, &s.State, &s.Zone, &s.IsActive, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStationNotFound
		}
		return nil, fmt.Errorf("scan station: %w", err)
	}

	return &s, nil
}

func (r *StationRepository) List(ctx context.Context) ([]domain.Station, error) {
	query := `SELECT station_id, station_code, station_name, city, state, zone, is_active, created_at
			  FROM stations
			  WHERE NOT is_deleted
			  ORDER BY station_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}
	defer rows.Close()

	var res []domain.Station
	for rows.Next() {
		var s domain.Station
		if err = rows.Scan(&s.ID, &s.Code, &s.Name, &s.City, &s.State, &s.Zone, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}
