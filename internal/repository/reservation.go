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

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// expireStaleTx flips stale RESERVED rows of a schedule+coach type to
// EXPIRED so they neither count as conflicts nor block the partial unique
// index on insert.
const expireStaleQuery = `
	UPDATE seat_reservations
	SET status = 'EXPIRED'
	WHERE schedule_id = $1
	  AND coach_type_id = $2
	  AND status = 'RESERVED'
	  AND expires_at <= $3`

func (r *ReservationRepository) HeldSeats(ctx context.Context, scheduleID, coachTypeID int64, seatIDs []string, now time.Time) ([]string, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, expireStaleQuery, scheduleID, coachTypeID, now); err != nil {
		return nil, fmt.Errorf("expire stale holds: %w", err)
	}

	query := `SELECT coach_label || '-' || seat_number
			  FROM seat_reservations
			  WHERE schedule_id = $1
			    AND coach_type_id = $2
			    AND status = 'RESERVED'
			    AND expires_at > $3
			    AND coach_label || '-' || seat_number = ANY($4)
			  ORDER BY coach_label, seat_number`

	rows, err := tx.QueryContext(ctx, query, scheduleID, coachTypeID, now, pq.Array(seatIDs))
	if err != nil {
		return nil, fmt.Errorf("query held seats: %w", err)
	}
	defer rows.Close()

	var held []string
	for rows.Next() {
		var seatID string
		if err = rows.Scan(&seatID); err != nil {
			return nil, fmt.Errorf("scan held seat: %w", err)
		}
		held = append(held, seatID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return held, tx.Commit()
}

func (r *ReservationRepository) CreateBatch(ctx context.Context, reservations []*domain.SeatReservation) error {
	if len(reservations) == 0 {
		return nil
	}

	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Re-run lazy expiry inside the insert transaction: a row that went
	// stale after the availability check must not trip the unique index.
	first := reservations[0]
	if _, err = tx.ExecContext(ctx, expireStaleQuery, first.ScheduleID, first.CoachTypeID, first.ReservedAt); err != nil {
		return fmt.Errorf("expire stale holds: %w", err)
	}

	query := `INSERT INTO seat_reservations
				(schedule_id, coach_type_id, coach_label, seat_number, user_id, session_id, reserved_at, expires_at, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING reservation_id`

	for _, res := range reservations {
		err = tx.QueryRowContext(
			ctx, query,
			res.ScheduleID, res.CoachTypeID, res.CoachLabel, res.SeatNumber,
			res.UserID, res.SessionID, res.ReservedAt, res.ExpiresAt, res.Status,
		).Scan(&res.ID)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domain.ErrSeatConflict
			}
			return fmt.Errorf("insert reservation: %w", err)
		}
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.SeatReservation, error) {
	query := `SELECT reservation_id, schedule_id, coach_type_id, coach_label, seat_number,
					 user_id, session_id, reserved_at, expires_at, status
			  FROM seat_reservations
			  WHERE reservation_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	var res domain.SeatReservation
	if err = row.Scan(
		&res.ID, &res.ScheduleID, &res.CoachTypeID, &res.CoachLabel, &res.SeatNumber,
		&res.UserID, &res.SessionID, &res.ReservedAt, &res.ExpiresAt, &res.Status,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return &res, nil
}

func (r *ReservationRepository) ListActiveByUser(ctx context.Context, userID, scheduleID int64, now time.Time) ([]domain.SeatReservation, error) {
	query := `SELECT reservation_id, schedule_id, coach_type_id, coach_label, seat_number,
					 user_id, session_id, reserved_at, expires_at, status
			  FROM seat_reservations
			  WHERE user_id = $1
			    AND schedule_id = $2
			    AND status = 'RESERVED'
			    AND expires_at > $3
			  ORDER BY reservation_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, scheduleID, now)
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *ReservationRepository) ListActiveForMatrix(ctx context.Context, scheduleID, coachTypeID int64, now time.Time) ([]domain.SeatReservation, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, expireStaleQuery, scheduleID, coachTypeID, now); err != nil {
		return nil, fmt.Errorf("expire stale holds: %w", err)
	}

	query := `SELECT reservation_id, schedule_id, coach_type_id, coach_label, seat_number,
					 user_id, session_id, reserved_at, expires_at, status
			  FROM seat_reservations
			  WHERE schedule_id = $1
			    AND coach_type_id = $2
			    AND status = 'RESERVED'
			    AND expires_at > $3`

	rows, err := tx.QueryContext(ctx, query, scheduleID, coachTypeID, now)
	if err != nil {
		return nil, fmt.Errorf("list reservations for matrix: %w", err)
	}
	defer rows.Close()

	res, err := scanReservations(rows)
	if err != nil {
		return nil, err
	}

	return res, tx.Commit()
}

func (r *ReservationRepository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE seat_reservations
			  SET status = 'EXPIRED'
			  WHERE status = 'RESERVED' AND expires_at <= $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return 0, fmt.Errorf("expire stale reservations: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expired rows affected: %w", err)
	}
	return n, nil
}

func scanReservations(rows *sql.Rows) ([]domain.SeatReservation, error) {
	var res []domain.SeatReservation
	for rows.Next() {
		var sr domain.SeatReservation
		if err := rows.Scan(
			&sr.ID, &sr.ScheduleID, &sr.CoachTypeID, &sr.CoachLabel, &sr.SeatNumber,
			&sr.UserID, &sr.SessionID, &sr.ReservedAt, &sr.ExpiresAt, &sr.Status,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, sr)
	}
	return res, rows.Err()
}
