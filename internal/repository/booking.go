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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, tickets []domain.Ticket, payment *domain.Payment, reservationIDs []int64) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	bookingQuery := `INSERT INTO bookings
			(pnr_number, user_id, schedule_id, coach_type_id, source_station_id, destination_station_id,
			 journey_date, total_fare, status, contact_email, contact_phone, booked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING booking_id`

	err = tx.QueryRowContext(
		ctx, bookingQuery,
		b.PNR, b.UserID, b.ScheduleID, b.CoachTypeID, b.SourceID, b.DestinationID,
		b.JourneyDate, b.TotalFare, b.Status, b.ContactEmail, b.ContactPhone, b.BookedAt,
	).Scan(&b.ID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicatePNR
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	ticketQuery := `INSERT INTO tickets
			(booking_id, passenger_name, age, gender, coach_label, seat_number, ticket_fare, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ticket_id`

	for i := range tickets {
		t := &tickets[i]
		t.BookingID = b.ID
		err = tx.QueryRowContext(
			ctx, ticketQuery,
			t.BookingID, t.PassengerName, t.Age, t.Gender,
			t.CoachLabel, t.SeatNumber, t.Fare, t.Status,
		).Scan(&t.ID)
		if err != nil {
			return fmt.Errorf("insert ticket: %w", err)
		}
	}

	paymentQuery := `INSERT INTO payments
			(booking_id, user_id, transaction_id, amount, method, status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING payment_id`

	payment.BookingID = b.ID
	err = tx.QueryRowContext(
		ctx, paymentQuery,
		payment.BookingID, payment.UserID, payment.TransactionID,
		payment.Amount, payment.Method, payment.Status, payment.PaidAt,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	// Release the consumed holds. If another transaction already removed or
	// expired any of them the hold set is no longer ours to convert: roll
	// everything back so the caller can retry from a fresh reservation.
	res, err := tx.ExecContext(ctx,
		`DELETE FROM seat_reservations WHERE reservation_id = ANY($1) AND status = 'RESERVED'`,
		pq.Array(reservationIDs),
	)
	if err != nil {
		return fmt.Errorf("delete reservations: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleted rows affected: %w", err)
	}
	if deleted != int64(len(reservationIDs)) {
		return domain.ErrReservationExpired
	}

	return tx.Commit()
}

func (r *BookingRepository) BookedSeatsForSegment(ctx context.Context, scheduleID, coachTypeID, sourceID, destinationID int64) ([]string, error) {
	query := `SELECT t.coach_label || '-' || t.seat_number
			  FROM tickets t
			  JOIN bookings b ON b.booking_id = t.booking_id
			  WHERE b.schedule_id = $1
			    AND b.coach_type_id = $2
			    AND b.status = ANY($3)
			    AND t.status = 'CONFIRMED'
			    AND (
			        (b.source_station_id <= $4 AND b.destination_station_id > $4) OR
			        (b.source_station_id < $5 AND b.destination_station_id >= $5) OR
			        (b.source_station_id >= $4 AND b.destination_station_id <= $5)
			    )`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		scheduleID, coachTypeID, pq.Array(domain.OccupyingBookingStatuses),
		sourceID, destinationID,
	)
	if err != nil {
		return nil, fmt.Errorf("query booked seats: %w", err)
	}
	defer rows.Close()

	var seats []string
	for rows.Next() {
		var seatID string
		if err = rows.Scan(&seatID); err != nil {
			return nil, fmt.Errorf("scan booked seat: %w", err)
		}
		seats = append(seats, seatID)
	}

	return seats, rows.Err()
}

const bookingColumns = `booking_id, pnr_number, user_id, schedule_id, coach_type_id,
	source_station_id, destination_station_id, journey_date, total_fare, status,
	contact_email, contact_phone, booked_at`

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *BookingRepository) GetByPNR(ctx context.Context, pnr string) (*domain.BookingDetails, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE pnr_number = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, pnr)
	if err != nil {
		return nil, fmt.Errorf("get booking by pnr: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	ticketQuery := `SELECT ticket_id, booking_id, passenger_name, age, gender,
						   coach_label, seat_number, ticket_fare, status
					FROM tickets
					WHERE booking_id = $1
					ORDER BY ticket_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, ticketQuery, b.ID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	details := &domain.BookingDetails{Booking: *b}
	for rows.Next() {
		var t domain.Ticket
		if err = rows.Scan(
			&t.ID, &t.BookingID, &t.PassengerName, &t.Age, &t.Gender,
			&t.CoachLabel, &t.SeatNumber, &t.Fare, &t.Status,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		details.Tickets = append(details.Tickets, t)
	}

	return details, rows.Err()
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY booked_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, *b)
	}

	return res, rows.Err()
}

// Cancel flips the booking and its tickets to CANCELLED. Seats are not
// released back to the pool; RAC/waitlist promotion is not implemented.
func (r *BookingRepository) Cancel(ctx context.Context, bookingID int64) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = $2 WHERE booking_id = $1 AND status <> $2`,
		bookingID, domain.BookingStatusCancelled,
	)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookingAlreadyCancelled
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE tickets SET status = $2 WHERE booking_id = $1`,
		bookingID, domain.TicketStatusCancelled,
	); err != nil {
		return fmt.Errorf("cancel tickets: %w", err)
	}

	return tx.Commit()
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	if err := scan(
		&b.ID, &b.PNR, &b.UserID, &b.ScheduleID, &b.CoachTypeID,
		&b.SourceID, &b.DestinationID, &b.JourneyDate, &b.TotalFare, &b.Status,
		&b.ContactEmail, &b.ContactPhone, &b.BookedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return &b, nil
}
