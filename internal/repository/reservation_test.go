package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expireStalePattern = "(?s)" +
	"UPDATE seat_reservations.*" +
	"SET status = 'EXPIRED'.*" +
	"expires_at <= "

func TestReservationRepository_HeldSeats_ExpiresStaleBeforeConflictCheck(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec(expireStalePattern).
		WithArgs(int64(1), int64(2), now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("coach_label || '-' || seat_number")).
		WithArgs(int64(1), int64(2), now, pq.Array([]string{"S1-5", "S1-6"})).
		WillReturnRows(sqlmock.NewRows([]string{"seat_id"}).AddRow("S1-5"))
	mock.ExpectCommit()

	held, err := repo.HeldSeats(context.Background(), 1, 2, []string{"S1-5", "S1-6"}, now)

	require.NoError(t, err)
	assert.Equal(t, []string{"S1-5"}, held)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_ListActiveForMatrix_StaleHoldFlipsThenReadsAvailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	now := time.Now().UTC()
	columns := []string{
		"reservation_id", "schedule_id", "coach_type_id", "coach_label", "seat_number",
		"user_id", "session_id", "reserved_at", "expires_at", "status",
	}

	// First read flips the stale hold, so the select already misses it.
	mock.ExpectBegin()
	mock.ExpectExec(expireStalePattern).
		WithArgs(int64(1), int64(2), now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("(?s)SELECT .* FROM seat_reservations").
		WithArgs(int64(1), int64(2), now).
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectCommit()

	// Second read has nothing left to flip and stays empty.
	mock.ExpectBegin()
	mock.ExpectExec(expireStalePattern).
		WithArgs(int64(1), int64(2), now).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("(?s)SELECT .* FROM seat_reservations").
		WithArgs(int64(1), int64(2), now).
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectCommit()

	first, err := repo.ListActiveForMatrix(context.Background(), 1, 2, now)
	require.NoError(t, err)
	assert.Empty(t, first)

	second, err := repo.ListActiveForMatrix(context.Background(), 1, 2, now)
	require.NoError(t, err)
	assert.Empty(t, second)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_ExpireStale(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	now := time.Now().UTC()

	mock.ExpectExec(expireStalePattern).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.ExpireStale(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
