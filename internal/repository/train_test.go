package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return &dbpg.DB{Master: db}, mock
}

func TestTrainRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTrainRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO trains (train_number, train_name, source_station_id, destination_station_id, total_distance_km, status)",
	)).
		WithArgs("12628", "Karnataka Express", int64(3), int64(4), 2400, "ACTIVE").
		WillReturnRows(sqlmock.NewRows([]string{"train_id", "created_at"}).AddRow(int64(5), time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO train_coaches")).
		WithArgs(int64(5), int64(2), "S1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO train_coaches")).
		WithArgs(int64(5), int64(2), "S2").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	train := &domain.Train{
		Number:        "12628",
		Name:          "Karnataka Express",
		SourceID:      3,
		DestinationID: 4,
		DistanceKm:    2400,
	}

	err := repo.Create(context.Background(), train, map[int64][]string{2: {"S1", "S2"}})

	require.NoError(t, err)
	assert.Equal(t, int64(5), train.ID)
	assert.Equal(t, domain.TrainStatusActive, train.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrainRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTrainRepo(db)

	pattern := "(?s)" +
		regexp.QuoteMeta("SELECT train_id, train_number, train_name, source_station_id, destination_station_id, total_distance_km, status, created_at") +
		".*" +
		regexp.QuoteMeta("status <> 'RETIRED'")

	mock.ExpectQuery(pattern).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"train_id", "train_number", "train_name", "source_station_id",
			"destination_station_id", "total_distance_km", "status", "created_at",
		}).AddRow(int64(5), "12628", "Karnataka Express", int64(3), int64(4), 2400, "ACTIVE", time.Now()))

	train, err := repo.GetByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "Karnataka Express", train.Name)
	assert.Equal(t, 2400, train.DistanceKm)
	assert.Equal(t, domain.TrainStatusActive, train.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrainRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTrainRepo(db)

	mock.ExpectQuery("(?s)SELECT .* FROM trains").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"train_id", "train_number", "train_name", "source_station_id",
			"destination_station_id", "total_distance_km", "status", "created_at",
		}))

	train, err := repo.GetByID(context.Background(), 99)

	require.ErrorIs(t, err, domain.ErrTrainNotFound)
	assert.Nil(t, train)
}
