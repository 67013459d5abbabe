package repository_test

import (
	"context"
	"testing"
	"time"

	"kanban/internal/persistence"
	"kanban/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const snapshotKey = "kanban-storage"

func TestSnapshotRepository_Save(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewSnapshotRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "board_snapshots" .* ON CONFLICT \("key"\) DO UPDATE`).
		WithArgs(snapshotKey, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	// Act
	err := repo.Save(context.Background(), snapshotKey, []byte(`{"tasks":{}}`))

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_Load_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewSnapshotRepository(gormDB)
	data := `{"tasks":{},"columns":{},"columnOrder":[]}`

	mock.ExpectQuery(`SELECT .* FROM "board_snapshots" WHERE key = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "data", "updated_at"}).
			AddRow(uuid.New().String(), snapshotKey, []byte(data), time.Now()))

	// Act
	got, err := repo.Load(context.Background(), snapshotKey)

	// Assert
	assert.NoError(t, err)
	assert.JSONEq(t, data, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_Load_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewSnapshotRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "board_snapshots" WHERE key = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "data", "updated_at"}))

	// Act
	got, err := repo.Load(context.Background(), snapshotKey)

	// Assert
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
	assert.ErrorIs(t, err, persistence.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_Load_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewSnapshotRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "board_snapshots" WHERE key = `).
		WillReturnError(assert.AnError)

	// Act
	_, err := repo.Load(context.Background(), snapshotKey)

	// Assert
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, persistence.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_Delete(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewSnapshotRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "board_snapshots" WHERE key = `).
		WithArgs(snapshotKey).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), snapshotKey)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
