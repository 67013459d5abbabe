package repository

import (
	"context"
	"errors"

	"kanban/internal/model"
	"kanban/internal/persistence"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRepository stores encoded boards in the board_snapshots table, one row
// per key.
type SnapshotRepository struct {
	db *gorm.DB
}

var _ persistence.SnapshotStore = (*SnapshotRepository)(nil)

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var snapshot model.BoardSnapshot
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(snapshot.Data), nil
}

// Save inserts the snapshot or overwrites the data of the existing row.
func (r *SnapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	snapshot := model.BoardSnapshot{
		ID:   uuid.New(),
		Key:  key,
		Data: datatypes.JSON(data),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snapshot).Error
}

// Delete removes the snapshot. Deleting a missing key is not an error.
func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&model.BoardSnapshot{}).Error
}
