package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BoardSnapshot holds the encoded board stored under a namespace key.
type BoardSnapshot struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key       string         `gorm:"uniqueIndex;not null"`
	Data      datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}
