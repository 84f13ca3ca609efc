package models

import (
	"time"

	"gorm.io/datatypes"
)

// FormStateSnapshot persists a user's last prompt form state and the latest
// accepted artifact. One row per user.
type FormStateSnapshot struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	State     datatypes.JSON `gorm:"type:text" json:"state"`
	Artifact  string         `gorm:"type:text" json:"artifact"`
}
