package models

import "time"

// QuotaRecord tracks how many generations a user has run on a given calendar day.
// The count is reset lazily: whenever LastResetDate differs from today's date,
// the record counts as zero until the next successful generation persists it.
type QuotaRecord struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Count         int       `gorm:"not null;default:0" json:"count"`
	LastResetDate string    `gorm:"not null" json:"last_reset_date"` // YYYY-MM-DD
}
