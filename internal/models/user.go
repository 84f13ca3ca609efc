package models

import "time"

const (
	RoleFree  = "free"
	RolePaid  = "paid"
	RoleAdmin = "admin"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null;default:'free'" json:"role"`
	Confirmed bool      `gorm:"not null;default:false" json:"confirmed"`
	Version   int       `gorm:"default:1" json:"-"`
}

// Unlimited reports whether the user's role bypasses the daily generation quota.
func (u *User) Unlimited() bool {
	return u.Role == RolePaid || u.Role == RoleAdmin
}
