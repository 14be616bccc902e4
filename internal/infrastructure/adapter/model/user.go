package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	NetID     string    `gorm:"primaryKey;size:200"`
	Balance   int64     `gorm:"not null"` // Cached balance in cents
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
