package model

import (
	"time"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	NetID         string    `gorm:"not null;index;size:200"`
	AmountInCents int64     `gorm:"not null"` // Signed: positive credit, negative debit
	Description   string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:NetID;references:NetID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
