package entity

import (
	"time"
)

// Customer represents a property owner who has requested landscaping work
type Customer struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"size:50;not null" json:"phone"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	CreatedAt time.Time `json:"createdAt"`

	// Relationships
	Quotes []Quote `gorm:"foreignKey:CustomerID" json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
