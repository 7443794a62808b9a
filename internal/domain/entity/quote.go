package entity

import (
	"time"

	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/enum"
)

// Quote represents a landscaping work proposal tied to one customer.
// Money fields are decimal strings on the wire; Amount stays nil until the
// quote is approved.
type Quote struct {
	ID            int              `gorm:"primaryKey;autoIncrement" json:"id"`
	QuoteNumber   string           `gorm:"size:100;uniqueIndex;not null" json:"quoteNumber"`
	CustomerID    int              `gorm:"not null;index" json:"customerId"`
	ProjectType   string           `gorm:"size:100;not null" json:"projectType"`
	PropertySize  int              `gorm:"not null" json:"propertySize"`
	BudgetRange   *string          `gorm:"size:100" json:"budgetRange"`
	Description   string           `gorm:"type:text;not null" json:"description"`
	Timeline      *string          `gorm:"size:100" json:"timeline"`
	Status        enum.QuoteStatus `gorm:"size:20;not null;default:pending" json:"status"`
	Amount        *string          `gorm:"type:decimal(10,2)" json:"amount"`
	RequestedDate time.Time        `json:"requestedDate"`
	ValidUntil    time.Time        `json:"validUntil"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`

	// Relationships
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"-"`
	Items    []QuoteItem `gorm:"foreignKey:QuoteID" json:"-"`
}

// TableName returns the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// QuoteItem represents one priced line within a quote's itemized breakdown.
// Total is supplied by the caller and not recomputed against
// quantity x unitPrice.
type QuoteItem struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	QuoteID   int    `gorm:"not null;index" json:"quoteId"`
	Item      string `gorm:"size:255;not null" json:"item"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	UnitPrice string `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Total     string `gorm:"type:decimal(10,2);not null" json:"total"`

	// Relationships
	Quote Quote `gorm:"foreignKey:QuoteID" json:"-"`
}

// TableName returns the table name for the QuoteItem model
func (QuoteItem) TableName() string {
	return "quote_items"
}
