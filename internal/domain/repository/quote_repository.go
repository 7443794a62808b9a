package repository

import (
	"context"

	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/entity"
	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/enum"
)

// QuoteRepository defines the interface for quote data operations
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id int) (*entity.Quote, error)
	GetByQuoteNumber(ctx context.Context, quoteNumber string) (*entity.Quote, error)
	Update(ctx context.Context, quote *entity.Quote) error
	// List returns quotes matching params in insertion order. A nil params
	// (or empty filter) returns every quote.
	List(ctx context.Context, params *QuoteFilterParams) ([]entity.Quote, error)
	// NextQuoteNumber returns the next value of the strictly increasing
	// quote-number sequence. Values are never reused.
	NextQuoteNumber(ctx context.Context) (int, error)
}

// QuoteFilterParams contains filtering parameters for quote queries
type QuoteFilterParams struct {
	Status     *enum.QuoteStatus
	CustomerID *int
}

// QuoteItemRepository defines the interface for quote line item data operations
type QuoteItemRepository interface {
	Create(ctx context.Context, item *entity.QuoteItem) error
	GetByID(ctx context.Context, id int) (*entity.QuoteItem, error)
	Update(ctx context.Context, item *entity.QuoteItem) error
	ListByQuote(ctx context.Context, quoteID int) ([]entity.QuoteItem, error)
	// Delete removes the item and reports whether it existed.
	Delete(ctx context.Context, id int) (bool, error)
}
