package repository

import (
	"context"
	"errors"

	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/entity"
	domainRepo "github.com/BenViveiros/CleanCutYardWorks/internal/domain/repository"
	"gorm.io/gorm"
)

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a PostgreSQL-backed quote repository
func NewQuoteRepository(db *gorm.DB) domainRepo.QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *quoteRepository) GetByID(ctx context.Context, id int) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).First(&quote, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

func (r *quoteRepository) GetByQuoteNumber(ctx context.Context, quoteNumber string) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).First(&quote, "quote_number = ?", quoteNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

func (r *quoteRepository) Update(ctx context.Context, quote *entity.Quote) error {
	return r.db.WithContext(ctx).Save(quote).Error
}

func (r *quoteRepository) List(ctx context.Context, params *domainRepo.QuoteFilterParams) ([]entity.Quote, error) {
	var quotes []entity.Quote

	query := r.db.WithContext(ctx).Model(&entity.Quote{})
	if params != nil {
		if params.Status != nil {
			query = query.Where("status = ?", *params.Status)
		}
		if params.CustomerID != nil {
			query = query.Where("customer_id = ?", *params.CustomerID)
		}
	}

	err := query.Order("id ASC").Find(&quotes).Error
	return quotes, err
}

// NextQuoteNumber draws from a dedicated database sequence, so concurrent
// requests can never mint the same value. The sequence is created during
// migration.
func (r *quoteRepository) NextQuoteNumber(ctx context.Context) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Raw("SELECT nextval('quote_number_seq')").Scan(&n).Error
	return int(n), err
}

type quoteItemRepository struct {
	db *gorm.DB
}

// NewQuoteItemRepository creates a PostgreSQL-backed quote item repository
func NewQuoteItemRepository(db *gorm.DB) domainRepo.QuoteItemRepository {
	return &quoteItemRepository{db: db}
}

func (r *quoteItemRepository) Create(ctx context.Context, item *entity.QuoteItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *quoteItemRepository) GetByID(ctx context.Context, id int) (*entity.QuoteItem, error) {
	var item entity.QuoteItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *quoteItemRepository) Update(ctx context.Context, item *entity.QuoteItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *quoteItemRepository) ListByQuote(ctx context.Context, quoteID int) ([]entity.QuoteItem, error) {
	var items []entity.QuoteItem
	err := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *quoteItemRepository) Delete(ctx context.Context, id int) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.QuoteItem{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
