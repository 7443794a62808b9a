package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/entity"
	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/enum"
	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/repository"
	"github.com/BenViveiros/CleanCutYardWorks/pkg/apperror"
)

// validityWindow is how long a freshly minted quote remains valid.
const validityWindow = 30 * 24 * time.Hour

// QuoteService enforces the quote lifecycle: creation from a request,
// quote-number minting, and status transitions.
type QuoteService struct {
	quoteRepo     repository.QuoteRepository
	quoteItemRepo repository.QuoteItemRepository
	customerRepo  repository.CustomerRepository
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	quoteItemRepo repository.QuoteItemRepository,
	customerRepo repository.CustomerRepository,
) *QuoteService {
	return &QuoteService{
		quoteRepo:     quoteRepo,
		quoteItemRepo: quoteItemRepo,
		customerRepo:  customerRepo,
	}
}

// QuoteRequestInput represents an inbound quote request: customer contact
// info plus project details.
type QuoteRequestInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	ProjectType     string
	PropertySize    int
	BudgetRange     *string
	Description     string
	Timeline        *string
	RequestedDate   *time.Time
}

// CreateFromRequest creates a quote from a customer request. A customer
// already registered under the email is reused silently; otherwise one is
// created first. The quote starts pending with no amount, a freshly minted
// quote number, and a 30-day validity window.
//
// Customer creation and quote creation are not atomic: a failure between
// the two leaves the customer behind without a quote.
func (s *QuoteService) CreateFromRequest(ctx context.Context, input *QuoteRequestInput) (*entity.Quote, *entity.Customer, error) {
	customer, err := s.customerRepo.GetByEmail(ctx, input.CustomerEmail)
	if err != nil {
		return nil, nil, err
	}
	if customer == nil {
		customer = &entity.Customer{
			Name:    input.CustomerName,
			Email:   input.CustomerEmail,
			Phone:   input.CustomerPhone,
			Address: input.CustomerAddress,
		}
		if err := s.customerRepo.Create(ctx, customer); err != nil {
			if !errors.Is(err, repository.ErrDuplicateEmail) {
				return nil, nil, err
			}
			// A concurrent request created the customer between our
			// lookup and create; reuse it like any known email.
			customer, err = s.customerRepo.GetByEmail(ctx, input.CustomerEmail)
			if err != nil {
				return nil, nil, err
			}
			if customer == nil {
				return nil, nil, fmt.Errorf("customer for %s not found after duplicate email", input.CustomerEmail)
			}
		}
	}

	quoteNumber, err := s.mintQuoteNumber(ctx)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	requestedDate := now
	if input.RequestedDate != nil {
		requestedDate = *input.RequestedDate
	}

	quote := &entity.Quote{
		QuoteNumber:   quoteNumber,
		CustomerID:    customer.ID,
		ProjectType:   input.ProjectType,
		PropertySize:  input.PropertySize,
		BudgetRange:   input.BudgetRange,
		Description:   input.Description,
		Timeline:      input.Timeline,
		Status:        enum.QuoteStatusPending,
		Amount:        nil,
		RequestedDate: requestedDate,
		ValidUntil:    now.Add(validityWindow),
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, nil, err
	}

	return quote, customer, nil
}

// mintQuoteNumber renders the next value of the global counter as
// QT-<year>-<seq>. The counter never resets, even across year boundaries,
// so numbers stay unique without year-scoped state.
func (s *QuoteService) mintQuoteNumber(ctx context.Context) (string, error) {
	n, err := s.quoteRepo.NextQuoteNumber(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("QT-%d-%03d", time.Now().Year(), n), nil
}

// GetQuote retrieves a quote by ID
func (s *QuoteService) GetQuote(ctx context.Context, id int) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	return quote, nil
}

// GetQuoteByNumber retrieves a quote by its human-facing quote number
func (s *QuoteService) GetQuoteByNumber(ctx context.Context, quoteNumber string) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByQuoteNumber(ctx, quoteNumber)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	return quote, nil
}

// ListQuotes returns quotes filtered by optional status and customer
func (s *QuoteService) ListQuotes(ctx context.Context, status *enum.QuoteStatus, customerID *int) ([]entity.Quote, error) {
	return s.quoteRepo.List(ctx, &repository.QuoteFilterParams{
		Status:     status,
		CustomerID: customerID,
	})
}

// ApproveQuote transitions a pending quote to approved with the supplied
// amount. Approving a quote in any other state is a conflict, so a second
// approval never corrupts the record.
func (s *QuoteService) ApproveQuote(ctx context.Context, id int, amount string) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if quote.Status != enum.QuoteStatusPending {
		return nil, apperror.NewConflictError("Only pending quotes can be approved")
	}

	normalized, err := normalizeMoney(amount)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid amount")
	}

	quote.Status = enum.QuoteStatusApproved
	quote.Amount = &normalized

	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	return quote, nil
}

// RejectQuote transitions a pending quote to rejected. The amount is left
// untouched.
func (s *QuoteService) RejectQuote(ctx context.Context, id int) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if quote.Status != enum.QuoteStatusPending {
		return nil, apperror.NewConflictError("Only pending quotes can be rejected")
	}

	quote.Status = enum.QuoteStatusRejected

	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	return quote, nil
}

// UpdateQuoteInput enumerates the mutable quote fields; nil means "leave
// unchanged". Identity, quoteNumber, validUntil and timestamps are not
// mutable through updates.
type UpdateQuoteInput struct {
	ID            int
	ProjectType   *string
	PropertySize  *int
	BudgetRange   *string
	Description   *string
	Timeline      *string
	Status        *enum.QuoteStatus
	Amount        *string
	RequestedDate *time.Time
}

// UpdateQuote merges the provided fields into an existing quote. A status
// supplied here may be any of the four values; this is the only path into
// completed.
func (s *QuoteService) UpdateQuote(ctx context.Context, input *UpdateQuoteInput) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid status")
		}
		quote.Status = *input.Status
	}
	if input.Amount != nil {
		normalized, err := normalizeMoney(*input.Amount)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid amount")
		}
		quote.Amount = &normalized
	}
	if input.ProjectType != nil {
		quote.ProjectType = *input.ProjectType
	}
	if input.PropertySize != nil {
		quote.PropertySize = *input.PropertySize
	}
	if input.BudgetRange != nil {
		quote.BudgetRange = input.BudgetRange
	}
	if input.Description != nil {
		quote.Description = *input.Description
	}
	if input.Timeline != nil {
		quote.Timeline = input.Timeline
	}
	if input.RequestedDate != nil {
		quote.RequestedDate = *input.RequestedDate
	}

	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	return quote, nil
}

// QuoteItemInput represents a new line item for a quote
type QuoteItemInput struct {
	Item      string
	Quantity  int
	UnitPrice string
	Total     string
}

// AddQuoteItem appends a line item to an existing quote. Total is trusted
// from the caller, not recomputed from quantity x unitPrice.
func (s *QuoteService) AddQuoteItem(ctx context.Context, quoteID int, input *QuoteItemInput) (*entity.QuoteItem, error) {
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}

	unitPrice, err := normalizeMoney(input.UnitPrice)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid unit price")
	}
	total, err := normalizeMoney(input.Total)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid total")
	}

	item := &entity.QuoteItem{
		QuoteID:   quoteID,
		Item:      input.Item,
		Quantity:  input.Quantity,
		UnitPrice: unitPrice,
		Total:     total,
	}

	if err := s.quoteItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// ListQuoteItems returns the line items of a quote in insertion order
func (s *QuoteService) ListQuoteItems(ctx context.Context, quoteID int) ([]entity.QuoteItem, error) {
	return s.quoteItemRepo.ListByQuote(ctx, quoteID)
}

// UpdateQuoteItemInput enumerates the mutable line item fields
type UpdateQuoteItemInput struct {
	ID        int
	Item      *string
	Quantity  *int
	UnitPrice *string
	Total     *string
}

// UpdateQuoteItem merges the provided fields into an existing line item
func (s *QuoteService) UpdateQuoteItem(ctx context.Context, input *UpdateQuoteItemInput) (*entity.QuoteItem, error) {
	item, err := s.quoteItemRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Quote item")
	}

	if input.Item != nil {
		item.Item = *input.Item
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		unitPrice, err := normalizeMoney(*input.UnitPrice)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid unit price")
		}
		item.UnitPrice = unitPrice
	}
	if input.Total != nil {
		total, err := normalizeMoney(*input.Total)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid total")
		}
		item.Total = total
	}

	if err := s.quoteItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteQuoteItem removes a line item by id
func (s *QuoteService) DeleteQuoteItem(ctx context.Context, id int) error {
	existed, err := s.quoteItemRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return apperror.NewNotFoundError("Quote item")
	}
	return nil
}
