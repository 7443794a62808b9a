package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/entity"
	domainRepo "github.com/BenViveiros/CleanCutYardWorks/internal/domain/repository"
)

// MemoryStore is the default process-lifetime backing store: maps keyed by
// sequential ids plus a global quote-number counter. Ids are assigned at
// creation, monotonically increasing, and never reused. A single mutex
// guards all collections because the HTTP server handles requests
// concurrently.
type MemoryStore struct {
	mu sync.Mutex

	customers  map[int]entity.Customer
	quotes     map[int]entity.Quote
	quoteItems map[int]entity.QuoteItem

	nextCustomerID  int
	nextQuoteID     int
	nextQuoteItemID int
	nextQuoteNumber int
}

// NewMemoryStore creates an empty in-memory store with all counters at 1
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers:       make(map[int]entity.Customer),
		quotes:          make(map[int]entity.Quote),
		quoteItems:      make(map[int]entity.QuoteItem),
		nextCustomerID:  1,
		nextQuoteID:     1,
		nextQuoteItemID: 1,
		nextQuoteNumber: 1,
	}
}

// Customers returns the customer repository view of the store
func (s *MemoryStore) Customers() domainRepo.CustomerRepository {
	return &memoryCustomerRepository{store: s}
}

// Quotes returns the quote repository view of the store
func (s *MemoryStore) Quotes() domainRepo.QuoteRepository {
	return &memoryQuoteRepository{store: s}
}

// QuoteItems returns the quote item repository view of the store
func (s *MemoryStore) QuoteItems() domainRepo.QuoteItemRepository {
	return &memoryQuoteItemRepository{store: s}
}

// sortedIDs returns map keys ascending. Ids are assigned in increasing
// order and never reused, so this is insertion order.
func sortedIDs[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

type memoryCustomerRepository struct {
	store *MemoryStore
}

func (r *memoryCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.customers {
		if existing.Email == customer.Email {
			return domainRepo.ErrDuplicateEmail
		}
	}

	customer.ID = s.nextCustomerID
	s.nextCustomerID++
	customer.CreatedAt = time.Now()
	s.customers[customer.ID] = *customer
	return nil
}

func (r *memoryCustomerRepository) GetByID(ctx context.Context, id int) (*entity.Customer, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[id]
	if !ok {
		return nil, nil
	}
	return &customer, nil
}

func (r *memoryCustomerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range sortedIDs(s.customers) {
		if s.customers[id].Email == email {
			customer := s.customers[id]
			return &customer, nil
		}
	}
	return nil, nil
}

func (r *memoryCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[customer.ID]; !ok {
		return fmt.Errorf("customer %d does not exist", customer.ID)
	}
	for id, existing := range s.customers {
		if id != customer.ID && existing.Email == customer.Email {
			return domainRepo.ErrDuplicateEmail
		}
	}
	s.customers[customer.ID] = *customer
	return nil
}

func (r *memoryCustomerRepository) List(ctx context.Context) ([]entity.Customer, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := make([]entity.Customer, 0, len(s.customers))
	for _, id := range sortedIDs(s.customers) {
		customers = append(customers, s.customers[id])
	}
	return customers, nil
}

type memoryQuoteRepository struct {
	store *MemoryStore
}

func (r *memoryQuoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	quote.ID = s.nextQuoteID
	s.nextQuoteID++
	now := time.Now()
	quote.CreatedAt = now
	quote.UpdatedAt = now
	s.quotes[quote.ID] = *quote
	return nil
}

func (r *memoryQuoteRepository) GetByID(ctx context.Context, id int) (*entity.Quote, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	quote, ok := s.quotes[id]
	if !ok {
		return nil, nil
	}
	return &quote, nil
}

func (r *memoryQuoteRepository) GetByQuoteNumber(ctx context.Context, quoteNumber string) (*entity.Quote, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range sortedIDs(s.quotes) {
		if s.quotes[id].QuoteNumber == quoteNumber {
			quote := s.quotes[id]
			return &quote, nil
		}
	}
	return nil, nil
}

func (r *memoryQuoteRepository) Update(ctx context.Context, quote *entity.Quote) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quotes[quote.ID]; !ok {
		return fmt.Errorf("quote %d does not exist", quote.ID)
	}
	quote.UpdatedAt = time.Now()
	s.quotes[quote.ID] = *quote
	return nil
}

func (r *memoryQuoteRepository) List(ctx context.Context, params *domainRepo.QuoteFilterParams) ([]entity.Quote, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	quotes := make([]entity.Quote, 0, len(s.quotes))
	for _, id := range sortedIDs(s.quotes) {
		quote := s.quotes[id]
		if params != nil {
			if params.Status != nil && quote.Status != *params.Status {
				continue
			}
			if params.CustomerID != nil && quote.CustomerID != *params.CustomerID {
				continue
			}
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}

func (r *memoryQuoteRepository) NextQuoteNumber(ctx context.Context) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.nextQuoteNumber
	s.nextQuoteNumber++
	return n, nil
}

type memoryQuoteItemRepository struct {
	store *MemoryStore
}

func (r *memoryQuoteItemRepository) Create(ctx context.Context, item *entity.QuoteItem) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextQuoteItemID
	s.nextQuoteItemID++
	s.quoteItems[item.ID] = *item
	return nil
}

func (r *memoryQuoteItemRepository) GetByID(ctx context.Context, id int) (*entity.QuoteItem, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.quoteItems[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *memoryQuoteItemRepository) Update(ctx context.Context, item *entity.QuoteItem) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quoteItems[item.ID]; !ok {
		return fmt.Errorf("quote item %d does not exist", item.ID)
	}
	s.quoteItems[item.ID] = *item
	return nil
}

func (r *memoryQuoteItemRepository) ListByQuote(ctx context.Context, quoteID int) ([]entity.QuoteItem, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entity.QuoteItem, 0)
	for _, id := range sortedIDs(s.quoteItems) {
		if s.quoteItems[id].QuoteID == quoteID {
			items = append(items, s.quoteItems[id])
		}
	}
	return items, nil
}

func (r *memoryQuoteItemRepository) Delete(ctx context.Context, id int) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quoteItems[id]; !ok {
		return false, nil
	}
	delete(s.quoteItems, id)
	return true, nil
}
