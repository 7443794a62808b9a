package service

import (
	"context"
	"sort"
	"time"

	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/entity"
	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/enum"
	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/repository"
	"github.com/BenViveiros/CleanCutYardWorks/pkg/apperror"
)

// DashboardService computes read-only aggregates over quotes and customers
type DashboardService struct {
	quoteRepo    repository.QuoteRepository
	customerRepo repository.CustomerRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(quoteRepo repository.QuoteRepository, customerRepo repository.CustomerRepository) *DashboardService {
	return &DashboardService{
		quoteRepo:    quoteRepo,
		customerRepo: customerRepo,
	}
}

// MonthlyRevenuePoint is one month of approved revenue, labeled with the
// month's short name.
type MonthlyRevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// DashboardStats is the headline summary shown on the dashboard
type DashboardStats struct {
	TotalQuotes    int                   `json:"totalQuotes"`
	ApprovedQuotes int                   `json:"approvedQuotes"`
	PendingQuotes  int                   `json:"pendingQuotes"`
	TotalRevenue   float64               `json:"totalRevenue"`
	MonthlyRevenue []MonthlyRevenuePoint `json:"monthlyRevenue"`
}

// GetStats computes quote counts, total approved revenue, and a revenue
// series for the last six calendar months including the current one.
// Months with no approved quotes appear with zero revenue.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	quotes, err := s.quoteRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		MonthlyRevenue: make([]MonthlyRevenuePoint, 0, 6),
	}

	// Anchor at the first of the month so subtracting months never
	// normalizes across a month boundary.
	now := time.Now()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthIndex := make(map[string]int, 6)
	for i := 5; i >= 0; i-- {
		m := anchor.AddDate(0, -i, 0)
		key := m.Format("2006-01")
		monthIndex[key] = len(stats.MonthlyRevenue)
		stats.MonthlyRevenue = append(stats.MonthlyRevenue, MonthlyRevenuePoint{
			Month: m.Format("Jan"),
		})
	}

	for _, quote := range quotes {
		stats.TotalQuotes++
		switch quote.Status {
		case enum.QuoteStatusApproved:
			stats.ApprovedQuotes++
			revenue := moneyOrZero(quote.Amount)
			stats.TotalRevenue += revenue
			if idx, ok := monthIndex[quote.CreatedAt.Format("2006-01")]; ok {
				stats.MonthlyRevenue[idx].Revenue += revenue
			}
		case enum.QuoteStatusPending:
			stats.PendingQuotes++
		}
	}

	return stats, nil
}

// CustomerStats summarizes one customer's quote history
type CustomerStats struct {
	CustomerID     int     `json:"customerId"`
	TotalQuotes    int     `json:"totalQuotes"`
	ApprovedQuotes int     `json:"approvedQuotes"`
	PendingQuotes  int     `json:"pendingQuotes"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// GetCustomerStats computes per-customer quote counts and approved revenue
func (s *DashboardService) GetCustomerStats(ctx context.Context, customerID int) (*CustomerStats, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	quotes, err := s.quoteRepo.List(ctx, &repository.QuoteFilterParams{CustomerID: &customerID})
	if err != nil {
		return nil, err
	}

	stats := &CustomerStats{CustomerID: customerID}
	for _, quote := range quotes {
		stats.TotalQuotes++
		switch quote.Status {
		case enum.QuoteStatusApproved:
			stats.ApprovedQuotes++
			stats.TotalRevenue += moneyOrZero(quote.Amount)
		case enum.QuoteStatusPending:
			stats.PendingQuotes++
		}
	}

	return stats, nil
}

// ProjectTypeCount is one slice of the project type breakdown
type ProjectTypeCount struct {
	ProjectType string  `json:"projectType"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
}

// ReportMetrics is the business report view: conversion and value metrics
// plus the distribution of quotes across project types.
type ReportMetrics struct {
	TotalQuotes          int                `json:"totalQuotes"`
	ConversionRate       float64            `json:"conversionRate"`
	AverageQuoteValue    float64            `json:"averageQuoteValue"`
	ProjectTypeBreakdown []ProjectTypeCount `json:"projectTypeBreakdown"`
}

// GetReportMetrics computes the conversion rate (approved over total),
// average approved quote value, and project type distribution. Breakdown
// entries are sorted by count descending, ties broken by name.
func (s *DashboardService) GetReportMetrics(ctx context.Context) (*ReportMetrics, error) {
	quotes, err := s.quoteRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	metrics := &ReportMetrics{
		TotalQuotes:          len(quotes),
		ProjectTypeBreakdown: make([]ProjectTypeCount, 0),
	}

	approved := 0
	approvedRevenue := 0.0
	typeCounts := make(map[string]int)

	for _, quote := range quotes {
		typeCounts[quote.ProjectType]++
		if quote.Status == enum.QuoteStatusApproved {
			approved++
			approvedRevenue += moneyOrZero(quote.Amount)
		}
	}

	if metrics.TotalQuotes > 0 {
		metrics.ConversionRate = float64(approved) / float64(metrics.TotalQuotes) * 100
	}
	if approved > 0 {
		metrics.AverageQuoteValue = approvedRevenue / float64(approved)
	}

	for projectType, count := range typeCounts {
		percentage := 0.0
		if metrics.TotalQuotes > 0 {
			percentage = float64(count) / float64(metrics.TotalQuotes) * 100
		}
		metrics.ProjectTypeBreakdown = append(metrics.ProjectTypeBreakdown, ProjectTypeCount{
			ProjectType: projectType,
			Count:       count,
			Percentage:  percentage,
		})
	}

	sort.Slice(metrics.ProjectTypeBreakdown, func(i, j int) bool {
		a, b := metrics.ProjectTypeBreakdown[i], metrics.ProjectTypeBreakdown[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.ProjectType < b.ProjectType
	})

	return metrics, nil
}

// CalendarQuote is a quote entry on the calendar, annotated with the
// customer's name so the UI does not need a second lookup.
type CalendarQuote struct {
	entity.Quote
	CustomerName string `json:"customerName"`
}

// CalendarDay groups the quotes requested on a single day
type CalendarDay struct {
	Date   string          `json:"date"`
	Quotes []CalendarQuote `json:"quotes"`
}

// GetCalendar returns the quotes of a month grouped by requested date,
// in ascending day order. Days with no quotes are omitted.
func (s *DashboardService) GetCalendar(ctx context.Context, year int, month time.Month) ([]CalendarDay, error) {
	quotes, err := s.quoteRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	namesByID := make(map[int]string, len(customers))
	for _, customer := range customers {
		namesByID[customer.ID] = customer.Name
	}

	byDate := make(map[string][]CalendarQuote)
	for _, quote := range quotes {
		if quote.RequestedDate.Year() != year || quote.RequestedDate.Month() != month {
			continue
		}
		date := quote.RequestedDate.Format("2006-01-02")
		byDate[date] = append(byDate[date], CalendarQuote{
			Quote:        quote,
			CustomerName: namesByID[quote.CustomerID],
		})
	}

	days := make([]CalendarDay, 0, len(byDate))
	for date, dayQuotes := range byDate {
		days = append(days, CalendarDay{Date: date, Quotes: dayQuotes})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days, nil
}
