package service

import (
	"context"
	"testing"
	"time"

	"github.com/BenViveiros/CleanCutYardWorks/internal/infrastructure/repository"
	"github.com/BenViveiros/CleanCutYardWorks/pkg/apperror"
)

type dashboardFixture struct {
	quotes    *QuoteService
	dashboard *DashboardService
}

func newDashboardFixture() *dashboardFixture {
	store := repository.NewMemoryStore()
	return &dashboardFixture{
		quotes:    NewQuoteService(store.Quotes(), store.QuoteItems(), store.Customers()),
		dashboard: NewDashboardService(store.Quotes(), store.Customers()),
	}
}

func (f *dashboardFixture) createQuote(t *testing.T, email, projectType string) int {
	t.Helper()
	input := requestInput(email)
	input.ProjectType = projectType
	quote, _, err := f.quotes.CreateFromRequest(context.Background(), input)
	if err != nil {
		t.Fatalf("create quote: %v", err)
	}
	return quote.ID
}

func (f *dashboardFixture) approve(t *testing.T, id int, amount string) {
	t.Helper()
	if _, err := f.quotes.ApproveQuote(context.Background(), id, amount); err != nil {
		t.Fatalf("approve quote %d: %v", id, err)
	}
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store yields zeros", func(t *testing.T) {
		f := newDashboardFixture()
		stats, err := f.dashboard.GetStats(ctx)
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if stats.TotalQuotes != 0 || stats.ApprovedQuotes != 0 || stats.PendingQuotes != 0 {
			t.Fatalf("expected zero counts, got %+v", stats)
		}
		if stats.TotalRevenue != 0 {
			t.Fatalf("expected zero revenue, got %f", stats.TotalRevenue)
		}
		if len(stats.MonthlyRevenue) != 6 {
			t.Fatalf("expected 6 monthly points, got %d", len(stats.MonthlyRevenue))
		}
		for _, point := range stats.MonthlyRevenue {
			if point.Revenue != 0 {
				t.Fatalf("expected zero month %q, got %f", point.Month, point.Revenue)
			}
		}
	})

	t.Run("counts and revenue", func(t *testing.T) {
		f := newDashboardFixture()
		first := f.createQuote(t, "john@example.com", "Lawn Installation")
		second := f.createQuote(t, "sarah@example.com", "Garden Design")
		f.createQuote(t, "mike@example.com", "Tree Removal")
		rejectID := f.createQuote(t, "emily@example.com", "Patio Installation")

		f.approve(t, first, "2200.00")
		f.approve(t, second, "1800.00")
		if _, err := f.quotes.RejectQuote(ctx, rejectID); err != nil {
			t.Fatalf("reject: %v", err)
		}

		stats, err := f.dashboard.GetStats(ctx)
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if stats.TotalQuotes != 4 {
			t.Fatalf("expected 4 quotes, got %d", stats.TotalQuotes)
		}
		if stats.ApprovedQuotes != 2 || stats.PendingQuotes != 1 {
			t.Fatalf("expected 2 approved / 1 pending, got %+v", stats)
		}
		if stats.TotalRevenue != 4000 {
			t.Fatalf("expected revenue 4000, got %f", stats.TotalRevenue)
		}

		// Quotes were all created just now, so revenue lands in the
		// current month, the last point of the series.
		series := stats.MonthlyRevenue
		current := series[len(series)-1]
		if current.Month != time.Now().Format("Jan") {
			t.Fatalf("expected current month label, got %q", current.Month)
		}
		if current.Revenue != 4000 {
			t.Fatalf("expected current month revenue 4000, got %f", current.Revenue)
		}
		for _, point := range series[:len(series)-1] {
			if point.Revenue != 0 {
				t.Fatalf("expected zero for %q, got %f", point.Month, point.Revenue)
			}
		}
	})
}

func TestCustomerStats(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture()

	first := f.createQuote(t, "john@example.com", "Lawn Installation")
	f.createQuote(t, "john@example.com", "Patio Installation")
	f.createQuote(t, "sarah@example.com", "Garden Design")
	f.approve(t, first, "3500.00")

	stats, err := f.dashboard.GetCustomerStats(ctx, 1)
	if err != nil {
		t.Fatalf("customer stats: %v", err)
	}
	if stats.TotalQuotes != 2 || stats.ApprovedQuotes != 1 || stats.PendingQuotes != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.TotalRevenue != 3500 {
		t.Fatalf("expected revenue 3500, got %f", stats.TotalRevenue)
	}

	_, err = f.dashboard.GetCustomerStats(ctx, 999)
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Fatalf("expected 404, got %d", appErr.Code)
	}
}

func TestReportMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store is zero safe", func(t *testing.T) {
		f := newDashboardFixture()
		metrics, err := f.dashboard.GetReportMetrics(ctx)
		if err != nil {
			t.Fatalf("metrics: %v", err)
		}
		if metrics.TotalQuotes != 0 || metrics.ConversionRate != 0 || metrics.AverageQuoteValue != 0 {
			t.Fatalf("expected zeros, got %+v", metrics)
		}
		if len(metrics.ProjectTypeBreakdown) != 0 {
			t.Fatalf("expected empty breakdown, got %+v", metrics.ProjectTypeBreakdown)
		}
	})

	t.Run("conversion, average and breakdown", func(t *testing.T) {
		f := newDashboardFixture()
		first := f.createQuote(t, "john@example.com", "Lawn Installation")
		second := f.createQuote(t, "sarah@example.com", "Lawn Installation")
		f.createQuote(t, "mike@example.com", "Garden Design")
		f.createQuote(t, "emily@example.com", "Tree Removal")

		f.approve(t, first, "2000.00")
		f.approve(t, second, "1000.00")

		metrics, err := f.dashboard.GetReportMetrics(ctx)
		if err != nil {
			t.Fatalf("metrics: %v", err)
		}
		if metrics.TotalQuotes != 4 {
			t.Fatalf("expected 4 quotes, got %d", metrics.TotalQuotes)
		}
		if metrics.ConversionRate != 50 {
			t.Fatalf("expected conversion 50, got %f", metrics.ConversionRate)
		}
		if metrics.AverageQuoteValue != 1500 {
			t.Fatalf("expected average 1500, got %f", metrics.AverageQuoteValue)
		}

		breakdown := metrics.ProjectTypeBreakdown
		if len(breakdown) != 3 {
			t.Fatalf("expected 3 project types, got %d", len(breakdown))
		}
		if breakdown[0].ProjectType != "Lawn Installation" || breakdown[0].Count != 2 {
			t.Fatalf("expected Lawn Installation first, got %+v", breakdown[0])
		}
		if breakdown[0].Percentage != 50 {
			t.Fatalf("expected 50 percent, got %f", breakdown[0].Percentage)
		}
		// Ties sort by name.
		if breakdown[1].ProjectType != "Garden Design" || breakdown[2].ProjectType != "Tree Removal" {
			t.Fatalf("unexpected tie order: %+v", breakdown)
		}
	})
}

func TestCalendar(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture()

	mkDate := func(day int) time.Time {
		return time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC)
	}
	create := func(email string, requested time.Time) {
		input := requestInput(email)
		input.RequestedDate = &requested
		if _, _, err := f.quotes.CreateFromRequest(ctx, input); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	create("john@example.com", mkDate(3))
	create("sarah@example.com", mkDate(3))
	create("mike@example.com", mkDate(12))
	create("emily@example.com", time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC))

	days, err := f.dashboard.GetCalendar(ctx, 2026, time.September)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Date != "2026-09-03" || days[1].Date != "2026-09-12" {
		t.Fatalf("unexpected day order: %+v", days)
	}
	if len(days[0].Quotes) != 2 {
		t.Fatalf("expected 2 quotes on the 3rd, got %d", len(days[0].Quotes))
	}
	if days[0].Quotes[0].CustomerName == "" {
		t.Fatal("expected customer name to be joined in")
	}

	other, err := f.dashboard.GetCalendar(ctx, 2026, time.October)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if len(other) != 1 || other[0].Date != "2026-10-01" {
		t.Fatalf("unexpected october view: %+v", other)
	}
}
