package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestDashboardStatsEndpoint(t *testing.T) {
	s := newTestServer()

	t.Run("empty store", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/dashboard/stats", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var stats map[string]interface{}
		decodeBody(t, w, &stats)
		if stats["totalQuotes"] != float64(0) || stats["totalRevenue"] != float64(0) {
			t.Fatalf("expected zeros, got %v", stats)
		}
		series, ok := stats["monthlyRevenue"].([]interface{})
		if !ok || len(series) != 6 {
			t.Fatalf("expected 6 monthly points, got %v", stats["monthlyRevenue"])
		}
	})

	t.Run("after approvals", func(t *testing.T) {
		s.submitQuoteRequest(t, "john@example.com")
		s.submitQuoteRequest(t, "sarah@example.com")

		if w := s.do(t, http.MethodPost, "/api/quotes/1/approve", gin.H{"amount": "2200.00"}); w.Code != http.StatusOK {
			t.Fatalf("approve failed: %d", w.Code)
		}

		w := s.do(t, http.MethodGet, "/api/dashboard/stats", nil)
		var stats map[string]interface{}
		decodeBody(t, w, &stats)
		if stats["totalQuotes"] != float64(2) {
			t.Fatalf("expected 2 quotes, got %v", stats["totalQuotes"])
		}
		if stats["approvedQuotes"] != float64(1) || stats["pendingQuotes"] != float64(1) {
			t.Fatalf("unexpected counts: %v", stats)
		}
		if stats["totalRevenue"] != float64(2200) {
			t.Fatalf("expected revenue 2200, got %v", stats["totalRevenue"])
		}
	})
}

func TestCustomerStatsEndpoint(t *testing.T) {
	s := newTestServer()
	s.submitQuoteRequest(t, "john@example.com")
	s.submitQuoteRequest(t, "john@example.com")
	if w := s.do(t, http.MethodPost, "/api/quotes/1/approve", gin.H{"amount": "1000.00"}); w.Code != http.StatusOK {
		t.Fatalf("approve failed: %d", w.Code)
	}

	w := s.do(t, http.MethodGet, "/api/customers/1/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var stats map[string]interface{}
	decodeBody(t, w, &stats)
	if stats["totalQuotes"] != float64(2) || stats["approvedQuotes"] != float64(1) {
		t.Fatalf("unexpected stats: %v", stats)
	}

	if w := s.do(t, http.MethodGet, "/api/customers/999/stats", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestReportMetricsEndpoint(t *testing.T) {
	s := newTestServer()
	s.submitQuoteRequest(t, "john@example.com")
	s.submitQuoteRequest(t, "sarah@example.com")
	if w := s.do(t, http.MethodPost, "/api/quotes/1/approve", gin.H{"amount": "3000.00"}); w.Code != http.StatusOK {
		t.Fatalf("approve failed: %d", w.Code)
	}

	w := s.do(t, http.MethodGet, "/api/reports/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var metrics map[string]interface{}
	decodeBody(t, w, &metrics)
	if metrics["conversionRate"] != float64(50) {
		t.Fatalf("expected conversion 50, got %v", metrics["conversionRate"])
	}
	if metrics["averageQuoteValue"] != float64(3000) {
		t.Fatalf("expected average 3000, got %v", metrics["averageQuoteValue"])
	}
	breakdown, ok := metrics["projectTypeBreakdown"].([]interface{})
	if !ok || len(breakdown) != 1 {
		t.Fatalf("expected single project type, got %v", metrics["projectTypeBreakdown"])
	}
}

func TestCalendarEndpoint(t *testing.T) {
	s := newTestServer()

	w := s.do(t, http.MethodPost, "/api/quotes/request", gin.H{
		"customerName":    "John Smith",
		"customerEmail":   "john@example.com",
		"customerPhone":   "(555) 123-4567",
		"customerAddress": "123 Main St",
		"projectType":     "Lawn Installation",
		"propertySize":    2000,
		"description":     "New lawn installation",
		"requestedDate":   "2026-09-03",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("quote request failed: %d %s", w.Code, w.Body.String())
	}

	t.Run("returns days for the requested month", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/calendar?year=2026&month=9", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var days []map[string]interface{}
		decodeBody(t, w, &days)
		if len(days) != 1 || days[0]["date"] != "2026-09-03" {
			t.Fatalf("unexpected calendar: %v", days)
		}
		quotes, ok := days[0]["quotes"].([]interface{})
		if !ok || len(quotes) != 1 {
			t.Fatalf("expected 1 quote on the day, got %v", days[0]["quotes"])
		}
		entry := quotes[0].(map[string]interface{})
		if entry["customerName"] != "John Smith" {
			t.Fatalf("expected joined customer name, got %v", entry["customerName"])
		}
	})

	t.Run("other months are empty", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/calendar?year=2026&month=10", nil)
		var days []map[string]interface{}
		decodeBody(t, w, &days)
		if len(days) != 0 {
			t.Fatalf("expected empty month, got %v", days)
		}
	})

	t.Run("bad params return 400", func(t *testing.T) {
		if w := s.do(t, http.MethodGet, "/api/calendar?month=13", nil); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for month 13, got %d", w.Code)
		}
		if w := s.do(t, http.MethodGet, "/api/calendar?year=abc", nil); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad year, got %d", w.Code)
		}
	})
}
