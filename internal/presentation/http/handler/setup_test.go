package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BenViveiros/CleanCutYardWorks/internal/application/service"
	"github.com/BenViveiros/CleanCutYardWorks/internal/infrastructure/repository"
	"github.com/gin-gonic/gin"
)

type testServer struct {
	router           *gin.Engine
	customerService  *service.CustomerService
	quoteService     *service.QuoteService
	dashboardService *service.DashboardService
}

// newTestServer wires the handlers against a fresh in-memory store with
// the same route shapes the real router uses.
func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	customerService := service.NewCustomerService(store.Customers())
	quoteService := service.NewQuoteService(store.Quotes(), store.QuoteItems(), store.Customers())
	dashboardService := service.NewDashboardService(store.Quotes(), store.Customers())

	customerHandler := NewCustomerHandler(customerService)
	quoteHandler := NewQuoteHandler(quoteService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/dashboard/stats", dashboardHandler.Stats)
	api.GET("/customers", customerHandler.List)
	api.POST("/customers", customerHandler.Create)
	api.GET("/customers/:id", customerHandler.Get)
	api.PATCH("/customers/:id", customerHandler.Update)
	api.GET("/customers/:id/stats", dashboardHandler.CustomerStats)
	api.GET("/quotes", quoteHandler.List)
	api.POST("/quotes/request", quoteHandler.Request)
	api.GET("/quotes/number/:quoteNumber", quoteHandler.GetByNumber)
	api.GET("/quotes/:id", quoteHandler.Get)
	api.PATCH("/quotes/:id", quoteHandler.Update)
	api.POST("/quotes/:id/approve", quoteHandler.Approve)
	api.POST("/quotes/:id/reject", quoteHandler.Reject)
	api.GET("/quotes/:id/items", quoteHandler.ListItems)
	api.POST("/quotes/:id/items", quoteHandler.AddItem)
	api.PATCH("/quote-items/:id", quoteHandler.UpdateItem)
	api.DELETE("/quote-items/:id", quoteHandler.DeleteItem)
	api.GET("/reports/metrics", dashboardHandler.ReportMetrics)
	api.GET("/calendar", dashboardHandler.Calendar)

	return &testServer{
		router:           router,
		customerService:  customerService,
		quoteService:     quoteService,
		dashboardService: dashboardService,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func (s *testServer) submitQuoteRequest(t *testing.T, email string) map[string]interface{} {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/quotes/request", gin.H{
		"customerName":    "John Smith",
		"customerEmail":   email,
		"customerPhone":   "(555) 123-4567",
		"customerAddress": "123 Main St",
		"projectType":     "Lawn Installation",
		"propertySize":    2000,
		"description":     "New lawn installation",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("quote request failed: %d %s", w.Code, w.Body.String())
	}
	var body map[string]interface{}
	decodeBody(t, w, &body)
	return body
}
