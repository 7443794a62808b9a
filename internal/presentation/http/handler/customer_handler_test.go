package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCustomerEndpoints(t *testing.T) {
	s := newTestServer()

	t.Run("create returns 201 with the bare entity", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/customers", gin.H{
			"name":    "John Smith",
			"email":   "john@example.com",
			"phone":   "(555) 123-4567",
			"address": "123 Main St",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var customer map[string]interface{}
		decodeBody(t, w, &customer)
		if customer["id"] != float64(1) {
			t.Fatalf("expected id 1, got %v", customer["id"])
		}
		if customer["email"] != "john@example.com" {
			t.Fatalf("expected email echoed back, got %v", customer["email"])
		}
		if _, ok := customer["createdAt"]; !ok {
			t.Fatal("expected createdAt in response")
		}
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/customers", gin.H{
			"name":    "John Clone",
			"email":   "john@example.com",
			"phone":   "(555) 000-0000",
			"address": "124 Main St",
		})
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}

		var body map[string]interface{}
		decodeBody(t, w, &body)
		if body["error"] != "Customer with this email already exists" {
			t.Fatalf("unexpected error message: %v", body["error"])
		}
	})

	t.Run("validation failure returns 400 with field details", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/customers", gin.H{
			"name":  "No Email",
			"email": "not-an-email",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var body struct {
			Error   string `json:"error"`
			Details []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"details"`
		}
		decodeBody(t, w, &body)
		if len(body.Details) == 0 {
			t.Fatalf("expected field details, got %s", w.Body.String())
		}

		fields := make(map[string]bool)
		for _, d := range body.Details {
			fields[d.Field] = true
		}
		if !fields["email"] || !fields["phone"] || !fields["address"] {
			t.Fatalf("expected email, phone and address issues, got %+v", body.Details)
		}
	})

	t.Run("list returns a bare array", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/customers", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var customers []map[string]interface{}
		decodeBody(t, w, &customers)
		if len(customers) != 1 {
			t.Fatalf("expected 1 customer, got %d", len(customers))
		}
	})

	t.Run("get missing returns 404", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/customers/999", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get with malformed id returns 400", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/customers/abc", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("patch merges fields", func(t *testing.T) {
		w := s.do(t, http.MethodPatch, "/api/customers/1", gin.H{
			"phone": "(555) 999-0000",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var customer map[string]interface{}
		decodeBody(t, w, &customer)
		if customer["phone"] != "(555) 999-0000" {
			t.Fatalf("expected updated phone, got %v", customer["phone"])
		}
		if customer["name"] != "John Smith" {
			t.Fatalf("expected untouched name, got %v", customer["name"])
		}
	})
}
