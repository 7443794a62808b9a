package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/BenViveiros/CleanCutYardWorks/internal/application/service"
	"github.com/BenViveiros/CleanCutYardWorks/internal/domain/enum"
	"github.com/BenViveiros/CleanCutYardWorks/internal/presentation/http/dto/request"
	"github.com/BenViveiros/CleanCutYardWorks/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// QuoteHandler handles quote HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// List handles GET /api/quotes with optional status and customerId filters
func (h *QuoteHandler) List(c *gin.Context) {
	var status *enum.QuoteStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := enum.ParseQuoteStatus(raw)
		if !ok {
			response.ErrorWithCode(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		status = &parsed
	}

	var customerID *int
	if raw := c.Query("customerId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.ErrorWithCode(c, http.StatusBadRequest, "Invalid customerId filter")
			return
		}
		customerID = &id
	}

	quotes, err := h.quoteService.ListQuotes(c.Request.Context(), status, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// Get handles GET /api/quotes/:id
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GetByNumber handles GET /api/quotes/number/:quoteNumber
func (h *QuoteHandler) GetByNumber(c *gin.Context) {
	quote, err := h.quoteService.GetQuoteByNumber(c.Request.Context(), c.Param("quoteNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Request handles POST /api/quotes/request. A new customer is created for
// an unknown email; a known email reuses the existing customer.
func (h *QuoteHandler) Request(c *gin.Context) {
	var req request.QuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	var requestedDate *time.Time
	if req.RequestedDate != nil && *req.RequestedDate != "" {
		parsed, err := parseDate(*req.RequestedDate)
		if err != nil {
			response.ErrorWithCode(c, http.StatusBadRequest, "Invalid requestedDate")
			return
		}
		requestedDate = &parsed
	}

	quote, customer, err := h.quoteService.CreateFromRequest(c.Request.Context(), &service.QuoteRequestInput{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		ProjectType:     req.ProjectType,
		PropertySize:    req.PropertySize,
		BudgetRange:     req.BudgetRange,
		Description:     req.Description,
		Timeline:        req.Timeline,
		RequestedDate:   requestedDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"quote": quote, "customer": customer})
}

// Update handles PATCH /api/quotes/:id
func (h *QuoteHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	input := &service.UpdateQuoteInput{
		ID:           id,
		ProjectType:  req.ProjectType,
		PropertySize: req.PropertySize,
		BudgetRange:  req.BudgetRange,
		Description:  req.Description,
		Timeline:     req.Timeline,
		Amount:       req.Amount,
	}

	if req.Status != nil {
		status, ok := enum.ParseQuoteStatus(*req.Status)
		if !ok {
			response.ErrorWithCode(c, http.StatusBadRequest, "Invalid status")
			return
		}
		input.Status = &status
	}
	if req.RequestedDate != nil && *req.RequestedDate != "" {
		parsed, err := parseDate(*req.RequestedDate)
		if err != nil {
			response.ErrorWithCode(c, http.StatusBadRequest, "Invalid requestedDate")
			return
		}
		input.RequestedDate = &parsed
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Approve handles POST /api/quotes/:id/approve
func (h *QuoteHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.ApproveQuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	quote, err := h.quoteService.ApproveQuote(c.Request.Context(), id, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Reject handles POST /api/quotes/:id/reject
func (h *QuoteHandler) Reject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quote, err := h.quoteService.RejectQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ListItems handles GET /api/quotes/:id/items
func (h *QuoteHandler) ListItems(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	items, err := h.quoteService.ListQuoteItems(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddItem handles POST /api/quotes/:id/items
func (h *QuoteHandler) AddItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.CreateQuoteItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.quoteService.AddQuoteItem(c.Request.Context(), id, &service.QuoteItemInput{
		Item:      req.Item,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Total:     req.Total,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PATCH /api/quote-items/:id
func (h *QuoteHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateQuoteItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.quoteService.UpdateQuoteItem(c.Request.Context(), &service.UpdateQuoteItemInput{
		ID:        id,
		Item:      req.Item,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Total:     req.Total,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /api/quote-items/:id
func (h *QuoteHandler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.quoteService.DeleteQuoteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
