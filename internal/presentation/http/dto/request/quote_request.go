package request

// QuoteRequest is the POST /api/quotes/request payload: the customer's
// contact info plus the project details. RequestedDate is optional and
// accepts "2006-01-02" or RFC 3339.
type QuoteRequest struct {
	CustomerName    string  `json:"customerName" binding:"required"`
	CustomerEmail   string  `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string  `json:"customerPhone" binding:"required"`
	CustomerAddress string  `json:"customerAddress" binding:"required"`
	ProjectType     string  `json:"projectType" binding:"required"`
	PropertySize    int     `json:"propertySize" binding:"required,gt=0"`
	BudgetRange     *string `json:"budgetRange"`
	Description     string  `json:"description" binding:"required"`
	Timeline        *string `json:"timeline"`
	RequestedDate   *string `json:"requestedDate"`
}

// UpdateQuoteRequest is the PATCH /api/quotes/:id payload. Absent fields
// are left unchanged; quoteNumber, customerId and timestamps are not
// mutable through this endpoint.
type UpdateQuoteRequest struct {
	ProjectType   *string `json:"projectType"`
	PropertySize  *int    `json:"propertySize" binding:"omitempty,gt=0"`
	BudgetRange   *string `json:"budgetRange"`
	Description   *string `json:"description"`
	Timeline      *string `json:"timeline"`
	Status        *string `json:"status"`
	Amount        *string `json:"amount"`
	RequestedDate *string `json:"requestedDate"`
}

// ApproveQuoteRequest is the POST /api/quotes/:id/approve payload
type ApproveQuoteRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// CreateQuoteItemRequest is the POST /api/quotes/:id/items payload
type CreateQuoteItemRequest struct {
	Item      string `json:"item" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	UnitPrice string `json:"unitPrice" binding:"required"`
	Total     string `json:"total" binding:"required"`
}

// UpdateQuoteItemRequest is the PATCH /api/quote-items/:id payload
type UpdateQuoteItemRequest struct {
	Item      *string `json:"item"`
	Quantity  *int    `json:"quantity" binding:"omitempty,gt=0"`
	UnitPrice *string `json:"unitPrice"`
	Total     *string `json:"total"`
}
