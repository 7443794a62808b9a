package enum

// QuoteStatus represents the lifecycle stage of a quote
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCompleted QuoteStatus = "completed"
)

func (s QuoteStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the four known statuses
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusApproved, QuoteStatusRejected, QuoteStatusCompleted:
		return true
	}
	return false
}

// ParseQuoteStatus converts a raw string into a QuoteStatus
func ParseQuoteStatus(s string) (QuoteStatus, bool) {
	status := QuoteStatus(s)
	return status, status.IsValid()
}
