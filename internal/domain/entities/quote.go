package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// PartSource identifies where a quoted part comes from.
type PartSource string

const (
	PartSourceOEM         PartSource = "oem"
	PartSourceAftermarket PartSource = "aftermarket"
	PartSourceUsed        PartSource = "used"
)

func (s PartSource) Valid() bool {
	switch s {
	case PartSourceOEM, PartSourceAftermarket, PartSourceUsed:
		return true
	}
	return false
}

// QuotePartItem is one priced part line inside a quote.
type QuotePartItem struct {
	Name      string          `json:"name"`
	Source    PartSource      `json:"source"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Quote is a workshop's priced proposal against a service request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
//   - GSI2 (category_slug-index): category_slug (denormalized from the request
//     at submit time, so historical cost aggregation can query by category)
//
// A quote is immutable once submitted: only Status and RejectionReason change
// afterwards. Total is derived at creation (parts subtotal + labor) and never
// re-derived.
type Quote struct {
	ID              string          `json:"id"`
	RequestID       string          `json:"request_id"`
	WorkshopID      string          `json:"workshop_id"`
	CategorySlug    string          `json:"category_slug"`
	Parts           []QuotePartItem `json:"parts"`
	LaborCost       decimal.Decimal `json:"labor_cost"`
	Total           decimal.Decimal `json:"total"`
	EstimatedTime   string          `json:"estimated_time"`
	Notes           string          `json:"notes"`
	ValidUntil      time.Time       `json:"valid_until"`
	Status          QuoteStatus     `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CounterOffer is an out-of-band rider annotation on a quote. It never mutates
// the quote: the workshop must resubmit if it wants a different price.
type CounterOffer struct {
	ID              string          `json:"id"`
	QuoteID         string          `json:"quote_id"`
	RiderID         string          `json:"rider_id"`
	Message         string          `json:"message"`
	SuggestedAmount decimal.Decimal `json:"suggested_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CategoryCostStats aggregates historical quote totals for one category.
type CategoryCostStats struct {
	Min   decimal.Decimal `json:"min"`
	Max   decimal.Decimal `json:"max"`
	Avg   decimal.Decimal `json:"avg"`
	Count int             `json:"count"`
}
