package request

import (
	"errors"
	"strings"
	"time"

	"motofix/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount     = errors.New("invalid monetary amount")
	ErrInvalidValidUntil = errors.New("invalid valid_until timestamp")
)

// QuotePartRequest is one line item of a quote. Prices travel as decimal
// strings to keep cents exact across the wire.
type QuotePartRequest struct {
	Name      string `json:"name" binding:"required"`
	Source    string `json:"source" binding:"required"`
	UnitPrice string `json:"unit_price" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// SubmitQuoteRequest is the workshop-facing payload for quoting a request.
type SubmitQuoteRequest struct {
	RequestID     string             `json:"request_id" binding:"required"`
	Parts         []QuotePartRequest `json:"parts"`
	LaborCost     string             `json:"labor_cost" binding:"required"`
	EstimatedTime string             `json:"estimated_time"`
	Notes         string             `json:"notes"`
	ValidUntil    string             `json:"valid_until" binding:"required"`
}

func (r SubmitQuoteRequest) ResolveParts() ([]entities.QuotePartItem, error) {
	parts := make([]entities.QuotePartItem, 0, len(r.Parts))
	for _, p := range r.Parts {
		price, err := decimal.NewFromString(strings.TrimSpace(p.UnitPrice))
		if err != nil {
			return nil, ErrInvalidAmount
		}
		parts = append(parts, entities.QuotePartItem{
			Name:      strings.TrimSpace(p.Name),
			Source:    entities.PartSource(strings.ToLower(strings.TrimSpace(p.Source))),
			UnitPrice: price,
			Quantity:  p.Quantity,
		})
	}
	return parts, nil
}

func (r SubmitQuoteRequest) ResolveLaborCost() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(r.LaborCost))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

func (r SubmitQuoteRequest) ResolveValidUntil() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(r.ValidUntil))
	if err != nil {
		return time.Time{}, ErrInvalidValidUntil
	}
	return t, nil
}

// RejectQuoteRequest carries the mandatory rejection reason.
type RejectQuoteRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CounterOfferRequest carries a non-binding price suggestion on a quote.
type CounterOfferRequest struct {
	Message         string `json:"message" binding:"required"`
	SuggestedAmount string `json:"suggested_amount" binding:"required"`
}

func (r CounterOfferRequest) ResolveSuggestedAmount() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(r.SuggestedAmount))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
