package response

import (
	"time"

	"motofix/internal/domain/entities"
)

type QuotePartResponse struct {
	Name      string `json:"name"`
	Source    string `json:"source"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type QuoteResponse struct {
	ID              string              `json:"id"`
	RequestID       string              `json:"request_id"`
	WorkshopID      string              `json:"workshop_id"`
	Parts           []QuotePartResponse `json:"parts"`
	LaborCost       string              `json:"labor_cost"`
	Total           string              `json:"total"`
	EstimatedTime   string              `json:"estimated_time,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	ValidUntil      time.Time           `json:"valid_until"`
	Status          string              `json:"status"`
	RejectionReason string              `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	parts := make([]QuotePartResponse, 0, len(q.Parts))
	for _, p := range q.Parts {
		parts = append(parts, QuotePartResponse{
			Name:      p.Name,
			Source:    string(p.Source),
			UnitPrice: p.UnitPrice.StringFixed(2),
			Quantity:  p.Quantity,
		})
	}
	return QuoteResponse{
		ID:              q.ID,
		RequestID:       q.RequestID,
		WorkshopID:      q.WorkshopID,
		Parts:           parts,
		LaborCost:       q.LaborCost.StringFixed(2),
		Total:           q.Total.StringFixed(2),
		EstimatedTime:   q.EstimatedTime,
		Notes:           q.Notes,
		ValidUntil:      q.ValidUntil,
		Status:          string(q.Status),
		RejectionReason: q.RejectionReason,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

type CounterOfferResponse struct {
	ID              string    `json:"id"`
	QuoteID         string    `json:"quote_id"`
	RiderID         string    `json:"rider_id"`
	Message         string    `json:"message"`
	SuggestedAmount string    `json:"suggested_amount"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromCounterOffer(co entities.CounterOffer) CounterOfferResponse {
	return CounterOfferResponse{
		ID:              co.ID,
		QuoteID:         co.QuoteID,
		RiderID:         co.RiderID,
		Message:         co.Message,
		SuggestedAmount: co.SuggestedAmount.StringFixed(2),
		CreatedAt:       co.CreatedAt,
	}
}
