package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StartWorkOrderRequest optionally annotates the start of service.
type StartWorkOrderRequest struct {
	Note string `json:"note"`
}

// ChangeRequestRequest is the workshop-facing payload proposing a scope or
// cost change on an in-service order. AdditionalCost is signed; a negative
// value credits the rider.
type ChangeRequestRequest struct {
	Description    string `json:"description" binding:"required"`
	Justification  string `json:"justification" binding:"required"`
	AdditionalCost string `json:"additional_cost" binding:"required"`
}

func (r ChangeRequestRequest) ResolveAdditionalCost() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(r.AdditionalCost))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// DecideChangeRequest carries the rider's approve/reject verdict.
type DecideChangeRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// ReviewRequest carries the post-close rating.
type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
