package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ChangeRequestStatus string

const (
	ChangeRequestStatusPending  ChangeRequestStatus = "pending"
	ChangeRequestStatusApproved ChangeRequestStatus = "approved"
	ChangeRequestStatusRejected ChangeRequestStatus = "rejected"
)

// ChangeRequest is a workshop's mid-service proposal to alter scope/cost.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//
// May only be created while the parent work order is in_service. A work order
// cannot complete while any change request is still pending. AdditionalCost is
// signed; a negative value is a credit to the rider.
type ChangeRequest struct {
	ID             string              `json:"id"`
	WorkOrderID    string              `json:"work_order_id"`
	Description    string              `json:"description"`
	Justification  string              `json:"justification"`
	AdditionalCost decimal.Decimal     `json:"additional_cost"`
	Status         ChangeRequestStatus `json:"status"`
	DeciderID      string              `json:"decider_id,omitempty"`
	DecidedAt      time.Time           `json:"decided_at,omitzero"`
	CreatedAt      time.Time           `json:"created_at"`
}
