package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrderStatus is linear: pending -> in_service -> completed -> closed.
// No skipping.

type WorkOrderStatus string

const (
	WorkOrderStatusPending   WorkOrderStatus = "pending"
	WorkOrderStatusInService WorkOrderStatus = "in_service"
	WorkOrderStatusCompleted WorkOrderStatus = "completed"
	WorkOrderStatusClosed    WorkOrderStatus = "closed"
)

func (s WorkOrderStatus) Terminal() bool {
	return s == WorkOrderStatusClosed
}

// WorkOrder is the binding engagement created when a quote is accepted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
//
// Created exactly once per request, inside the quote-accept transaction.
// TotalAgreed is frozen from the accepted quote's total and never changes.
// TotalFinal stays empty until completion, when it becomes
// TotalAgreed + sum of approved change-request deltas.
type WorkOrder struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	RequestID   string          `json:"request_id"`
	QuoteID     string          `json:"quote_id"`
	WorkshopID  string          `json:"workshop_id"`
	RiderID     string          `json:"rider_id"`
	Status      WorkOrderStatus `json:"status"`
	TotalAgreed decimal.Decimal `json:"total_agreed"`
	TotalFinal  decimal.Decimal `json:"total_final"`
	StartNote   string          `json:"start_note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	StartedAt   time.Time       `json:"started_at,omitzero"`
	CompletedAt time.Time       `json:"completed_at,omitzero"`
	ClosedAt    time.Time       `json:"closed_at,omitzero"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
