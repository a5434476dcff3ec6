package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the final settlement produced at work order completion.
//
// Storage model (DynamoDB):
//   - PK: work_order_id (1:1 with the work order; created exactly once,
//     in the same transaction that marks the order completed)
type Receipt struct {
	ID              string          `json:"id"`
	WorkOrderID     string          `json:"work_order_id"`
	TotalOriginal   decimal.Decimal `json:"total_original"`
	TotalChanges    decimal.Decimal `json:"total_changes"`
	TotalFinal      decimal.Decimal `json:"total_final"`
	ApprovedChanges int             `json:"approved_changes"`
	CreatedAt       time.Time       `json:"created_at"`
}
