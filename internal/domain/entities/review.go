package entities

import "time"

// Review is the rider's rating of a workshop, permitted only after the work
// order closes. One review per work order.
//
// Storage model (DynamoDB):
//   - PK: work_order_id (1:1 with the work order)
type Review struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	RiderID     string    `json:"rider_id"`
	WorkshopID  string    `json:"workshop_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}
