package entities

import "time"

// Notification is an append-only record created by lifecycle transitions.
// Delivery (push/email) is an external concern; this core only creates rows.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (recipient_id-index): recipient_id
type Notification struct {
	ID               string    `json:"id"`
	RecipientID      string    `json:"recipient_id"`
	RelatedRequestID string    `json:"related_request_id,omitempty"`
	Title            string    `json:"title"`
	Body             string    `json:"body"`
	Link             string    `json:"link,omitempty"`
	Read             bool      `json:"read"`
	CreatedAt        time.Time `json:"created_at"`
}
