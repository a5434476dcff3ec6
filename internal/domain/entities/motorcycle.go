package entities

import "time"

// Motorcycle belongs to a rider; a service request must reference one of the
// rider's own motorcycles.
//
// Storage model (DynamoDB):
//   - PK: id
type Motorcycle struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Plate     string    `json:"plate"`
	CreatedAt time.Time `json:"created_at"`
}
