package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Workshop is the repair business submitting quotes and performing work.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CompletedServices and the rating aggregate (RatingSum/RatingCount) are
// maintained with atomic ADD updates; the running average is RatingSum/RatingCount.
type Workshop struct {
	ID                string    `json:"id"`
	OwnerUserID       string    `json:"owner_user_id"`
	Name              string    `json:"name"`
	District          string    `json:"district"`
	Verified          bool      `json:"verified"`
	CompletedServices int       `json:"completed_services"`
	RatingSum         int       `json:"rating_sum"`
	RatingCount       int       `json:"rating_count"`
	CreatedAt         time.Time `json:"created_at"`
}

// AverageRating returns the running average, zero when unrated.
func (w Workshop) AverageRating() decimal.Decimal {
	if w.RatingCount == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(w.RatingSum)).DivRound(decimal.NewFromInt(int64(w.RatingCount)), 2)
}
