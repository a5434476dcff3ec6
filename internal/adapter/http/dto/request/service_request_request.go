package request

import (
	"strings"

	"motofix/internal/domain/entities"
)

// PublishServiceRequestRequest is the rider-facing payload for publishing a
// new service request.
type PublishServiceRequestRequest struct {
	MotorcycleID string   `json:"motorcycle_id" binding:"required"`
	CategoryID   string   `json:"category_id" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	District     string   `json:"district"`
	PhotoURLs    []string `json:"photo_urls"`
	Urgency      string   `json:"urgency" binding:"required"`
}

func (r PublishServiceRequestRequest) ResolveUrgency() entities.RequestUrgency {
	return entities.RequestUrgency(strings.ToLower(strings.TrimSpace(r.Urgency)))
}
