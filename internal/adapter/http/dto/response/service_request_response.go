package response

import (
	"time"

	"motofix/internal/domain/entities"
)

type ServiceRequestResponse struct {
	ID                string    `json:"id"`
	RiderID           string    `json:"rider_id"`
	MotorcycleID      string    `json:"motorcycle_id"`
	CategoryID        string    `json:"category_id"`
	CategorySlug      string    `json:"category_slug"`
	Description       string    `json:"description"`
	District          string    `json:"district,omitempty"`
	PhotoURLs         []string  `json:"photo_urls,omitempty"`
	Urgency           string    `json:"urgency"`
	Status            string    `json:"status"`
	ActiveWorkOrderID string    `json:"active_work_order_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:                r.ID,
		RiderID:           r.RiderID,
		MotorcycleID:      r.MotorcycleID,
		CategoryID:        r.CategoryID,
		CategorySlug:      r.CategorySlug,
		Description:       r.Description,
		District:          r.District,
		PhotoURLs:         r.PhotoURLs,
		Urgency:           string(r.Urgency),
		Status:            string(r.Status),
		ActiveWorkOrderID: r.ActiveWorkOrderID,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func FromServiceRequests(rs []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromServiceRequest(r))
	}
	return out
}

type StatusHistoryResponse struct {
	RequestID  string    `json:"request_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromStatusHistory(hs []entities.StatusHistory) []StatusHistoryResponse {
	out := make([]StatusHistoryResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, StatusHistoryResponse{
			RequestID:  h.RequestID,
			FromStatus: string(h.FromStatus),
			ToStatus:   string(h.ToStatus),
			ActorID:    h.ActorID,
			CreatedAt:  h.CreatedAt,
		})
	}
	return out
}

// CategoryCostStatsResponse renders the historical cost aggregate. Amounts are
// decimal strings with two places.
type CategoryCostStatsResponse struct {
	Min   string `json:"min"`
	Max   string `json:"max"`
	Avg   string `json:"avg"`
	Count int    `json:"count"`
}

func FromCategoryCostStats(s entities.CategoryCostStats) CategoryCostStatsResponse {
	return CategoryCostStatsResponse{
		Min:   s.Min.StringFixed(2),
		Max:   s.Max.StringFixed(2),
		Avg:   s.Avg.StringFixed(2),
		Count: s.Count,
	}
}
