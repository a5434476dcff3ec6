package entities

import "time"

// RequestStatus is the lifecycle of a rider's service request.
//
// Transitions are driven exclusively by:
//   - publish:              draft -> published
//   - first quote submit:   published -> in_quotation
//   - quote accept:         published/in_quotation -> selected
//   - work order start:     selected -> in_service
//   - work order close:     in_service -> closed
//   - rider cancel:         any non-terminal -> cancelled

type RequestStatus string

const (
	RequestStatusDraft       RequestStatus = "draft"
	RequestStatusPublished   RequestStatus = "published"
	RequestStatusInQuotation RequestStatus = "in_quotation"
	RequestStatusSelected    RequestStatus = "selected"
	RequestStatusInService   RequestStatus = "in_service"
	RequestStatusClosed      RequestStatus = "closed"
	RequestStatusCancelled   RequestStatus = "cancelled"
)

// Terminal reports whether no further transition is permitted.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusClosed || s == RequestStatusCancelled
}

// Quotable reports whether workshops may still submit quotes.
func (s RequestStatus) Quotable() bool {
	return s == RequestStatusPublished || s == RequestStatusInQuotation
}

type RequestUrgency string

const (
	RequestUrgencyLow    RequestUrgency = "low"
	RequestUrgencyMedium RequestUrgency = "medium"
	RequestUrgencyHigh   RequestUrgency = "high"
)

func (u RequestUrgency) Valid() bool {
	switch u {
	case RequestUrgencyLow, RequestUrgencyMedium, RequestUrgencyHigh:
		return true
	}
	return false
}

// ServiceRequest is the rider's published need for a repair/service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// ActiveWorkOrderID is set exactly once, inside the quote-accept transaction,
// and is the conflict detector for concurrent accepts: at most one non-terminal
// work order may reference a request.
type ServiceRequest struct {
	ID                string         `json:"id"`
	RiderID           string         `json:"rider_id"`
	MotorcycleID      string         `json:"motorcycle_id"`
	CategoryID        string         `json:"category_id"`
	CategorySlug      string         `json:"category_slug"`
	Description       string         `json:"description"`
	District          string         `json:"district"`
	PhotoURLs         []string       `json:"photo_urls,omitempty"`
	Urgency           RequestUrgency `json:"urgency"`
	Status            RequestStatus  `json:"status"`
	ActiveWorkOrderID string         `json:"active_work_order_id,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// StatusHistory is one append-only audit row per request transition.
// History rows are never rewritten.
type StatusHistory struct {
	RequestID  string        `json:"request_id"`
	SortKey    string        `json:"sort_key"`
	FromStatus RequestStatus `json:"from_status"`
	ToStatus   RequestStatus `json:"to_status"`
	ActorID    string        `json:"actor_id"`
	CreatedAt  time.Time     `json:"created_at"`
}
