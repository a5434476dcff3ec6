package response

import (
	"time"

	"motofix/internal/domain/entities"
)

type WorkOrderResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	RequestID   string    `json:"request_id"`
	QuoteID     string    `json:"quote_id"`
	WorkshopID  string    `json:"workshop_id"`
	RiderID     string    `json:"rider_id"`
	Status      string    `json:"status"`
	TotalAgreed string    `json:"total_agreed"`
	TotalFinal  string    `json:"total_final,omitempty"`
	StartNote   string    `json:"start_note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	StartedAt   time.Time `json:"started_at,omitzero"`
	CompletedAt time.Time `json:"completed_at,omitzero"`
	ClosedAt    time.Time `json:"closed_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	resp := WorkOrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		RequestID:   o.RequestID,
		QuoteID:     o.QuoteID,
		WorkshopID:  o.WorkshopID,
		RiderID:     o.RiderID,
		Status:      string(o.Status),
		TotalAgreed: o.TotalAgreed.StringFixed(2),
		StartNote:   o.StartNote,
		CreatedAt:   o.CreatedAt,
		StartedAt:   o.StartedAt,
		CompletedAt: o.CompletedAt,
		ClosedAt:    o.ClosedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	// TotalFinal only exists once the order completed.
	if o.Status == entities.WorkOrderStatusCompleted || o.Status == entities.WorkOrderStatusClosed {
		resp.TotalFinal = o.TotalFinal.StringFixed(2)
	}
	return resp
}

type ChangeRequestResponse struct {
	ID             string    `json:"id"`
	WorkOrderID    string    `json:"work_order_id"`
	Description    string    `json:"description"`
	Justification  string    `json:"justification"`
	AdditionalCost string    `json:"additional_cost"`
	Status         string    `json:"status"`
	DeciderID      string    `json:"decider_id,omitempty"`
	DecidedAt      time.Time `json:"decided_at,omitzero"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromChangeRequest(cr entities.ChangeRequest) ChangeRequestResponse {
	return ChangeRequestResponse{
		ID:             cr.ID,
		WorkOrderID:    cr.WorkOrderID,
		Description:    cr.Description,
		Justification:  cr.Justification,
		AdditionalCost: cr.AdditionalCost.StringFixed(2),
		Status:         string(cr.Status),
		DeciderID:      cr.DeciderID,
		DecidedAt:      cr.DecidedAt,
		CreatedAt:      cr.CreatedAt,
	}
}

func FromChangeRequests(crs []entities.ChangeRequest) []ChangeRequestResponse {
	out := make([]ChangeRequestResponse, 0, len(crs))
	for _, cr := range crs {
		out = append(out, FromChangeRequest(cr))
	}
	return out
}

type ReceiptResponse struct {
	ID              string    `json:"id"`
	WorkOrderID     string    `json:"work_order_id"`
	TotalOriginal   string    `json:"total_original"`
	TotalChanges    string    `json:"total_changes"`
	TotalFinal      string    `json:"total_final"`
	ApprovedChanges int       `json:"approved_changes"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromReceipt(r entities.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:              r.ID,
		WorkOrderID:     r.WorkOrderID,
		TotalOriginal:   r.TotalOriginal.StringFixed(2),
		TotalChanges:    r.TotalChanges.StringFixed(2),
		TotalFinal:      r.TotalFinal.StringFixed(2),
		ApprovedChanges: r.ApprovedChanges,
		CreatedAt:       r.CreatedAt,
	}
}

type ReviewResponse struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	WorkshopID  string    `json:"workshop_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		WorkOrderID: r.WorkOrderID,
		WorkshopID:  r.WorkshopID,
		Rating:      r.Rating,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
	}
}
