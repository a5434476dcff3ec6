package usecase

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"
	"motofix/pkg"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultMinJustificationLength = 20

// IWorkOrderUseCase drives the execution state machine of a work order
// (pending -> in_service -> completed -> closed) and the change-request
// sub-protocol that gates completion.

type IWorkOrderUseCase interface {
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	Start(ctx context.Context, workshopID, workOrderID, note string) (entities.WorkOrder, error)
	RequestChange(ctx context.Context, workshopID, workOrderID, description, justification string, additionalCost decimal.Decimal) (entities.ChangeRequest, error)
	DecideChange(ctx context.Context, riderID, changeRequestID string, approve bool) (entities.ChangeRequest, error)
	Complete(ctx context.Context, workshopID, workOrderID string) (entities.WorkOrder, error)
	Close(ctx context.Context, riderID, workOrderID string) (entities.WorkOrder, error)
	ListChanges(ctx context.Context, workOrderID string) ([]entities.ChangeRequest, error)
}

type WorkOrderUseCase struct {
	orders     interfaces.IWorkOrderRepository
	changes    interfaces.IChangeRequestRepository
	requests   interfaces.IRequestRepository
	workshops  interfaces.IWorkshopRepository
	notifySink interfaces.INotificationSink
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	orders interfaces.IWorkOrderRepository,
	changes interfaces.IChangeRequestRepository,
	requests interfaces.IRequestRepository,
	workshops interfaces.IWorkshopRepository,
	notifySink interfaces.INotificationSink,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{
		orders:     orders,
		changes:    changes,
		requests:   requests,
		workshops:  workshops,
		notifySink: notifySink,
	}
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, pkg.NewValidationError("INVALID_WORK_ORDER_ID", "work order id is required")
	}
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if order.ID == "" {
		return entities.WorkOrder{}, pkg.NewNotFoundError("work order", id)
	}
	return order, nil
}

func (u *WorkOrderUseCase) Start(ctx context.Context, workshopID, workOrderID, note string) (entities.WorkOrder, error) {
	order, err := u.loadWorkshopOrder(ctx, workshopID, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if order.Status != entities.WorkOrderStatusPending {
		return entities.WorkOrder{}, pkg.NewInvalidStateError("work order", order.ID, string(entities.WorkOrderStatusPending), string(order.Status))
	}

	started, err := u.orders.Start(ctx, order.ID, time.Now().UTC(), strings.TrimSpace(note))
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if started.ID == "" {
		return entities.WorkOrder{}, pkg.NewConflictError("work order", order.ID, "work order status changed concurrently")
	}

	// Mirror onto the parent request. The request can only be in selected at
	// this point; a failed condition is logged, not fatal.
	if _, err := u.requests.UpdateStatus(ctx, order.RequestID, entities.RequestStatusSelected, entities.RequestStatusInService, workshopID); err != nil {
		log.Printf("[workorder][usecase] request %s mirror to in_service failed: %v", order.RequestID, err)
	}

	emitNotification(ctx, u.notifySink, order.RiderID, order.RequestID,
		"Service started",
		fmt.Sprintf("Work order %s is now in service", order.OrderNumber),
		"/orders/"+order.ID)

	return started, nil
}

func (u *WorkOrderUseCase) RequestChange(ctx context.Context, workshopID, workOrderID, description, justification string, additionalCost decimal.Decimal) (entities.ChangeRequest, error) {
	description = strings.TrimSpace(description)
	justification = strings.TrimSpace(justification)
	if description == "" {
		return entities.ChangeRequest{}, pkg.NewValidationError("INVALID_DESCRIPTION", "a change description is required")
	}
	if minLen := minJustificationLength(); len(justification) < minLen {
		return entities.ChangeRequest{}, pkg.NewValidationError("JUSTIFICATION_TOO_SHORT",
			fmt.Sprintf("justification must be at least %d characters", minLen))
	}

	order, err := u.loadWorkshopOrder(ctx, workshopID, workOrderID)
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	if order.Status != entities.WorkOrderStatusInService {
		return entities.ChangeRequest{}, pkg.NewInvalidStateError("work order", order.ID, string(entities.WorkOrderStatusInService), string(order.Status))
	}

	// AdditionalCost is deliberately unconstrained in sign: a negative delta
	// is a credit to the rider.
	cr := entities.ChangeRequest{
		ID:             uuid.NewString(),
		WorkOrderID:    order.ID,
		Description:    description,
		Justification:  justification,
		AdditionalCost: additionalCost,
		Status:         entities.ChangeRequestStatusPending,
		CreatedAt:      time.Now().UTC(),
	}
	created, err := u.changes.Create(ctx, cr)
	if err != nil {
		return entities.ChangeRequest{}, err
	}

	emitNotification(ctx, u.notifySink, order.RiderID, order.RequestID,
		"Change request needs your approval",
		fmt.Sprintf("The workshop proposes a change of %s on order %s: %s", additionalCost.StringFixed(2), order.OrderNumber, description),
		"/orders/"+order.ID+"/changes")

	return created, nil
}

func (u *WorkOrderUseCase) DecideChange(ctx context.Context, riderID, changeRequestID string, approve bool) (entities.ChangeRequest, error) {
	riderID = strings.TrimSpace(riderID)
	changeRequestID = strings.TrimSpace(changeRequestID)
	if changeRequestID == "" {
		return entities.ChangeRequest{}, pkg.NewValidationError("INVALID_CHANGE_REQUEST_ID", "change request id is required")
	}

	cr, err := u.changes.GetByID(ctx, changeRequestID)
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	if cr.ID == "" {
		return entities.ChangeRequest{}, pkg.NewNotFoundError("change request", changeRequestID)
	}
	order, err := u.orders.GetByID(ctx, cr.WorkOrderID)
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	if order.ID == "" {
		return entities.ChangeRequest{}, pkg.NewNotFoundError("work order", cr.WorkOrderID)
	}
	if order.RiderID != riderID {
		return entities.ChangeRequest{}, pkg.NewForbiddenError("work order", order.ID)
	}
	if cr.Status != entities.ChangeRequestStatusPending {
		return entities.ChangeRequest{}, pkg.NewInvalidStateError("change request", cr.ID, string(entities.ChangeRequestStatusPending), string(cr.Status))
	}

	status := entities.ChangeRequestStatusRejected
	if approve {
		status = entities.ChangeRequestStatusApproved
	}
	decided, err := u.changes.Decide(ctx, cr.ID, status, riderID, time.Now().UTC())
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	if decided.ID == "" {
		return entities.ChangeRequest{}, pkg.NewConflictError("change request", cr.ID, "change request was decided concurrently")
	}

	if ws, err := u.workshops.GetByID(ctx, order.WorkshopID); err == nil && ws.ID != "" {
		emitNotification(ctx, u.notifySink, ws.OwnerUserID, order.RequestID,
			"Change request "+string(status),
			fmt.Sprintf("The rider %s the change on order %s", string(status), order.OrderNumber),
			"/orders/"+order.ID+"/changes")
	}

	return decided, nil
}

func (u *WorkOrderUseCase) Complete(ctx context.Context, workshopID, workOrderID string) (entities.WorkOrder, error) {
	order, err := u.loadWorkshopOrder(ctx, workshopID, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if order.Status != entities.WorkOrderStatusInService {
		return entities.WorkOrder{}, pkg.NewInvalidStateError("work order", order.ID, string(entities.WorkOrderStatusInService), string(order.Status))
	}

	changes, err := u.changes.ListByWorkOrderID(ctx, order.ID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	pending := 0
	approvedDelta := decimal.Zero
	approvedCount := 0
	for _, cr := range changes {
		switch cr.Status {
		case entities.ChangeRequestStatusPending:
			pending++
		case entities.ChangeRequestStatusApproved:
			approvedDelta = approvedDelta.Add(cr.AdditionalCost)
			approvedCount++
		}
	}
	// The hard gate: work can never silently finish while a cost change is
	// awaiting rider consent.
	if pending > 0 {
		return entities.WorkOrder{}, pkg.NewBlockedError(order.ID, pending)
	}

	now := time.Now().UTC()
	order.Status = entities.WorkOrderStatusCompleted
	order.TotalFinal = order.TotalAgreed.Add(approvedDelta)
	order.CompletedAt = now
	receipt := entities.Receipt{
		ID:              uuid.NewString(),
		WorkOrderID:     order.ID,
		TotalOriginal:   order.TotalAgreed,
		TotalChanges:    approvedDelta,
		TotalFinal:      order.TotalFinal,
		ApprovedChanges: approvedCount,
		CreatedAt:       now,
	}
	completed, err := u.orders.CompleteWithReceipt(ctx, order, receipt)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if completed.ID == "" {
		return entities.WorkOrder{}, pkg.NewConflictError("work order", order.ID, "work order status changed concurrently")
	}

	emitNotification(ctx, u.notifySink, order.RiderID, order.RequestID,
		"Service completed",
		fmt.Sprintf("Work order %s is done; final total %s", order.OrderNumber, order.TotalFinal.StringFixed(2)),
		"/orders/"+order.ID+"/receipt")

	return completed, nil
}

func (u *WorkOrderUseCase) Close(ctx context.Context, riderID, workOrderID string) (entities.WorkOrder, error) {
	riderID = strings.TrimSpace(riderID)
	order, err := u.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if order.RiderID != riderID {
		return entities.WorkOrder{}, pkg.NewForbiddenError("work order", order.ID)
	}
	if order.Status != entities.WorkOrderStatusCompleted {
		return entities.WorkOrder{}, pkg.NewInvalidStateError("work order", order.ID, string(entities.WorkOrderStatusCompleted), string(order.Status))
	}

	closed, err := u.orders.Close(ctx, order.ID, time.Now().UTC())
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if closed.ID == "" {
		return entities.WorkOrder{}, pkg.NewConflictError("work order", order.ID, "work order status changed concurrently")
	}

	if _, err := u.requests.UpdateStatus(ctx, order.RequestID, entities.RequestStatusInService, entities.RequestStatusClosed, riderID); err != nil {
		log.Printf("[workorder][usecase] request %s mirror to closed failed: %v", order.RequestID, err)
	}
	if err := u.workshops.IncrementCompletedServices(ctx, order.WorkshopID); err != nil {
		log.Printf("[workorder][usecase] workshop %s completed-services increment failed: %v", order.WorkshopID, err)
	}

	if ws, err := u.workshops.GetByID(ctx, order.WorkshopID); err == nil && ws.ID != "" {
		emitNotification(ctx, u.notifySink, ws.OwnerUserID, order.RequestID,
			"Order closed",
			fmt.Sprintf("The rider closed work order %s", order.OrderNumber),
			"/orders/"+order.ID)
	}

	return closed, nil
}

func (u *WorkOrderUseCase) ListChanges(ctx context.Context, workOrderID string) ([]entities.ChangeRequest, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, pkg.NewValidationError("INVALID_WORK_ORDER_ID", "work order id is required")
	}
	return u.changes.ListByWorkOrderID(ctx, workOrderID)
}

// loadWorkshopOrder resolves a work order and enforces workshop ownership.
func (u *WorkOrderUseCase) loadWorkshopOrder(ctx context.Context, workshopID, workOrderID string) (entities.WorkOrder, error) {
	workshopID = strings.TrimSpace(workshopID)
	if workshopID == "" {
		return entities.WorkOrder{}, pkg.NewValidationError("INVALID_WORKSHOP_ID", "workshop id is required")
	}
	order, err := u.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if order.WorkshopID != workshopID {
		return entities.WorkOrder{}, pkg.NewForbiddenError("work order", order.ID)
	}
	return order, nil
}

func minJustificationLength() int {
	if v := os.Getenv("MIN_JUSTIFICATION_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultMinJustificationLength
}
