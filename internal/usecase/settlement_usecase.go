package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"
	"motofix/pkg"

	"github.com/google/uuid"
)

// ISettlementUseCase exposes the receipt produced at completion and the
// post-close review that feeds the workshop reputation aggregate.

type ISettlementUseCase interface {
	GetReceipt(ctx context.Context, callerID, workOrderID string) (entities.Receipt, error)
	CreateReview(ctx context.Context, riderID, workOrderID string, rating int, comment string) (entities.Review, error)
	GetWorkshop(ctx context.Context, workshopID string) (entities.Workshop, error)
	GetWorkshopByOwner(ctx context.Context, ownerUserID string) (entities.Workshop, error)
}

type SettlementUseCase struct {
	receipts   interfaces.IReceiptRepository
	reviews    interfaces.IReviewRepository
	orders     interfaces.IWorkOrderRepository
	workshops  interfaces.IWorkshopRepository
	notifySink interfaces.INotificationSink
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(
	receipts interfaces.IReceiptRepository,
	reviews interfaces.IReviewRepository,
	orders interfaces.IWorkOrderRepository,
	workshops interfaces.IWorkshopRepository,
	notifySink interfaces.INotificationSink,
) *SettlementUseCase {
	return &SettlementUseCase{
		receipts:   receipts,
		reviews:    reviews,
		orders:     orders,
		workshops:  workshops,
		notifySink: notifySink,
	}
}

// GetReceipt is visible to both parties of the engagement: the rider and the
// workshop owner.
func (u *SettlementUseCase) GetReceipt(ctx context.Context, callerID, workOrderID string) (entities.Receipt, error) {
	callerID = strings.TrimSpace(callerID)
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.Receipt{}, pkg.NewValidationError("INVALID_WORK_ORDER_ID", "work order id is required")
	}

	order, err := u.orders.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.Receipt{}, err
	}
	if order.ID == "" {
		return entities.Receipt{}, pkg.NewNotFoundError("work order", workOrderID)
	}
	if callerID != order.RiderID {
		ws, err := u.workshops.GetByID(ctx, order.WorkshopID)
		if err != nil {
			return entities.Receipt{}, err
		}
		if ws.ID == "" || ws.OwnerUserID != callerID {
			return entities.Receipt{}, pkg.NewForbiddenError("work order", order.ID)
		}
	}

	receipt, err := u.receipts.GetByWorkOrderID(ctx, order.ID)
	if err != nil {
		return entities.Receipt{}, err
	}
	if receipt.ID == "" {
		return entities.Receipt{}, pkg.NewNotFoundError("receipt", workOrderID)
	}
	return receipt, nil
}

func (u *SettlementUseCase) CreateReview(ctx context.Context, riderID, workOrderID string, rating int, comment string) (entities.Review, error) {
	riderID = strings.TrimSpace(riderID)
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.Review{}, pkg.NewValidationError("INVALID_WORK_ORDER_ID", "work order id is required")
	}
	if rating < 1 || rating > 5 {
		return entities.Review{}, pkg.NewValidationError("INVALID_RATING", "rating must be between 1 and 5")
	}

	order, err := u.orders.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.Review{}, err
	}
	if order.ID == "" {
		return entities.Review{}, pkg.NewNotFoundError("work order", workOrderID)
	}
	if order.RiderID != riderID {
		return entities.Review{}, pkg.NewForbiddenError("work order", order.ID)
	}
	if order.Status != entities.WorkOrderStatusClosed {
		return entities.Review{}, pkg.NewInvalidStateError("work order", order.ID, string(entities.WorkOrderStatusClosed), string(order.Status))
	}

	review := entities.Review{
		ID:          uuid.NewString(),
		WorkOrderID: order.ID,
		RiderID:     riderID,
		WorkshopID:  order.WorkshopID,
		Rating:      rating,
		Comment:     strings.TrimSpace(comment),
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.reviews.Create(ctx, review)
	if err != nil {
		return entities.Review{}, err
	}
	if created.ID == "" {
		return entities.Review{}, pkg.NewConflictError("work order", order.ID, "work order already has a review")
	}

	// Reputation aggregate rides on atomic counters; a failed add is logged
	// and the review stands.
	if err := u.workshops.AddRating(ctx, order.WorkshopID, rating); err != nil {
		log.Printf("[settlement][usecase] workshop %s rating update failed: %v", order.WorkshopID, err)
	}

	if ws, err := u.workshops.GetByID(ctx, order.WorkshopID); err == nil && ws.ID != "" {
		emitNotification(ctx, u.notifySink, ws.OwnerUserID, order.RequestID,
			"New review",
			fmt.Sprintf("The rider rated order %s with %d/5", order.OrderNumber, rating),
			"/orders/"+order.ID)
	}

	return created, nil
}

func (u *SettlementUseCase) GetWorkshop(ctx context.Context, workshopID string) (entities.Workshop, error) {
	workshopID = strings.TrimSpace(workshopID)
	if workshopID == "" {
		return entities.Workshop{}, pkg.NewValidationError("INVALID_WORKSHOP_ID", "workshop id is required")
	}
	ws, err := u.workshops.GetByID(ctx, workshopID)
	if err != nil {
		return entities.Workshop{}, err
	}
	if ws.ID == "" {
		return entities.Workshop{}, pkg.NewNotFoundError("workshop", workshopID)
	}
	return ws, nil
}

// GetWorkshopByOwner resolves the workshop run by an authenticated user, used
// by handlers to turn a principal into the workshop acting on quotes and orders.
func (u *SettlementUseCase) GetWorkshopByOwner(ctx context.Context, ownerUserID string) (entities.Workshop, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return entities.Workshop{}, pkg.NewValidationError("INVALID_OWNER_ID", "owner user id is required")
	}
	ws, err := u.workshops.GetByOwnerUserID(ctx, ownerUserID)
	if err != nil {
		return entities.Workshop{}, err
	}
	if ws.ID == "" {
		return entities.Workshop{}, pkg.NewNotFoundError("workshop", ownerUserID)
	}
	return ws, nil
}
