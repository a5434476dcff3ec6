package usecase

import (
	"context"
	"fmt"
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

const defaultMinDescriptionLength = 20

// PublishRequestInput carries a rider's new service request.
type PublishRequestInput struct {
	RiderID      string
	MotorcycleID string
	CategoryID   string
	Description  string
	District     string
	PhotoURLs    []string
	Urgency      entities.RequestUrgency
}

// IRequestUseCase owns service request creation, visibility to workshops and
// the historical cost estimate.

type IRequestUseCase interface {
	Publish(ctx context.Context, in PublishRequestInput) (entities.ServiceRequest, error)
	ListAvailable(ctx context.Context, categoryID, district string) ([]entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	Cancel(ctx context.Context, riderID, requestID string) (entities.ServiceRequest, error)
	EstimateCost(ctx context.Context, categorySlug string) (entities.CategoryCostStats, error)
	ListHistory(ctx context.Context, requestID string) ([]entities.StatusHistory, error)
}

type RequestUseCase struct {
	requests    interfaces.IRequestRepository
	quotes      interfaces.IQuoteRepository
	motorcycles interfaces.IMotorcycleRepository
	catalog     interfaces.ICatalogRepository
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(
	requests interfaces.IRequestRepository,
	quotes interfaces.IQuoteRepository,
	motorcycles interfaces.IMotorcycleRepository,
	catalog interfaces.ICatalogRepository,
) *RequestUseCase {
	return &RequestUseCase{requests: requests, quotes: quotes, motorcycles: motorcycles, catalog: catalog}
}

func (u *RequestUseCase) Publish(ctx context.Context, in PublishRequestInput) (entities.ServiceRequest, error) {
	in.RiderID = strings.TrimSpace(in.RiderID)
	in.MotorcycleID = strings.TrimSpace(in.MotorcycleID)
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	in.Description = strings.TrimSpace(in.Description)
	if in.RiderID == "" {
		return entities.ServiceRequest{}, pkg.NewValidationError("INVALID_RIDER_ID", "rider id is required")
	}
	if in.MotorcycleID == "" {
		return entities.ServiceRequest{}, pkg.NewValidationError("INVALID_MOTORCYCLE_ID", "motorcycle id is required")
	}
	if minLen := minDescriptionLength(); len(in.Description) < minLen {
		return entities.ServiceRequest{}, pkg.NewValidationError("DESCRIPTION_TOO_SHORT",
			fmt.Sprintf("description must be at least %d characters", minLen))
	}
	if !in.Urgency.Valid() {
		return entities.ServiceRequest{}, pkg.NewValidationError("INVALID_URGENCY",
			fmt.Sprintf("urgency must be one of %s, %s, %s", entities.RequestUrgencyLow, entities.RequestUrgencyMedium, entities.RequestUrgencyHigh))
	}

	category, err := u.catalog.GetByID(ctx, in.CategoryID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if category.ID == "" {
		return entities.ServiceRequest{}, pkg.NewNotFoundError("category", in.CategoryID)
	}

	moto, err := u.motorcycles.GetByID(ctx, in.MotorcycleID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	// A motorcycle outside the rider's garage is indistinguishable from a
	// missing one on purpose: ids from other riders must not leak existence.
	if moto.ID == "" || moto.OwnerID != in.RiderID {
		return entities.ServiceRequest{}, pkg.NewNotFoundError("motorcycle", in.MotorcycleID)
	}

	now := time.Now().UTC()
	r := entities.ServiceRequest{
		ID:           uuid.NewString(),
		RiderID:      in.RiderID,
		MotorcycleID: moto.ID,
		CategoryID:   category.ID,
		CategorySlug: category.Slug,
		Description:  in.Description,
		District:     strings.TrimSpace(in.District),
		PhotoURLs:    in.PhotoURLs,
		Urgency:      in.Urgency,
		Status:       entities.RequestStatusPublished,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Create appends the draft->published history row in the same transaction.
	return u.requests.Create(ctx, r)
}

func (u *RequestUseCase) ListAvailable(ctx context.Context, categoryID, district string) ([]entities.ServiceRequest, error) {
	return u.requests.ListByStatus(ctx, entities.RequestStatusPublished, strings.TrimSpace(categoryID), strings.TrimSpace(district))
}

func (u *RequestUseCase) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, pkg.NewValidationError("INVALID_REQUEST_ID", "request id is required")
	}
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, pkg.NewNotFoundError("service request", id)
	}
	return r, nil
}

// Cancel withdraws a request before an engagement exists. Once a work order
// has been spawned the request follows the work order's lifecycle instead.
func (u *RequestUseCase) Cancel(ctx context.Context, riderID, requestID string) (entities.ServiceRequest, error) {
	r, err := u.GetByID(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.RiderID != strings.TrimSpace(riderID) {
		return entities.ServiceRequest{}, pkg.NewForbiddenError("service request", r.ID)
	}
	if !r.Status.Quotable() {
		return entities.ServiceRequest{}, pkg.NewInvalidStateError("service request", r.ID,
			string(entities.RequestStatusPublished)+" or "+string(entities.RequestStatusInQuotation), string(r.Status))
	}

	updated, err := u.requests.UpdateStatus(ctx, r.ID, r.Status, entities.RequestStatusCancelled, riderID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequest{}, pkg.NewConflictError("service request", r.ID, "request status changed concurrently")
	}
	return updated, nil
}

// EstimateCost aggregates historical quote totals (pending or accepted) for a
// category. All zeros when no history exists.
func (u *RequestUseCase) EstimateCost(ctx context.Context, categorySlug string) (entities.CategoryCostStats, error) {
	categorySlug = strings.TrimSpace(categorySlug)
	if categorySlug == "" {
		return entities.CategoryCostStats{}, pkg.NewValidationError("INVALID_CATEGORY_SLUG", "category slug is required")
	}
	category, err := u.catalog.GetBySlug(ctx, categorySlug)
	if err != nil {
		return entities.CategoryCostStats{}, err
	}
	if category.ID == "" {
		return entities.CategoryCostStats{}, pkg.NewNotFoundError("category", categorySlug)
	}

	quotes, err := u.quotes.ListByCategorySlug(ctx, categorySlug)
	if err != nil {
		return entities.CategoryCostStats{}, err
	}

	stats := entities.CategoryCostStats{Min: decimal.Zero, Max: decimal.Zero, Avg: decimal.Zero}
	sum := decimal.Zero
	for _, q := range quotes {
		if q.Status != entities.QuoteStatusPending && q.Status != entities.QuoteStatusAccepted {
			continue
		}
		if stats.Count == 0 || q.Total.LessThan(stats.Min) {
			stats.Min = q.Total
		}
		if q.Total.GreaterThan(stats.Max) {
			stats.Max = q.Total
		}
		sum = sum.Add(q.Total)
		stats.Count++
	}
	if stats.Count > 0 {
		stats.Avg = sum.DivRound(decimal.NewFromInt(int64(stats.Count)), 2)
	}
	return stats, nil
}

func (u *RequestUseCase) ListHistory(ctx context.Context, requestID string) ([]entities.StatusHistory, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, pkg.NewValidationError("INVALID_REQUEST_ID", "request id is required")
	}
	return u.requests.ListHistory(ctx, requestID)
}

func minDescriptionLength() int {
	if v := os.Getenv("MIN_DESCRIPTION_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultMinDescriptionLength
}
