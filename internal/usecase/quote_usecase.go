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
	"github.com/shopspring/decimal"
)

// SubmitQuoteInput carries a workshop's priced proposal against a request.
type SubmitQuoteInput struct {
	WorkshopID    string
	RequestID     string
	Parts         []entities.QuotePartItem
	LaborCost     decimal.Decimal
	EstimatedTime string
	Notes         string
	ValidUntil    time.Time
}

// IQuoteUseCase exposes the quote protocol: competing submissions against a
// request, and the rider-side accept/reject/counter-offer decisions.
//
// Accept is the critical section of the whole system: exactly one quote may be
// accepted per request, and acceptance atomically rejects every sibling,
// creates the work order and moves the request to selected.

type IQuoteUseCase interface {
	Submit(ctx context.Context, in SubmitQuoteInput) (entities.Quote, error)
	Accept(ctx context.Context, riderID, quoteID string) (entities.WorkOrder, error)
	Reject(ctx context.Context, riderID, quoteID, reason string) (entities.Quote, error)
	CounterOffer(ctx context.Context, riderID, quoteID, message string, suggestedAmount decimal.Decimal) (entities.CounterOffer, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	quotes     interfaces.IQuoteRepository
	requests   interfaces.IRequestRepository
	orders     interfaces.IWorkOrderRepository
	workshops  interfaces.IWorkshopRepository
	notifySink interfaces.INotificationSink
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	requests interfaces.IRequestRepository,
	orders interfaces.IWorkOrderRepository,
	workshops interfaces.IWorkshopRepository,
	notifySink interfaces.INotificationSink,
) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:     quotes,
		requests:   requests,
		orders:     orders,
		workshops:  workshops,
		notifySink: notifySink,
	}
}

func (u *QuoteUseCase) Submit(ctx context.Context, in SubmitQuoteInput) (entities.Quote, error) {
	in.WorkshopID = strings.TrimSpace(in.WorkshopID)
	in.RequestID = strings.TrimSpace(in.RequestID)
	if in.WorkshopID == "" {
		return entities.Quote{}, pkg.NewValidationError("INVALID_WORKSHOP_ID", "workshop id is required")
	}
	if in.RequestID == "" {
		return entities.Quote{}, pkg.NewValidationError("INVALID_REQUEST_ID", "request id is required")
	}
	if !in.ValidUntil.After(time.Now().UTC()) {
		return entities.Quote{}, pkg.NewValidationError("INVALID_VALID_UNTIL", "valid_until must be in the future")
	}
	if len(in.Parts) == 0 && in.LaborCost.Sign() <= 0 {
		return entities.Quote{}, pkg.NewValidationError("EMPTY_QUOTE", "a quote needs at least one part or a positive labor cost")
	}
	if in.LaborCost.Sign() < 0 {
		return entities.Quote{}, pkg.NewValidationError("INVALID_LABOR_COST", "labor cost cannot be negative")
	}
	for i, p := range in.Parts {
		if strings.TrimSpace(p.Name) == "" {
			return entities.Quote{}, pkg.NewValidationError("INVALID_PART", fmt.Sprintf("part %d: name is required", i))
		}
		if !p.Source.Valid() {
			return entities.Quote{}, pkg.NewValidationError("INVALID_PART", fmt.Sprintf("part %d: unknown source %q", i, p.Source))
		}
		if p.Quantity <= 0 {
			return entities.Quote{}, pkg.NewValidationError("INVALID_PART", fmt.Sprintf("part %d: quantity must be positive", i))
		}
		if p.UnitPrice.Sign() < 0 {
			return entities.Quote{}, pkg.NewValidationError("INVALID_PART", fmt.Sprintf("part %d: unit price cannot be negative", i))
		}
	}

	workshop, err := u.workshops.GetByID(ctx, in.WorkshopID)
	if err != nil {
		return entities.Quote{}, err
	}
	if workshop.ID == "" {
		return entities.Quote{}, pkg.NewNotFoundError("workshop", in.WorkshopID)
	}
	if !workshop.Verified {
		return entities.Quote{}, pkg.NewForbiddenError("service request", in.RequestID).
			WithMessage("workshop is not verified and cannot submit quotes")
	}

	req, err := u.requests.GetByID(ctx, in.RequestID)
	if err != nil {
		return entities.Quote{}, err
	}
	if req.ID == "" {
		return entities.Quote{}, pkg.NewNotFoundError("service request", in.RequestID)
	}
	if !req.Status.Quotable() {
		return entities.Quote{}, pkg.NewInvalidStateError("service request", req.ID,
			string(entities.RequestStatusPublished)+" or "+string(entities.RequestStatusInQuotation), string(req.Status))
	}

	// The total is derived once, here, and never re-derived afterwards.
	total := in.LaborCost
	for _, p := range in.Parts {
		total = total.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:            uuid.NewString(),
		RequestID:     req.ID,
		WorkshopID:    workshop.ID,
		CategorySlug:  req.CategorySlug,
		Parts:         in.Parts,
		LaborCost:     in.LaborCost,
		Total:         total,
		EstimatedTime: strings.TrimSpace(in.EstimatedTime),
		Notes:         strings.TrimSpace(in.Notes),
		ValidUntil:    in.ValidUntil.UTC(),
		Status:        entities.QuoteStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	// First quote moves the request into quotation. A concurrent first quote
	// may have done it already; the conditional update then no-ops.
	if req.Status == entities.RequestStatusPublished {
		if _, err := u.requests.UpdateStatus(ctx, req.ID, entities.RequestStatusPublished, entities.RequestStatusInQuotation, workshop.ID); err != nil {
			log.Printf("[quote][usecase] request %s transition to in_quotation failed: %v", req.ID, err)
		}
	}

	emitNotification(ctx, u.notifySink, req.RiderID, req.ID,
		"New quote received",
		fmt.Sprintf("%s sent a quote of %s for your request", workshop.Name, created.Total.StringFixed(2)),
		"/requests/"+req.ID+"/quotes")

	return created, nil
}

func (u *QuoteUseCase) Accept(ctx context.Context, riderID, quoteID string) (entities.WorkOrder, error) {
	riderID = strings.TrimSpace(riderID)
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.WorkOrder{}, pkg.NewValidationError("INVALID_QUOTE_ID", "quote id is required")
	}

	quote, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if quote.ID == "" {
		return entities.WorkOrder{}, pkg.NewNotFoundError("quote", quoteID)
	}
	req, err := u.requests.GetByID(ctx, quote.RequestID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if req.ID == "" {
		return entities.WorkOrder{}, pkg.NewNotFoundError("service request", quote.RequestID)
	}
	if req.RiderID != riderID {
		return entities.WorkOrder{}, pkg.NewForbiddenError("service request", req.ID)
	}
	if quote.Status != entities.QuoteStatusPending {
		return entities.WorkOrder{}, pkg.NewInvalidStateError("quote", quote.ID, string(entities.QuoteStatusPending), string(quote.Status))
	}
	if !time.Now().UTC().Before(quote.ValidUntil) {
		return entities.WorkOrder{}, pkg.NewValidationError("QUOTE_EXPIRED", "quote validity window has passed; ask the workshop to resubmit")
	}
	if req.ActiveWorkOrderID != "" {
		return entities.WorkOrder{}, pkg.NewConflictError("service request", req.ID, "request already has a non-terminal work order")
	}
	if !req.Status.Quotable() {
		return entities.WorkOrder{}, pkg.NewInvalidStateError("service request", req.ID,
			string(entities.RequestStatusPublished)+" or "+string(entities.RequestStatusInQuotation), string(req.Status))
	}

	siblings, err := u.quotes.ListByRequestID(ctx, req.ID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	siblingIDs := make([]string, 0, len(siblings))
	for _, s := range siblings {
		if s.ID != quote.ID && s.Status == entities.QuoteStatusPending {
			siblingIDs = append(siblingIDs, s.ID)
		}
	}

	seq, err := u.orders.NextOrderNumber(ctx)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	now := time.Now().UTC()
	order := entities.WorkOrder{
		ID:          uuid.NewString(),
		OrderNumber: fmt.Sprintf("WO-%06d", seq),
		RequestID:   req.ID,
		QuoteID:     quote.ID,
		WorkshopID:  quote.WorkshopID,
		RiderID:     req.RiderID,
		Status:      entities.WorkOrderStatusPending,
		TotalAgreed: quote.Total,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	txn := interfaces.AcceptQuoteTransaction{
		Quote:           quote,
		SiblingQuoteIDs: siblingIDs,
		WorkOrder:       order,
		Request:         req,
		History: entities.StatusHistory{
			RequestID:  req.ID,
			FromStatus: req.Status,
			ToStatus:   entities.RequestStatusSelected,
			ActorID:    riderID,
			CreatedAt:  now,
		},
	}
	// All five effects commit together or not at all. A racing accept on the
	// same request loses the request-row condition and surfaces as a conflict.
	if err := u.quotes.AcceptTransaction(ctx, txn); err != nil {
		return entities.WorkOrder{}, err
	}

	u.notifyAcceptOutcome(ctx, req, quote, siblings, order)

	return order, nil
}

// notifyAcceptOutcome tells the winning and losing workshops, best effort,
// after the accept transaction has committed.
func (u *QuoteUseCase) notifyAcceptOutcome(ctx context.Context, req entities.ServiceRequest, winner entities.Quote, siblings []entities.Quote, order entities.WorkOrder) {
	if ws, err := u.workshops.GetByID(ctx, winner.WorkshopID); err != nil {
		log.Printf("[quote][usecase] winner workshop lookup failed workshop=%s err=%v", winner.WorkshopID, err)
	} else if ws.ID != "" {
		emitNotification(ctx, u.notifySink, ws.OwnerUserID, req.ID,
			"Quote accepted",
			fmt.Sprintf("Your quote was accepted; work order %s is ready to start", order.OrderNumber),
			"/orders/"+order.ID)
	}
	for _, s := range siblings {
		if s.ID == winner.ID || s.Status != entities.QuoteStatusPending {
			continue
		}
		ws, err := u.workshops.GetByID(ctx, s.WorkshopID)
		if err != nil {
			log.Printf("[quote][usecase] losing workshop lookup failed workshop=%s err=%v", s.WorkshopID, err)
			continue
		}
		if ws.ID == "" {
			continue
		}
		emitNotification(ctx, u.notifySink, ws.OwnerUserID, req.ID,
			"Quote not selected",
			"The rider accepted another quote for this request",
			"/requests/"+req.ID)
	}
}

func (u *QuoteUseCase) Reject(ctx context.Context, riderID, quoteID, reason string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	reason = strings.TrimSpace(reason)
	if quoteID == "" {
		return entities.Quote{}, pkg.NewValidationError("INVALID_QUOTE_ID", "quote id is required")
	}
	if reason == "" {
		return entities.Quote{}, pkg.NewValidationError("INVALID_REASON", "a rejection reason is required")
	}

	quote, req, err := u.loadOwnedQuote(ctx, riderID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if quote.Status != entities.QuoteStatusPending {
		return entities.Quote{}, pkg.NewInvalidStateError("quote", quote.ID, string(entities.QuoteStatusPending), string(quote.Status))
	}

	updated, err := u.quotes.UpdateStatus(ctx, quote.ID, entities.QuoteStatusPending, entities.QuoteStatusRejected, reason)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, pkg.NewConflictError("quote", quote.ID, "quote status changed concurrently")
	}

	if ws, err := u.workshops.GetByID(ctx, quote.WorkshopID); err == nil && ws.ID != "" {
		emitNotification(ctx, u.notifySink, ws.OwnerUserID, req.ID,
			"Quote rejected",
			"The rider rejected your quote: "+reason,
			"/requests/"+req.ID)
	}

	return updated, nil
}

func (u *QuoteUseCase) CounterOffer(ctx context.Context, riderID, quoteID, message string, suggestedAmount decimal.Decimal) (entities.CounterOffer, error) {
	quoteID = strings.TrimSpace(quoteID)
	message = strings.TrimSpace(message)
	if quoteID == "" {
		return entities.CounterOffer{}, pkg.NewValidationError("INVALID_QUOTE_ID", "quote id is required")
	}
	if message == "" {
		return entities.CounterOffer{}, pkg.NewValidationError("INVALID_MESSAGE", "a counter-offer message is required")
	}
	if suggestedAmount.Sign() <= 0 {
		return entities.CounterOffer{}, pkg.NewValidationError("INVALID_AMOUNT", "suggested amount must be positive")
	}

	quote, req, err := u.loadOwnedQuote(ctx, riderID, quoteID)
	if err != nil {
		return entities.CounterOffer{}, err
	}
	if quote.Status != entities.QuoteStatusPending {
		return entities.CounterOffer{}, pkg.NewInvalidStateError("quote", quote.ID, string(entities.QuoteStatusPending), string(quote.Status))
	}

	// Quotes are immutable: a counter-offer is an out-of-band annotation and
	// carries no price-binding semantics. The workshop must resubmit to change
	// its price.
	co := entities.CounterOffer{
		ID:              uuid.NewString(),
		QuoteID:         quote.ID,
		RiderID:         riderID,
		Message:         message,
		SuggestedAmount: suggestedAmount,
		CreatedAt:       time.Now().UTC(),
	}
	created, err := u.quotes.CreateCounterOffer(ctx, co)
	if err != nil {
		return entities.CounterOffer{}, err
	}

	if ws, err := u.workshops.GetByID(ctx, quote.WorkshopID); err == nil && ws.ID != "" {
		emitNotification(ctx, u.notifySink, ws.OwnerUserID, req.ID,
			"Counter-offer received",
			fmt.Sprintf("The rider suggested %s: %s", suggestedAmount.StringFixed(2), message),
			"/requests/"+req.ID)
	}

	return created, nil
}

func (u *QuoteUseCase) ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, pkg.NewValidationError("INVALID_REQUEST_ID", "request id is required")
	}
	return u.quotes.ListByRequestID(ctx, requestID)
}

// loadOwnedQuote resolves a quote and its parent request, enforcing that the
// caller is the request's owning rider.
func (u *QuoteUseCase) loadOwnedQuote(ctx context.Context, riderID, quoteID string) (entities.Quote, entities.ServiceRequest, error) {
	quote, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, entities.ServiceRequest{}, err
	}
	if quote.ID == "" {
		return entities.Quote{}, entities.ServiceRequest{}, pkg.NewNotFoundError("quote", quoteID)
	}
	req, err := u.requests.GetByID(ctx, quote.RequestID)
	if err != nil {
		return entities.Quote{}, entities.ServiceRequest{}, err
	}
	if req.ID == "" {
		return entities.Quote{}, entities.ServiceRequest{}, pkg.NewNotFoundError("service request", quote.RequestID)
	}
	if req.RiderID != strings.TrimSpace(riderID) {
		return entities.Quote{}, entities.ServiceRequest{}, pkg.NewForbiddenError("service request", req.ID)
	}
	return quote, req, nil
}
