package interfaces

import (
	"context"
	"motofix/internal/domain/entities"
)

// AcceptQuoteTransaction carries every row touched by the quote-accept
// critical section. The repository must apply all of it atomically:
//
//  1. the target quote becomes accepted (condition: still pending)
//  2. every sibling quote becomes rejected
//  3. the work order is created (condition: id not taken)
//  4. the request moves to selected and records the active work order
//     (condition: request still quotable and no active work order yet)
//  5. the status-history row is appended
//
// A failed condition aborts the whole set; the repository reports it as a
// conflict so the second of two racing accepts loses cleanly.
type AcceptQuoteTransaction struct {
	Quote           entities.Quote
	SiblingQuoteIDs []string
	WorkOrder       entities.WorkOrder
	Request         entities.ServiceRequest
	History         entities.StatusHistory
}

// IQuoteRepository abstracts DynamoDB persistence for Quote.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error)
	ListByCategorySlug(ctx context.Context, slug string) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus, reason string) (entities.Quote, error)
	AcceptTransaction(ctx context.Context, txn AcceptQuoteTransaction) error
	CreateCounterOffer(ctx context.Context, co entities.CounterOffer) (entities.CounterOffer, error)
}
