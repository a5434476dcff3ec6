package interfaces

import (
	"context"
	"motofix/internal/domain/entities"
)

// IRequestRepository abstracts DynamoDB persistence for ServiceRequest.
//
// UpdateStatus performs a conditional status transition (current status must
// equal `from`) and appends the StatusHistory row in the same transaction.
// It returns the zero value when the condition fails, mirroring a stale read.

type IRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus, categoryID, district string) ([]entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.RequestStatus, actorID string) (entities.ServiceRequest, error)
	ListHistory(ctx context.Context, requestID string) ([]entities.StatusHistory, error)
}
