package interfaces

import (
	"context"
	"time"

	"motofix/internal/domain/entities"
)

// IChangeRequestRepository abstracts DynamoDB persistence for ChangeRequest.
//
// Decide is a conditional update (status must still be pending) and returns
// the zero value when the condition fails.

type IChangeRequestRepository interface {
	Create(ctx context.Context, cr entities.ChangeRequest) (entities.ChangeRequest, error)
	GetByID(ctx context.Context, id string) (entities.ChangeRequest, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.ChangeRequest, error)
	Decide(ctx context.Context, id string, status entities.ChangeRequestStatus, deciderID string, decidedAt time.Time) (entities.ChangeRequest, error)
}
