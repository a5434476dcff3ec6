package interfaces

import (
	"context"
	"motofix/internal/domain/entities"
)

// IReviewRepository abstracts DynamoDB persistence for Review. Create is
// conditional on the work order not having a review yet.

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	GetByWorkOrderID(ctx context.Context, workOrderID string) (entities.Review, error)
}
