package interfaces

import (
	"context"
	"motofix/internal/domain/entities"
)

// IWorkshopRepository abstracts DynamoDB persistence for Workshop.
//
// IncrementCompletedServices and AddRating are atomic counter updates.

type IWorkshopRepository interface {
	Create(ctx context.Context, w entities.Workshop) (entities.Workshop, error)
	GetByID(ctx context.Context, id string) (entities.Workshop, error)
	GetByOwnerUserID(ctx context.Context, ownerUserID string) (entities.Workshop, error)
	IncrementCompletedServices(ctx context.Context, id string) error
	AddRating(ctx context.Context, id string, rating int) error
}
