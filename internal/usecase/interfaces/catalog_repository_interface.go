package interfaces

import (
	"context"
	"motofix/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for the static service
// catalog. Put exists only for idempotent seeding at startup.

type ICatalogRepository interface {
	List(ctx context.Context) ([]entities.ServiceCategory, error)
	GetByID(ctx context.Context, id string) (entities.ServiceCategory, error)
	GetBySlug(ctx context.Context, slug string) (entities.ServiceCategory, error)
	Put(ctx context.Context, c entities.ServiceCategory) error
}
