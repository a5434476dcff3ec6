package interfaces

import (
	"context"
	"motofix/internal/domain/entities"
)

// IMotorcycleRepository abstracts DynamoDB persistence for Motorcycle.

type IMotorcycleRepository interface {
	Create(ctx context.Context, m entities.Motorcycle) (entities.Motorcycle, error)
	GetByID(ctx context.Context, id string) (entities.Motorcycle, error)
}
