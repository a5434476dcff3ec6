package interfaces

import (
	"context"
	"motofix/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for UserProfile.
//
// CreateIfAbsent provisions the profile with a conditional put and returns the
// already-stored profile when one exists, so projection is race-safe.

type IUserRepository interface {
	CreateIfAbsent(ctx context.Context, u entities.UserProfile) (entities.UserProfile, error)
	GetByID(ctx context.Context, id string) (entities.UserProfile, error)
}
