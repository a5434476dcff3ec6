package usecase

import (
	"context"
	"strings"
	"time"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"
	"motofix/pkg"
)

// IIdentityUseCase projects an external authenticated principal onto an
// internal user profile, auto-provisioning on first sight. Every other
// component authorizes against the projected profile.

type IIdentityUseCase interface {
	ProjectPrincipal(ctx context.Context, principalID, email, name string, role entities.Role) (entities.UserProfile, error)
	GetByID(ctx context.Context, id string) (entities.UserProfile, error)
}

type IdentityUseCase struct {
	users interfaces.IUserRepository
}

var _ IIdentityUseCase = (*IdentityUseCase)(nil)

func NewIdentityUseCase(users interfaces.IUserRepository) *IdentityUseCase {
	return &IdentityUseCase{users: users}
}

func (u *IdentityUseCase) ProjectPrincipal(ctx context.Context, principalID, email, name string, role entities.Role) (entities.UserProfile, error) {
	principalID = strings.TrimSpace(principalID)
	if principalID == "" {
		return entities.UserProfile{}, pkg.NewValidationError("INVALID_PRINCIPAL", "principal id is required")
	}
	if role == "" {
		role = entities.RoleRider
	}
	if !role.Valid() {
		return entities.UserProfile{}, pkg.NewValidationError("INVALID_ROLE", "unknown role "+string(role))
	}

	profile := entities.UserProfile{
		ID:        principalID,
		Email:     strings.TrimSpace(email),
		Name:      strings.TrimSpace(name),
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	// CreateIfAbsent returns the stored profile when one already exists, so
	// concurrent first sights of the same principal converge.
	return u.users.CreateIfAbsent(ctx, profile)
}

func (u *IdentityUseCase) GetByID(ctx context.Context, id string) (entities.UserProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.UserProfile{}, pkg.NewValidationError("INVALID_USER_ID", "user id is required")
	}
	p, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if p.ID == "" {
		return entities.UserProfile{}, pkg.NewNotFoundError("user", id)
	}
	return p, nil
}
