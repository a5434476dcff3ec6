package usecase

import (
	"context"
	"errors"
	"testing"

	"motofix/internal/domain/entities"
	mock_interfaces "motofix/internal/usecase/interfaces/mocks"
	"motofix/pkg"

	"go.uber.org/mock/gomock"
)

func TestIdentityUseCase_ProjectPrincipal(t *testing.T) {
	t.Run("blank principal", func(t *testing.T) {
		uc := NewIdentityUseCase(nil)
		_, err := uc.ProjectPrincipal(context.Background(), "  ", "a@b.com", "Ana", entities.RoleRider)
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation}) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := NewIdentityUseCase(nil)
		_, err := uc.ProjectPrincipal(context.Background(), "user-1", "a@b.com", "Ana", "mechanic")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation, Code: "INVALID_ROLE"}) {
			t.Fatalf("expected INVALID_ROLE, got %v", err)
		}
	})

	t.Run("empty role defaults to rider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewIdentityUseCase(repo)

		repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.AssignableToTypeOf(entities.UserProfile{})).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) {
				if p.ID != "user-1" || p.Role != entities.RoleRider {
					t.Fatalf("unexpected profile: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.ProjectPrincipal(context.Background(), "user-1", "a@b.com", "Ana", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Role != entities.RoleRider {
			t.Fatalf("expected rider role, got %s", res.Role)
		}
	})

	t.Run("existing profile wins over the projection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewIdentityUseCase(repo)

		stored := entities.UserProfile{ID: "user-1", Email: "old@b.com", Name: "Ana", Role: entities.RoleWorkshop}
		repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(stored, nil)

		res, err := uc.ProjectPrincipal(context.Background(), "user-1", "new@b.com", "Ana", entities.RoleRider)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Role != entities.RoleWorkshop || res.Email != "old@b.com" {
			t.Fatalf("expected the stored profile, got %+v", res)
		}
	})
}

func TestIdentityUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewIdentityUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.UserProfile{}, nil)

		_, err := uc.GetByID(context.Background(), "user-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindNotFound}) {
			t.Fatalf("expected not_found error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewIdentityUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.UserProfile{ID: "user-1", Role: entities.RoleRider}, nil)

		res, err := uc.GetByID(context.Background(), " user-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "user-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
