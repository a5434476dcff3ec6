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

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		_, err := uc.MarkRead(context.Background(), "user-1", "  ")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation}) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("another recipient's notification reads as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().MarkRead(gomock.Any(), "n-1", "user-1").Return(entities.Notification{}, nil)

		_, err := uc.MarkRead(context.Background(), "user-1", "n-1")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindNotFound}) {
			t.Fatalf("expected not_found error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().MarkRead(gomock.Any(), "n-1", "user-1").
			Return(entities.Notification{ID: "n-1", RecipientID: "user-1", Read: true}, nil)

		n, err := uc.MarkRead(context.Background(), "user-1", " n-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !n.Read {
			t.Fatalf("expected read notification, got %+v", n)
		}
	})
}

func TestNotificationUseCase_List(t *testing.T) {
	t.Run("blank recipient", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		_, err := uc.List(context.Background(), " ")
		if !errors.Is(err, &pkg.AppError{Kind: pkg.ErrorKindValidation}) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().ListByRecipientID(gomock.Any(), "user-1").
			Return([]entities.Notification{{ID: "n-1"}, {ID: "n-2"}}, nil)

		out, err := uc.List(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(out))
		}
	})
}
