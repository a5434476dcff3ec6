package usecase

import (
	"context"
	"strings"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"
	"motofix/pkg"
)

// INotificationUseCase is the recipient-facing surface over the append-only
// notification records. No lifecycle beyond read/unread and delete.

type INotificationUseCase interface {
	List(ctx context.Context, recipientID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, recipientID, id string) (entities.Notification, error)
	Delete(ctx context.Context, recipientID, id string) error
}

type NotificationUseCase struct {
	notifications interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(notifications interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

func (u *NotificationUseCase) List(ctx context.Context, recipientID string) ([]entities.Notification, error) {
	recipientID = strings.TrimSpace(recipientID)
	if recipientID == "" {
		return nil, pkg.NewValidationError("INVALID_RECIPIENT", "recipient id is required")
	}
	return u.notifications.ListByRecipientID(ctx, recipientID)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, recipientID, id string) (entities.Notification, error) {
	recipientID = strings.TrimSpace(recipientID)
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, pkg.NewValidationError("INVALID_NOTIFICATION_ID", "notification id is required")
	}
	n, err := u.notifications.MarkRead(ctx, id, recipientID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, pkg.NewNotFoundError("notification", id)
	}
	return n, nil
}

func (u *NotificationUseCase) Delete(ctx context.Context, recipientID, id string) error {
	recipientID = strings.TrimSpace(recipientID)
	id = strings.TrimSpace(id)
	if id == "" {
		return pkg.NewValidationError("INVALID_NOTIFICATION_ID", "notification id is required")
	}
	return u.notifications.Delete(ctx, id, recipientID)
}
