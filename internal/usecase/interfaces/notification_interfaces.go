package interfaces

import (
	"context"
	"motofix/internal/domain/entities"
)

// INotificationSink receives fire-and-forget notification records emitted by
// state transitions. Implementations must be failure-tolerant; callers log and
// ignore errors so a notification outage never blocks a business transition.
type INotificationSink interface {
	Emit(ctx context.Context, recipientID, relatedRequestID, title, body, link string) error
}

// INotificationRepository abstracts DynamoDB persistence for Notification.
// MarkRead and Delete are scoped to the recipient.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByRecipientID(ctx context.Context, recipientID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, recipientID string) (entities.Notification, error)
	Delete(ctx context.Context, id, recipientID string) error
}
