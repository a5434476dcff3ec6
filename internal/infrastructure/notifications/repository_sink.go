package notifications

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// RepositorySink persists notifications as table rows. Push and email
// delivery is an external consumer's job; the lifecycle only records facts.
type RepositorySink struct {
	repo     interfaces.INotificationRepository
	mockMode bool
}

var _ interfaces.INotificationSink = (*RepositorySink)(nil)

func NewRepositorySink(repo interfaces.INotificationRepository) *RepositorySink {
	if isNotificationSinkMockEnabled() {
		log.Printf("[notification][sink] mock mode enabled")
		return &RepositorySink{mockMode: true}
	}
	return &RepositorySink{repo: repo}
}

func (s *RepositorySink) Emit(ctx context.Context, recipientID, relatedRequestID, title, body, link string) error {
	if s.mockMode {
		log.Printf("[notification][sink] mock emit recipient_id=%s title=%q", recipientID, title)
		return nil
	}

	n := entities.Notification{
		ID:               uuid.NewString(),
		RecipientID:      recipientID,
		RelatedRequestID: relatedRequestID,
		Title:            title,
		Body:             body,
		Link:             link,
		CreatedAt:        time.Now().UTC(),
	}

	if _, err := s.repo.Create(ctx, n); err != nil {
		log.Printf("[notification][sink] create failed recipient_id=%s err=%v", recipientID, err)
		return err
	}
	return nil
}

func isNotificationSinkMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFICATION_SINK_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
