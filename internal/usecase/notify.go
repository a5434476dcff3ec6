package usecase

import (
	"context"
	"log"

	"motofix/internal/usecase/interfaces"
)

// emitNotification sends a best-effort notification record. Failures are
// logged and swallowed: a notification outage must never roll back or fail
// the business transition that triggered it.
func emitNotification(ctx context.Context, sink interfaces.INotificationSink, recipientID, relatedRequestID, title, body, link string) {
	if sink == nil || recipientID == "" {
		return
	}
	if err := sink.Emit(ctx, recipientID, relatedRequestID, title, body, link); err != nil {
		log.Printf("[notify][usecase] emit failed recipient=%s request=%s title=%q err=%v", recipientID, relatedRequestID, title, err)
	}
}
