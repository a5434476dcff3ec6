package interfaces

import (
	"context"
	"time"

	"motofix/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// Work orders are only ever created by IQuoteRepository.AcceptTransaction;
// this interface covers reads and the execution transitions. Start and Close
// are conditional single-row updates that return the zero value when the
// status condition fails. CompleteWithReceipt atomically marks the order
// completed and creates the receipt row.

type IWorkOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.WorkOrder, error)
	NextOrderNumber(ctx context.Context) (int64, error)
	Start(ctx context.Context, id string, startedAt time.Time, note string) (entities.WorkOrder, error)
	CompleteWithReceipt(ctx context.Context, order entities.WorkOrder, receipt entities.Receipt) (entities.WorkOrder, error)
	Close(ctx context.Context, id string, closedAt time.Time) (entities.WorkOrder, error)
}
