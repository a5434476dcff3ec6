package interfaces

import (
	"context"
	"motofix/internal/domain/entities"
)

// IReceiptRepository reads receipts. Creation happens inside
// IWorkOrderRepository.CompleteWithReceipt so the receipt and the completed
// status commit together.

type IReceiptRepository interface {
	GetByWorkOrderID(ctx context.Context, workOrderID string) (entities.Receipt, error)
}
