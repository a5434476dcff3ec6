package repository

import (
	"context"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReceiptsTableName = "receipts"

type receiptItem struct {
	WorkOrderID     string `dynamodbav:"work_order_id"`
	ID              string `dynamodbav:"id"`
	TotalOriginal   string `dynamodbav:"total_original"`
	TotalChanges    string `dynamodbav:"total_changes"`
	TotalFinal      string `dynamodbav:"total_final"`
	ApprovedChanges int    `dynamodbav:"approved_changes"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// ReceiptDynamoRepository reads Receipt entities from DynamoDB.
//
// Table requirements:
//   - receipts: PK work_order_id (string)
//
// The 1:1 relation with work orders makes the work order id the natural PK;
// rows are written by WorkOrderDynamoRepository.CompleteWithReceipt.

type ReceiptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReceiptRepository = (*ReceiptDynamoRepository)(nil)

func NewReceiptDynamoRepository(ddb *dynamodb.Client) *ReceiptDynamoRepository {
	return &ReceiptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECEIPTS_TABLE", defaultReceiptsTableName),
	}
}

func (r *ReceiptDynamoRepository) GetByWorkOrderID(ctx context.Context, workOrderID string) (entities.Receipt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"work_order_id": &types.AttributeValueMemberS{Value: workOrderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Receipt{}, err
	}
	if len(out.Item) == 0 {
		return entities.Receipt{}, nil
	}

	var it receiptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Receipt{}, err
	}
	return fromReceiptItem(it), nil
}

func toReceiptItem(rc entities.Receipt) receiptItem {
	return receiptItem{
		WorkOrderID:     rc.WorkOrderID,
		ID:              rc.ID,
		TotalOriginal:   rc.TotalOriginal.String(),
		TotalChanges:    rc.TotalChanges.String(),
		TotalFinal:      rc.TotalFinal.String(),
		ApprovedChanges: rc.ApprovedChanges,
		CreatedAt:       timeToString(rc.CreatedAt),
	}
}

func fromReceiptItem(it receiptItem) entities.Receipt {
	return entities.Receipt{
		ID:              it.ID,
		WorkOrderID:     it.WorkOrderID,
		TotalOriginal:   decimalFromString(it.TotalOriginal),
		TotalChanges:    decimalFromString(it.TotalChanges),
		TotalFinal:      decimalFromString(it.TotalFinal),
		ApprovedChanges: it.ApprovedChanges,
		CreatedAt:       timeFromString(it.CreatedAt),
	}
}
