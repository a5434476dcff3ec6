package repository

import (
	"context"
	"errors"
	"time"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkOrdersTableName = "work_orders"
	defaultCountersTableName   = "counters"
	workOrdersRequestIDIndex   = "request_id-index"
	orderNumberCounterKey      = "work_order_number"
)

type workOrderItem struct {
	ID          string `dynamodbav:"id"`
	OrderNumber string `dynamodbav:"order_number"`
	RequestID   string `dynamodbav:"request_id"`
	QuoteID     string `dynamodbav:"quote_id"`
	WorkshopID  string `dynamodbav:"workshop_id"`
	RiderID     string `dynamodbav:"rider_id"`
	Status      string `dynamodbav:"status"`
	TotalAgreed string `dynamodbav:"total_agreed"`
	TotalFinal  string `dynamodbav:"total_final,omitempty"`
	StartNote   string `dynamodbav:"start_note,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	StartedAt   string `dynamodbav:"started_at,omitempty"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
	ClosedAt    string `dynamodbav:"closed_at,omitempty"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - work_orders: PK id (string), GSI request_id-index (PK: request_id)
//   - counters:    PK name (string), numeric attribute seq
//
// Creation happens exclusively inside the quote-accept transaction (see
// QuoteDynamoRepository.AcceptTransaction); this repository owns the
// execution transitions and the order-number counter.

type WorkOrderDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
	receiptsTable string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		receiptsTable: getenvDefault("RECEIPTS_TABLE", defaultReceiptsTableName),
	}
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.WorkOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workOrdersRequestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

// NextOrderNumber allocates the next human-readable sequence number with an
// atomic counter. A number burned by a later transaction abort just leaves a
// gap, never a duplicate.
func (r *WorkOrderDynamoRepository) NextOrderNumber(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: orderNumberCounterKey},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	var seq int64
	if err := attributevalue.Unmarshal(out.Attributes["seq"], &seq); err != nil {
		return 0, err
	}
	return seq, nil
}

func (r *WorkOrderDynamoRepository) Start(ctx context.Context, id string, startedAt time.Time, note string) (entities.WorkOrder, error) {
	expr := "SET #status = :in_service, #started_at = :started_at, #updated_at = :now"
	names := map[string]string{
		"#status":     "status",
		"#started_at": "started_at",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":in_service": &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusInService)},
		":pending":    &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusPending)},
		":started_at": &types.AttributeValueMemberS{Value: timeToString(startedAt)},
		":now":        &types.AttributeValueMemberS{Value: timeToString(startedAt)},
	}
	if note != "" {
		expr += ", #start_note = :note"
		names["#start_note"] = "start_note"
		values[":note"] = &types.AttributeValueMemberS{Value: note}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

// CompleteWithReceipt marks the order completed and creates the receipt in
// one transaction, so a completed order without a receipt (or vice versa)
// cannot exist.
func (r *WorkOrderDynamoRepository) CompleteWithReceipt(ctx context.Context, order entities.WorkOrder, receipt entities.Receipt) (entities.WorkOrder, error) {
	receiptItem, err := attributevalue.MarshalMap(toReceiptItem(receipt))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(r.tableName),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: order.ID}},
					UpdateExpression:    aws.String("SET #status = :completed, #total_final = :total_final, #completed_at = :completed_at, #updated_at = :now"),
					ConditionExpression: aws.String("#status = :in_service"),
					ExpressionAttributeNames: map[string]string{
						"#status":       "status",
						"#total_final":  "total_final",
						"#completed_at": "completed_at",
						"#updated_at":   "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":completed":    &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusCompleted)},
						":in_service":   &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusInService)},
						":total_final":  &types.AttributeValueMemberS{Value: order.TotalFinal.String()},
						":completed_at": &types.AttributeValueMemberS{Value: timeToString(order.CompletedAt)},
						":now":          &types.AttributeValueMemberS{Value: timeToString(order.CompletedAt)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.receiptsTable),
					Item:                     receiptItem,
					ConditionExpression:      aws.String("attribute_not_exists(#wo)"),
					ExpressionAttributeNames: map[string]string{"#wo": "work_order_id"},
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionalCancel(err) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	order.UpdatedAt = order.CompletedAt
	return order, nil
}

func (r *WorkOrderDynamoRepository) Close(ctx context.Context, id string, closedAt time.Time) (entities.WorkOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:    aws.String("SET #status = :closed, #closed_at = :closed_at, #updated_at = :now"),
		ConditionExpression: aws.String("#status = :completed"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#closed_at":  "closed_at",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":closed":    &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusClosed)},
			":completed": &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusCompleted)},
			":closed_at": &types.AttributeValueMemberS{Value: timeToString(closedAt)},
			":now":       &types.AttributeValueMemberS{Value: timeToString(closedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func toWorkOrderItem(o entities.WorkOrder) workOrderItem {
	it := workOrderItem{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		RequestID:   o.RequestID,
		QuoteID:     o.QuoteID,
		WorkshopID:  o.WorkshopID,
		RiderID:     o.RiderID,
		Status:      string(o.Status),
		TotalAgreed: o.TotalAgreed.String(),
		StartNote:   o.StartNote,
		CreatedAt:   timeToString(o.CreatedAt),
		StartedAt:   timeToString(o.StartedAt),
		CompletedAt: timeToString(o.CompletedAt),
		ClosedAt:    timeToString(o.ClosedAt),
		UpdatedAt:   timeToString(o.UpdatedAt),
	}
	if !o.TotalFinal.IsZero() || o.Status == entities.WorkOrderStatusCompleted || o.Status == entities.WorkOrderStatusClosed {
		it.TotalFinal = o.TotalFinal.String()
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	return entities.WorkOrder{
		ID:          it.ID,
		OrderNumber: it.OrderNumber,
		RequestID:   it.RequestID,
		QuoteID:     it.QuoteID,
		WorkshopID:  it.WorkshopID,
		RiderID:     it.RiderID,
		Status:      entities.WorkOrderStatus(it.Status),
		TotalAgreed: decimalFromString(it.TotalAgreed),
		TotalFinal:  decimalFromString(it.TotalFinal),
		StartNote:   it.StartNote,
		CreatedAt:   timeFromString(it.CreatedAt),
		StartedAt:   timeFromString(it.StartedAt),
		CompletedAt: timeFromString(it.CompletedAt),
		ClosedAt:    timeFromString(it.ClosedAt),
		UpdatedAt:   timeFromString(it.UpdatedAt),
	}
}
