package repository

import (
	"context"
	"errors"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"
	"motofix/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName        = "quotes"
	defaultCounterOffersTableName = "counter_offers"
	quotesRequestIDIndex          = "request_id-index"
	quotesCategorySlugIndex       = "category_slug-index"
)

type quotePartItemRecord struct {
	Name      string `dynamodbav:"name"`
	Source    string `dynamodbav:"source"`
	UnitPrice string `dynamodbav:"unit_price"`
	Quantity  int    `dynamodbav:"quantity"`
}

type quoteItem struct {
	ID              string                `dynamodbav:"id"`
	RequestID       string                `dynamodbav:"request_id"`
	WorkshopID      string                `dynamodbav:"workshop_id"`
	CategorySlug    string                `dynamodbav:"category_slug"`
	Parts           []quotePartItemRecord `dynamodbav:"parts"`
	LaborCost       string                `dynamodbav:"labor_cost"`
	Total           string                `dynamodbav:"total"`
	EstimatedTime   string                `dynamodbav:"estimated_time,omitempty"`
	Notes           string                `dynamodbav:"notes,omitempty"`
	ValidUntil      string                `dynamodbav:"valid_until"`
	Status          string                `dynamodbav:"status"`
	RejectionReason string                `dynamodbav:"rejection_reason,omitempty"`
	CreatedAt       string                `dynamodbav:"created_at"`
	UpdatedAt       string                `dynamodbav:"updated_at"`
}

type counterOfferItem struct {
	ID              string `dynamodbav:"id"`
	QuoteID         string `dynamodbav:"quote_id"`
	RiderID         string `dynamodbav:"rider_id"`
	Message         string `dynamodbav:"message"`
	SuggestedAmount string `dynamodbav:"suggested_amount"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - quotes: PK id (string)
//   - GSI request_id-index (PK: request_id)
//   - GSI category_slug-index (PK: category_slug)
//   - counter_offers: PK id (string)
//
// AcceptTransaction is the one multi-row critical section of the system: it
// commits the accepted quote, the sibling rejections, the new work order, the
// request transition and the history row as one TransactWriteItems call. The
// request-row condition (still quotable, no active work order) is what makes
// the second of two racing accepts fail instead of double-creating orders.

type QuoteDynamoRepository struct {
	ddb                *dynamodb.Client
	tableName          string
	counterOffersTable string
	requestsTable      string
	workOrdersTable    string
	historyTable       string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:                ddb,
		tableName:          getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		counterOffersTable: getenvDefault("COUNTER_OFFERS_TABLE", defaultCounterOffersTableName),
		requestsTable:      getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
		workOrdersTable:    getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
		historyTable:       getenvDefault("STATUS_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error) {
	return r.queryIndex(ctx, quotesRequestIDIndex, "request_id", requestID)
}

func (r *QuoteDynamoRepository) ListByCategorySlug(ctx context.Context, slug string) ([]entities.Quote, error) {
	return r.queryIndex(ctx, quotesCategorySlugIndex, "category_slug", slug)
}

func (r *QuoteDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(key + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteItem(it))
	}
	return items, nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus, reason string) (entities.Quote, error) {
	expr := "SET #status = :to, #updated_at = :now"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":from": &types.AttributeValueMemberS{Value: string(from)},
		":now":  &types.AttributeValueMemberS{Value: timeToString(nowUTC())},
	}
	if reason != "" {
		expr += ", #rejection_reason = :reason"
		names["#rejection_reason"] = "rejection_reason"
		values[":reason"] = &types.AttributeValueMemberS{Value: reason}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("#status = :from"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) AcceptTransaction(ctx context.Context, txn interfaces.AcceptQuoteTransaction) error {
	now := timeToString(nowUTC())

	orderItem, err := attributevalue.MarshalMap(toWorkOrderItem(txn.WorkOrder))
	if err != nil {
		return err
	}
	historyItem, err := attributevalue.MarshalMap(toStatusHistoryItem(txn.History))
	if err != nil {
		return err
	}

	items := make([]types.TransactWriteItem, 0, len(txn.SiblingQuoteIDs)+4)

	// 1. Target quote becomes accepted, only if still pending.
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(r.tableName),
			Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: txn.Quote.ID}},
			UpdateExpression:    aws.String("SET #status = :accepted, #updated_at = :now"),
			ConditionExpression: aws.String("#status = :pending"),
			ExpressionAttributeNames: map[string]string{
				"#status":     "status",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":accepted": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusAccepted)},
				":pending":  &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPending)},
				":now":      &types.AttributeValueMemberS{Value: now},
			},
		},
	})

	// 2. Every sibling is auto-rejected, no reason recorded.
	for _, siblingID := range txn.SiblingQuoteIDs {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.tableName),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: siblingID}},
				UpdateExpression:    aws.String("SET #status = :rejected, #updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":rejected": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusRejected)},
					":now":      &types.AttributeValueMemberS{Value: now},
				},
			},
		})
	}

	// 3. The work order is born, exactly once.
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(r.workOrdersTable),
			Item:                     orderItem,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	})

	// 4. The request moves to selected and pins the active work order. This
	// condition is the serialization point for concurrent accepts.
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(r.requestsTable),
			Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: txn.Request.ID}},
			UpdateExpression:    aws.String("SET #status = :selected, #active = :order_id, #updated_at = :now"),
			ConditionExpression: aws.String("(#status = :published OR #status = :in_quotation) AND attribute_not_exists(#active)"),
			ExpressionAttributeNames: map[string]string{
				"#status":     "status",
				"#active":     "active_work_order_id",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":selected":     &types.AttributeValueMemberS{Value: string(entities.RequestStatusSelected)},
				":published":    &types.AttributeValueMemberS{Value: string(entities.RequestStatusPublished)},
				":in_quotation": &types.AttributeValueMemberS{Value: string(entities.RequestStatusInQuotation)},
				":order_id":     &types.AttributeValueMemberS{Value: txn.WorkOrder.ID},
				":now":          &types.AttributeValueMemberS{Value: now},
			},
		},
	})

	// 5. Audit trail.
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(r.historyTable),
			Item:      historyItem,
		},
	})

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isTransactionConditionalCancel(err) {
			return pkg.NewConflictError("service request", txn.Request.ID, "request already has a non-terminal work order")
		}
		return err
	}
	return nil
}

func (r *QuoteDynamoRepository) CreateCounterOffer(ctx context.Context, co entities.CounterOffer) (entities.CounterOffer, error) {
	av, err := attributevalue.MarshalMap(counterOfferItem{
		ID:              co.ID,
		QuoteID:         co.QuoteID,
		RiderID:         co.RiderID,
		Message:         co.Message,
		SuggestedAmount: co.SuggestedAmount.String(),
		CreatedAt:       timeToString(co.CreatedAt),
	})
	if err != nil {
		return entities.CounterOffer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.counterOffersTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CounterOffer{}, err
	}
	return co, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	parts := make([]quotePartItemRecord, 0, len(q.Parts))
	for _, p := range q.Parts {
		parts = append(parts, quotePartItemRecord{
			Name:      p.Name,
			Source:    string(p.Source),
			UnitPrice: p.UnitPrice.String(),
			Quantity:  p.Quantity,
		})
	}
	return quoteItem{
		ID:              q.ID,
		RequestID:       q.RequestID,
		WorkshopID:      q.WorkshopID,
		CategorySlug:    q.CategorySlug,
		Parts:           parts,
		LaborCost:       q.LaborCost.String(),
		Total:           q.Total.String(),
		EstimatedTime:   q.EstimatedTime,
		Notes:           q.Notes,
		ValidUntil:      timeToString(q.ValidUntil),
		Status:          string(q.Status),
		RejectionReason: q.RejectionReason,
		CreatedAt:       timeToString(q.CreatedAt),
		UpdatedAt:       timeToString(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	parts := make([]entities.QuotePartItem, 0, len(it.Parts))
	for _, p := range it.Parts {
		parts = append(parts, entities.QuotePartItem{
			Name:      p.Name,
			Source:    entities.PartSource(p.Source),
			UnitPrice: decimalFromString(p.UnitPrice),
			Quantity:  p.Quantity,
		})
	}
	return entities.Quote{
		ID:              it.ID,
		RequestID:       it.RequestID,
		WorkshopID:      it.WorkshopID,
		CategorySlug:    it.CategorySlug,
		Parts:           parts,
		LaborCost:       decimalFromString(it.LaborCost),
		Total:           decimalFromString(it.Total),
		EstimatedTime:   it.EstimatedTime,
		Notes:           it.Notes,
		ValidUntil:      timeFromString(it.ValidUntil),
		Status:          entities.QuoteStatus(it.Status),
		RejectionReason: it.RejectionReason,
		CreatedAt:       timeFromString(it.CreatedAt),
		UpdatedAt:       timeFromString(it.UpdatedAt),
	}
}
