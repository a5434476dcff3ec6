package repository

import (
	"context"
	"errors"
	"fmt"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultRequestsTableName = "service_requests"
	defaultHistoryTableName  = "status_history"
	requestsStatusIndex      = "status-index"
)

type serviceRequestItem struct {
	ID                string   `dynamodbav:"id"`
	RiderID           string   `dynamodbav:"rider_id"`
	MotorcycleID      string   `dynamodbav:"motorcycle_id"`
	CategoryID        string   `dynamodbav:"category_id"`
	CategorySlug      string   `dynamodbav:"category_slug"`
	Description       string   `dynamodbav:"description"`
	District          string   `dynamodbav:"district,omitempty"`
	PhotoURLs         []string `dynamodbav:"photo_urls,omitempty"`
	Urgency           string   `dynamodbav:"urgency"`
	Status            string   `dynamodbav:"status"`
	ActiveWorkOrderID string   `dynamodbav:"active_work_order_id,omitempty"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
}

type statusHistoryItem struct {
	RequestID  string `dynamodbav:"request_id"`
	SortKey    string `dynamodbav:"sort_key"`
	FromStatus string `dynamodbav:"from_status"`
	ToStatus   string `dynamodbav:"to_status"`
	ActorID    string `dynamodbav:"actor_id"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// RequestDynamoRepository persists ServiceRequest entities in DynamoDB.
//
// Table requirements:
//   - service_requests: PK id (string), GSI status-index (PK: status)
//   - status_history:   PK request_id (string), SK sort_key (string)
//
// Every status transition writes the request row and the append-only history
// row in one TransactWriteItems call, conditioned on the expected current
// status, so the audit trail never diverges from the entity.

type RequestDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	historyTable string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
		historyTable: getenvDefault("STATUS_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	av, err := attributevalue.MarshalMap(toServiceRequestItem(req))
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	history := entities.StatusHistory{
		RequestID:  req.ID,
		FromStatus: entities.RequestStatusDraft,
		ToStatus:   req.Status,
		ActorID:    req.RiderID,
		CreatedAt:  req.CreatedAt,
	}
	hv, err := attributevalue.MarshalMap(toStatusHistoryItem(history))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.historyTable),
					Item:      hv,
				},
			},
		},
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *RequestDynamoRepository) ListByStatus(ctx context.Context, status entities.RequestStatus, categoryID, district string) ([]entities.ServiceRequest, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	}
	filter := ""
	if categoryID != "" {
		filter = "category_id = :category_id"
		in.ExpressionAttributeValues[":category_id"] = &types.AttributeValueMemberS{Value: categoryID}
	}
	if district != "" {
		if filter != "" {
			filter += " AND "
		}
		filter += "district = :district"
		in.ExpressionAttributeValues[":district"] = &types.AttributeValueMemberS{Value: district}
	}
	if filter != "" {
		in.FilterExpression = aws.String(filter)
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.ServiceRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceRequestItem(it))
	}
	return items, nil
}

func (r *RequestDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.RequestStatus, actorID string) (entities.ServiceRequest, error) {
	now := timeToString(nowUTC())
	history := entities.StatusHistory{
		RequestID:  id,
		FromStatus: from,
		ToStatus:   to,
		ActorID:    actorID,
		CreatedAt:  timeFromString(now),
	}
	hv, err := attributevalue.MarshalMap(toStatusHistoryItem(history))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(r.tableName),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
					UpdateExpression:    aws.String("SET #status = :to, #updated_at = :now"),
					ConditionExpression: aws.String("#status = :from"),
					ExpressionAttributeNames: map[string]string{
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":to":   &types.AttributeValueMemberS{Value: string(to)},
						":from": &types.AttributeValueMemberS{Value: string(from)},
						":now":  &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.historyTable),
					Item:      hv,
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionalCancel(err) {
			return entities.ServiceRequest{}, nil
		}
		return entities.ServiceRequest{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *RequestDynamoRepository) ListHistory(ctx context.Context, requestID string) ([]entities.StatusHistory, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.historyTable),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.StatusHistory, 0, len(out.Items))
	for _, raw := range out.Items {
		var it statusHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromStatusHistoryItem(it))
	}
	return items, nil
}

// isTransactionConditionalCancel reports whether a TransactWriteItems failure
// was caused by a condition check, i.e. a stale precondition rather than an
// infrastructure fault.
func isTransactionConditionalCancel(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toServiceRequestItem(r entities.ServiceRequest) serviceRequestItem {
	return serviceRequestItem{
		ID:                r.ID,
		RiderID:           r.RiderID,
		MotorcycleID:      r.MotorcycleID,
		CategoryID:        r.CategoryID,
		CategorySlug:      r.CategorySlug,
		Description:       r.Description,
		District:          r.District,
		PhotoURLs:         r.PhotoURLs,
		Urgency:           string(r.Urgency),
		Status:            string(r.Status),
		ActiveWorkOrderID: r.ActiveWorkOrderID,
		CreatedAt:         timeToString(r.CreatedAt),
		UpdatedAt:         timeToString(r.UpdatedAt),
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:                it.ID,
		RiderID:           it.RiderID,
		MotorcycleID:      it.MotorcycleID,
		CategoryID:        it.CategoryID,
		CategorySlug:      it.CategorySlug,
		Description:       it.Description,
		District:          it.District,
		PhotoURLs:         it.PhotoURLs,
		Urgency:           entities.RequestUrgency(it.Urgency),
		Status:            entities.RequestStatus(it.Status),
		ActiveWorkOrderID: it.ActiveWorkOrderID,
		CreatedAt:         timeFromString(it.CreatedAt),
		UpdatedAt:         timeFromString(it.UpdatedAt),
	}
}

func toStatusHistoryItem(h entities.StatusHistory) statusHistoryItem {
	sortKey := h.SortKey
	if sortKey == "" {
		// Timestamp-first sort key keeps history rows in transition order.
		sortKey = fmt.Sprintf("%s#%s", timeToString(h.CreatedAt), uuid.NewString())
	}
	return statusHistoryItem{
		RequestID:  h.RequestID,
		SortKey:    sortKey,
		FromStatus: string(h.FromStatus),
		ToStatus:   string(h.ToStatus),
		ActorID:    h.ActorID,
		CreatedAt:  timeToString(h.CreatedAt),
	}
}

func fromStatusHistoryItem(it statusHistoryItem) entities.StatusHistory {
	return entities.StatusHistory{
		RequestID:  it.RequestID,
		SortKey:    it.SortKey,
		FromStatus: entities.RequestStatus(it.FromStatus),
		ToStatus:   entities.RequestStatus(it.ToStatus),
		ActorID:    it.ActorID,
		CreatedAt:  timeFromString(it.CreatedAt),
	}
}
