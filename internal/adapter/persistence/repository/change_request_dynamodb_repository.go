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
	defaultChangeRequestsTableName = "change_requests"
	changeRequestsWorkOrderIndex   = "work_order_id-index"
)

type changeRequestItem struct {
	ID             string `dynamodbav:"id"`
	WorkOrderID    string `dynamodbav:"work_order_id"`
	Description    string `dynamodbav:"description"`
	Justification  string `dynamodbav:"justification"`
	AdditionalCost string `dynamodbav:"additional_cost"`
	Status         string `dynamodbav:"status"`
	DeciderID      string `dynamodbav:"decider_id,omitempty"`
	DecidedAt      string `dynamodbav:"decided_at,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// ChangeRequestDynamoRepository persists ChangeRequest entities in DynamoDB.
//
// Table requirements:
//   - change_requests: PK id (string), GSI work_order_id-index (PK: work_order_id)

type ChangeRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChangeRequestRepository = (*ChangeRequestDynamoRepository)(nil)

func NewChangeRequestDynamoRepository(ddb *dynamodb.Client) *ChangeRequestDynamoRepository {
	return &ChangeRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHANGE_REQUESTS_TABLE", defaultChangeRequestsTableName),
	}
}

func (r *ChangeRequestDynamoRepository) Create(ctx context.Context, cr entities.ChangeRequest) (entities.ChangeRequest, error) {
	av, err := attributevalue.MarshalMap(toChangeRequestItem(cr))
	if err != nil {
		return entities.ChangeRequest{}, err
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
		return entities.ChangeRequest{}, err
	}
	return cr, nil
}

func (r *ChangeRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ChangeRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChangeRequest{}, nil
	}

	var it changeRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChangeRequest{}, err
	}
	return fromChangeRequestItem(it), nil
}

func (r *ChangeRequestDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.ChangeRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(changeRequestsWorkOrderIndex),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ChangeRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it changeRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromChangeRequestItem(it))
	}
	return items, nil
}

func (r *ChangeRequestDynamoRepository) Decide(ctx context.Context, id string, status entities.ChangeRequestStatus, deciderID string, decidedAt time.Time) (entities.ChangeRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:    aws.String("SET #status = :status, #decider_id = :decider, #decided_at = :decided_at"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#decider_id": "decider_id",
			"#decided_at": "decided_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.ChangeRequestStatusPending)},
			":decider":    &types.AttributeValueMemberS{Value: deciderID},
			":decided_at": &types.AttributeValueMemberS{Value: timeToString(decidedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ChangeRequest{}, nil
		}
		return entities.ChangeRequest{}, err
	}

	var it changeRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ChangeRequest{}, err
	}
	return fromChangeRequestItem(it), nil
}

func toChangeRequestItem(cr entities.ChangeRequest) changeRequestItem {
	return changeRequestItem{
		ID:             cr.ID,
		WorkOrderID:    cr.WorkOrderID,
		Description:    cr.Description,
		Justification:  cr.Justification,
		AdditionalCost: cr.AdditionalCost.String(),
		Status:         string(cr.Status),
		DeciderID:      cr.DeciderID,
		DecidedAt:      timeToString(cr.DecidedAt),
		CreatedAt:      timeToString(cr.CreatedAt),
	}
}

func fromChangeRequestItem(it changeRequestItem) entities.ChangeRequest {
	return entities.ChangeRequest{
		ID:             it.ID,
		WorkOrderID:    it.WorkOrderID,
		Description:    it.Description,
		Justification:  it.Justification,
		AdditionalCost: decimalFromString(it.AdditionalCost),
		Status:         entities.ChangeRequestStatus(it.Status),
		DeciderID:      it.DeciderID,
		DecidedAt:      timeFromString(it.DecidedAt),
		CreatedAt:      timeFromString(it.CreatedAt),
	}
}
