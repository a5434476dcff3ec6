package repository

import (
	"context"
	"errors"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsRecipientIndex   = "recipient_id-index"
)

type notificationItem struct {
	ID               string `dynamodbav:"id"`
	RecipientID      string `dynamodbav:"recipient_id"`
	RelatedRequestID string `dynamodbav:"related_request_id,omitempty"`
	Title            string `dynamodbav:"title"`
	Body             string `dynamodbav:"body"`
	Link             string `dynamodbav:"link,omitempty"`
	Read             bool   `dynamodbav:"read"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - notifications: PK id (string), GSI recipient_id-index (PK: recipient_id)
//
// MarkRead and Delete carry a recipient condition so a user can only touch
// their own rows.

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) ListByRecipientID(ctx context.Context, recipientID string) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsRecipientIndex),
		KeyConditionExpression: aws.String("recipient_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: recipientID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Notification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNotificationItem(it))
	}
	return items, nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id, recipientID string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:    aws.String("SET #read = :true"),
		ConditionExpression: aws.String("recipient_id = :rid"),
		ExpressionAttributeNames: map[string]string{
			"#read": "read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
			":rid":  &types.AttributeValueMemberS{Value: recipientID},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) Delete(ctx context.Context, id, recipientID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConditionExpression: aws.String("recipient_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: recipientID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:               n.ID,
		RecipientID:      n.RecipientID,
		RelatedRequestID: n.RelatedRequestID,
		Title:            n.Title,
		Body:             n.Body,
		Link:             n.Link,
		Read:             n.Read,
		CreatedAt:        timeToString(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:               it.ID,
		RecipientID:      it.RecipientID,
		RelatedRequestID: it.RelatedRequestID,
		Title:            it.Title,
		Body:             it.Body,
		Link:             it.Link,
		Read:             it.Read,
		CreatedAt:        timeFromString(it.CreatedAt),
	}
}
