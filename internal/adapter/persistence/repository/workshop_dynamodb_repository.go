package repository

import (
	"context"
	"strconv"

	"motofix/internal/domain/entities"
	"motofix/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkshopsTableName = "workshops"
	workshopsOwnerIndex       = "owner_user_id-index"
)

type workshopItem struct {
	ID                string `dynamodbav:"id"`
	OwnerUserID       string `dynamodbav:"owner_user_id"`
	Name              string `dynamodbav:"name"`
	District          string `dynamodbav:"district"`
	Verified          bool   `dynamodbav:"verified"`
	CompletedServices int    `dynamodbav:"completed_services"`
	RatingSum         int    `dynamodbav:"rating_sum"`
	RatingCount       int    `dynamodbav:"rating_count"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// WorkshopDynamoRepository persists Workshop entities in DynamoDB.
//
// Table requirements:
//   - workshops: PK id (string), GSI owner_user_id-index (PK: owner_user_id)
//
// The service and rating counters use ADD updates so concurrent closes never
// lose increments.

type WorkshopDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkshopRepository = (*WorkshopDynamoRepository)(nil)

func NewWorkshopDynamoRepository(ddb *dynamodb.Client) *WorkshopDynamoRepository {
	return &WorkshopDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKSHOPS_TABLE", defaultWorkshopsTableName),
	}
}

func (r *WorkshopDynamoRepository) Create(ctx context.Context, w entities.Workshop) (entities.Workshop, error) {
	av, err := attributevalue.MarshalMap(toWorkshopItem(w))
	if err != nil {
		return entities.Workshop{}, err
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
		return entities.Workshop{}, err
	}
	return w, nil
}

func (r *WorkshopDynamoRepository) GetByID(ctx context.Context, id string) (entities.Workshop, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Workshop{}, err
	}
	if len(out.Item) == 0 {
		return entities.Workshop{}, nil
	}

	var it workshopItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Workshop{}, err
	}
	return fromWorkshopItem(it), nil
}

func (r *WorkshopDynamoRepository) GetByOwnerUserID(ctx context.Context, ownerUserID string) (entities.Workshop, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workshopsOwnerIndex),
		KeyConditionExpression: aws.String("owner_user_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerUserID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Workshop{}, err
	}
	if len(out.Items) == 0 {
		return entities.Workshop{}, nil
	}

	var it workshopItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Workshop{}, err
	}
	return fromWorkshopItem(it), nil
}

func (r *WorkshopDynamoRepository) IncrementCompletedServices(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:    aws.String("ADD completed_services :one"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
	})
	return err
}

func (r *WorkshopDynamoRepository) AddRating(ctx context.Context, id string, rating int) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:    aws.String("ADD rating_sum :rating, rating_count :one"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rating": &types.AttributeValueMemberN{Value: strconv.Itoa(rating)},
			":one":    &types.AttributeValueMemberN{Value: "1"},
		},
	})
	return err
}

func toWorkshopItem(w entities.Workshop) workshopItem {
	return workshopItem{
		ID:                w.ID,
		OwnerUserID:       w.OwnerUserID,
		Name:              w.Name,
		District:          w.District,
		Verified:          w.Verified,
		CompletedServices: w.CompletedServices,
		RatingSum:         w.RatingSum,
		RatingCount:       w.RatingCount,
		CreatedAt:         timeToString(w.CreatedAt),
	}
}

func fromWorkshopItem(it workshopItem) entities.Workshop {
	return entities.Workshop{
		ID:                it.ID,
		OwnerUserID:       it.OwnerUserID,
		Name:              it.Name,
		District:          it.District,
		Verified:          it.Verified,
		CompletedServices: it.CompletedServices,
		RatingSum:         it.RatingSum,
		RatingCount:       it.RatingCount,
		CreatedAt:         timeFromString(it.CreatedAt),
	}
}
