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

const defaultReviewsTableName = "reviews"

type reviewItem struct {
	WorkOrderID string `dynamodbav:"work_order_id"`
	ID          string `dynamodbav:"id"`
	RiderID     string `dynamodbav:"rider_id"`
	WorkshopID  string `dynamodbav:"workshop_id"`
	Rating      int    `dynamodbav:"rating"`
	Comment     string `dynamodbav:"comment,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ReviewDynamoRepository persists Review entities in DynamoDB.
//
// Table requirements:
//   - reviews: PK work_order_id (string)
//
// The work order id as PK plus a conditional put enforces one review per
// work order; a duplicate create returns an empty review.

type ReviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb *dynamodb.Client) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	av, err := attributevalue.MarshalMap(toReviewItem(rv))
	if err != nil {
		return entities.Review{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#wo)"),
		ExpressionAttributeNames: map[string]string{
			"#wo": "work_order_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Review{}, nil
		}
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewDynamoRepository) GetByWorkOrderID(ctx context.Context, workOrderID string) (entities.Review, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"work_order_id": &types.AttributeValueMemberS{Value: workOrderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Review{}, err
	}
	if len(out.Item) == 0 {
		return entities.Review{}, nil
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

func toReviewItem(rv entities.Review) reviewItem {
	return reviewItem{
		WorkOrderID: rv.WorkOrderID,
		ID:          rv.ID,
		RiderID:     rv.RiderID,
		WorkshopID:  rv.WorkshopID,
		Rating:      rv.Rating,
		Comment:     rv.Comment,
		CreatedAt:   timeToString(rv.CreatedAt),
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	return entities.Review{
		ID:          it.ID,
		WorkOrderID: it.WorkOrderID,
		RiderID:     it.RiderID,
		WorkshopID:  it.WorkshopID,
		Rating:      it.Rating,
		Comment:     it.Comment,
		CreatedAt:   timeFromString(it.CreatedAt),
	}
}
