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

const defaultUsersTableName = "users"

type userItem struct {
	ID        string `dynamodbav:"id"`
	Email     string `dynamodbav:"email"`
	Name      string `dynamodbav:"name"`
	Role      string `dynamodbav:"role"`
	CreatedAt string `dynamodbav:"created_at"`
}

// UserDynamoRepository persists UserProfile entities in DynamoDB.
//
// Table requirements:
//   - users: PK id (string)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

// CreateIfAbsent provisions the profile on first sight. When a concurrent
// request already created it, the stored profile wins and is returned.
func (r *UserDynamoRepository) CreateIfAbsent(ctx context.Context, u entities.UserProfile) (entities.UserProfile, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.UserProfile{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.GetByID(ctx, u.ID)
		}
		return entities.UserProfile{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.UserProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserProfile{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.UserProfile) userItem {
	return userItem{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: timeToString(u.CreatedAt),
	}
}

func fromUserItem(it userItem) entities.UserProfile {
	return entities.UserProfile{
		ID:        it.ID,
		Email:     it.Email,
		Name:      it.Name,
		Role:      entities.Role(it.Role),
		CreatedAt: timeFromString(it.CreatedAt),
	}
}
