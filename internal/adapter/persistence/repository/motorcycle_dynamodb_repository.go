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

const defaultMotorcyclesTableName = "motorcycles"

type motorcycleItem struct {
	ID        string `dynamodbav:"id"`
	OwnerID   string `dynamodbav:"owner_id"`
	Brand     string `dynamodbav:"brand"`
	Model     string `dynamodbav:"model"`
	Year      int    `dynamodbav:"year"`
	Plate     string `dynamodbav:"plate"`
	CreatedAt string `dynamodbav:"created_at"`
}

// MotorcycleDynamoRepository persists Motorcycle entities in DynamoDB.
//
// Table requirements:
//   - motorcycles: PK id (string)

type MotorcycleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMotorcycleRepository = (*MotorcycleDynamoRepository)(nil)

func NewMotorcycleDynamoRepository(ddb *dynamodb.Client) *MotorcycleDynamoRepository {
	return &MotorcycleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MOTORCYCLES_TABLE", defaultMotorcyclesTableName),
	}
}

func (r *MotorcycleDynamoRepository) Create(ctx context.Context, m entities.Motorcycle) (entities.Motorcycle, error) {
	av, err := attributevalue.MarshalMap(toMotorcycleItem(m))
	if err != nil {
		return entities.Motorcycle{}, err
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
		return entities.Motorcycle{}, err
	}
	return m, nil
}

func (r *MotorcycleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Motorcycle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Motorcycle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Motorcycle{}, nil
	}

	var it motorcycleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Motorcycle{}, err
	}
	return fromMotorcycleItem(it), nil
}

func toMotorcycleItem(m entities.Motorcycle) motorcycleItem {
	return motorcycleItem{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Brand:     m.Brand,
		Model:     m.Model,
		Year:      m.Year,
		Plate:     m.Plate,
		CreatedAt: timeToString(m.CreatedAt),
	}
}

func fromMotorcycleItem(it motorcycleItem) entities.Motorcycle {
	return entities.Motorcycle{
		ID:        it.ID,
		OwnerID:   it.OwnerID,
		Brand:     it.Brand,
		Model:     it.Model,
		Year:      it.Year,
		Plate:     it.Plate,
		CreatedAt: timeFromString(it.CreatedAt),
	}
}
