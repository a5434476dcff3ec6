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

const (
	defaultCategoriesTableName = "service_categories"
	categoriesSlugIndex        = "slug-index"
)

type diagnosticQuestionItem struct {
	ID      string   `dynamodbav:"id"`
	Text    string   `dynamodbav:"text"`
	Options []string `dynamodbav:"options,omitempty"`
}

type categoryItem struct {
	ID        string                   `dynamodbav:"id"`
	Slug      string                   `dynamodbav:"slug"`
	Name      string                   `dynamodbav:"name"`
	Questions []diagnosticQuestionItem `dynamodbav:"questions,omitempty"`
}

// CatalogDynamoRepository persists the static service catalog in DynamoDB.
//
// Table requirements:
//   - service_categories: PK id (string), GSI slug-index (PK: slug)
//
// The catalog is small reference data; List scans the whole table.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATEGORIES_TABLE", defaultCategoriesTableName),
	}
}

func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.ServiceCategory, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ServiceCategory, 0, len(out.Items))
	for _, raw := range out.Items {
		var it categoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCategoryItem(it))
	}
	return items, nil
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceCategory, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.ServiceCategory{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceCategory{}, nil
	}

	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceCategory{}, err
	}
	return fromCategoryItem(it), nil
}

func (r *CatalogDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.ServiceCategory, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(categoriesSlugIndex),
		KeyConditionExpression: aws.String("slug = :slug"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceCategory{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceCategory{}, nil
	}

	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ServiceCategory{}, err
	}
	return fromCategoryItem(it), nil
}

// Put overwrites unconditionally so the startup seeder stays idempotent.
func (r *CatalogDynamoRepository) Put(ctx context.Context, c entities.ServiceCategory) error {
	av, err := attributevalue.MarshalMap(toCategoryItem(c))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toCategoryItem(c entities.ServiceCategory) categoryItem {
	it := categoryItem{
		ID:   c.ID,
		Slug: c.Slug,
		Name: c.Name,
	}
	for _, q := range c.Questions {
		it.Questions = append(it.Questions, diagnosticQuestionItem{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
		})
	}
	return it
}

func fromCategoryItem(it categoryItem) entities.ServiceCategory {
	c := entities.ServiceCategory{
		ID:   it.ID,
		Slug: it.Slug,
		Name: it.Name,
	}
	for _, q := range it.Questions {
		c.Questions = append(c.Questions, entities.DiagnosticQuestion{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
		})
	}
	return c
}
