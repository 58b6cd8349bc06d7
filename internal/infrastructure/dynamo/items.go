package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/institute-cms/internal/domain"
)

// ItemRepo provides typed DynamoDB operations for a content table keyed by a
// single string attribute. T must marshal that attribute via its dynamodbav tags.
type ItemRepo[T any] struct {
	client    API
	tableName string
	keyName   string
	entity    string
}

func NewItemRepo[T any](client API, tableName, keyName, entity string) *ItemRepo[T] {
	return &ItemRepo[T]{client: client, tableName: tableName, keyName: keyName, entity: entity}
}

func NewCourseRepo(client API, tableName string) *ItemRepo[domain.Course] {
	return NewItemRepo[domain.Course](client, tableName, "course_id", "course")
}

func NewCertificateRepo(client API, tableName string) *ItemRepo[domain.Certificate] {
	return NewItemRepo[domain.Certificate](client, tableName, "certificate_id", "certificate")
}

func NewPlacementRepo(client API, tableName string) *ItemRepo[domain.Placement] {
	return NewItemRepo[domain.Placement](client, tableName, "placement_id", "placement")
}

func NewBannerRepo(client API, tableName string) *ItemRepo[domain.Banner] {
	return NewItemRepo[domain.Banner](client, tableName, "banner_id", "banner")
}

func NewReviewRepo(client API, tableName string) *ItemRepo[domain.Review] {
	return NewItemRepo[domain.Review](client, tableName, "review_id", "review")
}

// Put creates or overwrites the item.
func (r *ItemRepo[T]) Put(ctx context.Context, item *T) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", r.entity, err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// Replace overwrites an existing item; it fails with domain.ErrNotFound if the
// item was deleted in the meantime.
func (r *ItemRepo[T]) Replace(ctx context.Context, item *T) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", r.entity, err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#k)"),
		ExpressionAttributeNames: map[string]string{"#k": r.keyName},
	})
	if isConditionFailed(err) {
		return fmt.Errorf("%s not found: %w", r.entity, domain.ErrNotFound)
	}
	return err
}

func (r *ItemRepo[T]) Get(ctx context.Context, id string) (*T, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            strKey(r.keyName, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("%s not found: %w", r.entity, domain.ErrNotFound)
	}
	var item T
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// List scans the whole table. Ordering is left to the caller.
func (r *ItemRepo[T]) List(ctx context.Context) ([]T, error) {
	p := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	items := []T{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

// Delete removes the item, failing with domain.ErrNotFound if it does not exist.
func (r *ItemRepo[T]) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      strKey(r.keyName, id),
		ConditionExpression:      aws.String("attribute_exists(#k)"),
		ExpressionAttributeNames: map[string]string{"#k": r.keyName},
	})
	if isConditionFailed(err) {
		return fmt.Errorf("%s not found: %w", r.entity, domain.ErrNotFound)
	}
	return err
}
