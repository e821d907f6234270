package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"offertehub/internal/domain/entities"
	"offertehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTenantsTableName = "tenants"

type tenantItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	ContactEmail string `dynamodbav:"contact_email,omitempty"`
	Active       bool   `dynamodbav:"active"`
	QuotaLimit   int    `dynamodbav:"quota_limit"`
	QuotaUsed    int    `dynamodbav:"quota_used"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// TenantDynamoRepository persists Tenant entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Quota consumption is a conditional update on quota_used so that concurrent
// submissions against the same tenant cannot oversell the limit.

type TenantDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITenantRepository = (*TenantDynamoRepository)(nil)

func NewTenantDynamoRepository(ddb *dynamodb.Client) *TenantDynamoRepository {
	return &TenantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TENANTS_TABLE", defaultTenantsTableName),
	}
}

func (r *TenantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Tenant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Tenant{}, nil
	}

	var it tenantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Tenant{}, err
	}
	return fromTenantItem(it), nil
}

// ConsumeQuota increments quota_used only while it is below quota_limit. The
// check and the increment are one DynamoDB conditional update, so two
// concurrent submissions can never both take the last slot.
func (r *TenantDynamoRepository) ConsumeQuota(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #quota_used < #quota_limit"),
		UpdateExpression:    aws.String("SET #quota_used = #quota_used + :one, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#quota_used":  "quota_used",
			"#quota_limit": "quota_limit",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *TenantDynamoRepository) ReleaseQuota(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #quota_used > :zero"),
		UpdateExpression:    aws.String("SET #quota_used = #quota_used - :one, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#quota_used": "quota_used",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero":       &types.AttributeValueMemberN{Value: "0"},
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
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

func (r *TenantDynamoRepository) AddQuota(ctx context.Context, id string, credits int) (entities.Tenant, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #quota_limit = #quota_limit + :credits, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#quota_limit": "quota_limit",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":credits":    &types.AttributeValueMemberN{Value: strconv.Itoa(credits)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Tenant{}, nil
		}
		return entities.Tenant{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Tenant{}, nil
	}
	var it tenantItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Tenant{}, err
	}
	return fromTenantItem(it), nil
}

func fromTenantItem(it tenantItem) entities.Tenant {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Tenant{
		ID:           it.ID,
		Name:         it.Name,
		ContactEmail: it.ContactEmail,
		Active:       it.Active,
		QuotaLimit:   it.QuotaLimit,
		QuotaUsed:    it.QuotaUsed,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
