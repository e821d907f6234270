package repository

import (
	"context"
	"encoding/json"
	"time"

	"offertehub/internal/domain/entities"
	"offertehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOverridesTableName = "pricing_overrides"

type pricingOverrideItem struct {
	ID        string `dynamodbav:"id"`
	TenantID  string `dynamodbav:"tenant_id"`
	Domain    string `dynamodbav:"domain"`
	Rates     string `dynamodbav:"rates"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PricingOverrideDynamoRepository persists tenant rate tables in DynamoDB.
//
// Table requirements:
//   - PK: id (string), "<tenant_id>#<domain>"
//
// One item per tenant and domain. The rates blob is the complete table; a
// lookup either yields a full replacement or nothing.

type PricingOverrideDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingOverrideRepository = (*PricingOverrideDynamoRepository)(nil)

func NewPricingOverrideDynamoRepository(ddb *dynamodb.Client) *PricingOverrideDynamoRepository {
	return &PricingOverrideDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_OVERRIDES_TABLE", defaultOverridesTableName),
	}
}

func overrideKey(tenantID string, domain entities.ProjectDomain) string {
	return tenantID + "#" + string(domain)
}

func (r *PricingOverrideDynamoRepository) Get(ctx context.Context, tenantID string, domain entities.ProjectDomain) (*entities.RateTable, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: overrideKey(tenantID, domain)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it pricingOverrideItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	var table entities.RateTable
	if err := json.Unmarshal([]byte(it.Rates), &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *PricingOverrideDynamoRepository) Put(ctx context.Context, tenantID string, domain entities.ProjectDomain, table entities.RateTable) error {
	rates, err := json.Marshal(table)
	if err != nil {
		return err
	}
	it := pricingOverrideItem{
		ID:        overrideKey(tenantID, domain),
		TenantID:  tenantID,
		Domain:    string(domain),
		Rates:     string(rates),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
