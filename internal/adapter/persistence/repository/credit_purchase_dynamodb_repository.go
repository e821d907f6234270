package repository

import (
	"context"
	"strconv"
	"time"

	"offertehub/internal/domain/entities"
	"offertehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPurchasesTableName = "credit_purchases"
	purchasesTenantIDIndex    = "tenant_id-index"
)

type creditPurchaseItem struct {
	ID       string `dynamodbav:"id"`
	TenantID string `dynamodbav:"tenant_id"`
	Credits  int    `dynamodbav:"credits"`
	Amount   string `dynamodbav:"amount"`
	Status   string `dynamodbav:"status"`
	Date     string `dynamodbav:"date"`

	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// CreditPurchaseDynamoRepository persists CreditPurchase entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)

type CreditPurchaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICreditPurchaseRepository = (*CreditPurchaseDynamoRepository)(nil)

func NewCreditPurchaseDynamoRepository(ddb *dynamodb.Client) *CreditPurchaseDynamoRepository {
	return &CreditPurchaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CREDIT_PURCHASES_TABLE", defaultPurchasesTableName),
	}
}

func (r *CreditPurchaseDynamoRepository) Create(ctx context.Context, p entities.CreditPurchase) (entities.CreditPurchase, error) {
	it := toCreditPurchaseItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CreditPurchase{}, err
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
		return entities.CreditPurchase{}, err
	}
	return p, nil
}

func (r *CreditPurchaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.CreditPurchase, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CreditPurchase{}, err
	}
	if len(out.Item) == 0 {
		return entities.CreditPurchase{}, nil
	}

	var it creditPurchaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CreditPurchase{}, err
	}
	return fromCreditPurchaseItem(it), nil
}

func (r *CreditPurchaseDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.CreditPurchase, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(purchasesTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CreditPurchase, 0, len(out.Items))
	for _, raw := range out.Items {
		var it creditPurchaseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCreditPurchaseItem(it))
	}
	return items, nil
}

func toCreditPurchaseItem(p entities.CreditPurchase) creditPurchaseItem {
	return creditPurchaseItem{
		ID:           p.ID,
		TenantID:     p.TenantID,
		Credits:      p.Credits,
		Amount:       floatToString(p.Amount),
		Status:       string(p.Status),
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		MPPayload:    p.ProviderPayload,
		MPPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromCreditPurchaseItem(it creditPurchaseItem) entities.CreditPurchase {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.CreditPurchase{
		ID:                 it.ID,
		TenantID:           it.TenantID,
		Credits:            it.Credits,
		Amount:             amount,
		Status:             entities.PurchaseStatus(it.Status),
		Date:               dt,
		ProviderPayload:    it.MPPayload,
		ProviderPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
