package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"offertehub/internal/domain/entities"
	"offertehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLeadsTableName = "leads"
	leadsTenantIDIndex    = "tenant_id-index"
)

type leadItem struct {
	ID            string `dynamodbav:"id"`
	TenantID      string `dynamodbav:"tenant_id"`
	Domain        string `dynamodbav:"domain"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerEmail string `dynamodbav:"customer_email"`
	CustomerPhone string `dynamodbav:"customer_phone,omitempty"`

	// Request and Breakdown are stored as JSON blobs; DynamoDB never needs to
	// filter on their inner fields.
	Request   string `dynamodbav:"request"`
	Breakdown string `dynamodbav:"breakdown"`

	PhotoURLs   []string `dynamodbav:"photo_urls,omitempty"`
	PreviewURLs []string `dynamodbav:"preview_urls,omitempty"`
	PreviewNote string   `dynamodbav:"preview_note,omitempty"`

	Status          string `dynamodbav:"status"`
	AppointmentSlot string `dynamodbav:"appointment_slot,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, lead entities.Lead) (entities.Lead, error) {
	it, err := toLeadItem(lead)
	if err != nil {
		return entities.Lead{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return lead, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it)
}

func (r *LeadDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Lead, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(leadsTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	leads := make([]entities.Lead, 0, len(out.Items))
	for _, raw := range out.Items {
		var it leadItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		lead, err := fromLeadItem(it)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

func (r *LeadDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *LeadDynamoRepository) UpdateAppointment(ctx context.Context, id string, slot time.Time) (entities.Lead, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #appointment_slot = :slot, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":slot":       &types.AttributeValueMemberS{Value: slot.UTC().Format(time.RFC3339Nano)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#appointment_slot": "appointment_slot",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

func (r *LeadDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Lead, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}
	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it)
}

func toLeadItem(l entities.Lead) (leadItem, error) {
	req, err := json.Marshal(l.Request)
	if err != nil {
		return leadItem{}, err
	}
	breakdown, err := json.Marshal(l.Breakdown)
	if err != nil {
		return leadItem{}, err
	}

	it := leadItem{
		ID:            l.ID,
		TenantID:      l.TenantID,
		Domain:        string(l.Domain),
		CustomerName:  l.CustomerName,
		CustomerEmail: l.CustomerEmail,
		CustomerPhone: l.CustomerPhone,
		Request:       string(req),
		Breakdown:     string(breakdown),
		PhotoURLs:     l.PhotoURLs,
		PreviewURLs:   l.PreviewURLs,
		PreviewNote:   l.PreviewNote,
		Status:        string(l.Status),
		CreatedAt:     l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if l.AppointmentSlot != nil {
		it.AppointmentSlot = l.AppointmentSlot.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromLeadItem(it leadItem) (entities.Lead, error) {
	var req entities.QuoteRequest
	if it.Request != "" {
		if err := json.Unmarshal([]byte(it.Request), &req); err != nil {
			return entities.Lead{}, err
		}
	}
	var breakdown entities.PriceBreakdown
	if it.Breakdown != "" {
		if err := json.Unmarshal([]byte(it.Breakdown), &breakdown); err != nil {
			return entities.Lead{}, err
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	lead := entities.Lead{
		ID:            it.ID,
		TenantID:      it.TenantID,
		Domain:        entities.ProjectDomain(it.Domain),
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		CustomerPhone: it.CustomerPhone,
		Request:       req,
		Breakdown:     breakdown,
		PhotoURLs:     it.PhotoURLs,
		PreviewURLs:   it.PreviewURLs,
		PreviewNote:   it.PreviewNote,
		Status:        entities.LeadStatus(it.Status),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	if it.AppointmentSlot != "" {
		if slot, err := time.Parse(time.RFC3339Nano, it.AppointmentSlot); err == nil {
			slot = slot.UTC()
			lead.AppointmentSlot = &slot
		}
	}
	return lead, nil
}
