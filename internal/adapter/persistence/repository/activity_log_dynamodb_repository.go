package repository

import (
	"context"
	"time"

	"offertehub/internal/domain/entities"
	"offertehub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const defaultActivityLogsTableName = "activity_logs"

type activityLogItem struct {
	ID         string `dynamodbav:"id"`
	EntityType string `dynamodbav:"entity_type"`
	EntityID   string `dynamodbav:"entity_id"`
	Action     string `dynamodbav:"action"`
	Content    string `dynamodbav:"content,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ActivityLogDynamoRepository appends audit entries to DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ActivityLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActivityLogRepository = (*ActivityLogDynamoRepository)(nil)

func NewActivityLogDynamoRepository(ddb *dynamodb.Client) *ActivityLogDynamoRepository {
	return &ActivityLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVITY_LOGS_TABLE", defaultActivityLogsTableName),
	}
}

func (r *ActivityLogDynamoRepository) Append(ctx context.Context, entry entities.ActivityLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	it := activityLogItem{
		ID:         entry.ID,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Action:     entry.Action,
		Content:    entry.Content,
		CreatedAt:  entry.CreatedAt.UTC().Format(time.RFC3339Nano),
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
