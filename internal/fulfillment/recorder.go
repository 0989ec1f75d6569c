package fulfillment

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/wolfman30/dialogflow-fulfillment/pkg/logging"
)

type dynamoAPI interface {
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ConversationRecord is one completed support request. Pointer fields marshal
// as explicit NULL attributes when absent, so every row carries the full
// column set.
type ConversationRecord struct {
	ID          string  `dynamodbav:"id"`
	SessionID   *string `dynamodbav:"session_id"`
	IntentName  *string `dynamodbav:"intent_name"`
	UserName    *string `dynamodbav:"user_name"`
	UserEmail   *string `dynamodbav:"user_email"`
	UserMessage *string `dynamodbav:"user_message"`
	Channel     *string `dynamodbav:"channel"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// Recorder persists completed support conversations to DynamoDB. A Recorder
// built without a client runs in degraded mode: saves are skipped with a
// warning instead of failing.
type Recorder struct {
	client    dynamoAPI
	tableName string
	logger    *logging.Logger
}

// NewRecorder builds a recorder. client may be nil when persistence
// credentials are not configured.
func NewRecorder(client dynamoAPI, tableName string, logger *logging.Logger) *Recorder {
	if tableName == "" {
		panic("fulfillment: table name cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Recorder{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Save inserts one conversation row, assigning it a fresh id. The caller's
// response must not depend on the outcome; a nil error is also returned when
// the recorder is unconfigured.
func (r *Recorder) Save(ctx context.Context, rec ConversationRecord) error {
	if r.client == nil {
		r.logger.Warn("conversation store not configured, skipping persist",
			"intent", aws.ToString(rec.IntentName),
		)
		return nil
	}

	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("fulfillment: failed to marshal conversation: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("fulfillment: failed to persist conversation: %w", err)
	}

	r.logger.Info("conversation recorded",
		"id", rec.ID,
		"intent", aws.ToString(rec.IntentName),
		"channel", aws.ToString(rec.Channel),
	)
	return nil
}

// nullable maps the empty string to an absent (NULL) column value.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
