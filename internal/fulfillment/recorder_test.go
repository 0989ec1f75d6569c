package fulfillment

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo records PutItem calls and optionally fails them.
type fakeDynamo struct {
	inputs []*dynamodb.PutItemInput
	err    error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func strAttr(t *testing.T, item map[string]types.AttributeValue, key string) string {
	t.Helper()
	attr, ok := item[key].(*types.AttributeValueMemberS)
	require.True(t, ok, "expected string attribute %q, got %T", key, item[key])
	return attr.Value
}

func TestRecorderSave(t *testing.T) {
	client := &fakeDynamo{}
	rec := NewRecorder(client, "support_conversations", nil)

	session := "sess-1"
	intent := SupportIntent
	err := rec.Save(context.Background(), ConversationRecord{
		SessionID:   &session,
		IntentName:  &intent,
		UserName:    nullable("Ali"),
		UserEmail:   nullable("ali@example.com"),
		UserMessage: nullable("need help"),
		Channel:     nullable("telegram"),
	})
	require.NoError(t, err)
	require.Len(t, client.inputs, 1)

	in := client.inputs[0]
	assert.Equal(t, "support_conversations", aws.ToString(in.TableName))
	assert.Equal(t, "Ali", strAttr(t, in.Item, "user_name"))
	assert.Equal(t, "ali@example.com", strAttr(t, in.Item, "user_email"))
	assert.Equal(t, "need help", strAttr(t, in.Item, "user_message"))
	assert.Equal(t, "sess-1", strAttr(t, in.Item, "session_id"))
	assert.Equal(t, SupportIntent, strAttr(t, in.Item, "intent_name"))
	assert.Equal(t, "telegram", strAttr(t, in.Item, "channel"))
	assert.NotEmpty(t, strAttr(t, in.Item, "id"))
	assert.NotEmpty(t, strAttr(t, in.Item, "created_at"))
}

func TestRecorderSaveSanitizesAbsentFields(t *testing.T) {
	client := &fakeDynamo{}
	rec := NewRecorder(client, "support_conversations", nil)

	err := rec.Save(context.Background(), ConversationRecord{
		UserName: nullable("Ali"),
		Channel:  nullable(""),
	})
	require.NoError(t, err)
	require.Len(t, client.inputs, 1)

	item := client.inputs[0].Item
	for _, key := range []string{"session_id", "intent_name", "user_email", "user_message", "channel"} {
		null, ok := item[key].(*types.AttributeValueMemberNULL)
		require.True(t, ok, "expected NULL attribute %q, got %T", key, item[key])
		assert.True(t, null.Value)
	}
	assert.Equal(t, "Ali", strAttr(t, item, "user_name"))
}

func TestRecorderSaveFailure(t *testing.T) {
	client := &fakeDynamo{err: errors.New("throttled")}
	rec := NewRecorder(client, "support_conversations", nil)

	err := rec.Save(context.Background(), ConversationRecord{UserName: nullable("Ali")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist conversation")
}

func TestRecorderUnconfiguredNoOp(t *testing.T) {
	rec := NewRecorder(nil, "support_conversations", nil)
	assert.NoError(t, rec.Save(context.Background(), ConversationRecord{UserName: nullable("Ali")}))
}

func TestNewRecorderPanicsOnEmptyTable(t *testing.T) {
	assert.Panics(t, func() { NewRecorder(&fakeDynamo{}, "", nil) })
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	require.NotNil(t, nullable("x"))
	assert.Equal(t, "x", *nullable("x"))
}
