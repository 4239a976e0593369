package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/snapspot-api/internal/domain/identity"
)

// VerificationRepo manages email verification tokens. PK: token — the
// verification link carries only the token, so that's the lookup key.
type VerificationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewVerificationRepo(client *dynamodb.Client, tableName string) *VerificationRepo {
	return &VerificationRepo{client: client, tableName: tableName}
}

// Create stores a fresh token. The condition guards against the (remote)
// chance of a token collision.
func (r *VerificationRepo) Create(ctx context.Context, v *identity.Verification) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return fmt.Errorf("marshal verification: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#t)"),
		ExpressionAttributeNames: map[string]string{
			"#t": "token",
		},
	})
	if err != nil {
		return fail(err, "verification create")
	}
	return nil
}

func (r *VerificationRepo) GetByToken(ctx context.Context, token string) (*identity.Verification, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("token", token),
	})
	if err != nil {
		return nil, fail(err, "verification lookup")
	}
	if out.Item == nil {
		return nil, noItem("Verification token not found")
	}
	var v identity.Verification
	if err := attributevalue.UnmarshalMap(out.Item, &v); err != nil {
		return nil, fmt.Errorf("unmarshal verification: %w", err)
	}
	return &v, nil
}

// MarkUsed consumes the token. The condition makes consumption single-shot:
// a concurrent second use fails the check instead of silently winning.
func (r *VerificationRepo) MarkUsed(ctx context.Context, token string, usedAt time.Time) error {
	av, err := attributevalue.Marshal(usedAt)
	if err != nil {
		return fmt.Errorf("marshal used_at: %w", err)
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("token", token),
		UpdateExpression:          aws.String("SET used_at = :u"),
		ConditionExpression:       aws.String("attribute_not_exists(used_at)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":u": av},
	})
	if err != nil {
		return fail(err, "verification update")
	}
	return nil
}
