package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/snapspot-api/internal/domain/identity"
)

// UserRepo provides typed DynamoDB operations for the users table.
// The table is keyed by email so creation can enforce email uniqueness with
// a condition expression; user_id lookups go through the user_id-index GSI.
type UserRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewUserRepo(client *dynamodb.Client, tableName string) *UserRepo {
	return &UserRepo{client: client, tableName: tableName}
}

// Create inserts a new user. A duplicate email fails the condition check
// and comes back as a classified unique-constraint violation.
func (r *UserRepo) Create(ctx context.Context, u *identity.User) error {
	item, err := attributevalue.MarshalMap(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(email)"),
	})
	if err != nil {
		return fail(err, "user create")
	}
	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("email", email),
	})
	if err != nil {
		return nil, fail(err, "user lookup")
	}
	if out.Item == nil {
		return nil, noItem("User not found")
	}
	var u identity.User
	if err := attributevalue.UnmarshalMap(out.Item, &u); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, userID string) (*identity.User, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("user_id-index"),
		KeyConditionExpression:    aws.String("#a = :v"),
		ExpressionAttributeNames:  map[string]string{"#a": "user_id"},
		ExpressionAttributeValues: strKey(":v", userID),
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, fail(err, "user lookup")
	}
	if len(out.Items) == 0 {
		return nil, noItem("User not found")
	}
	var u identity.User
	if err := attributevalue.UnmarshalMap(out.Items[0], &u); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &u, nil
}

// Update applies a partial update to the user identified by email (the
// table's primary key). updated_at is always refreshed.
func (r *UserRepo) Update(ctx context.Context, email string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("email", email),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	if err != nil {
		return fail(err, "user update")
	}
	return nil
}
