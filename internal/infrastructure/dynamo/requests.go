package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/snapspot-api/internal/domain/geo"
)

// RequestRepo provides typed DynamoDB operations for the photo requests
// table. PK: user_id, SK: request_id, with a request_id-index GSI for
// direct lookups.
type RequestRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewRequestRepo(client *dynamodb.Client, tableName string) *RequestRepo {
	return &RequestRepo{client: client, tableName: tableName}
}

// Create inserts a request. The condition rejects a second write for the
// same (user_id, request_id) pair.
func (r *RequestRepo) Create(ctx context.Context, req *geo.Request) error {
	item, err := attributevalue.MarshalMap(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(request_id)"),
	})
	if err != nil {
		return fail(err, "request create")
	}
	return nil
}

// List scans the whole table. Ordering is applied by the caller; the table
// stays small enough for a full scan.
func (r *RequestRepo) List(ctx context.Context) ([]geo.Request, error) {
	var requests []geo.Request
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fail(err, "request list")
		}
		var page []geo.Request
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal requests: %w", err)
		}
		requests = append(requests, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return requests, nil
}

// GetByID looks up a single request through the request_id-index GSI.
func (r *RequestRepo) GetByID(ctx context.Context, requestID string) (*geo.Request, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("request_id-index"),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fail(err, "request lookup")
	}
	if len(out.Items) == 0 {
		return nil, noItem("request lookup")
	}
	var req geo.Request
	if err := attributevalue.UnmarshalMap(out.Items[0], &req); err != nil {
		return nil, fmt.Errorf("unmarshal request: %w", err)
	}
	return &req, nil
}
