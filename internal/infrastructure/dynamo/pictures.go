package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/snapspot-api/internal/domain/media"
)

// PictureRepo provides typed DynamoDB operations for the pictures table.
type PictureRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewPictureRepo(client *dynamodb.Client, tableName string) *PictureRepo {
	return &PictureRepo{client: client, tableName: tableName}
}

func (r *PictureRepo) Create(ctx context.Context, p *media.Picture) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal picture: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fail(err, "picture create")
	}
	return nil
}

// List scans the whole gallery, newest data included; ordering is applied
// by the caller.
func (r *PictureRepo) List(ctx context.Context) ([]media.Picture, error) {
	var pictures []media.Picture
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fail(err, "picture list")
		}
		var page []media.Picture
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal pictures: %w", err)
		}
		pictures = append(pictures, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return pictures, nil
}

func (r *PictureRepo) GetByID(ctx context.Context, pictureID string) (*media.Picture, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("picture_id", pictureID),
	})
	if err != nil {
		return nil, fail(err, "picture lookup")
	}
	if out.Item == nil {
		return nil, noItem("Picture not found")
	}
	var p media.Picture
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, fmt.Errorf("unmarshal picture: %w", err)
	}
	return &p, nil
}

func (r *PictureRepo) Delete(ctx context.Context, pictureID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("picture_id", pictureID),
	})
	if err != nil {
		return fail(err, "picture delete")
	}
	return nil
}
