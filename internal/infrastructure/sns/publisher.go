package sns

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/snapspot-api/internal/config"
	"github.com/snapspot-api/internal/domain/geo"
)

// Publisher announces newly created photo requests on an SNS topic so
// downstream consumers (push notifications, feeds) can react to them.
type Publisher interface {
	PublishRequestCreated(ctx context.Context, req *geo.Request) error
}

type publisher struct {
	client   *sns.Client
	topicARN string
}

func NewPublisher(cfg *config.Config) (Publisher, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config for SNS: %w", err)
	}

	clientOpts := []func(*sns.Options){}
	if cfg.AWSEndpointURL != "" {
		clientOpts = append(clientOpts, func(o *sns.Options) {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
		})
	}

	return &publisher{
		client:   sns.NewFromConfig(awsCfg, clientOpts...),
		topicARN: cfg.SNSRequestsTopicARN,
	}, nil
}

func (p *publisher) PublishRequestCreated(ctx context.Context, req *geo.Request) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request event: %w", err)
	}
	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String("request.created"),
		Message:  aws.String(string(payload)),
	})
	return err
}
