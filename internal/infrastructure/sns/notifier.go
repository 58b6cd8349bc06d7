package sns

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/institute-cms/internal/config"
)

// OrphanAlert describes an asset whose record is gone but whose file could not
// be removed.
type OrphanAlert struct {
	Key    string    `json:"key"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

// Notifier publishes orphaned-asset alerts.
type Notifier interface {
	NotifyOrphan(ctx context.Context, alert OrphanAlert) error
}

// API is the subset of the SNS client the notifier uses.
type API interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type topicNotifier struct {
	client   API
	topicARN string
}

type nopNotifier struct{}

func (nopNotifier) NotifyOrphan(context.Context, OrphanAlert) error { return nil }

// NewNotifier returns a notifier publishing to cfg.OrphanAlertTopicARN, or a
// no-op notifier when no topic is configured.
func NewNotifier(ctx context.Context, cfg *config.Config) (Notifier, error) {
	if cfg.OrphanAlertTopicARN == "" {
		return nopNotifier{}, nil
	}
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config for SNS: %w", err)
	}
	clientOpts := []func(*sns.Options){}
	if cfg.AWSEndpointURL != "" {
		clientOpts = append(clientOpts, func(o *sns.Options) {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
		})
	}
	return NewTopicNotifier(sns.NewFromConfig(awsCfg, clientOpts...), cfg.OrphanAlertTopicARN), nil
}

func NewTopicNotifier(client API, topicARN string) Notifier {
	return &topicNotifier{client: client, topicARN: topicARN}
}

func (n *topicNotifier) NotifyOrphan(ctx context.Context, alert OrphanAlert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	_, err = n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String("Orphaned asset"),
		Message:  aws.String(string(body)),
	})
	return err
}
