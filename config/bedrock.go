package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// NewBedrockClient resolves AWS credentials through the default chain.
// An empty region leaves region resolution to the SDK (AWS_DEFAULT_REGION, shared config).
// The SDK retryer is capped at one attempt: each question makes exactly one call.
func NewBedrockClient(ctx context.Context, cfg Config) (*bedrockruntime.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryMaxAttempts(1),
	}
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return bedrockruntime.NewFromConfig(awsCfg, func(o *bedrockruntime.Options) {
		if cfg.BedrockEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BedrockEndpoint)
		}
	}), nil
}
