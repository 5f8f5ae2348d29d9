package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/de-tools/order-reports/pkg/workbook/destination"
)

const DefaultRegion = "ap-southeast-3"

// NewDestination uploads to S3 when a bucket is configured and writes to the
// output directory otherwise.
func NewDestination(ctx context.Context, s OutputSettings) (destination.Destination, error) {
	if s.S3.Bucket == "" {
		return destination.NewDir(s.Dir), nil
	}

	cfg, err := LoadAWSConfig(ctx, s.S3)
	if err != nil {
		return nil, err
	}
	return destination.NewS3FromConfig(*cfg, s.S3.Bucket, s.S3.Prefix), nil
}

func LoadAWSConfig(ctx context.Context, s S3Settings) (*aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithDefaultRegion(DefaultRegion),
	}
	if s.Region != "" {
		opts = append(opts, awsconfig.WithRegion(s.Region))
	}
	if s.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(s.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &cfg, nil
}
