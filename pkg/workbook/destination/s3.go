package destination

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// PutObjectAPI is the subset of the S3 client used for uploads.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 uploads files to a bucket. Objects with the same key are overwritten.
type S3 struct {
	client PutObjectAPI
	bucket string
	prefix string
}

func NewS3(client PutObjectAPI, bucket, prefix string) *S3 {
	return &S3{client: client, bucket: bucket, prefix: prefix}
}

func NewS3FromConfig(cfg aws.Config, bucket, prefix string) *S3 {
	return NewS3(s3.NewFromConfig(cfg), bucket, prefix)
}

func (d *S3) Key(fileName string) string {
	if d.prefix == "" {
		return fileName
	}
	return path.Join(d.prefix, fileName)
}

func (d *S3) Deliver(ctx context.Context, fileName, contentType string, body io.Reader) error {
	key := d.Key(fileName)

	// The SDK signs the payload, so the body has to be seekable.
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to buffer %s: %w", fileName, err)
	}

	_, err = d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(d.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(data),
		ContentLength:      aws.Int64(int64(len(data))),
		ContentType:        aws.String(contentType),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", fileName)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload s3://%s/%s: %w", d.bucket, key, err)
	}

	zerolog.Ctx(ctx).Info().
		Str("bucket", d.bucket).
		Str("key", key).
		Msg("report uploaded")
	return nil
}

func (d *S3) String() string {
	return "s3://" + path.Join(d.bucket, d.prefix)
}
