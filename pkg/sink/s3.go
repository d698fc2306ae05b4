package sink

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	DefaultRegion = "us-east-1"
	contentType   = "text/plain; charset=utf-8"
)

// PutObjectAPI is the part of the S3 client the sink needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Object struct {
	client PutObjectAPI
	bucket string
	key    string
}

// S3 uploads the lines as one text object, replacing any previous version of the key.
func S3(client PutObjectAPI, bucket, key string) Destination {
	return &s3Object{client: client, bucket: bucket, key: key}
}

func (o *s3Object) Deliver(ctx context.Context, lines []string) error {
	_, err := o.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(o.bucket),
		Key:         aws.String(o.key),
		Body:        strings.NewReader(join(lines)),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}

func (o *s3Object) String() string {
	return "s3://" + o.bucket + "/" + o.key
}

// NewS3Client builds a client from the default AWS credential chain.
func NewS3Client(ctx context.Context) (PutObjectAPI, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithDefaultRegion(DefaultRegion))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}
