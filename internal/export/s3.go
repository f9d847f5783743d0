package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// test seams around the AWS SDK
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Config carries the bucket coordinates and static credentials
// (MinIO-style root user/password work too).
type S3Config struct {
	BaseEndpoint string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
}

// S3Exporter uploads the blob as an object keyed by date and name.
type S3Exporter struct {
	config S3Config
}

func NewS3Exporter(config S3Config) *S3Exporter {
	return &S3Exporter{config: config}
}

func (e *S3Exporter) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(e.config.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			e.config.AccessKey,
			e.config.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if e.config.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(e.config.BaseEndpoint)
		}
	})

	return client, nil
}

func storageKey(name string) string {
	d := time.Now()
	return fmt.Sprintf("exports/%d/%d/%d/%s", d.Year(), d.Month(), d.Day(), name)
}

func (e *S3Exporter) Export(ctx context.Context, name string, data []byte) (string, error) {
	client, err := e.getClient(ctx)
	if err != nil {
		return "", fmt.Errorf("s3 client: %w", err)
	}

	bucket := e.config.Bucket
	key := storageKey(name)

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", bucket, key), nil
}
