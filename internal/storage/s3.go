package storage

import (
	"bytes"
	"context"

	"homelandmeals/backend/internal/config"
	"homelandmeals/backend/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3Archive implements the ImageArchive interface using an S3-compatible
// backend (AWS S3, MinIO, DigitalOcean Spaces).
type s3Archive struct {
	client     *s3.Client
	bucketName string
	log        *logger.Logger
}

// NewS3Archive creates a new S3 archive instance.
func NewS3Archive(cfg config.S3Config, log *logger.Logger) (ImageArchive, error) {
	// Custom resolver for S3-compatible endpoints.
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.Endpoint != "" {
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           cfg.Endpoint,
				SigningRegion: cfg.Region,
			}, nil
		}
		// Fall back to default AWS endpoint resolution.
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsSDKConfig, err := awsCfg.LoadDefaultConfig(context.TODO(),
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		awsCfg.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		return nil, err
	}

	// Path-style addressing is required by most S3-compatible services.
	client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	log.Infow("image archive initialized", "endpoint", cfg.Endpoint, "bucket", cfg.BucketName)

	return &s3Archive{
		client:     client,
		bucketName: cfg.BucketName,
		log:        log,
	}, nil
}

// Archive uploads the image bytes under objectKey.
func (s *s3Archive) Archive(ctx context.Context, objectKey, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.log.Errorw("failed to archive image", "key", objectKey, "error", err)
		return err
	}
	return nil
}

// Delete removes an archived object from the bucket.
func (s *s3Archive) Delete(ctx context.Context, objectKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		s.log.Errorw("failed to delete archived image", "key", objectKey, "error", err)
		return err
	}
	return nil
}
