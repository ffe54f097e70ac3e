package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/budgetme/budgetme/budget"
)

// S3 stores the ledger as a data.json object in a bucket.
type S3 struct {
	client *s3.Client
	bucket string
}

// NewS3 creates a provider against an S3-compatible store using
// static credentials.
func NewS3(accessKey, secretKey, bucket, region string) *S3 {
	cfg := aws.Config{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	}
	return &S3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}
}

// Fetch implements Provider. A missing bucket or object is not an
// error: nothing has been written yet.
func (p *S3) Fetch(ctx context.Context) (*budget.Ledger, error) {
	out, err := p.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(dataObjectName),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		var noBucket *types.NoSuchBucket
		if errors.As(err, &noKey) || errors.As(err, &noBucket) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch ledger object: %w", err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger object: %w", err)
	}
	return budget.UnmarshalLedger(raw)
}

// Store implements Provider, creating the bucket on first use.
func (p *S3) Store(ctx context.Context, ledger *budget.Ledger) error {
	raw, err := ledger.Marshal()
	if err != nil {
		return err
	}
	if err := p.ensureBucket(ctx); err != nil {
		return err
	}
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(dataObjectName),
		Body:   bytes.NewReader(raw),
	})
	if err != nil {
		return fmt.Errorf("failed to store ledger object: %w", err)
	}
	return nil
}

// Bucket returns the configured bucket name.
func (p *S3) Bucket() string {
	return p.bucket
}

func (p *S3) ensureBucket(ctx context.Context) error {
	_, err := p.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(p.bucket),
	})
	if err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		var exists *types.BucketAlreadyExists
		if errors.As(err, &owned) || errors.As(err, &exists) {
			return nil
		}
		return fmt.Errorf("failed to create bucket %q: %w", p.bucket, err)
	}
	return nil
}
