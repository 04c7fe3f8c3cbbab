package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Source struct {
	client ObjectGetter
	bucket string
	prefix string
}

func NewS3Source(client ObjectGetter, bucket, prefix string) Source {
	return &s3Source{client: client, bucket: bucket, prefix: prefix}
}

// NewS3SourceFromEnv builds the S3 client from the default AWS credential chain.
func NewS3SourceFromEnv(ctx context.Context, region, bucket, prefix string) (Source, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return NewS3Source(s3.NewFromConfig(cfg), bucket, prefix), nil
}

func (s *s3Source) Fetch(ctx context.Context, file string) ([]byte, error) {
	key := path.Join(s.prefix, file)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrNotFound
		}
		// Without s3:ListBucket a missing key answers 403 instead of 404.
		var resp interface{ HTTPStatusCode() int }
		if errors.As(err, &resp) && resp.HTTPStatusCode() == http.StatusForbidden {
			return nil, fmt.Errorf("%w: access denied to s3://%s/%s: %w", ErrNotFound, s.bucket, key, err)
		}
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", s.bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", s.bucket, key, err)
	}
	return data, nil
}

func (s *s3Source) Describe() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.prefix)
}
