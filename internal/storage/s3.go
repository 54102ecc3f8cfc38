package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

const (
	s3Scheme = "s3://"

	// MaxImageBytes caps how much of an object is read into memory.
	MaxImageBytes = 10 << 20
)

var (
	ErrUnsupportedURL = errors.New("unsupported image url")
	ErrImageTooLarge  = errors.New("image exceeds size limit")
)

// ObjectGetter is the slice of the S3 API the fetcher needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Fetcher downloads menu images referenced by s3://bucket/key URLs.
type S3Fetcher struct {
	client ObjectGetter
	logger zerolog.Logger
}

func NewS3Fetcher(ctx context.Context, region string, logger *zerolog.Logger) (*S3Fetcher, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithRetryMaxAttempts(1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().Str("region", region).Msg("S3 image fetcher initialised")

	return NewS3FetcherWithClient(s3.NewFromConfig(cfg), logger), nil
}

func NewS3FetcherWithClient(client ObjectGetter, logger *zerolog.Logger) *S3Fetcher {
	return &S3Fetcher{
		client: client,
		logger: logger.With().Str("component", "s3-image-fetcher").Logger(),
	}
}

// Supports reports whether the URL points at an S3 object.
func (f *S3Fetcher) Supports(imageURL string) bool {
	return strings.HasPrefix(imageURL, s3Scheme)
}

func (f *S3Fetcher) Fetch(ctx context.Context, imageURL string) ([]byte, error) {
	bucket, key, err := ParseObjectURL(imageURL)
	if err != nil {
		return nil, err
	}

	f.logger.Debug().Str("bucket", bucket).Str("key", key).Msg("Fetching menu image from S3")

	result, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		f.logger.Error().Err(err).Str("bucket", bucket).Str("key", key).Msg("Failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", bucket, key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(io.LimitReader(result.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object %s: %w", key, err)
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("%w: s3://%s/%s", ErrImageTooLarge, bucket, key)
	}

	f.logger.Info().Str("bucket", bucket).Str("key", key).Int("bytes", len(data)).Msg("Menu image fetched from S3")
	return data, nil
}

// ParseObjectURL splits s3://bucket/key into its parts.
func ParseObjectURL(imageURL string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(imageURL, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedURL, imageURL)
	}

	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedURL, imageURL)
	}

	return bucket, key, nil
}
