// internal/app/system/uploads/s3.go
package uploads

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3 stores uploads in an S3 bucket, optionally served through a CDN
// distribution fronting the bucket.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
	cdnURL string // optional; falls back to the bucket's virtual-hosted URL
	region string
}

// NewS3 creates an S3 store. Credentials come from the default AWS chain
// (env, shared config, instance role).
func NewS3(ctx context.Context, region, bucket, prefix, cdnURL string) (*S3, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &S3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		cdnURL: strings.TrimRight(cdnURL, "/"),
		region: region,
	}, nil
}

func (s *S3) objectKey(key string) string {
	key = strings.TrimLeft(key, "/")
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

// Put uploads the object with the given content type.
func (s *S3) Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading to S3: %w", err)
	}
	return s.URL(key), nil
}

// Delete removes the object from the bucket.
func (s *S3) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return fmt.Errorf("deleting from S3: %w", err)
	}
	return nil
}

// URL returns the public URL for a stored key.
func (s *S3) URL(key string) string {
	if s.cdnURL != "" {
		return s.cdnURL + "/" + s.objectKey(key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, s.objectKey(key))
}

// KeyFromURL recovers the storage key from a URL previously returned by
// URL. Returns "" when the URL does not belong to this store.
func (s *S3) KeyFromURL(url string) string {
	base := s.cdnURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.bucket, s.region)
	}
	if !strings.HasPrefix(url, base+"/") {
		return ""
	}
	key := strings.TrimPrefix(url, base+"/")
	if s.prefix != "" {
		key = strings.TrimPrefix(key, s.prefix+"/")
	}
	return key
}
