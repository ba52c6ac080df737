// Package storage wraps the object store holding uploaded patient documents.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStore is the behavior the pipeline depends on.
type ObjectStore interface {
	// GetObject fetches the full object body. maxBytes <= 0 means no cap;
	// otherwise an oversize object fails without being read through.
	GetObject(ctx context.Context, bucket, key string, maxBytes int64) ([]byte, error)
	GetObjectTags(ctx context.Context, bucket, key string) (map[string]string, error)
	PutObject(ctx context.Context, bucket, key string, body []byte, contentType string, tags map[string]string) error
	ListKeys(ctx context.Context, bucket, prefix string) ([]string, error)
}

// S3Store talks to S3.
type S3Store struct {
	client *s3.Client
	logger *slog.Logger
}

func NewS3Store(cfg aws.Config, logger *slog.Logger) *S3Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &S3Store{client: s3.NewFromConfig(cfg), logger: logger}
}

func (s *S3Store) GetObject(ctx context.Context, bucket, key string, maxBytes int64) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object s3://%s/%s: %w", bucket, key, err)
	}
	defer func() {
		if cerr := out.Body.Close(); cerr != nil {
			s.logger.Warn("storage.get.close", "bucket", bucket, "key", key, "error", cerr)
		}
	}()

	if maxBytes > 0 && out.ContentLength != nil && *out.ContentLength > maxBytes {
		return nil, fmt.Errorf("object s3://%s/%s is %d bytes, over the %d byte limit", bucket, key, *out.ContentLength, maxBytes)
	}

	reader := io.Reader(out.Body)
	if maxBytes > 0 {
		reader = io.LimitReader(out.Body, maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read object s3://%s/%s: %w", bucket, key, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("object s3://%s/%s exceeds the %d byte limit", bucket, key, maxBytes)
	}
	return data, nil
}

func (s *S3Store) GetObjectTags(ctx context.Context, bucket, key string) (map[string]string, error) {
	out, err := s.client.GetObjectTagging(ctx, &s3.GetObjectTaggingInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object tags s3://%s/%s: %w", bucket, key, err)
	}

	tags := make(map[string]string, len(out.TagSet))
	for _, t := range out.TagSet {
		if t.Key != nil && t.Value != nil {
			tags[*t.Key] = *t.Value
		}
	}
	return tags, nil
}

func (s *S3Store) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string, tags map[string]string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	}
	if len(tags) > 0 {
		vals := url.Values{}
		for k, v := range tags {
			vals.Set(k, v)
		}
		input.Tagging = aws.String(vals.Encode())
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put object s3://%s/%s: %w", bucket, key, err)
	}
	s.logger.Debug("storage.put.ok", "bucket", bucket, "key", key, "bytes", len(body))
	return nil
}

// ListKeys pages through every key under prefix.
func (s *S3Store) ListKeys(ctx context.Context, bucket, prefix string) ([]string, error) {
	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list s3://%s/%s: %w", bucket, prefix, err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}
