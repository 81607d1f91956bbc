// Package s3 implements an object-store Backend on AWS S3. Object keys:
//
//	{prefix}/{view}/{category}/{sku}.{ext}   layer images
//	{prefix}/cache/{key}.jpg                 composites
//	{prefix}/cache/{key}.json                auxiliary JSON
package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/unkn0wn-root/layersmith/layer"
	st "github.com/unkn0wn-root/layersmith/storage"
)

var ErrNilClient = errors.New("s3 storage: nil client")

const defaultPrefix = "layersmith"

type Storage struct {
	client *awss3.Client
	bucket string
	prefix string
}

var _ st.Backend = (*Storage)(nil)

type Config struct {
	Client *awss3.Client
	Bucket string
	// Prefix namespaces all keys inside the bucket. Empty => "layersmith".
	Prefix string
}

func New(cfg Config) (*Storage, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.Bucket == "" {
		return nil, errors.New("s3 storage: bucket is required")
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Storage{client: cfg.Client, bucket: cfg.Bucket, prefix: prefix}, nil
}

func (s *Storage) FetchLayer(ctx context.Context, category, sku string, view layer.View, extension string) ([]byte, bool, error) {
	key := path.Join(s.prefix, view.String(), category, sku+"."+extension)
	return s.fetchObject(ctx, key)
}

func (s *Storage) FetchCached(ctx context.Context, key string) ([]byte, bool, error) {
	return s.fetchObject(ctx, s.cacheKey(key, "jpg"))
}

func (s *Storage) SaveToCache(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.cacheKey(key, "jpg")),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	return err
}

func (s *Storage) FetchCachedJSON(ctx context.Context, key string) (string, bool, error) {
	data, ok, err := s.fetchObject(ctx, s.cacheKey(key, "json"))
	if err != nil || !ok {
		return "", false, err
	}
	return string(data), true, nil
}

func (s *Storage) fetchObject(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, false, nil // miss, not a failure
		}
		return nil, false, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *Storage) cacheKey(key, ext string) string {
	return path.Join(s.prefix, "cache", key+"."+ext)
}
