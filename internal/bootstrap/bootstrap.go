// Package bootstrap builds the configured storage backend for the
// server and CLI binaries.
package bootstrap

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/layersmith/internal/config"
	st "github.com/unkn0wn-root/layersmith/storage"
	"github.com/unkn0wn-root/layersmith/storage/local"
	redisstore "github.com/unkn0wn-root/layersmith/storage/redis"
	s3store "github.com/unkn0wn-root/layersmith/storage/s3"
)

// Backend constructs the Backend selected by cfg.Storage.Kind.
func Backend(ctx context.Context, cfg *config.Config) (st.Backend, error) {
	switch cfg.Storage.Kind {
	case "local":
		return local.New(cfg.Storage.Path), nil

	case "s3":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.Storage.S3.Region))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return s3store.New(s3store.Config{
			Client: awss3.NewFromConfig(awsCfg),
			Bucket: cfg.Storage.S3.Bucket,
			Prefix: cfg.Storage.S3.Prefix,
		})

	case "redis":
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		return redisstore.New(redisstore.Config{Client: client, CloseClient: true})
	}

	return nil, fmt.Errorf("unknown storage kind %q", cfg.Storage.Kind)
}
