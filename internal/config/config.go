// Package config loads server and CLI configuration from a YAML file
// with LAYERSMITH_* environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
}

type StorageConfig struct {
	// Kind selects the backend: "local", "s3" or "redis".
	Kind string `mapstructure:"kind"`

	// Path is the root directory for the local backend.
	Path string `mapstructure:"path"`

	S3 struct {
		Bucket string `mapstructure:"bucket"`
		Prefix string `mapstructure:"prefix"`
		Region string `mapstructure:"region"`
	} `mapstructure:"s3"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
}

type CacheConfig struct {
	MemoryEntries int `mapstructure:"memory_entries"`
	JPEGQuality   int `mapstructure:"jpeg_quality"`
}

type ServerConfig struct {
	Addr   string `mapstructure:"addr"`
	APIKey string `mapstructure:"api_key"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`

	// File enables rotated file logging; empty logs to stderr.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Load reads the config file at path (optional) and applies environment
// overrides such as LAYERSMITH_STORAGE_KIND.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("storage.kind", "local")
	v.SetDefault("storage.path", "./data")
	v.SetDefault("storage.s3.prefix", "layersmith")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("cache.memory_entries", 1000)
	v.SetDefault("cache.jpeg_quality", 90)
	v.SetDefault("server.addr", ":3000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)

	v.SetEnvPrefix("LAYERSMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	switch cfg.Storage.Kind {
	case "local", "s3", "redis":
	default:
		return nil, fmt.Errorf("unknown storage kind %q", cfg.Storage.Kind)
	}
	if cfg.Storage.Kind == "s3" && cfg.Storage.S3.Bucket == "" {
		return nil, fmt.Errorf("storage.s3.bucket is required for the s3 backend")
	}

	return &cfg, nil
}
