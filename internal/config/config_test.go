package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Kind != "local" {
		t.Fatalf("default storage kind: %q", cfg.Storage.Kind)
	}
	if cfg.Cache.MemoryEntries != 1000 {
		t.Fatalf("default memory entries: %d", cfg.Cache.MemoryEntries)
	}
	if cfg.Server.Addr != ":3000" {
		t.Fatalf("default server addr: %q", cfg.Server.Addr)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
storage:
  kind: s3
  s3:
    bucket: composites
    region: eu-west-1
cache:
  memory_entries: 50
server:
  addr: ":8080"
  api_key: sekret
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Kind != "s3" || cfg.Storage.S3.Bucket != "composites" {
		t.Fatalf("storage config: %+v", cfg.Storage)
	}
	if cfg.Storage.S3.Region != "eu-west-1" {
		t.Fatalf("region: %q", cfg.Storage.S3.Region)
	}
	if cfg.Cache.MemoryEntries != 50 {
		t.Fatalf("memory entries: %d", cfg.Cache.MemoryEntries)
	}
	if cfg.Server.APIKey != "sekret" {
		t.Fatalf("api key: %q", cfg.Server.APIKey)
	}
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  kind: dynamo\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("unknown storage kind should be rejected")
	}
}

func TestLoadRequiresBucketForS3(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  kind: s3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("s3 backend without a bucket should be rejected")
	}
}
