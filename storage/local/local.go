// Package local implements a filesystem Backend for development and
// tests. Layout:
//
//	{base}/{view}/{category}/{sku}.{ext}   layer images
//	{base}/cache/{key}.jpg                 composites
//	{base}/cache/{key}.json                auxiliary JSON
//
// A layer not found at its direct path is also searched one directory
// level deeper, matching how catalog drops are unpacked.
package local

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/unkn0wn-root/layersmith/layer"
	st "github.com/unkn0wn-root/layersmith/storage"
)

type Storage struct {
	base string
}

var _ st.Backend = (*Storage)(nil)

func New(base string) *Storage {
	return &Storage{base: base}
}

// BasePath returns the root directory of this store.
func (s *Storage) BasePath() string { return s.base }

func (s *Storage) FetchLayer(ctx context.Context, category, sku string, view layer.View, extension string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	filename := sku + "." + extension
	direct := filepath.Join(s.base, view.String(), category, filename)
	if data, err := os.ReadFile(direct); err == nil {
		return data, true, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, err
	}

	// One-level subdirectory scan.
	categoryDir := filepath.Join(s.base, view.String(), category)
	entries, err := os.ReadDir(categoryDir)
	if err != nil {
		return nil, false, nil // category folder absent => layer absent
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(categoryDir, e.Name(), filename))
		if err == nil {
			return data, true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, false, err
		}
	}

	return nil, false, nil
}

func (s *Storage) FetchCached(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(s.cachePath(key, "jpg"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// SaveToCache writes through a temp file plus rename so concurrent
// writers of the same key never expose a partial composite.
func (s *Storage) SaveToCache(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := s.cachePath(key, "jpg")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".composite-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(tmpName)
		return werr
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func (s *Storage) FetchCachedJSON(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(s.cachePath(key, "json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

func (s *Storage) cachePath(key, ext string) string {
	return filepath.Join(s.base, "cache", key+"."+ext)
}
