package layersmith

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/unkn0wn-root/layersmith/compose"
	"github.com/unkn0wn-root/layersmith/layer"
	st "github.com/unkn0wn-root/layersmith/storage"
)

const defaultProductsKey = "products-dynamic-cache"

type renderer struct {
	backend     st.Backend
	cache       *Cache
	log         Logger
	hooks       Hooks
	quality     int
	productsKey string
}

func newRenderer(opts Options) (*renderer, error) {
	log := coalesce[Logger](opts.Logger, NopLogger{})
	hooks := coalesce[Hooks](opts.Hooks, NopHooks{})

	cache, err := NewCache(CacheOptions{
		Backend:  opts.Backend,
		Capacity: opts.MemoryEntries,
		Logger:   log,
		Hooks:    hooks,
	})
	if err != nil {
		return nil, err
	}

	return &renderer{
		backend:     opts.Backend,
		cache:       cache,
		log:         log,
		hooks:       hooks,
		quality:     coalesce(opts.JPEGQuality, compose.DefaultJPEGQuality),
		productsKey: coalesce(opts.ProductsKey, defaultProductsKey),
	}, nil
}

func (r *renderer) Render(ctx context.Context, req RenderRequest) (*RenderResult, error) {
	view := coalesce(req.View, layer.ViewFront)

	// No layers requested: the bare plate is the composite.
	if strings.TrimSpace(req.Params) == "" {
		plate, err := fetchBasePlate(ctx, r.backend, view)
		if err != nil {
			return nil, err
		}
		return &RenderResult{Data: plate, Key: layer.CacheKey(nil, view, view.PlateValue())}, nil
	}

	params := layer.ParseParams(req.Params)
	norm := layer.NewNormalizer(view, params)
	ordered := norm.NormalizeAll(params)
	key := layer.CacheKey(ordered, view, view.PlateValue())

	if !req.BypassCache {
		data, ok, err := r.cache.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			return &RenderResult{
				Data:      data,
				Key:       key,
				Cached:    true,
				Requested: len(ordered),
				Found:     len(ordered),
			}, nil
		}
	}

	// Miss: the plate and every layer are fetched in parallel; the
	// request waits for all of them and fails fast on a genuine error.
	var (
		plate []byte
		slots [][]byte
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		plate, err = fetchBasePlate(gctx, r.backend, view)
		return err
	})
	g.Go(func() error {
		var err error
		slots, err = fetchLayers(gctx, r.backend, ordered, view)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	layers := make([][]byte, 0, len(slots))
	for i, data := range slots {
		if data == nil {
			r.hooks.LayerMissing(view.String(), ordered[i].Token())
			r.log.Warn("layer missing", Fields{"view": view.String(), "layer": ordered[i].Token()})
			continue
		}
		layers = append(layers, data)
	}

	data, err := compose.Layers(plate, layers, r.quality)
	if err != nil {
		return nil, err
	}

	requested, found := len(ordered), len(layers)
	if found == requested {
		// Cache write failure must not fail a successfully composed
		// request.
		if err := r.cache.Put(ctx, key, data); err != nil {
			r.hooks.CacheWriteFailed(key, err)
			r.log.Error("composite cache write failed", Fields{"key": key, "err": err})
		}
	} else {
		// An incomplete composite must never be cached as complete.
		r.hooks.StoreSuppressed(key, requested, found)
		r.log.Warn("cache store suppressed", Fields{
			"key": key, "requested": requested, "found": found,
		})
	}

	return &RenderResult{
		Data:      data,
		Key:       key,
		Requested: requested,
		Found:     found,
	}, nil
}

func (r *renderer) Key(req RenderRequest) string {
	view := coalesce(req.View, layer.ViewFront)
	params := layer.ParseParams(req.Params)
	ordered := layer.NewNormalizer(view, params).NormalizeAll(params)
	return layer.CacheKey(ordered, view, view.PlateValue())
}

func (r *renderer) ProductsJSON(ctx context.Context) (string, bool, error) {
	return r.backend.FetchCachedJSON(ctx, r.productsKey)
}

func (r *renderer) Stats() CacheStats { return r.cache.Stats() }

func (r *renderer) ClearMemory() { r.cache.Clear() }
