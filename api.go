package layersmith

import (
	"context"

	"github.com/unkn0wn-root/layersmith/layer"
	st "github.com/unkn0wn-root/layersmith/storage"
)

// Renderer is the high-level composite pipeline: normalize, derive the
// cache key, serve from cache or compose and store.
type Renderer interface {
	// Render composes (or serves from cache) the image for req.
	Render(ctx context.Context, req RenderRequest) (*RenderResult, error)

	// Key returns the cache key req would render under, without
	// touching storage. Useful as a deduplication handle.
	Key(req RenderRequest) string

	// ProductsJSON returns the cached product-listing document. It is
	// unrelated to rendering and passes through the backend verbatim.
	ProductsJSON(ctx context.Context) (string, bool, error)

	// Stats reports the memory tier of the composite cache.
	Stats() CacheStats

	// ClearMemory drops the memory tier; the durable tier is untouched.
	ClearMemory()
}

// RenderRequest describes one composite.
type RenderRequest struct {
	// View to render. Empty defaults to front.
	View layer.View

	// Params is the raw comma-separated "category/sku" list. Malformed
	// tokens are dropped, not fatal. Empty renders the bare plate.
	Params string

	// BypassCache skips the cache lookup (the result is still stored).
	BypassCache bool
}

// RenderResult carries the encoded composite and how it was produced.
type RenderResult struct {
	Data   []byte
	Key    string
	Cached bool

	// Requested and Found differ when some layers were absent in the
	// backend; such degraded composites are returned but never cached.
	Requested int
	Found     int
}

// Options tune the renderer. Only Backend is required.
type Options struct {
	// Required
	Backend st.Backend

	Logger        Logger // if nil, NopLogger is used
	Hooks         Hooks  // if nil, NopHooks is used
	MemoryEntries int    // memory tier capacity; 0 => 1000
	JPEGQuality   int    // 0 => compose.DefaultJPEGQuality
	ProductsKey   string // 0 => "products-dynamic-cache"
}

// New builds a Renderer.
func New(opts Options) (Renderer, error) {
	return newRenderer(opts)
}
