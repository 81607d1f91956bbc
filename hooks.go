package layersmith

// Hooks lightweight callbacks for high-signal pipeline events.
// Implementations MUST be cheap and non-blocking.
// The renderer and cache call them on hot paths.
type Hooks interface {
	// Composite served from the memory tier.
	MemoryHit(key string)

	// Composite served from the durable tier (and promoted to memory).
	BackendHit(key string)

	// Both tiers missed; the composite will be rendered.
	Miss(key string)

	// Composite stored in the durable tier.
	Stored(key string, size int)

	// Store suppressed: found < requested, an incomplete composite must
	// never be cached as if it were complete.
	StoreSuppressed(key string, requested, found int)

	// Durable write failed after a successful render (request still
	// succeeds).
	CacheWriteFailed(key string, err error)

	// A requested layer was absent in the backend.
	LayerMissing(view, token string)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) MemoryHit(string)              {}
func (NopHooks) BackendHit(string)             {}
func (NopHooks) Miss(string)                   {}
func (NopHooks) Stored(string, int)            {}
func (NopHooks) StoreSuppressed(string, int, int) {}
func (NopHooks) CacheWriteFailed(string, error) {}
func (NopHooks) LayerMissing(string, string)    {}
