// Package sloghooks provides a sampled slog implementation of
// layersmith.Hooks. Hit/miss events fire on every request, so they are
// sampled; failure events are always logged.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/layersmith"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	HitEvery  uint64
	MissEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	hitCtr  atomic.Uint64
	missCtr atomic.Uint64
}

var _ layersmith.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) MemoryHit(key string) {
	if h.l == nil || !sample(h.opts.HitEvery, &h.hitCtr) {
		return
	}
	h.l.Debug("layersmith.memory_hit", "key", key)
}

func (h *Hooks) BackendHit(key string) {
	if h.l == nil || !sample(h.opts.HitEvery, &h.hitCtr) {
		return
	}
	h.l.Debug("layersmith.backend_hit", "key", key)
}

func (h *Hooks) Miss(key string) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("layersmith.miss", "key", key)
}

func (h *Hooks) Stored(key string, size int) {
	if h.l == nil {
		return
	}
	h.l.Info("layersmith.stored", "key", key, "bytes", size)
}

func (h *Hooks) StoreSuppressed(key string, requested, found int) {
	if h.l == nil {
		return
	}
	h.l.Warn("layersmith.store_suppressed",
		"key", key,
		"requested", requested,
		"found", found)
}

func (h *Hooks) CacheWriteFailed(key string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("layersmith.cache_write_failed", "key", key, "err", err)
}

func (h *Hooks) LayerMissing(view, token string) {
	if h.l == nil {
		return
	}
	h.l.Warn("layersmith.layer_missing", "view", view, "layer", token)
}
