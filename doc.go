// Package layersmith renders composite garment images: a variable set of
// clothing layers stacked over a base plate image for a camera view.
//
// Components:
//   - layer: SKU normalization, view/category rules, stacking order, cache keys.
//   - storage: durable Backend (local filesystem, S3, redis).
//   - compose: decode, resize, alpha-overlay, JPEG encode.
//   - Renderer (this package): the cache-aside pipeline over a two-tier
//     composite cache (bounded in-process LRU in front of the backend).
//
// Pipeline:
//
//	raw params -> layer.ParseParams -> Normalizer.NormalizeAll
//	           -> layer.CacheKey -> Cache.Get (memory, then backend)
//	           -> on miss: plate + layers fetched in parallel
//	           -> compose.Layers -> Cache.Put (only when every requested
//	              layer was found)
//
// Normalization and key derivation are causally linked: the key is a
// pure function of the canonicalized layer set, so any two requests that
// normalize to the same set share one stored composite regardless of
// input order or SKU size suffixes.
package layersmith
