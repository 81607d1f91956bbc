package layer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// CacheKey derives the composite cache key for a layer set.
//
// The "category/sku" tokens are sorted lexicographically before hashing,
// so the key does not depend on stacking order; the view and plate are
// appended so distinct renders never share a key. The digest is xxh64
// with seed 0 over the UTF-8 bytes of the combined string, rendered as
// lowercase hex without padding.
func CacheKey(params []Param, view View, plate string) string {
	tokens := make([]string, len(params))
	for i, p := range params {
		tokens[i] = p.Token()
	}
	sort.Strings(tokens)

	combined := strings.Join(tokens, "_") + "_" + string(view) + "_" + plate
	return strconv.FormatUint(xxhash.Sum64String(combined), 16)
}
