package layer

import (
	"sort"
	"strings"
)

// Normalizer applies view- and context-sensitive category rules to raw
// layer params. Context (currently: softshell jacket presence) is
// detected once from the full, unfiltered input set at construction, so
// per-element normalization stays stateless.
type Normalizer struct {
	view         View
	hasSoftshell bool
}

// NewNormalizer scans the entire initial param set before any element is
// filtered. Detection must see the original set: a softshell jacket that
// would itself be dropped for the current view still switches patches to
// the softshell variants.
func NewNormalizer(view View, params []Param) *Normalizer {
	hasSoftshell := false
	for _, p := range params {
		if p.Category == "jackets" && strings.Contains(string(p.SKU), "softshell") {
			hasSoftshell = true
			break
		}
	}
	return &Normalizer{view: view, hasSoftshell: hasSoftshell}
}

// Normalize maps one param to its canonical form for the normalizer's
// view. ok is false when the param is not rendered in this view.
func (n *Normalizer) Normalize(p Param) (Param, bool) {
	if allowed := n.view.AllowedCategories(); allowed != nil && !contains(allowed, p.Category) {
		return Param{}, false
	}

	switch {
	case strings.HasPrefix(p.Category, "patches-"):
		return n.normalizePatch(p)
	case p.Category == "gloves":
		return n.normalizeGloves(p)
	case p.Category == "jackets":
		return n.normalizeJacket(p)
	}

	return p, true
}

func (n *Normalizer) normalizePatch(p Param) (Param, bool) {
	position := strings.TrimPrefix(p.Category, "patches-")

	// Patches never show on the back.
	if n.view == ViewBack {
		return Param{}, false
	}

	// Left/right views only show the patch on the matching side.
	if (n.view == ViewLeft && position != "left") || (n.view == ViewRight && position != "right") {
		return Param{}, false
	}

	base := "patches"
	if n.hasSoftshell {
		base = "softshell-patches"
	}

	// Front keeps the position suffix; side views use the bare folder.
	category := base
	if n.view == ViewFront {
		category = base + "-" + position
	}

	return Param{Category: category, SKU: p.SKU}, true
}

func (n *Normalizer) normalizeGloves(p Param) (Param, bool) {
	// Ski gloves stack above jackets, the rest below.
	// Prefix match only: "regular-..." is NOT a ski glove.
	category := "gloves-bottom"
	if strings.HasPrefix(string(p.SKU), "ski") {
		category = "gloves-top"
	}
	return Param{Category: category, SKU: p.SKU}, true
}

func (n *Normalizer) normalizeJacket(p Param) (Param, bool) {
	category := "jackets"
	if strings.Contains(string(p.SKU), "greenland") {
		category = "outer-jackets"
	}
	return Param{Category: category, SKU: p.SKU}, true
}

// NormalizeAll normalizes every param, drops the ones not rendered in
// this view (or without a stacking position), and returns the survivors
// in stacking order.
func (n *Normalizer) NormalizeAll(params []Param) []Param {
	out := make([]Param, 0, len(params))
	for _, p := range params {
		np, ok := n.Normalize(p)
		if !ok {
			continue
		}
		if _, ranked := StackRank(np.Category); !ranked {
			continue
		}
		out = append(out, np)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, _ := StackRank(out[i].Category)
		rj, _ := StackRank(out[j].Category)
		return ri < rj
	})

	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
