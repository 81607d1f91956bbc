package layer

import "strings"

// Param is one requested garment layer: a category plus its normalized SKU.
type Param struct {
	Category string
	SKU      SKU
}

// NewParam builds a Param, normalizing the raw SKU.
func NewParam(category, rawSKU string) Param {
	return Param{Category: category, SKU: NewSKU(rawSKU)}
}

// ParseParam parses a single "category/sku" token.
// Tokens without exactly one "/" are rejected.
func ParseParam(tok string) (Param, bool) {
	parts := strings.Split(tok, "/")
	if len(parts) != 2 {
		return Param{}, false
	}
	return NewParam(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])), true
}

// ParseParams parses a comma-separated "category/sku,category/sku,..."
// list. Malformed tokens are dropped, not fatal.
func ParseParams(s string) []Param {
	var out []Param
	for _, tok := range strings.Split(s, ",") {
		if p, ok := ParseParam(tok); ok {
			out = append(out, p)
		}
	}
	return out
}

// Token renders the param back to "category/sku" form.
func (p Param) Token() string {
	return p.Category + "/" + string(p.SKU)
}
