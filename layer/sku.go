package layer

import "strings"

// SKU is a normalized SKU string: lowercase, trimmed, with one trailing
// size token removed. Two raw SKUs that differ only by size collapse to
// the same SKU, which keeps cache keys size-agnostic.
type SKU string

// sizeSuffixes is checked in order; the first match wins and the scan
// stops. The order (and the unusual "lxl") comes from the live catalog.
var sizeSuffixes = [...]string{
	"-xs", "-s", "-m", "-l", "-xl", "-xxl", "-2xl", "-3xl", "-4xl", "-5xl", "-lxl",
}

// NewSKU normalizes a raw SKU.
//
//	mensdenimjeans-blue-36 -> mensdenimjeans-blue
//	baerskinzip-grey-s     -> baerskinzip-grey
//	baerskin4-black-lxl    -> baerskin4-black
//
// At most one letter suffix is stripped, then at most one trailing
// all-digit segment. The two steps are intentionally not looped:
// existing durable cache entries were keyed under this exact rule.
func NewSKU(raw string) SKU {
	s := strings.ToLower(strings.TrimSpace(raw))

	for _, suf := range sizeSuffixes {
		if strings.HasSuffix(s, suf) {
			s = s[:len(s)-len(suf)]
			break
		}
	}

	// Numeric sizes like -36, -38, -40.
	if i := strings.LastIndexByte(s, '-'); i >= 0 && allDigits(s[i+1:]) {
		s = s[:i]
	}

	return SKU(s)
}

func (s SKU) String() string { return string(s) }

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
