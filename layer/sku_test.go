package layer

import "testing"

func TestNewSKUStripsSizeSuffixes(t *testing.T) {
	cases := []struct {
		raw, want string
	}{
		{"mensdenimjeans-blue-36", "mensdenimjeans-blue"},
		{"baerskinzip-grey-s", "baerskinzip-grey"},
		{"baerskin4-black-lxl", "baerskin4-black"},
		{"baerskin4-black-xl", "baerskin4-black"},
		{"baerskin4-black-2xl", "baerskin4-black"},
		{"cargo-darkgreen-40", "cargo-darkgreen"},
		{"beanie-black", "beanie-black"},
		{"ski-black", "ski-black"},
	}
	for _, tc := range cases {
		if got := NewSKU(tc.raw); string(got) != tc.want {
			t.Errorf("NewSKU(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNewSKUCaseInsensitive(t *testing.T) {
	if NewSKU("Hoodie-Black-XL") != NewSKU("hoodie-black") {
		t.Fatalf("size and case variants should collapse: %q vs %q",
			NewSKU("Hoodie-Black-XL"), NewSKU("hoodie-black"))
	}
}

func TestNewSKUIdempotent(t *testing.T) {
	for _, raw := range []string{
		"Hoodie-Black-XL", "cargo-darkgreen-40", "beanie-black", "softshell-grey",
	} {
		once := NewSKU(raw)
		twice := NewSKU(string(once))
		if once != twice {
			t.Errorf("NewSKU not idempotent for %q: %q -> %q", raw, once, twice)
		}
	}
}

// The two stripping steps are a fixed, non-repeating filter: one letter
// suffix, then one numeric segment, never looped.
func TestNewSKUDoesNotLoop(t *testing.T) {
	if got := NewSKU("jeans-blue-36-s"); string(got) != "jeans-blue" {
		t.Errorf("letter then numeric should both apply once: got %q", got)
	}
	if got := NewSKU("x-black-40-36"); string(got) != "x-black-40" {
		t.Errorf("only one numeric segment may be stripped: got %q", got)
	}
}
