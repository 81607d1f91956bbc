package layer

import "testing"

// ==============================
// Parsing
// ==============================

func TestParseParams(t *testing.T) {
	params := ParseParams("hoodies/hoodie-black-xl,pants/cargo-darkgreen-40")
	if len(params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(params))
	}
	if params[0].Category != "hoodies" || string(params[0].SKU) != "hoodie-black" {
		t.Fatalf("unexpected first param: %+v", params[0])
	}
	if params[1].Category != "pants" || string(params[1].SKU) != "cargo-darkgreen" {
		t.Fatalf("unexpected second param: %+v", params[1])
	}
}

func TestParseParamsDropsMalformed(t *testing.T) {
	params := ParseParams("hoodies/hoodie-black,garbage,too/many/slashes,pants/cargo-black")
	if len(params) != 2 {
		t.Fatalf("malformed tokens should be dropped, got %d params", len(params))
	}
	if params[0].Category != "hoodies" || params[1].Category != "pants" {
		t.Fatalf("unexpected survivors: %+v", params)
	}
}

// ==============================
// Per-element rules
// ==============================

func TestNormalizeGloves(t *testing.T) {
	params := []Param{NewParam("gloves", "ski-black")}
	n := NewNormalizer(ViewFront, params)
	got, ok := n.Normalize(params[0])
	if !ok || got.Category != "gloves-top" {
		t.Fatalf("ski gloves should map to gloves-top, got %+v ok=%v", got, ok)
	}

	params = []Param{NewParam("gloves", "regular-gloves-black")}
	n = NewNormalizer(ViewFront, params)
	got, ok = n.Normalize(params[0])
	if !ok || got.Category != "gloves-bottom" {
		t.Fatalf("regular gloves should map to gloves-bottom, got %+v ok=%v", got, ok)
	}
}

func TestNormalizeJackets(t *testing.T) {
	params := []Param{NewParam("jackets", "greenland-black")}
	n := NewNormalizer(ViewFront, params)
	got, _ := n.Normalize(params[0])
	if got.Category != "outer-jackets" {
		t.Fatalf("greenland jacket should map to outer-jackets, got %q", got.Category)
	}

	params = []Param{NewParam("jackets", "softshell-grey")}
	n = NewNormalizer(ViewFront, params)
	got, _ = n.Normalize(params[0])
	if got.Category != "jackets" {
		t.Fatalf("softshell jacket itself should stay jackets, got %q", got.Category)
	}
}

func TestNormalizePatchesBackView(t *testing.T) {
	params := []Param{NewParam("patches-left", "flag-patch-red")}
	n := NewNormalizer(ViewBack, params)
	if _, ok := n.Normalize(params[0]); ok {
		t.Fatal("patches must be dropped on the back view")
	}
}

func TestNormalizePatchesWithSoftshell(t *testing.T) {
	params := []Param{
		NewParam("jackets", "softshell-grey"),
		NewParam("patches-left", "flag-patch-red"),
	}
	n := NewNormalizer(ViewFront, params)

	jacket, _ := n.Normalize(params[0])
	if jacket.Category != "jackets" {
		t.Fatalf("jacket category changed: %q", jacket.Category)
	}

	patch, ok := n.Normalize(params[1])
	if !ok || patch.Category != "softshell-patches-left" {
		t.Fatalf("patch should pick softshell base, got %+v ok=%v", patch, ok)
	}
}

func TestNormalizePatchesLeftView(t *testing.T) {
	params := []Param{
		NewParam("patches-left", "flag-patch-red"),
		NewParam("patches-right", "canadaflag-red"),
	}
	n := NewNormalizer(ViewLeft, params)

	left, ok := n.Normalize(params[0])
	if !ok || left.Category != "patches" {
		t.Fatalf("left patch on left view should become bare patches, got %+v ok=%v", left, ok)
	}
	if _, ok := n.Normalize(params[1]); ok {
		t.Fatal("right patch must be dropped on left view")
	}
}

func TestLeftViewGatesCategories(t *testing.T) {
	params := ParseParams("pants/cargo-black,hoodies/hoodie-black,jackets/softshell-grey,hats/beanie-black")
	n := NewNormalizer(ViewLeft, params)
	out := n.NormalizeAll(params)

	if len(out) != 2 {
		t.Fatalf("expected 2 survivors on left view, got %d: %+v", len(out), out)
	}
	for _, p := range out {
		if p.Category != "hoodies" && p.Category != "jackets" {
			t.Fatalf("unexpected category survived left view gate: %q", p.Category)
		}
	}
}

// ==============================
// Batch ordering
// ==============================

func TestNormalizeAllOrdersByStack(t *testing.T) {
	params := []Param{
		NewParam("hats", "beanie-black"),
		NewParam("hoodies", "hoodie-black"),
		NewParam("pants", "cargo-darkgreen"),
	}
	n := NewNormalizer(ViewFront, params)
	out := n.NormalizeAll(params)

	want := []string{"pants", "hoodies", "hats"}
	if len(out) != len(want) {
		t.Fatalf("expected %d params, got %d", len(want), len(out))
	}
	for i, cat := range want {
		if out[i].Category != cat {
			t.Fatalf("position %d: got %q, want %q", i, out[i].Category, cat)
		}
	}
}

func TestNormalizeAllExcludesUnrankedCategories(t *testing.T) {
	params := []Param{
		NewParam("socks", "wool-grey"),
		NewParam("pants", "cargo-black"),
	}
	n := NewNormalizer(ViewFront, params)
	out := n.NormalizeAll(params)

	if len(out) != 1 || out[0].Category != "pants" {
		t.Fatalf("unranked category should not be composited, got %+v", out)
	}
}

func TestSoftshellContextOnSideViews(t *testing.T) {
	// Side views use the bare softshell-patches folder, no position suffix.
	params := []Param{
		NewParam("jackets", "softshell-grey"),
		NewParam("patches-left", "flag-patch-red"),
	}
	n := NewNormalizer(ViewLeft, params)
	patch, ok := n.Normalize(params[1])
	if !ok || patch.Category != "softshell-patches" {
		t.Fatalf("expected softshell-patches on left view, got %+v ok=%v", patch, ok)
	}
}
