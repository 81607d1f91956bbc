package layer

import "testing"

func TestParseView(t *testing.T) {
	for _, s := range []string{"front", "back", "side", "left", "right"} {
		v, err := ParseView(s)
		if err != nil || v.String() != s {
			t.Fatalf("ParseView(%q) = %v, %v", s, v, err)
		}
	}
	if _, err := ParseView("top"); err == nil {
		t.Fatal("ParseView should reject unknown views")
	}
}

func TestPlateValue(t *testing.T) {
	cases := map[View]string{
		ViewFront: "swatthermals-black",
		ViewBack:  "swatthermals-black",
		ViewSide:  "side-special-plate",
		ViewLeft:  "patch-plate",
		ViewRight: "patch-plate",
	}
	for v, want := range cases {
		if got := v.PlateValue(); got != want {
			t.Errorf("%s plate = %q, want %q", v, got, want)
		}
	}
}

func TestAllowsPatches(t *testing.T) {
	if ViewBack.AllowsPatches() {
		t.Error("back view should not allow patches")
	}
	for _, v := range []View{ViewFront, ViewSide, ViewLeft, ViewRight} {
		if !v.AllowsPatches() {
			t.Errorf("%s view should allow patches", v)
		}
	}
}
