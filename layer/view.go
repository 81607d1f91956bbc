package layer

import "fmt"

// View is the camera angle a composite is rendered under.
type View string

const (
	ViewFront View = "front"
	ViewBack  View = "back"
	ViewSide  View = "side"
	ViewLeft  View = "left"
	ViewRight View = "right"
)

// ParseView validates a raw view token.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewFront, ViewBack, ViewSide, ViewLeft, ViewRight:
		return View(s), nil
	}
	return "", fmt.Errorf("layer: unknown view %q", s)
}

func (v View) String() string { return string(v) }

// PlateValue returns the SKU of the base plate image for this view.
func (v View) PlateValue() string {
	switch v {
	case ViewLeft, ViewRight:
		return "patch-plate"
	case ViewSide:
		return "side-special-plate"
	default:
		return "swatthermals-black"
	}
}

// AllowsPatches reports whether patch layers are visible in this view.
func (v View) AllowsPatches() bool { return v != ViewBack }

// AllowedCategories returns the category allow-list for this view, or nil
// when every category is allowed.
func (v View) AllowedCategories() []string {
	if v == ViewLeft || v == ViewRight {
		return []string{"hoodies", "jackets", "patches-left", "patches-right"}
	}
	return nil
}
