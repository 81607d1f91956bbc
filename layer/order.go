package layer

// stackRank defines the z-order of canonical categories, lowest drawn
// first. Categories outside this table are not renderable and are
// excluded from composition.
var stackRank = map[string]int{
	"pants":                    0,
	"tops":                     1,
	"hoodies":                  2,
	"gloves-bottom":            3,
	"jackets":                  4,
	"gloves-top":               5,
	"outer-jackets":            6,
	"hats":                     7,
	"patches":                  8,
	"patches-left":             9,
	"patches-right":            10,
	"softshell-patches":        11,
	"softshell-patches-left":   12,
	"softshell-patches-right":  13,
}

// StackRank returns the stacking position of a canonical category.
// ok is false for categories that have no place in the stack.
func StackRank(category string) (rank int, ok bool) {
	rank, ok = stackRank[category]
	return rank, ok
}
