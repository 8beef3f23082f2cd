package animals

import (
	"cmp"
	"slices"
	"strings"
)

// ByColor orders animals by the byte-wise value of their colors
func ByColor(a, b Animal) int {
	return strings.Compare(a.Color(), b.Color())
}

// ByWeight orders animals by weight
func ByWeight(a, b Animal) int {
	return cmp.Compare(a.Weight(), b.Weight())
}

type SortOptions struct {
	ByColor  bool
	ByWeight bool
	Reverse  bool
}

// Sort orders the animals in place. A color sort is applied before a weight sort, so
// when both are requested the weight order is the one that is observed, with color
// only surviving as the order within equal weights. Reverse is applied last.
func Sort(animals []Animal, opts SortOptions) {
	if opts.ByColor {
		slices.SortStableFunc(animals, ByColor)
	}

	if opts.ByWeight {
		slices.SortStableFunc(animals, ByWeight)
	}

	if opts.Reverse {
		slices.Reverse(animals)
	}
}
