package animals

import (
	"slices"
)

type constructor func(color string, weight int) Animal

func constructorFor[T kind]() constructor {
	return func(color string, weight int) Animal {
		return newAnimal[T](color, weight)
	}
}

var registry = map[Kind]constructor{
	DogKind:   constructorFor[Dog](),
	CatKind:   constructorFor[Cat](),
	SnakeKind: constructorFor[Snake](),
}

// New creates an animal of the kind identified by tag. The boolean is false if the
// tag does not belong to a registered kind.
func New(tag, color string, weight int) (Animal, bool) {
	newFn, ok := registry[Kind(tag)]
	if !ok {
		return nil, false
	}

	return newFn(color, weight), true
}

// IsKnown reports whether tag identifies a registered kind
func IsKnown(tag string) bool {
	_, ok := registry[Kind(tag)]
	return ok
}

// Kinds returns the registered kinds in lexical order
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}

	slices.Sort(kinds)

	return kinds
}
