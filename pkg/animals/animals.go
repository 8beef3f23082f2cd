package animals

// HasWeight is implemented by anything that can be weighed
type HasWeight interface {
	Weight() int
}

// HasColor is implemented by anything that has a color
type HasColor interface {
	Color() string
}

// Animal is one of the known kinds of animals. The set of kinds is closed, new kinds
// are added by declaring them in this package and adding them to the registry.
//
//sumtype:decl
type Animal interface {
	HasWeight
	HasColor

	Kind() Kind

	isAnimal()
}

// Kind is the tag that identifies an animal kind on the wire
type Kind string

const (
	DogKind   Kind = "dog"
	CatKind   Kind = "cat"
	SnakeKind Kind = "snake"
)

func (k Kind) String() string {
	return string(k)
}

type attributes struct {
	weight int
	color  string
}

func (a attributes) Weight() int {
	return a.weight
}

func (a attributes) Color() string {
	return a.color
}

func (attributes) isAnimal() {}

type Dog struct {
	attributes
}

func (Dog) Kind() Kind { return DogKind }

type Cat struct {
	attributes
}

func (Cat) Kind() Kind { return CatKind }

type Snake struct {
	attributes
}

func (Snake) Kind() Kind { return SnakeKind }

type kind interface {
	Dog | Cat | Snake
	Animal
}

func newAnimal[T kind](color string, weight int) T {
	return T{attributes{weight: weight, color: color}}
}
