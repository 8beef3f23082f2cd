package animals

import (
	"testing"

	"github.com/matryer/is"
)

func TestNewCreatesAnimalOfRegisteredKind(t *testing.T) {
	is := is.New(t)

	a, ok := New("snake", "green", 3)
	is.True(ok)

	_, isSnake := a.(Snake)
	is.True(isSnake) // should be a snake
	is.Equal(a.Kind(), SnakeKind)
	is.Equal(a.Color(), "green")
	is.Equal(a.Weight(), 3)
}

func TestNewDoesNotKnowElephants(t *testing.T) {
	is := is.New(t)

	a, ok := New("elephant", "gray", 5000)
	is.True(!ok)
	is.Equal(a, nil)
	is.True(!IsKnown("elephant"))
}

func TestTagsAreCaseSensitive(t *testing.T) {
	is := is.New(t)

	_, ok := New("Dog", "white", 17)
	is.True(!ok)
}

func TestKindsAreDistinctAndRegistered(t *testing.T) {
	is := is.New(t)

	kinds := Kinds()
	is.Equal(kinds, []Kind{CatKind, DogKind, SnakeKind})

	for _, k := range kinds {
		a, ok := New(k.String(), "white", 1)
		is.True(ok)
		is.Equal(a.Kind(), k) // constructor should match its tag
	}
}

func TestNoRangeValidationOnAttributes(t *testing.T) {
	is := is.New(t)

	a, ok := New("cat", "", -12)
	is.True(ok)
	is.Equal(a.Weight(), -12)
	is.Equal(a.Color(), "")
}

func TestFromRecordsDropsUnknownKinds(t *testing.T) {
	is := is.New(t)

	records := []Record{
		{Type: "elephant", Weight: 5000, Color: "gray"},
		{Type: "dog", Weight: 17, Color: "white"},
		{Type: "unicorn", Weight: 1, Color: "pink"},
		{Type: "cat", Weight: 30, Color: "black"},
	}

	arr := FromRecords(records)
	is.Equal(len(arr), 2)
	is.Equal(ToRecords(arr), []Record{
		{Type: "dog", Weight: 17, Color: "white"},
		{Type: "cat", Weight: 30, Color: "black"},
	})
}

func TestFromRecordsWithNoKnownKindsIsEmptyNotNil(t *testing.T) {
	is := is.New(t)

	arr := FromRecords([]Record{{Type: "elephant", Weight: 5000, Color: "gray"}})
	is.True(arr != nil)
	is.Equal(len(arr), 0)
	is.True(ToRecords(arr) != nil)
}

func TestToRecordUsesKindAsType(t *testing.T) {
	is := is.New(t)

	a, _ := New("dog", "brown", 22)
	is.Equal(ToRecord(a), Record{Type: "dog", Weight: 22, Color: "brown"})
}
