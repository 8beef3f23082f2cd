package animals

import (
	"testing"

	"github.com/matryer/is"
)

func TestSortByColor(t *testing.T) {
	is := is.New(t)

	arr := FromRecords(testRecords)
	Sort(arr, SortOptions{ByColor: true})

	is.Equal(ToRecords(arr), []Record{
		{Type: "cat", Weight: 30, Color: "black"},
		{Type: "snake", Weight: 2, Color: "black"},
		{Type: "dog", Weight: 17, Color: "brown"},
		{Type: "cat", Weight: 17, Color: "white"},
		{Type: "dog", Weight: 17, Color: "white"},
	})
}

func TestSortByColorIsByteWise(t *testing.T) {
	is := is.New(t)

	arr := FromRecords([]Record{
		{Type: "dog", Weight: 1, Color: "white"},
		{Type: "dog", Weight: 2, Color: "White"},
		{Type: "dog", Weight: 3, Color: "black"},
	})
	Sort(arr, SortOptions{ByColor: true})

	is.Equal(arr[0].Color(), "White") // upper case sorts before lower case
	is.Equal(arr[1].Color(), "black")
	is.Equal(arr[2].Color(), "white")
}

func TestSortByWeightKeepsInputOrderForEqualWeights(t *testing.T) {
	is := is.New(t)

	arr := FromRecords(testRecords)
	Sort(arr, SortOptions{ByWeight: true})

	is.Equal(ToRecords(arr), []Record{
		{Type: "snake", Weight: 2, Color: "black"},
		{Type: "cat", Weight: 17, Color: "white"},
		{Type: "dog", Weight: 17, Color: "white"},
		{Type: "dog", Weight: 17, Color: "brown"},
		{Type: "cat", Weight: 30, Color: "black"},
	})
}

func TestWeightSortIsAppliedAfterColorSort(t *testing.T) {
	is := is.New(t)

	arr := FromRecords(testRecords)
	Sort(arr, SortOptions{ByColor: true, ByWeight: true})

	// weights are ordered, equal weights keep the order of the color sort
	is.Equal(ToRecords(arr), []Record{
		{Type: "snake", Weight: 2, Color: "black"},
		{Type: "dog", Weight: 17, Color: "brown"},
		{Type: "cat", Weight: 17, Color: "white"},
		{Type: "dog", Weight: 17, Color: "white"},
		{Type: "cat", Weight: 30, Color: "black"},
	})
}

func TestReverseAloneReversesInputOrder(t *testing.T) {
	is := is.New(t)

	arr := FromRecords(testRecords)
	Sort(arr, SortOptions{Reverse: true})

	is.Equal(ToRecords(arr), []Record{
		{Type: "dog", Weight: 17, Color: "brown"},
		{Type: "snake", Weight: 2, Color: "black"},
		{Type: "dog", Weight: 17, Color: "white"},
		{Type: "cat", Weight: 30, Color: "black"},
		{Type: "cat", Weight: 17, Color: "white"},
	})
}

func TestReverseIsAppliedAfterSorting(t *testing.T) {
	is := is.New(t)

	arr := FromRecords(testRecords[:3])
	Sort(arr, SortOptions{ByColor: true, Reverse: true})

	is.Equal(ToRecords(arr), []Record{
		{Type: "dog", Weight: 17, Color: "white"},
		{Type: "cat", Weight: 17, Color: "white"},
		{Type: "cat", Weight: 30, Color: "black"},
	})
}

func TestNoOptionsLeavesOrderUntouched(t *testing.T) {
	is := is.New(t)

	arr := FromRecords(testRecords)
	Sort(arr, SortOptions{})

	is.Equal(ToRecords(arr), testRecords)
}

func TestComparators(t *testing.T) {
	is := is.New(t)

	dog, _ := New("dog", "white", 17)
	cat, _ := New("cat", "black", 30)

	is.Equal(ByColor(cat, dog), -1)
	is.Equal(ByColor(dog, cat), 1)
	is.Equal(ByColor(dog, dog), 0)
	is.Equal(ByWeight(dog, cat), -1)
	is.Equal(ByWeight(cat, dog), 1)
	is.Equal(ByWeight(cat, cat), 0)
}

var testRecords []Record = []Record{
	{Type: "cat", Weight: 17, Color: "white"},
	{Type: "cat", Weight: 30, Color: "black"},
	{Type: "dog", Weight: 17, Color: "white"},
	{Type: "snake", Weight: 2, Color: "black"},
	{Type: "dog", Weight: 17, Color: "brown"},
}
