package algorithms

import "github.com/san-kum/sortvis/internal/steps"

type Category string

const (
	CategorySorting Category = "Sorting"
	CategorySearch  Category = "Search"
)

// Input is the array a generator replays. Target is only read by searches.
type Input struct {
	Values []int
	Target int
}

// Info is the display metadata of an algorithm.
type Info struct {
	ID              string
	Name            string
	Category        Category
	Summary         string
	TimeComplexity  string
	SpaceComplexity string
}

type Algorithm interface {
	Info() Info
	Generate(in Input) steps.Sequence
}
