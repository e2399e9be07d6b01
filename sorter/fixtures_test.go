package sorter

import (
	"testing"

	"github.com/amp-labs/amp-sortable/compare"
	"github.com/amp-labs/amp-sortable/optional"
	"github.com/neilotoole/slogt"
)

// person is the row type used across the sorter tests.
type person struct {
	name   string
	age    int
	height optional.Value[float64] // null when unknown
	notes  string
}

type personField int

const (
	personName personField = iota
	personAge
	personHeight
	personNotes
)

func (f personField) String() string {
	switch f {
	case personName:
		return "name"
	case personAge:
		return "age"
	case personHeight:
		return "height"
	case personNotes:
		return "notes"
	default:
		return "unknown"
	}
}

func parsePersonField(name string) (personField, bool) {
	for _, f := range []personField{personName, personAge, personHeight, personNotes} {
		if f.String() == name {
			return f, true
		}
	}

	return 0, false
}

func (f personField) CompareBy(a, b person) optional.Value[compare.Ordering] {
	switch f {
	case personName:
		return compare.Ordered(a.name, b.name)
	case personAge:
		return compare.Ordered(a.age, b.age)
	case personHeight:
		return compare.Optionals(a.height, b.height, compare.Ordered[float64])
	case personNotes:
		return compare.Ordered(a.notes, b.notes)
	default:
		return optional.None[compare.Ordering]()
	}
}

func (f personField) SortBy() optional.Value[Policy] {
	switch f {
	case personName:
		return Sortable(IncreasingOrDecreasing())
	case personAge:
		return Sortable(Increasing())
	case personHeight:
		return Sortable(DecreasingOrIncreasing().WithNulls(NullsFirst))
	case personNotes:
		return Unsortable()
	default:
		return Unsortable()
	}
}

var _ = ForFields[personField, person]

func newPeopleSorter(t *testing.T, opts ...Option[personField]) *Sorter[personField, person] {
	t.Helper()

	opts = append([]Option[personField]{
		WithName[personField]("test_" + t.Name()),
		WithLogger[personField](slogt.New(t)),
	}, opts...)

	return ForFields[personField, person](opts...)
}

func names(people []person) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, p.name)
	}

	return out
}

func people() []person {
	return []person{
		{name: "Bob", age: 42, height: optional.Some(1.80)},
		{name: "Alice", age: 28, height: optional.None[float64]()},
		{name: "Carol", age: 35, height: optional.Some(1.65)},
		{name: "Dave", age: 28, height: optional.Some(1.90)},
		{name: "Erin", age: 35, height: optional.None[float64]()},
	}
}
