package sorter

import (
	"slices"

	"github.com/amp-labs/amp-sortable/compare"
	"github.com/amp-labs/amp-sortable/optional"
)

// CompareFunc compares two rows by one field. It returns None only when at
// least one of the two values is null, meaning the value is not comparable
// with itself. Returning None for two non-null values leaves the sort order
// unspecified: they are treated as equal, which breaks transitivity.
type CompareFunc[F comparable, T any] func(field F, a, b T) optional.Value[compare.Ordering]

// SortBy stably sorts items by field in direction dir. Nulls are placed per
// nulls regardless of direction, and rows that compare equal (or that are
// both null) keep their relative order.
func SortBy[F comparable, T any](items []T, field F, dir Direction, nulls NullPlacement, cmp CompareFunc[F, T]) {
	if len(items) < 2 {
		return
	}

	slices.SortStableFunc(items, Comparator(field, dir, nulls, cmp))
}

// Comparator composes cmp with a direction and null placement into a total
// three-way comparison suitable for the slices package.
//
// Direction is applied to the ascending result of cmp and never to the null
// placement. A value is null when it is not comparable with itself. Two
// non-null values that are still incomparable are treated as equal.
func Comparator[F comparable, T any](field F, dir Direction, nulls NullPlacement, cmp CompareFunc[F, T]) func(a, b T) int {
	return func(a, b T) int {
		if o, ok := cmp(field, a, b).Get(); ok {
			return dir.Apply(o).Int()
		}

		aNull := cmp(field, a, a).Empty()
		bNull := cmp(field, b, b).Empty()

		return placeNulls(aNull, bNull, nulls).Int()
	}
}

func placeNulls(aNull, bNull bool, nulls NullPlacement) compare.Ordering {
	switch {
	case aNull == bNull:
		return compare.Equal
	case aNull == (nulls == NullsFirst):
		return compare.Less
	default:
		return compare.Greater
	}
}
