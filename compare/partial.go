package compare

import (
	"cmp"

	"facette.io/natsort"
	"github.com/amp-labs/amp-sortable/optional"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Partial compares a and b, returning None when the two have no defined
// order. A value that is not even comparable with itself (NaN, a missing
// cell, an "unknown" marker) is treated as null by the sorter.
type Partial[T any] func(a, b T) optional.Value[Ordering]

// Ordered compares any cmp.Ordered values. Floating point NaN is
// incomparable with everything, including itself.
func Ordered[T cmp.Ordered](a, b T) optional.Value[Ordering] {
	if isNaN(a) || isNaN(b) {
		return optional.None[Ordering]()
	}

	return optional.Some(FromInt(cmp.Compare(a, b)))
}

// isNaN reports whether x is a floating point NaN. Only NaN is unequal to itself.
func isNaN[T cmp.Ordered](x T) bool {
	return x != x //nolint:gocritic
}

// Total lifts a three-way comparison that is defined for every pair.
func Total[T any](f func(a, b T) int) Partial[T] {
	return func(a, b T) optional.Value[Ordering] {
		return optional.Some(FromInt(f(a, b)))
	}
}

// Sortables compares types implementing Sortable.
func Sortables[T Sortable[T]](a, b T) optional.Value[Ordering] {
	switch {
	case a.Equals(b):
		return optional.Some(Equal)
	case a.LessThan(b):
		return optional.Some(Less)
	default:
		return optional.Some(Greater)
	}
}

// Optionals compares two optional values with f. An absent side is null,
// so the result is None unless both values are present.
func Optionals[T any](a, b optional.Value[T], f Partial[T]) optional.Value[Ordering] {
	return optional.FlatMap(
		optional.Zip(a, b, func(x, y T) [2]T { return [2]T{x, y} }),
		func(pair [2]T) optional.Value[Ordering] { return f(pair[0], pair[1]) },
	)
}

// Pointers compares the targets of two pointers, treating nil as null.
func Pointers[T any](a, b *T, f Partial[T]) optional.Value[Ordering] {
	return Optionals(optional.FromPointer(a), optional.FromPointer(b), f)
}

// Natural orders strings so that embedded numbers compare by value,
// e.g. "row 2" before "row 10".
func Natural(a, b string) optional.Value[Ordering] {
	switch {
	case a == b:
		return optional.Some(Equal)
	case natsort.Compare(a, b):
		return optional.Some(Less)
	case natsort.Compare(b, a):
		return optional.Some(Greater)
	default:
		return optional.Some(FromInt(cmp.Compare(a, b)))
	}
}

// Collated returns a locale-aware string comparator for the given language.
// The returned function reuses one collator and is not safe for concurrent use.
func Collated(tag language.Tag, opts ...collate.Option) Partial[string] {
	collator := collate.New(tag, opts...)

	return func(a, b string) optional.Value[Ordering] {
		return optional.Some(FromInt(collator.CompareString(a, b)))
	}
}
