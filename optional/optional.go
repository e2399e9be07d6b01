// Package optional provides a Value type for things that may be absent: the
// active sort field, a field's ordering policy, or the outcome of comparing
// two values that have no defined order.
package optional

import (
	"fmt"
	"iter"
)

// Value holds either one value of type T or nothing.
// The zero Value is empty. Value is comparable whenever T is, which lets it
// sit inside state that is compared for change detection.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPointer returns Some(*ptr), or None when ptr is nil.
func FromPointer[T any](ptr *T) Value[T] {
	if ptr == nil {
		return None[T]()
	}

	return Some(*ptr)
}

// All yields the value if present.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the value, panicking if it is absent.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the value if present, or defaultValue otherwise.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// OrElse returns o if it holds a value, otherwise alternative.
func (o Value[T]) OrElse(alternative Value[T]) Value[T] {
	if o.isSet {
		return o
	}

	return alternative
}

// Contains reports whether o holds a value equal to v under eq.
func (o Value[T]) Contains(v T, eq func(T, T) bool) bool {
	return o.isSet && eq(o.value, v)
}

// String renders "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map applies f to the value, if present.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if !o.isSet {
		return None[U]()
	}

	return Some(f(o.value))
}

// FlatMap applies f to the value, if present, without nesting the result.
func FlatMap[T any, U any](o Value[T], f func(T) Value[U]) Value[U] {
	if !o.isSet {
		return None[U]()
	}

	return f(o.value)
}

// Zip combines two Values with f. The result is None unless both are present,
// which is the usual shape for comparing two nullable columns.
func Zip[A any, B any, C any](a Value[A], b Value[B], f func(A, B) C) Value[C] {
	if !a.isSet || !b.isSet {
		return None[C]()
	}

	return Some(f(a.value, b.value))
}
