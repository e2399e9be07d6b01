package sorter

import (
	"fmt"

	"github.com/amp-labs/amp-sortable/optional"
)

// Status is what a header cell displays for its field.
type Status int

const (
	Unsorted Status = iota
	SortedAscending
	SortedDescending
)

func (s Status) String() string {
	switch s {
	case Unsorted:
		return "unsorted"
	case SortedAscending:
		return "ascending"
	case SortedDescending:
		return "descending"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// State is the active field and direction. A State with no field is idle and
// its direction is meaningless; idle states always carry Ascending so that
// any two idle states are equal.
type State[F comparable] struct {
	field     optional.Value[F]
	direction Direction
}

// Idle returns the state with no active field.
func Idle[F comparable]() State[F] {
	return State[F]{}
}

// ActiveOn returns the state sorting by field in direction d.
func ActiveOn[F comparable](field F, d Direction) State[F] {
	return State[F]{field: optional.Some(field), direction: d}
}

// Field returns the active field, if any.
func (s State[F]) Field() optional.Value[F] {
	return s.field
}

func (s State[F]) Direction() Direction {
	return s.direction
}

// Active reports whether some field is active.
func (s State[F]) Active() bool {
	return s.field.NonEmpty()
}

// IsActive reports whether field is the active field.
func (s State[F]) IsActive(field F) bool {
	f, ok := s.field.Get()

	return ok && f == field
}

// Status derives the header status of field.
func (s State[F]) Status(field F) Status {
	switch {
	case !s.IsActive(field):
		return Unsorted
	case s.direction == Descending:
		return SortedDescending
	default:
		return SortedAscending
	}
}

func (s State[F]) String() string {
	f, ok := s.field.Get()
	if !ok {
		return "idle"
	}

	return fmt.Sprintf("%v %s", f, s.direction)
}
