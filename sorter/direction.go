package sorter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-sortable/compare"
)

var ErrInvalidDirection = errors.New("invalid sort direction")

// Direction is the order a field is sorted in. The zero value is Ascending.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// ParseDirection accepts "ascending"/"asc" and "descending"/"desc", in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Invert returns the opposite direction.
func (d Direction) Invert() Direction {
	if d == Descending {
		return Ascending
	}

	return Descending
}

// Apply orients an ascending ordering to d.
func (d Direction) Apply(o compare.Ordering) compare.Ordering {
	if d == Descending {
		return o.Reverse()
	}

	return o
}

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	if d != Ascending && d != Descending {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}

	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
