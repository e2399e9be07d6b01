package compare

import "fmt"

// Ordering is the result of comparing two values.
// Its integer values match the convention used by cmp.Compare and
// slices.SortFunc, so Int can be handed straight to the standard library.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// FromInt normalizes any three-way comparison result to an Ordering.
func FromInt(n int) Ordering {
	switch {
	case n < 0:
		return Less
	case n > 0:
		return Greater
	default:
		return Equal
	}
}

// Reverse flips Less and Greater. Equal is unchanged.
func (o Ordering) Reverse() Ordering {
	return -o
}

// Int returns the ordering as -1, 0 or +1.
func (o Ordering) Int() int {
	return int(o)
}

// Then returns o unless it is Equal, in which case it evaluates next.
func (o Ordering) Then(next func() Ordering) Ordering {
	if o != Equal {
		return o
	}

	return next()
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}
