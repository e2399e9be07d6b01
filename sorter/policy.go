package sorter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-sortable/optional"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidPolicy        = errors.New("invalid ordering policy")
	ErrInvalidNullPlacement = errors.New("invalid null placement")
)

// NullPlacement decides where rows whose field value is null (incomparable
// with itself) end up. It is independent of the sort direction, matching SQL's
// NULLS FIRST / NULLS LAST.
type NullPlacement int

const (
	NullsLast NullPlacement = iota
	NullsFirst
)

func (n NullPlacement) String() string {
	switch n {
	case NullsLast:
		return "last"
	case NullsFirst:
		return "first"
	default:
		return fmt.Sprintf("NullPlacement(%d)", int(n))
	}
}

func (n NullPlacement) MarshalText() ([]byte, error) {
	if n != NullsLast && n != NullsFirst {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNullPlacement, int(n))
	}

	return []byte(n.String()), nil
}

func (n *NullPlacement) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "last", "nulls_last", "":
		*n = NullsLast
	case "first", "nulls_first":
		*n = NullsFirst
	default:
		return fmt.Errorf("%w: %q", ErrInvalidNullPlacement, text)
	}

	return nil
}

// Allowed enumerates the directions a field may be sorted in. Every variant
// permits at least one direction.
type Allowed int

const (
	// BothAscendingFirst permits both directions, starting ascending.
	BothAscendingFirst Allowed = iota
	// BothDescendingFirst permits both directions, starting descending.
	BothDescendingFirst
	OnlyAscending
	OnlyDescending
)

var allowedNames = map[Allowed]string{ //nolint:gochecknoglobals
	BothAscendingFirst:  "increasing_or_decreasing",
	BothDescendingFirst: "decreasing_or_increasing",
	OnlyAscending:       "ascending",
	OnlyDescending:      "descending",
}

// ParseAllowed accepts the names produced by Allowed.String, plus
// "increasing"/"decreasing" as aliases for the single-direction variants.
func ParseAllowed(s string) (Allowed, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	switch name {
	case "increasing":
		return OnlyAscending, nil
	case "decreasing":
		return OnlyDescending, nil
	}

	for allowed, n := range allowedNames {
		if n == name {
			return allowed, nil
		}
	}

	return BothAscendingFirst, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

func (a Allowed) String() string {
	if name, ok := allowedNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Allowed(%d)", int(a))
}

// Policy describes how one field may be sorted. The zero Policy permits both
// directions, starts ascending and puts nulls last.
type Policy struct {
	allowed Allowed
	nulls   NullPlacement
}

// Increasing permits ascending order only.
func Increasing() Policy {
	return Policy{allowed: OnlyAscending}
}

// Decreasing permits descending order only.
func Decreasing() Policy {
	return Policy{allowed: OnlyDescending}
}

// IncreasingOrDecreasing permits both directions, starting ascending.
func IncreasingOrDecreasing() Policy {
	return Policy{allowed: BothAscendingFirst}
}

// DecreasingOrIncreasing permits both directions, starting descending.
func DecreasingOrIncreasing() Policy {
	return Policy{allowed: BothDescendingFirst}
}

// Unsortable is the policy lookup result for a field that cannot be sorted.
func Unsortable() optional.Value[Policy] {
	return optional.None[Policy]()
}

// Sortable wraps p as a policy lookup result.
func Sortable(p Policy) optional.Value[Policy] {
	return optional.Some(p)
}

// WithNulls returns a copy of p with the given null placement.
func (p Policy) WithNulls(n NullPlacement) Policy {
	p.nulls = n

	return p
}

func (p Policy) Allowed() Allowed {
	return p.allowed
}

func (p Policy) Nulls() NullPlacement {
	return p.nulls
}

// DefaultDirection is the direction a field starts in when it becomes active.
func (p Policy) DefaultDirection() Direction {
	switch p.allowed {
	case BothDescendingFirst, OnlyDescending:
		return Descending
	default:
		return Ascending
	}
}

// Reversible reports whether selecting the active field again flips direction.
func (p Policy) Reversible() bool {
	return p.allowed == BothAscendingFirst || p.allowed == BothDescendingFirst
}

// Permits reports whether d is a valid direction for this field.
func (p Policy) Permits(d Direction) bool {
	return p.Reversible() || d == p.DefaultDirection()
}

func (p Policy) String() string {
	return fmt.Sprintf("%s (nulls %s)", p.allowed, p.nulls)
}

// MarshalYAML writes the short scalar form when nulls are last, and the
// mapping form otherwise.
func (p Policy) MarshalYAML() (any, error) {
	if p.nulls == NullsLast {
		return p.allowed.String(), nil
	}

	return policyDoc{Order: p.allowed.String(), Nulls: p.nulls.String()}, nil
}

type policyDoc struct {
	Order string `yaml:"order"`
	Nulls string `yaml:"nulls,omitempty"`
}

// UnmarshalYAML accepts either a scalar ("decreasing_or_increasing") or a
// mapping ({order: descending, nulls: first}).
func (p *Policy) UnmarshalYAML(node *yaml.Node) error {
	var doc policyDoc

	switch node.Kind { //nolint:exhaustive
	case yaml.ScalarNode:
		doc.Order = node.Value
	case yaml.MappingNode:
		if err := node.Decode(&doc); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: line %d: expected a string or a mapping", ErrInvalidPolicy, node.Line)
	}

	allowed, err := ParseAllowed(doc.Order)
	if err != nil {
		return err
	}

	var nulls NullPlacement
	if err := nulls.UnmarshalText([]byte(doc.Nulls)); err != nil {
		return err
	}

	*p = Policy{allowed: allowed, nulls: nulls}

	return nil
}

// UnmarshalText parses the scalar form only.
func (p *Policy) UnmarshalText(text []byte) error {
	allowed, err := ParseAllowed(string(text))
	if err != nil {
		return err
	}

	*p = Policy{allowed: allowed}

	return nil
}
