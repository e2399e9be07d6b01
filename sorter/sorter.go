package sorter

import (
	"log/slog"
	"slices"

	"github.com/amp-labs/amp-sortable/compare"
	"github.com/amp-labs/amp-sortable/logger"
	"github.com/amp-labs/amp-sortable/optional"
	"github.com/amp-labs/amp-sortable/reactive"
)

// Field is implemented by field enumerations that carry their own comparator
// and policy, so a Sorter can be built with ForFields.
type Field[T any] interface {
	comparable

	// CompareBy compares a and b by this field.
	CompareBy(a, b T) optional.Value[compare.Ordering]
	// SortBy returns this field's policy, or None if it cannot be sorted.
	SortBy() optional.Value[Policy]
}

// Sorter is the sort state of one table: which field is active and in which
// direction. It is driven by Select (usually from a header click) and applied
// to data with Sort (usually on every render).
//
// A Sorter belongs to one component and is not safe for concurrent use. Do
// not call Select from inside a comparator or a subscriber.
type Sorter[F comparable, T any] struct {
	name    string
	compare CompareFunc[F, T]
	policy  PolicyFunc[F]
	state   *reactive.Cell[State[F]]
	log     *slog.Logger
}

// New creates a Sorter from a comparator and a policy lookup. Without
// WithField it starts idle.
func New[F comparable, T any](cmp CompareFunc[F, T], policy PolicyFunc[F], opts ...Option[F]) *Sorter[F, T] {
	o := options[F]{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = logger.Get()
	}

	s := &Sorter[F, T]{
		name:    sanitizeName(o.name),
		compare: cmp,
		policy:  policy,
		state:   o.cell,
	}

	s.log = o.logger.With("sorter", s.name)

	initial := s.initialState(o)

	if s.state == nil {
		s.state = reactive.New(initial)
	} else if s.state.Version() == 0 {
		s.state.Set(initial)
	}

	return s
}

// ForFields creates a Sorter for a field type that implements Field.
func ForFields[F Field[T], T any](opts ...Option[F]) *Sorter[F, T] {
	return New[F, T](
		func(field F, a, b T) optional.Value[compare.Ordering] { return field.CompareBy(a, b) },
		func(field F) optional.Value[Policy] { return field.SortBy() },
		opts...,
	)
}

func (s *Sorter[F, T]) initialState(o options[F]) State[F] {
	field, ok := o.field.Get()
	if !ok {
		return Idle[F]()
	}

	policy, ok := s.policy(field).Get()
	if !ok {
		s.log.Debug("initial sort field is unsortable, starting idle", "field", field)

		return Idle[F]()
	}

	dir := policy.DefaultDirection()
	if d, ok := o.direction.Get(); ok && policy.Permits(d) {
		dir = d
	}

	return ActiveOn(field, dir)
}

// Name is the label used in logs and metrics.
func (s *Sorter[F, T]) Name() string {
	return s.name
}

// State returns the current state. Changes made by Select are visible
// immediately.
func (s *Sorter[F, T]) State() State[F] {
	return s.state.Get()
}

// Policy returns the ordering policy of field, or None if it is unsortable.
func (s *Sorter[F, T]) Policy(field F) optional.Value[Policy] {
	return s.policy(field)
}

// Status returns the header status of field.
func (s *Sorter[F, T]) Status(field F) Status {
	return s.State().Status(field)
}

// Select handles a click on field's header and reports whether the state
// changed:
//   - an unsortable field is ignored;
//   - an inactive field becomes active in its default direction;
//   - the active field flips direction if its policy is reversible, and
//     otherwise stays as it is.
//
// Select never returns the sorter to idle.
func (s *Sorter[F, T]) Select(field F) bool {
	policy, ok := s.policy(field).Get()
	if !ok {
		s.log.Debug("ignoring selection of unsortable field", "field", field)
		selectionsTotal.WithLabelValues(s.name, outcomeUnsortable).Inc()

		return false
	}

	next := transition(s.State(), field, policy)

	if !s.state.Set(next) {
		selectionsTotal.WithLabelValues(s.name, outcomeUnchanged).Inc()

		return false
	}

	selectionsTotal.WithLabelValues(s.name, outcomeChanged).Inc()
	s.log.Debug("sort state changed", "state", next.String())

	return true
}

// Toggle is an alias for Select.
func (s *Sorter[F, T]) Toggle(field F) bool {
	return s.Select(field)
}

// Reset returns the sorter to idle. Header clicks never do this.
func (s *Sorter[F, T]) Reset() bool {
	return s.state.Set(Idle[F]())
}

func transition[F comparable](current State[F], field F, policy Policy) State[F] {
	switch {
	case !current.IsActive(field):
		return ActiveOn(field, policy.DefaultDirection())
	case policy.Reversible():
		return ActiveOn(field, current.Direction().Invert())
	default:
		// A fixed-direction field only has one valid state.
		return ActiveOn(field, policy.DefaultDirection())
	}
}

// Subscribe calls fn after every state change and returns a function that
// cancels the subscription.
func (s *Sorter[F, T]) Subscribe(fn func(State[F])) (unsubscribe func()) {
	return s.state.Subscribe(fn)
}

// Sort reorders items in place by the current state. It is a no-op while
// idle. The sort is stable.
func (s *Sorter[F, T]) Sort(items []T) {
	state := s.State()

	field, ok := state.Field().Get()
	if !ok || len(items) < 2 {
		return
	}

	SortBy(items, field, state.Direction(), s.nulls(field), s.compare)

	sortsTotal.WithLabelValues(s.name, state.Direction().String()).Inc()
	sortItems.WithLabelValues(s.name).Observe(float64(len(items)))
}

// Sorted returns a sorted copy of items, leaving items untouched.
func (s *Sorter[F, T]) Sorted(items []T) []T {
	out := slices.Clone(items)
	s.Sort(out)

	return out
}

// Func returns the three-way comparison for the current state, for sorting
// containers other than slices. While idle every pair compares equal.
func (s *Sorter[F, T]) Func() func(a, b T) int {
	state := s.State()

	field, ok := state.Field().Get()
	if !ok {
		return func(T, T) int { return 0 }
	}

	return Comparator(field, state.Direction(), s.nulls(field), s.compare)
}

// nulls looks up the null placement of the active field. If the field's
// policy has since disappeared, the default placement applies.
func (s *Sorter[F, T]) nulls(field F) NullPlacement {
	return s.policy(field).GetOrElse(Policy{}).Nulls()
}
