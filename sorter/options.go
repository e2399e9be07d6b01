package sorter

import (
	"log/slog"

	"github.com/amp-labs/amp-sortable/optional"
	"github.com/amp-labs/amp-sortable/reactive"
)

// Option configures a Sorter.
type Option[F comparable] func(*options[F])

type options[F comparable] struct {
	name      string
	logger    *slog.Logger
	field     optional.Value[F]
	direction optional.Value[Direction]
	cell      *reactive.Cell[State[F]]
}

// WithName labels the sorter in logs and metrics.
func WithName[F comparable](name string) Option[F] {
	return func(o *options[F]) {
		o.name = name
	}
}

// WithLogger sets the logger. The default is logger.Get().
func WithLogger[F comparable](l *slog.Logger) Option[F] {
	return func(o *options[F]) {
		o.logger = l
	}
}

// WithField starts the sorter active on field, in the field's default
// direction. It has no effect if field is unsortable.
func WithField[F comparable](field F) Option[F] {
	return func(o *options[F]) {
		o.field = optional.Some(field)
	}
}

// WithDirection sets the initial direction for WithField. It is ignored when
// the field's policy does not permit it.
func WithDirection[F comparable](d Direction) Option[F] {
	return func(o *options[F]) {
		o.direction = optional.Some(d)
	}
}

// WithCell keeps state in a cell owned by the host, so the state outlives the
// Sorter value (for example across renders). The initial state from
// WithField is only written if the cell has never been written.
func WithCell[F comparable](cell *reactive.Cell[State[F]]) Option[F] {
	return func(o *options[F]) {
		o.cell = cell
	}
}
