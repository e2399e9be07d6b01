// Package header turns sort state into what a column header shows: a status,
// an arrow glyph, a style class and a click handler. It never sorts.
package header

import (
	"github.com/amp-labs/amp-sortable/optional"
	"github.com/amp-labs/amp-sortable/sorter"
)

// Glyphs shown next to a header label.
const (
	GlyphAscending  = "↓"
	GlyphDescending = "↑"
	GlyphInactive   = "↕"
)

// Classes a web host can attach to a header cell.
const (
	ClassNone       = "sort-none"
	ClassAscending  = "sort-asc"
	ClassDescending = "sort-desc"
)

// Sorter is the part of a sorter.Sorter a header needs.
type Sorter[F comparable] interface {
	State() sorter.State[F]
	Select(field F) bool
	Policy(field F) optional.Value[sorter.Policy]
}

// Header is the view of one column header.
type Header[F comparable] struct {
	sorter Sorter[F]
	field  F
}

// For returns the header of field.
func For[F comparable](s Sorter[F], field F) Header[F] {
	return Header[F]{sorter: s, field: field}
}

// Row returns the headers of fields, in order.
func Row[F comparable](s Sorter[F], fields ...F) []Header[F] {
	row := make([]Header[F], 0, len(fields))
	for _, f := range fields {
		row = append(row, For(s, f))
	}

	return row
}

func (h Header[F]) Field() F {
	return h.field
}

// Status is the field's current sort status.
func (h Header[F]) Status() sorter.Status {
	return h.sorter.State().Status(h.field)
}

// Active reports whether the table is sorted by this field.
func (h Header[F]) Active() bool {
	return h.sorter.State().IsActive(h.field)
}

// Sortable reports whether clicking the header can do anything.
func (h Header[F]) Sortable() bool {
	return h.sorter.Policy(h.field).NonEmpty()
}

// Glyph is the arrow to show next to the label:
//   - unsortable fields get no glyph;
//   - one-way fields always point their only way;
//   - two-way fields point the active direction, or show ↕ while inactive.
func (h Header[F]) Glyph() string {
	policy, ok := h.sorter.Policy(h.field).Get()
	if !ok {
		return ""
	}

	if !policy.Reversible() {
		return arrow(policy.DefaultDirection())
	}

	state := h.sorter.State()
	if !state.IsActive(h.field) {
		return GlyphInactive
	}

	return arrow(state.Direction())
}

// Class is a CSS-style class for the header's status, or "" if the field is
// unsortable.
func (h Header[F]) Class() string {
	if !h.Sortable() {
		return ""
	}

	switch h.Status() {
	case sorter.SortedAscending:
		return ClassAscending
	case sorter.SortedDescending:
		return ClassDescending
	default:
		return ClassNone
	}
}

// Click selects the field and reports whether the sort state changed.
func (h Header[F]) Click() bool {
	return h.sorter.Select(h.field)
}

// Handler returns a click callback for hosts that want a plain func().
func (h Header[F]) Handler() func() {
	return func() {
		h.sorter.Select(h.field)
	}
}

func arrow(d sorter.Direction) string {
	if d == sorter.Descending {
		return GlyphDescending
	}

	return GlyphAscending
}
