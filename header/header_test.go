package header

import (
	"testing"

	"github.com/amp-labs/amp-sortable/compare"
	"github.com/amp-labs/amp-sortable/optional"
	"github.com/amp-labs/amp-sortable/sorter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	name  string
	year  int
	notes string
}

var policies = sorter.PolicyTable[string]{ //nolint:gochecknoglobals
	"name":  sorter.Sortable(sorter.IncreasingOrDecreasing()),
	"year":  sorter.Sortable(sorter.Decreasing()),
	"rank":  sorter.Sortable(sorter.Increasing()),
	"notes": sorter.Unsortable(),
}

func compareRows(field string, a, b row) optional.Value[compare.Ordering] {
	switch field {
	case "name":
		return compare.Ordered(a.name, b.name)
	case "year":
		return compare.Ordered(a.year, b.year)
	default:
		return compare.Ordered(a.notes, b.notes)
	}
}

func newSorter(t *testing.T) *sorter.Sorter[string, row] {
	t.Helper()

	return sorter.New(compareRows, policies.Lookup, sorter.WithName[string]("header_"+t.Name()))
}

func TestGlyphAndClass(t *testing.T) {
	t.Parallel()

	s := newSorter(t)

	name := For[string](s, "name")
	year := For[string](s, "year")
	rank := For[string](s, "rank")
	notes := For[string](s, "notes")

	// Idle.
	assert.Equal(t, GlyphInactive, name.Glyph())
	assert.Equal(t, GlyphDescending, year.Glyph())
	assert.Equal(t, GlyphAscending, rank.Glyph())
	assert.Empty(t, notes.Glyph())

	assert.Equal(t, ClassNone, name.Class())
	assert.Equal(t, ClassNone, year.Class())
	assert.Empty(t, notes.Class())

	require.True(t, name.Click())
	assert.Equal(t, GlyphAscending, name.Glyph())
	assert.Equal(t, ClassAscending, name.Class())
	assert.Equal(t, sorter.SortedAscending, name.Status())

	require.True(t, name.Click())
	assert.Equal(t, GlyphDescending, name.Glyph())
	assert.Equal(t, ClassDescending, name.Class())

	require.True(t, year.Click())
	assert.Equal(t, GlyphInactive, name.Glyph())
	assert.Equal(t, GlyphDescending, year.Glyph())
	assert.Equal(t, ClassDescending, year.Class())
	assert.True(t, year.Active())
	assert.False(t, name.Active())
}

func TestClickUnsortable(t *testing.T) {
	t.Parallel()

	s := newSorter(t)
	notes := For[string](s, "notes")

	assert.False(t, notes.Sortable())
	assert.False(t, notes.Click())

	notes.Handler()()

	assert.False(t, s.State().Active())
	assert.Equal(t, sorter.Unsorted, notes.Status())
}

func TestHandler(t *testing.T) {
	t.Parallel()

	s := newSorter(t)
	onClick := For[string](s, "name").Handler()

	onClick()
	assert.Equal(t, sorter.ActiveOn("name", sorter.Ascending), s.State())

	onClick()
	assert.Equal(t, sorter.ActiveOn("name", sorter.Descending), s.State())
}

func TestRow(t *testing.T) {
	t.Parallel()

	s := newSorter(t)
	headers := Row[string](s, "name", "year", "notes")

	require.Len(t, headers, 3)

	fields := make([]string, 0, len(headers))
	for _, h := range headers {
		fields = append(fields, h.Field())
	}

	assert.Equal(t, []string{"name", "year", "notes"}, fields)
	assert.Empty(t, Row[string](s))
}
