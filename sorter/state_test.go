package sorter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		state    State[string]
		field    string
		expected Status
	}{
		{name: "idle", state: Idle[string](), field: "a", expected: Unsorted},
		{name: "other field", state: ActiveOn("b", Descending), field: "a", expected: Unsorted},
		{name: "ascending", state: ActiveOn("a", Ascending), field: "a", expected: SortedAscending},
		{name: "descending", state: ActiveOn("a", Descending), field: "a", expected: SortedDescending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.state.Status(tt.field))
		})
	}
}

func TestStateAccessors(t *testing.T) {
	t.Parallel()

	idle := Idle[string]()
	assert.False(t, idle.Active())
	assert.True(t, idle.Field().Empty())
	assert.False(t, idle.IsActive(""))
	assert.Equal(t, "idle", idle.String())
	assert.Equal(t, State[string]{}, idle)

	active := ActiveOn("name", Descending)
	assert.True(t, active.Active())
	assert.True(t, active.IsActive("name"))
	assert.False(t, active.IsActive("age"))
	assert.Equal(t, Descending, active.Direction())
	assert.Equal(t, "name descending", active.String())

	f, ok := active.Field().Get()
	assert.True(t, ok)
	assert.Equal(t, "name", f)
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unsorted", Unsorted.String())
	assert.Equal(t, "ascending", SortedAscending.String())
	assert.Equal(t, "descending", SortedDescending.String())
	assert.Equal(t, "Status(7)", Status(7).String())
}
