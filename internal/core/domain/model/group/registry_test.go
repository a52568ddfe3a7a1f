package group_test

import (
	"testing"

	"routeboard/internal/core/domain/model/group"
	"routeboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = []string{"#red", "#green", "#blue"}

func newRegistry(t *testing.T) *group.Registry {
	t.Helper()
	r, err := group.NewRegistry(testPalette)
	require.NoError(t, err)
	return r
}

func TestNewRegistry(t *testing.T) {
	t.Run("should create empty registry", func(t *testing.T) {
		r := newRegistry(t)

		require.NoError(t, r.Validate())
		assert.Zero(t, r.Len())
		assert.Empty(t, r.Names())
	})

	t.Run("should fail with empty palette", func(t *testing.T) {
		r, err := group.NewRegistry(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, r)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var r *group.Registry

		assert.Equal(t, group.ErrRegistryIsNotConstructed, r.Validate())
		assert.Equal(t, group.ErrRegistryIsNotConstructed, (&group.Registry{}).Validate())
	})
}

func TestRegistry_Add(t *testing.T) {
	t.Run("assigns first unused palette color", func(t *testing.T) {
		r := newRegistry(t)

		require.NoError(t, r.Add("Fri-P"))
		require.NoError(t, r.Add("Sat-P"))

		color, ok := r.Color("Fri-P")
		assert.True(t, ok)
		assert.Equal(t, "#red", color)

		color, _ = r.Color("Sat-P")
		assert.Equal(t, "#green", color)
	})

	t.Run("is idempotent and never overwrites the color", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.Add("Fri-P"))

		require.NoError(t, r.Add("Fri-P"))

		assert.Equal(t, 1, r.Len())
		color, _ := r.Color("Fri-P")
		assert.Equal(t, "#red", color)
	})

	t.Run("declines blank name", func(t *testing.T) {
		r := newRegistry(t)

		require.ErrorIs(t, r.Add(""), errs.ErrValueIsRequired)
		assert.Zero(t, r.Len())
	})

	t.Run("cycles the palette once exhausted", func(t *testing.T) {
		r := newRegistry(t)
		for _, name := range []string{"A", "B", "C", "D"} {
			require.NoError(t, r.Add(name))
		}

		// Fourth group wraps around: every group still has some color.
		color, ok := r.Color("D")
		assert.True(t, ok)
		assert.Contains(t, testPalette, color)
	})

	t.Run("skips colors reserved via AddWithColor", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.AddWithColor("Pickup", "#red"))

		require.NoError(t, r.Add("Custom"))

		color, _ := r.Color("Custom")
		assert.Equal(t, "#green", color)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.Add("Zebra"))
		require.NoError(t, r.Add("Alpha"))

		assert.Equal(t, []string{"Zebra", "Alpha"}, r.Names())
	})
}

func TestRegistry_Delete(t *testing.T) {
	t.Run("removes the entry", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.Add("Fri-P"))

		assert.True(t, r.Delete("Fri-P"))
		assert.False(t, r.Has("Fri-P"))
		assert.Zero(t, r.Len())
	})

	t.Run("reports false for unknown name", func(t *testing.T) {
		r := newRegistry(t)

		assert.False(t, r.Delete("Ghost"))
	})

	t.Run("frees the color for reuse", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.Add("A"))
		require.NoError(t, r.Add("B"))

		r.Delete("A")
		require.NoError(t, r.Add("C"))

		color, _ := r.Color("C")
		assert.Equal(t, "#red", color)
	})
}

func TestRegistry_Rename(t *testing.T) {
	t.Run("replaces the key keeping color and position", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.Add("Fri-P"))
		require.NoError(t, r.Add("Sat-P"))

		renamed, err := r.Rename("Fri-P", "Friday")

		require.NoError(t, err)
		assert.True(t, renamed)
		assert.False(t, r.Has("Fri-P"))
		color, ok := r.Color("Friday")
		assert.True(t, ok)
		assert.Equal(t, "#red", color)
		assert.Equal(t, []string{"Friday", "Sat-P"}, r.Names())
	})

	t.Run("blank new name is a no-op", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.Add("Fri-P"))

		renamed, err := r.Rename("Fri-P", "")

		require.NoError(t, err)
		assert.False(t, renamed)
		assert.True(t, r.Has("Fri-P"))
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.Add("Fri-P"))

		renamed, err := r.Rename("Fri-P", "Fri-P")

		require.NoError(t, err)
		assert.False(t, renamed)
	})

	t.Run("conflict with a distinct group leaves state unchanged", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.Add("Fri-P"))
		require.NoError(t, r.Add("Sat-P"))

		renamed, err := r.Rename("Fri-P", "Sat-P")

		require.ErrorIs(t, err, group.ErrGroupNameConflict)
		assert.False(t, renamed)
		assert.Equal(t, []string{"Fri-P", "Sat-P"}, r.Names())
		color, _ := r.Color("Fri-P")
		assert.Equal(t, "#red", color)
	})

	t.Run("unknown old name is declined", func(t *testing.T) {
		r := newRegistry(t)

		renamed, err := r.Rename("Ghost", "New")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.False(t, renamed)
	})

	t.Run("is case-sensitive", func(t *testing.T) {
		r := newRegistry(t)
		require.NoError(t, r.Add("fri-p"))

		renamed, err := r.Rename("fri-p", "Fri-P")

		require.NoError(t, err)
		assert.True(t, renamed)
	})
}
