package services_test

import (
	"testing"

	"routeboard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func selectionOf(indices ...int) services.Selection {
	s := services.NewSelection()
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return s
}

func TestDragSelect_PointerDown(t *testing.T) {
	t.Run("on unselected item enters selecting and adds it", func(t *testing.T) {
		d := services.NewDragSelect()

		next := d.PointerDown(selectionOf(), 4)

		assert.Equal(t, services.DragSelecting, d.Mode())
		assert.True(t, next.Has(4))
	})

	t.Run("on selected item enters deselecting and removes it", func(t *testing.T) {
		d := services.NewDragSelect()

		next := d.PointerDown(selectionOf(4, 9), 4)

		assert.Equal(t, services.DragDeselecting, d.Mode())
		assert.False(t, next.Has(4))
		assert.True(t, next.Has(9))
	})

	t.Run("does not mutate the input set", func(t *testing.T) {
		d := services.NewDragSelect()
		current := selectionOf(4)

		_ = d.PointerDown(current, 4)

		assert.True(t, current.Has(4))
	})
}

func TestDragSelect_PointerEnter(t *testing.T) {
	t.Run("no-op while idle", func(t *testing.T) {
		d := services.NewDragSelect()
		current := selectionOf(1)

		next := d.PointerEnter(current, 2)

		assert.Equal(t, current, next)
		assert.Equal(t, services.DragIdle, d.Mode())
	})

	t.Run("adds while selecting", func(t *testing.T) {
		d := services.NewDragSelect()
		sel := d.PointerDown(selectionOf(), 1)

		sel = d.PointerEnter(sel, 2)
		sel = d.PointerEnter(sel, 3)

		assert.ElementsMatch(t, []int{1, 2, 3}, sel.Indices())
	})

	t.Run("is idempotent on an already-added item", func(t *testing.T) {
		d := services.NewDragSelect()
		sel := d.PointerDown(selectionOf(), 1)

		sel = d.PointerEnter(sel, 1)

		assert.ElementsMatch(t, []int{1}, sel.Indices())
	})

	t.Run("removes while deselecting", func(t *testing.T) {
		d := services.NewDragSelect()
		sel := d.PointerDown(selectionOf(1, 2, 3), 1)

		sel = d.PointerEnter(sel, 2)

		assert.ElementsMatch(t, []int{3}, sel.Indices())
	})
}

func TestDragSelect_PointerUp(t *testing.T) {
	t.Run("returns to idle from any state", func(t *testing.T) {
		d := services.NewDragSelect()
		_ = d.PointerDown(selectionOf(), 1)

		d.PointerUp()

		assert.Equal(t, services.DragIdle, d.Mode())
	})

	t.Run("safe while already idle", func(t *testing.T) {
		d := services.NewDragSelect()

		d.PointerUp()

		assert.Equal(t, services.DragIdle, d.Mode())
	})
}

func TestDragSelect_SelectAll(t *testing.T) {
	t.Run("selects exactly the supplied identifiers", func(t *testing.T) {
		d := services.NewDragSelect()

		sel := d.SelectAll([]int{3, 7, 15})

		assert.ElementsMatch(t, []int{3, 7, 15}, sel.Indices())
	})

	t.Run("does not change the drag mode", func(t *testing.T) {
		d := services.NewDragSelect()
		_ = d.PointerDown(selectionOf(), 1)

		_ = d.SelectAll([]int{1, 2})

		assert.Equal(t, services.DragSelecting, d.Mode())
	})
}

func TestDragSelect_ClearAll(t *testing.T) {
	d := services.NewDragSelect()

	sel := d.ClearAll()

	assert.Empty(t, sel.Indices())
}
