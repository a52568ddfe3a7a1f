package grouping_test

import (
	"testing"

	"routeboard/internal/core/domain/model/grouping"
	"routeboard/internal/core/domain/model/order"
	"routeboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(t *testing.T, index int, group string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(index, "1", "Test", "123 St", "", "", nil)
	require.NoError(t, err)
	if group != "" {
		o.AssignToGroup(group)
	}
	return o
}

func groupsOf(orders []*order.Order) []string {
	names := make([]string, len(orders))
	for i, o := range orders {
		names[i] = o.Group()
	}
	return names
}

func TestNewRules(t *testing.T) {
	t.Run("should fail with empty palette", func(t *testing.T) {
		_, err := grouping.NewRules(nil, nil, nil, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("copies inputs", func(t *testing.T) {
		cities := map[string]string{"Fremont": "Fri-P"}
		rules, err := grouping.NewRules(nil, cities, nil, nil, []string{"#fff"})
		require.NoError(t, err)

		cities["Fremont"] = "Sat-P"

		name, ok := rules.AssignGroup("Fremont", "")
		assert.True(t, ok)
		assert.Equal(t, "Fri-P", name)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var rules grouping.Rules

		require.Error(t, rules.Validate())
	})
}

func TestRules_AssignGroup(t *testing.T) {
	rules := grouping.DefaultRules()

	t.Run("maps unambiguous city to group", func(t *testing.T) {
		cases := map[[2]string]string{
			{"San Ramon", "94583"}: "Pickup",
			{"Hayward", "94544"}:   "Fri-P",
			{"Fremont", "94536"}:   "Fri-P",
			{"Albany", "94706"}:    "Sat-K",
			{"Cupertino", "95014"}: "Sat-P",
		}
		for input, want := range cases {
			name, ok := rules.AssignGroup(input[0], input[1])
			assert.True(t, ok, "city %s", input[0])
			assert.Equal(t, want, name)
		}
	})

	t.Run("maps ambiguous city by zip code", func(t *testing.T) {
		cases := map[[2]string]string{
			{"San Jose", "95132"}:      "Fri-P",
			{"San Jose", "95133"}:      "Fri-P",
			{"San Jose", "95129"}:      "Sat-P",
			{"Sunnyvale", "94086"}:     "Fri-K",
			{"Sunnyvale", "94087"}:     "Sat-P",
			{"Mountain View", "94043"}: "Fri-K",
			{"Mountain View", "94040"}: "Sat-P",
		}
		for input, want := range cases {
			name, ok := rules.AssignGroup(input[0], input[1])
			assert.True(t, ok)
			assert.Equal(t, want, name)
		}
	})

	t.Run("returns no group for unmapped city and zip", func(t *testing.T) {
		_, ok := rules.AssignGroup("Unknown City", "00000")
		assert.False(t, ok)

		_, ok = rules.AssignGroup("", "")
		assert.False(t, ok)
	})

	t.Run("zip strictly wins over an unambiguous city", func(t *testing.T) {
		// Cupertino alone maps to Sat-P, but a Fri-P zip overrides it.
		name, ok := rules.AssignGroup("Cupertino", "95132")

		assert.True(t, ok)
		assert.Equal(t, "Fri-P", name)
	})

	t.Run("is pure", func(t *testing.T) {
		first, ok1 := rules.AssignGroup("San Jose", "95132")
		second, ok2 := rules.AssignGroup("San Jose", "95132")

		assert.Equal(t, first, second)
		assert.Equal(t, ok1, ok2)
	})
}

func TestRules_SortByGroupOrder(t *testing.T) {
	rules := grouping.DefaultRules()

	t.Run("identity when hasGroups is false", func(t *testing.T) {
		orders := []*order.Order{
			makeOrder(t, 0, "Sat-P"),
			makeOrder(t, 1, ""),
			makeOrder(t, 2, "Pickup"),
		}

		sorted := rules.SortByGroupOrder(orders, false)

		assert.Equal(t, orders, sorted)
	})

	t.Run("sorts predefined groups in display sequence", func(t *testing.T) {
		orders := []*order.Order{
			makeOrder(t, 0, "Sat-P"),
			makeOrder(t, 1, "Pickup"),
			makeOrder(t, 2, "Fri-K"),
		}

		sorted := rules.SortByGroupOrder(orders, true)

		assert.Equal(t, []string{"Pickup", "Fri-K", "Sat-P"}, groupsOf(sorted))
	})

	t.Run("places ungrouped orders last", func(t *testing.T) {
		orders := []*order.Order{
			makeOrder(t, 0, ""),
			makeOrder(t, 1, "Pickup"),
			makeOrder(t, 2, ""),
		}

		sorted := rules.SortByGroupOrder(orders, true)

		assert.Equal(t, []string{"Pickup", "", ""}, groupsOf(sorted))
	})

	t.Run("user-added groups follow predefined, alphabetically", func(t *testing.T) {
		orders := []*order.Order{
			makeOrder(t, 0, "Zebra"),
			makeOrder(t, 1, "Sat-K"),
			makeOrder(t, 2, "Alpha"),
		}

		sorted := rules.SortByGroupOrder(orders, true)

		assert.Equal(t, []string{"Sat-K", "Alpha", "Zebra"}, groupsOf(sorted))
	})

	t.Run("is stable within a group", func(t *testing.T) {
		orders := []*order.Order{
			makeOrder(t, 3, "Fri-P"),
			makeOrder(t, 1, "Fri-P"),
			makeOrder(t, 2, "Fri-P"),
		}

		sorted := rules.SortByGroupOrder(orders, true)

		indices := []int{sorted[0].Index(), sorted[1].Index(), sorted[2].Index()}
		assert.Equal(t, []int{3, 1, 2}, indices)
	})

	t.Run("is idempotent", func(t *testing.T) {
		orders := []*order.Order{
			makeOrder(t, 0, "Zebra"),
			makeOrder(t, 1, ""),
			makeOrder(t, 2, "Pickup"),
			makeOrder(t, 3, "Fri-P"),
		}

		once := rules.SortByGroupOrder(orders, true)
		twice := rules.SortByGroupOrder(once, true)

		assert.Equal(t, once, twice)
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		orders := []*order.Order{
			makeOrder(t, 0, "Sat-P"),
			makeOrder(t, 1, "Pickup"),
		}

		_ = rules.SortByGroupOrder(orders, true)

		assert.Equal(t, "Sat-P", orders[0].Group())
		assert.Equal(t, "Pickup", orders[1].Group())
	})
}
