package grouping

import (
	"maps"
	"slices"
	"strings"

	"routeboard/internal/core/domain/model/order"
	"routeboard/internal/pkg/errs"
	"routeboard/internal/pkg/guard"
)

// ErrRulesAreNotConstructed is returned when attempting to use Rules that were
// not created via NewRules or DefaultRules.
var ErrRulesAreNotConstructed = errs.NewValueIsRequiredError(
	"rules must be created via NewRules or DefaultRules constructors")

// Rules is the static grouping configuration: lookup tables for the initial
// group of an uploaded order, the display sequence of predefined groups, the
// fixed color of each predefined group, and the palette for user-added groups.
//
// Rules is immutable; its constructor copies every input.
type Rules struct { //nolint:recvcheck //using for validation
	zipToGroup       map[string]string
	cityToGroup      map[string]string
	displaySequence  []string
	predefinedColors map[string]string
	palette          []string

	guard guard.ConstructorGuard
}

// NewRules creates grouping rules from the given tables. The palette must not
// be empty: every group always gets some color. Tables may be empty; empty
// tables simply leave every order ungrouped.
func NewRules(
	zipToGroup map[string]string,
	cityToGroup map[string]string,
	displaySequence []string,
	predefinedColors map[string]string,
	palette []string,
) (Rules, error) {
	if len(palette) == 0 {
		return Rules{}, errs.NewValueIsRequiredError("palette")
	}

	return Rules{
		zipToGroup:       maps.Clone(zipToGroup),
		cityToGroup:      maps.Clone(cityToGroup),
		displaySequence:  slices.Clone(displaySequence),
		predefinedColors: maps.Clone(predefinedColors),
		palette:          slices.Clone(palette),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// DefaultRules returns the production grouping configuration. The zip table
// exists for cities that straddle two delivery routes (San Jose, Sunnyvale,
// Mountain View); everywhere else the city is enough.
func DefaultRules() Rules {
	rules, err := NewRules(
		map[string]string{
			"95132": "Fri-P",
			"95133": "Fri-P",
			"94086": "Fri-K",
			"94043": "Fri-K",
			"94087": "Sat-P",
			"95129": "Sat-P",
			"94040": "Sat-P",
		},
		map[string]string{
			"San Ramon":     "Pickup",
			"Hayward":       "Fri-P",
			"Fremont":       "Fri-P",
			"Milpitas":      "Fri-P",
			"Newark":        "Fri-P",
			"Saratoga":      "Sat-P",
			"Cupertino":     "Sat-P",
			"San Francisco": "Sat-P",
			"Palo Alto":     "Sat-P",
			"Los Altos":     "Sat-P",
			"Santa Clara":   "Sat-P",
			"Belmont":       "Sat-P",
			"San Mateo":     "Sat-P",
			"Redwood City":  "Sat-P",
			"Atherton":      "Sat-P",
			"San Carlos":    "Sat-P",
			"Los Gatos":     "Sat-P",
			"Albany":        "Sat-K",
			"San Leandro":   "Sat-K",
		},
		[]string{"Pickup", "Fri-P", "Fri-K", "Sat-P", "Sat-K"},
		map[string]string{
			"Pickup": "#a3a3a3",
			"Fri-P":  "#60a5fa",
			"Fri-K":  "#2dd4bf",
			"Sat-P":  "#f87171",
			"Sat-K":  "#c084fc",
		},
		[]string{
			"#a3a3a3", "#60a5fa", "#2dd4bf", "#f87171", "#c084fc",
			"#fbbf24", "#34d399", "#f472b6", "#818cf8",
		},
	)
	if err != nil {
		// Static configuration; a failure here is a programming error.
		panic(err)
	}
	return rules
}

// Validate ensures the Rules were created through a constructor.
func (r Rules) Validate() error {
	return r.guard.Validate(ErrRulesAreNotConstructed)
}

// AssignGroup resolves the initial delivery group for a city/zip pair. The zip
// table strictly takes priority over the city table, even when the city alone
// would resolve unambiguously: a handful of known zip codes override an
// otherwise-unambiguous city mapping. Lookups are case-sensitive exact match.
//
// The second return value reports whether any mapping applied; false means the
// order stays ungrouped.
func (r Rules) AssignGroup(city, zip string) (string, bool) {
	if zip != "" {
		if name, ok := r.zipToGroup[zip]; ok {
			return name, true
		}
	}
	if city != "" {
		if name, ok := r.cityToGroup[city]; ok {
			return name, true
		}
	}
	return "", false
}

// SortByGroupOrder returns the orders sorted by group key: predefined groups
// in the display sequence, user-added groups after them in alphabetical
// (ordinal) order, ungrouped orders last. The sort is stable, so the relative
// order of orders sharing a group key is preserved from the input.
//
// When hasGroups is false the input sequence is returned as-is: some upload
// formats intentionally skip grouping. The input slice is never mutated.
func (r Rules) SortByGroupOrder(orders []*order.Order, hasGroups bool) []*order.Order {
	if !hasGroups {
		return orders
	}

	rank := make(map[string]int, len(r.displaySequence))
	for i, name := range r.displaySequence {
		rank[name] = i
	}

	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b *order.Order) int {
		ga, gb := a.Group(), b.Group()

		// Ungrouped goes last.
		if ga == "" && gb == "" {
			return 0
		}
		if ga == "" {
			return 1
		}
		if gb == "" {
			return -1
		}

		ra, aPredefined := rank[ga]
		rb, bPredefined := rank[gb]

		switch {
		case aPredefined && bPredefined:
			return ra - rb
		case aPredefined:
			return -1
		case bPredefined:
			return 1
		default:
			return strings.Compare(ga, gb)
		}
	})
	return sorted
}

// DisplaySequence returns a copy of the predefined group display order.
func (r Rules) DisplaySequence() []string {
	return slices.Clone(r.displaySequence)
}

// PredefinedColor returns the fixed color of a predefined group.
func (r Rules) PredefinedColor(name string) (string, bool) {
	color, ok := r.predefinedColors[name]
	return color, ok
}

// Palette returns a copy of the group color palette.
func (r Rules) Palette() []string {
	return slices.Clone(r.palette)
}
