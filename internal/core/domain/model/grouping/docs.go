// Package grouping holds the delivery-grouping rules: which city or zip code
// maps to which delivery group, the fixed display sequence of predefined
// groups, the color palette, and the stable group-order sort.
//
// Rules is an immutable value object injected at startup rather than package
// globals, so tests can substitute alternate mappings. DefaultRules returns
// the production tables.
package grouping
