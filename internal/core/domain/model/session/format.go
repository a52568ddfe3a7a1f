package session

import (
	"fmt"

	"routeboard/internal/pkg/errs"
)

// Format discriminates the two supported upload shapes. It decides how a new
// working set is grouped at creation time.
type Format int

const (
	// FormatUnknown represents an invalid or undefined format.
	// This value (0) helps catch uninitialized Format values.
	FormatUnknown Format = iota

	// FormatRaw is an export straight from the order system: orders arrive
	// ungrouped and the grouping rules assign each one an initial group from
	// its city and zip code.
	FormatRaw

	// FormatFormatted is a sheet that was already arranged by hand: orders
	// arrive in their intended sequence and all land in a single default
	// group.
	FormatFormatted
)

func getFormatStrings() map[Format]string {
	return map[Format]string{
		FormatUnknown:   "unknown",
		FormatRaw:       "raw",
		FormatFormatted: "formatted",
	}
}

// FormatFromString parses a format name received from clients.
func FormatFromString(s string) (Format, error) {
	for format, str := range getFormatStrings() {
		if format != FormatUnknown && str == s {
			return format, nil
		}
	}
	return FormatUnknown, errs.NewValueIsInvalidErrorWithCause("format", fmt.Errorf("%q is not a valid format", s))
}

// Validate checks if the Format value is valid.
// Valid formats are: FormatRaw, FormatFormatted.
func (f Format) Validate() error {
	if f != FormatRaw && f != FormatFormatted {
		return errs.NewValueIsInvalidErrorWithCause("format", fmt.Errorf("%d is not a valid format", int(f)))
	}
	return nil
}

// String returns the wire name of the format. Implements fmt.Stringer and is
// safe on any Format value, including invalid ones.
func (f Format) String() string {
	if str, ok := getFormatStrings()[f]; ok {
		return str
	}
	return "unknown"
}
