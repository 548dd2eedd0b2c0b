package propcheck

import (
	"fmt"
	"strconv"
)

// Prettifier renders a generated value for inclusion in a report.
type Prettifier func(value any) string

// DefaultPrettifier renders strings quoted so whitespace and empty strings
// stay visible, and everything else with the fmt default format.
func DefaultPrettifier() Prettifier {
	return func(value any) string {
		switch v := value.(type) {
		case nil:
			return "<nil>"
		case string:
			return strconv.Quote(v)
		default:
			return fmt.Sprintf("%v", v)
		}
	}
}
