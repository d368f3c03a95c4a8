// Package osnumber derives the next sequential OS number from an existing
// ticket collection. It is advisory: the suggestion pre-fills the create
// form and performs no uniqueness check beyond the max-scan.
package osnumber

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/solutions-kit/os-tracker/internal/domain"
)

// Prefix is the fixed human-facing identifier prefix.
const Prefix = "FACTASK"

// Digits is the zero-padded width of the numeric suffix.
const Digits = 7

var suffixPattern = regexp.MustCompile(`FACTASK(\d+)`)

// Suggest returns the next unused sequential OS number for the collection.
// Numbers that do not match the expected pattern contribute 0 rather than
// breaking the scan. The result is deterministic for a given input.
func Suggest(tickets []domain.Ticket) string {
	max := 0
	for _, t := range tickets {
		if n := numericSuffix(t.OSNumber); n > max {
			max = n
		}
	}
	return Format(max + 1)
}

// Format renders a numeric suffix as a full OS number.
func Format(n int) string {
	return fmt.Sprintf("%s%0*d", Prefix, Digits, n)
}

func numericSuffix(osNumber string) int {
	match := suffixPattern.FindStringSubmatch(osNumber)
	if match == nil {
		return 0
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		// digits beyond int range; treat as unparsable
		return 0
	}
	return n
}
