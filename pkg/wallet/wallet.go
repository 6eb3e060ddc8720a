// Package wallet formats and parses per-client wallet identifiers.
// Identifiers are sequential per client and zero-padded to three digits
// ("001", "002", ...); they are not globally unique.
package wallet

import (
	"fmt"
	"strconv"
)

// Format renders a sequence value as a wallet id. Values above 999 widen
// naturally ("1000").
func Format(n int) string {
	return fmt.Sprintf("%03d", n)
}

// Parse reads a wallet id back into its numeric value. Legacy rows may hold
// arbitrary text; anything unparsable yields 0 so the sequence restarts at
// "001".
func Parse(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
