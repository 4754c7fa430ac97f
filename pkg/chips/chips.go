// Package chips breaks payouts down into casino chips
package chips

import (
	"fmt"
)

// Denominations are the chip values in cents, largest first
var Denominations = []int{50000, 10000, 2500, 500, 100, 50}

// Calculate returns how many of each denomination make up the amount, using the largest chips first
// Amounts that cannot be made exactly leave a remainder below 50 cents.
func Calculate(cents int) []int {
	counts := make([]int, len(Denominations))
	if cents <= 0 {
		return counts
	}

	for i, value := range Denominations {
		counts[i] = cents / value
		cents %= value
	}

	return counts
}

// Breakdown is a chip stack keyed by denomination
type Breakdown map[int]int

// CalculateBreakdown is Calculate keyed by denomination, zero counts are dropped
func CalculateBreakdown(cents int) Breakdown {
	b := make(Breakdown)
	for i, count := range Calculate(cents) {
		if count > 0 {
			b[Denominations[i]] = count
		}
	}

	return b
}

// Total returns the value of the breakdown in cents
func (b Breakdown) Total() int {
	total := 0
	for value, count := range b {
		total += value * count
	}

	return total
}

// FormatDollars formats cents as dollars, dropping the cents when they are zero
func FormatDollars(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	if cents%100 == 0 {
		return fmt.Sprintf("%s$%d", sign, cents/100)
	}

	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
