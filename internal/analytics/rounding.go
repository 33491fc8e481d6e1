// Package analytics turns participant scan histories into campaign,
// location, and discovery statistics, and persists snapshot rows on demand.
package analytics

import "math"

// percentOf returns num/den as a round-half-up integer percentage, 0 when
// the denominator is 0.
func percentOf(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.Round(float64(num) / float64(den) * 100))
}

// ratio1 returns num/den rounded to one decimal, 0 when den is 0.
func ratio1(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return math.Round(float64(num)/float64(den)*10) / 10
}
