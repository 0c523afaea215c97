// Package tax implements the progressive slab schedule the service is built
// around. The computation is a pure function of the income, so the same
// income always yields the same liability.
package tax

import "math"

// Slab breakpoints and marginal rates. Income up to the first breakpoint is
// untaxed; each following slab is taxed at its own marginal rate.
const (
	slab1Limit = 250000.0
	slab2Limit = 500000.0
	slab3Limit = 1000000.0

	slab2Rate = 0.05
	slab3Rate = 0.20
	slab4Rate = 0.30
)

// Full tax owed for the slabs below each breakpoint, precomputed so higher
// incomes only pay the marginal rate on the part above the breakpoint.
const (
	slab2FullTax = (slab2Limit - slab1Limit) * slab2Rate            // 12500
	slab3FullTax = slab2FullTax + (slab3Limit-slab2Limit)*slab3Rate // 112500
)

// Compute returns the tax liability for the given non-negative annual
// income, rounded to two decimal places. Negative income is a caller
// validation concern; Compute itself never fails.
func Compute(income float64) float64 {
	var tax float64
	switch {
	case income <= slab1Limit:
		tax = 0
	case income <= slab2Limit:
		tax = (income - slab1Limit) * slab2Rate
	case income <= slab3Limit:
		tax = slab2FullTax + (income-slab2Limit)*slab3Rate
	default:
		tax = slab3FullTax + (income-slab3Limit)*slab4Rate
	}

	return Round2(tax)
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
