// Package pricing turns a lead volume into a purchase cost under ascending
// volume tiers.
package pricing

import (
	"call-center-calculator/models"
	"math"
)

// CostForVolume returns the total cost of buying leads under tiered pricing.
// Each tier charges its unit cost for the leads between the previous ceiling
// and its own. Leads beyond the last ceiling are not charged, so callers
// should end the table with an unbounded tier.
func CostForVolume(tiers []models.CostTier, leads float64) float64 {
	if leads <= 0 || math.IsNaN(leads) {
		return 0
	}

	total := 0.0
	remaining := leads
	previous := 0.0

	for _, tier := range tiers {
		if remaining <= 0 {
			break
		}

		inTier := min(remaining, tier.Ceiling-previous)
		total += inTier * tier.UnitCost
		remaining -= inTier
		previous = tier.Ceiling
	}

	return total
}

// MarginalCost is the price of the first lead, used as a flat per-lead price
// when converting an investment into additional leads.
func MarginalCost(tiers []models.CostTier) float64 {
	return CostForVolume(tiers, 1)
}
