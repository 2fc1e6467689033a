package models

import (
	"call-center-calculator/errors"
	"fmt"
	"math"
	"slices"
	"sort"
)

// Params holds the raw inputs for a Configuration. Rates and shares are
// decimals (0.15, not 15).
type Params struct {
	BaseLeads        float64
	BaseAgents       int
	MaxLeadsPerAgent float64
	AgentCost        float64
	MaxCAC           float64
	QualityTiers     []QualityTier
	CostTiers        []CostTier
}

// Configuration is a validated, read-only model configuration. Evaluations
// take overrides as arguments instead of changing it.
type Configuration struct {
	baseLeads        float64
	baseAgents       int
	maxLeadsPerAgent float64
	agentCost        float64
	maxCAC           float64
	qualityTiers     []QualityTier
	costTiers        []CostTier
}

// NewConfiguration validates p and returns a Configuration that owns copies
// of the tier tables. Quality tiers are ordered by rank, ties keeping their
// input order.
func NewConfiguration(p Params) (*Configuration, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	quality := slices.Clone(p.QualityTiers)
	sort.SliceStable(quality, func(i, j int) bool {
		return quality[i].Rank < quality[j].Rank
	})

	return &Configuration{
		baseLeads:        p.BaseLeads,
		baseAgents:       p.BaseAgents,
		maxLeadsPerAgent: p.MaxLeadsPerAgent,
		agentCost:        p.AgentCost,
		maxCAC:           p.MaxCAC,
		qualityTiers:     quality,
		costTiers:        slices.Clone(p.CostTiers),
	}, nil
}

func validate(p Params) error {
	scalars := []struct {
		field string
		value float64
	}{
		{"base_leads", p.BaseLeads},
		{"base_agents", float64(p.BaseAgents)},
		{"max_leads_per_agent", p.MaxLeadsPerAgent},
		{"agent_cost", p.AgentCost},
		{"max_cac", p.MaxCAC},
	}
	for _, s := range scalars {
		if s.value < 0 || math.IsNaN(s.value) || math.IsInf(s.value, 0) {
			return &errors.ConfigurationError{Field: s.field, Err: errors.ErrNegativeValue}
		}
	}

	if len(p.QualityTiers) == 0 {
		return &errors.ConfigurationError{Field: "quality_tiers", Err: errors.ErrNoQualityTiers}
	}
	seen := make(map[string]bool, len(p.QualityTiers))
	for i, qt := range p.QualityTiers {
		field := fmt.Sprintf("quality_tiers[%d]", i)
		if seen[qt.Name] {
			return &errors.ConfigurationError{Field: field, Err: fmt.Errorf("%w: %q", errors.ErrDuplicateTier, qt.Name)}
		}
		seen[qt.Name] = true
		if !(qt.ConversionRate >= 0 && qt.ConversionRate <= 1) {
			return &errors.ConfigurationError{Field: field + ".conversion_rate", Err: errors.ErrRateOutOfRange}
		}
		if !(qt.Distribution >= 0 && qt.Distribution <= 1) {
			return &errors.ConfigurationError{Field: field + ".distribution", Err: errors.ErrShareOutOfRange}
		}
	}

	if len(p.CostTiers) == 0 {
		return &errors.ConfigurationError{Field: "cost_tiers", Err: errors.ErrNoCostTiers}
	}
	prev := 0.0
	for i, ct := range p.CostTiers {
		field := fmt.Sprintf("cost_tiers[%d]", i)
		if ct.UnitCost < 0 || math.IsNaN(ct.UnitCost) || math.IsInf(ct.UnitCost, 0) {
			return &errors.ConfigurationError{Field: field + ".unit_cost", Err: errors.ErrNegativeValue}
		}
		if math.IsNaN(ct.Ceiling) || ct.Ceiling < 0 {
			return &errors.ConfigurationError{Field: field + ".ceiling", Err: errors.ErrNegativeValue}
		}
		if ct.Ceiling <= prev {
			return &errors.ConfigurationError{Field: field + ".ceiling", Err: errors.ErrNonAscendingCeilings}
		}
		prev = ct.Ceiling
	}
	if !math.IsInf(prev, 1) {
		return &errors.ConfigurationError{Field: "cost_tiers", Err: errors.ErrUnboundedTierMissing}
	}
	return nil
}

func (c *Configuration) BaseLeads() float64        { return c.baseLeads }
func (c *Configuration) BaseAgents() int           { return c.baseAgents }
func (c *Configuration) MaxLeadsPerAgent() float64 { return c.maxLeadsPerAgent }
func (c *Configuration) AgentCost() float64        { return c.agentCost }
func (c *Configuration) MaxCAC() float64           { return c.maxCAC }

// QualityTiers returns the quality tiers in allocation order.
func (c *Configuration) QualityTiers() []QualityTier {
	return slices.Clone(c.qualityTiers)
}

// CostTiers returns the cost tiers in ascending ceiling order.
func (c *Configuration) CostTiers() []CostTier {
	return slices.Clone(c.costTiers)
}

// DistributionTotal sums the quality tier shares. It should be 1 but is not
// enforced.
func (c *Configuration) DistributionTotal() float64 {
	total := 0.0
	for _, qt := range c.qualityTiers {
		total += qt.Distribution
	}
	return total
}
