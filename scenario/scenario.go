package scenario

import (
	"call-center-calculator/metrics"
	"call-center-calculator/models"
	"call-center-calculator/pricing"
	"fmt"
	"time"
)

// Series describes a batch of exploratory scenarios: one per lead multiplier
// at BaseAgents, and one per agent delta at BaseLeads.
type Series struct {
	Multipliers []float64
	BaseLeads   float64
	BaseAgents  int
	AgentDeltas []int
}

// DefaultMultipliers returns 1.0 through 2.0 in steps of 0.1.
func DefaultMultipliers() []float64 {
	multipliers := make([]float64, 0, 11)
	for i := 10; i <= 20; i++ {
		multipliers = append(multipliers, float64(i)/10)
	}
	return multipliers
}

// DefaultAgentDeltas returns +1 through +3 agents.
func DefaultAgentDeltas() []int {
	return []int{1, 2, 3}
}

// DefaultSeries builds the standard series around the configured baseline.
func DefaultSeries(cfg *models.Configuration) Series {
	return Series{
		Multipliers: DefaultMultipliers(),
		BaseLeads:   cfg.BaseLeads(),
		BaseAgents:  cfg.BaseAgents(),
		AgentDeltas: DefaultAgentDeltas(),
	}
}

// Evaluate computes sales, cost and CAC for totalLeads worked by agents.
// Leads are allocated to quality tiers in rank order until capacity runs out.
// cfg is only read.
func Evaluate(cfg *models.Configuration, label string, kind models.ScenarioKind, totalLeads float64, agents int) models.ScenarioResult {
	totalLeads = max(totalLeads, 0)
	agents = max(agents, 0)

	capacity := float64(agents) * cfg.MaxLeadsPerAgent()
	tiers, handled, sales := allocate(cfg.QualityTiers(), totalLeads, capacity)

	leadCost := pricing.CostForVolume(cfg.CostTiers(), totalLeads)
	agentCost := float64(agents) * cfg.AgentCost()
	totalCost := leadCost + agentCost

	result := models.ScenarioResult{
		Scenario:     label,
		Kind:         kind,
		Agents:       agents,
		Capacity:     capacity,
		TotalLeads:   totalLeads,
		HandledLeads: handled,
		Sales:        sales,
		TotalCost:    totalCost,
		LeadCost:     leadCost,
		AgentCost:    agentCost,
		TotalCAC:     models.Divide(totalCost, sales),
		LeadCAC:      models.Divide(leadCost, sales),
		AgentCAC:     models.Divide(agentCost, sales),
		Tiers:        tiers,
	}

	metrics.ScenariosEvaluatedTotal.WithLabelValues(string(kind)).Inc()
	if !result.TotalCAC.IsDefined() {
		metrics.UndefinedCACTotal.Inc()
	}
	return result
}

// allocate performs priority-based allocation of offered leads to capacity.
// Tiers must already be in priority order.
func allocate(tiers []models.QualityTier, totalLeads, capacity float64) ([]models.TierAllocation, float64, float64) {
	allocations := make([]models.TierAllocation, 0, len(tiers))
	remaining := capacity
	handled, sales := 0.0, 0.0

	// Single pass allocation: later tiers get nothing once capacity is gone
	for _, tier := range tiers {
		offered := totalLeads * tier.Distribution
		taken := 0.0
		if remaining > 0 {
			taken = min(remaining, offered)
		}
		converted := taken * tier.ConversionRate

		allocations = append(allocations, models.TierAllocation{
			Tier:    tier.Name,
			Offered: offered,
			Handled: taken,
			Sales:   converted,
		})
		handled += taken
		sales += converted
		remaining -= taken
	}

	return allocations, handled, sales
}

// EvaluateSeries evaluates every scenario in s. Lead rows come first, in
// multiplier order, followed by agent rows in delta order.
func EvaluateSeries(cfg *models.Configuration, s Series) []models.ScenarioResult {
	start := time.Now()
	defer func() {
		metrics.SeriesDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	results := make([]models.ScenarioResult, 0, len(s.Multipliers)+len(s.AgentDeltas))
	for _, m := range s.Multipliers {
		results = append(results, Evaluate(cfg, LeadsLabel(m), models.KindLeads, s.BaseLeads*m, s.BaseAgents))
	}
	for _, k := range s.AgentDeltas {
		results = append(results, Evaluate(cfg, AgentsLabel(k), models.KindAgents, s.BaseLeads, s.BaseAgents+k))
	}
	return results
}

// LeadsLabel names a lead multiplier scenario, e.g. "1.5x leads".
func LeadsLabel(multiplier float64) string {
	return fmt.Sprintf("%.1fx leads", multiplier)
}

// AgentsLabel names an added-agents scenario, e.g. "+2 agents".
func AgentsLabel(delta int) string {
	if delta == 1 {
		return "+1 agent"
	}
	return fmt.Sprintf("+%d agents", delta)
}

// OptimalPoints picks out the standout rows of a series.
type OptimalPoints struct {
	MaxSales models.ScenarioResult `json:"max_sales"`
	MinCAC   models.ScenarioResult `json:"min_cac"`
}

// Optimal returns the row with the most sales and the row with the lowest
// total CAC; the first row wins ties. Rows with an undefined CAC only win
// MinCAC when no row has a defined one. It returns nil for an empty series.
func Optimal(results []models.ScenarioResult) *OptimalPoints {
	if len(results) == 0 {
		return nil
	}

	points := &OptimalPoints{MaxSales: results[0], MinCAC: results[0]}
	for _, r := range results[1:] {
		if r.Sales > points.MaxSales.Sales {
			points.MaxSales = r
		}
		if r.TotalCAC.Less(points.MinCAC.TotalCAC) {
			points.MinCAC = r
		}
	}
	return points
}
