// Package recommend compares spending an investment on leads against
// spending it on agents.
package recommend

import (
	"call-center-calculator/errors"
	"call-center-calculator/metrics"
	"call-center-calculator/models"
	"call-center-calculator/pricing"
	"call-center-calculator/scenario"
	"fmt"
	"math"
	"time"
)

const (
	reasonCACTooHigh = "CAC too high to justify further investment"
	reasonNoScenario = "No investment scenario meets CAC requirements"

	labelNoAgents = "no agents affordable"

	// maxAdditionalAgents caps the hires derived from an investment so the
	// headcount stays representable.
	maxAdditionalAgents = math.MaxInt32
)

// Recommend evaluates the baseline, a more-leads candidate and a more-agents
// candidate for investment and picks the lever with the larger incremental
// sales among those within the CAC ceiling.
//
// Additional leads are priced at the cost of a single lead rather than the
// tiered cost of the added volume. This overstates the leads bought once the
// baseline sits in a pricier tier.
func Recommend(cfg *models.Configuration, investment float64) (*models.Recommendation, error) {
	if math.IsNaN(investment) || math.IsInf(investment, 0) {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidInvestment, investment)
	}
	if investment < 0 {
		return nil, fmt.Errorf("%w: %v", errors.ErrNegativeInvestment, investment)
	}

	start := time.Now()
	defer func() {
		metrics.RecommendationDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	baseLeads := cfg.BaseLeads()
	baseAgents := cfg.BaseAgents()

	baseline := scenario.Evaluate(cfg, scenario.LeadsLabel(1), models.KindBaseline, baseLeads, baseAgents)

	// Leads candidate: investment converted at the first lead's price
	additionalLeads := 0.0
	if marginal := pricing.MarginalCost(cfg.CostTiers()); marginal > 0 {
		additionalLeads = investment / marginal
	}
	multiplier := 0.0
	if baseLeads > 0 {
		multiplier = (baseLeads + additionalLeads) / baseLeads
	}
	leads := scenario.Evaluate(cfg, scenario.LeadsLabel(multiplier), models.KindLeads, baseLeads+additionalLeads, baseAgents)

	// People candidate: whole agents only
	additionalAgents := 0
	if cfg.AgentCost() > 0 {
		additionalAgents = affordableAgents(investment/cfg.AgentCost(), baseAgents)
	}
	people := baseline
	people.Scenario = labelNoAgents
	if additionalAgents >= 1 {
		people = scenario.Evaluate(cfg, scenario.AgentsLabel(additionalAgents), models.KindAgents, baseLeads, baseAgents+additionalAgents)
	}

	rec := &models.Recommendation{
		Investment:           investment,
		Baseline:             baseline,
		Leads:                leads,
		People:               people,
		AdditionalLeads:      additionalLeads,
		LeadMultiplier:       multiplier,
		AdditionalAgents:     additionalAgents,
		CurrentCAC:           baseline.TotalCAC,
		LeadsCAC:             leads.TotalCAC,
		PeopleCAC:            people.TotalCAC,
		LeadsRawIncremental:  leads.Sales - baseline.Sales,
		PeopleRawIncremental: people.Sales - baseline.Sales,
	}
	rec.LeadsIncremental = gate(rec.LeadsRawIncremental, leads.TotalCAC, cfg.MaxCAC())
	rec.PeopleIncremental = gate(rec.PeopleRawIncremental, people.TotalCAC, cfg.MaxCAC())
	rec.LeadsROI = models.Divide(rec.LeadsIncremental, investment)
	rec.PeopleROI = models.Divide(rec.PeopleIncremental, investment)

	rec.Action, rec.Reason = decide(rec, cfg.MaxCAC())

	metrics.RecommendationsTotal.WithLabelValues(string(rec.Action)).Inc()
	return rec, nil
}

// affordableAgents floors agents to whole hires, capped so that
// baseAgents plus the result cannot overflow.
func affordableAgents(agents float64, baseAgents int) int {
	n := math.Floor(agents)
	if n > maxAdditionalAgents {
		n = maxAdditionalAgents
	}
	hires := int(n)
	if hires > math.MaxInt-baseAgents {
		hires = math.MaxInt - baseAgents
	}
	return hires
}

// gate drops the incremental sales of a candidate whose CAC is over the
// ceiling. An undefined CAC never passes.
func gate(incremental float64, cac models.Ratio, maxCAC float64) float64 {
	if !cac.AtMost(maxCAC) {
		return 0
	}
	return incremental
}

func decide(rec *models.Recommendation, maxCAC float64) (models.Action, string) {
	if !rec.CurrentCAC.AtMost(maxCAC) {
		return models.ActionOptimizeCosts, reasonCACTooHigh
	}
	if max(rec.LeadsIncremental, rec.PeopleIncremental) <= 0 {
		return models.ActionDoNothing, reasonNoScenario
	}

	action := models.ActionLeads
	if rec.PeopleIncremental > rec.LeadsIncremental {
		action = models.ActionPeople
	}
	return action, fmt.Sprintf("Best incremental sales achieved by investing in %s", action)
}
