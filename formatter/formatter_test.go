package formatter_test

import (
	"call-center-calculator/formatter"
	"call-center-calculator/models"
	"call-center-calculator/scenario"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseline() models.ScenarioResult {
	return models.ScenarioResult{
		Scenario:     "1.0x leads",
		Kind:         models.KindBaseline,
		Agents:       1,
		Capacity:     50,
		TotalLeads:   100,
		HandledLeads: 50,
		Sales:        10,
		TotalCost:    8000,
		LeadCost:     4000,
		AgentCost:    4000,
		TotalCAC:     models.Finite(800),
		LeadCAC:      models.Finite(400),
		AgentCAC:     models.Finite(400),
	}
}

func idle() models.ScenarioResult {
	return models.ScenarioResult{
		Scenario:   "+1 agent",
		Kind:       models.KindAgents,
		TotalLeads: 100,
		TotalCost:  4000,
		LeadCost:   4000,
		TotalCAC:   models.Undefined(),
		LeadCAC:    models.Undefined(),
		AgentCAC:   models.Undefined(),
	}
}

func recommendation() *models.Recommendation {
	people := baseline()
	people.Scenario = "+1 agent"
	people.Kind = models.KindAgents
	people.Agents = 2
	people.HandledLeads = 100
	people.Sales = 15
	people.TotalCost = 12000
	people.AgentCost = 8000
	people.TotalCAC = models.Finite(800)

	leads := baseline()
	leads.Scenario = "2.0x leads"
	leads.Kind = models.KindLeads
	leads.TotalLeads = 200
	leads.TotalCost = 12000
	leads.LeadCost = 8000
	leads.TotalCAC = models.Finite(1200)

	return &models.Recommendation{
		Action:            models.ActionPeople,
		Reason:            "Best incremental sales achieved by investing in people",
		Investment:        4000,
		Baseline:          baseline(),
		Leads:             leads,
		People:            people,
		CurrentCAC:        models.Finite(800),
		LeadsCAC:          models.Finite(1200),
		PeopleCAC:         models.Finite(800),
		PeopleIncremental: 5,
		LeadsROI:          models.Finite(0),
		PeopleROI:         models.Finite(0.0025),
	}
}

func TestFormatText(t *testing.T) {
	tests := map[string]struct {
		report   formatter.Report
		contains []string
		excludes []string
	}{
		"EmptyReport": {
			report:   formatter.Report{},
			excludes: []string{"Recommendation", "Lead Scenarios", "Agent Scenarios"},
		},
		"RecommendationOnly": {
			report: formatter.Report{Recommendation: recommendation()},
			contains: []string{
				"Investment Recommendation for $4,000:",
				"Recommendation: PEOPLE",
				"Reason: Best incremental sales achieved by investing in people",
				"- CAC: $800.00",
				"- Sales: 10",
				"Leads scenario (2.0x leads): CAC $1200.00, additional sales 0 (ROI 0.00%)",
				"People scenario (+1 agent): CAC $800.00, additional sales 5 (ROI 0.25%)",
				"Compared Scenarios:",
			},
			excludes: []string{"Lead Scenarios", "Agent Scenarios"},
		},
		"SeriesWithUndefinedCAC": {
			report: formatter.Report{Scenarios: []models.ScenarioResult{baseline(), idle()}},
			contains: []string{
				"Lead Scenarios:",
				"Agent Scenarios:",
				"$8,000",
				"undefined",
			},
		},
		"NoAgentsAffordable": {
			report: formatter.Report{Recommendation: func() *models.Recommendation {
				rec := recommendation()
				rec.People = baseline()
				rec.People.Scenario = "no agents affordable"
				return rec
			}()},
			contains: []string{"People scenario (no agents affordable): CAC $800.00"},
			excludes: []string{"People scenario (1.0x leads)"},
		},
		"OptimalPoints": {
			report: formatter.Report{
				Scenarios: []models.ScenarioResult{idle(), baseline()},
				Optimal:   scenario.Optimal([]models.ScenarioResult{idle(), baseline()}),
			},
			contains: []string{
				"Optimal Points:",
				"Maximum Sales at 1.0x leads:",
				"Minimum CAC at 1.0x leads:",
				"- CAC: $800.00",
			},
		},
		"DoNothingUpperCased": {
			report: formatter.Report{Recommendation: func() *models.Recommendation {
				rec := recommendation()
				rec.Action = models.ActionDoNothing
				return rec
			}()},
			contains: []string{"Recommendation: DO NOTHING"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			output := formatter.FormatText(tt.report)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func TestFormatJSON(t *testing.T) {
	tests := map[string]struct {
		report   formatter.Report
		contains []string
	}{
		"EmptyReport": {
			report:   formatter.Report{},
			contains: []string{"{}"},
		},
		"Recommendation": {
			report: formatter.Report{Recommendation: recommendation()},
			contains: []string{
				`"recommendation": "people"`,
				`"current_cac": 800`,
				`"people_incremental": 5`,
				`"scenario": "+1 agent"`,
			},
		},
		"OptimalPoints": {
			report: formatter.Report{
				Scenarios: []models.ScenarioResult{idle(), baseline()},
				Optimal:   scenario.Optimal([]models.ScenarioResult{idle(), baseline()}),
			},
			contains: []string{
				`"optimal": {`,
				`"max_sales": {`,
				`"min_cac": {`,
			},
		},
		"UndefinedCAC": {
			report: formatter.Report{Scenarios: []models.ScenarioResult{idle()}},
			contains: []string{
				`"total_cac": null`,
				`"kind": "agents"`,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			output := formatter.FormatJSON(tt.report)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
		})
	}
}

func TestFormatCSV(t *testing.T) {
	tests := map[string]struct {
		report   formatter.Report
		contains []string
		rows     int
	}{
		"EmptyReport": {
			report: formatter.Report{},
			rows:   1,
		},
		"RecommendationAndSeries": {
			report: formatter.Report{
				Recommendation: recommendation(),
				Scenarios:      []models.ScenarioResult{baseline(), idle()},
			},
			contains: []string{
				"1.0x leads,baseline,1,10.00,800,400,400,50.00,100.00,8000.00,4000.00,4000.00",
				"+1 agent,agents,0,0.00,undefined,undefined,undefined,0.00,100.00,4000.00,4000.00,0.00",
			},
			rows: 6,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			output := formatter.FormatCSV(tt.report)
			lines := strings.Split(strings.TrimSpace(output), "\n")

			// Check header
			assert.Equal(t, "Scenario,Kind,Agents,Sales,Total CAC,Lead CAC,Agent CAC,Handled Leads,Total Leads,Total Cost,Lead Cost,Agent Cost", lines[0])
			assert.Len(t, lines, tt.rows)

			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
		})
	}
}
