package formatter

import (
	"call-center-calculator/models"
	"call-center-calculator/scenario"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
)

// Report is everything one calculator run produces. Either field may be empty.
type Report struct {
	Recommendation *models.Recommendation  `json:"recommendation,omitempty"`
	Scenarios      []models.ScenarioResult `json:"scenarios,omitempty"`
	Optimal        *scenario.OptimalPoints `json:"optimal,omitempty"`
}

// reportData holds prepared rows used by all formatters
type reportData struct {
	Candidates []models.ScenarioResult
	Leads      []models.ScenarioResult
	Agents     []models.ScenarioResult
}

// prepareReportData splits the scenarios by lever for formatting
func prepareReportData(report Report) *reportData {
	data := &reportData{}

	if rec := report.Recommendation; rec != nil {
		data.Candidates = []models.ScenarioResult{rec.Baseline, rec.Leads, rec.People}
	}

	for _, s := range report.Scenarios {
		switch s.Kind {
		case models.KindAgents:
			data.Agents = append(data.Agents, s)
		default:
			data.Leads = append(data.Leads, s)
		}
	}

	return data
}

// FormatText returns the text representation of the report
func FormatText(report Report) string {
	data := prepareReportData(report)
	var sb strings.Builder

	if rec := report.Recommendation; rec != nil {
		sb.WriteString(formatRecommendation(rec))
		sb.WriteString("\n")
		sb.WriteString(formatTable("Compared Scenarios", data.Candidates))
	}
	if len(data.Leads) > 0 {
		sb.WriteString("\n")
		sb.WriteString(formatTable("Lead Scenarios", data.Leads))
	}
	if len(data.Agents) > 0 {
		sb.WriteString("\n")
		sb.WriteString(formatTable("Agent Scenarios", data.Agents))
	}
	if report.Optimal != nil {
		sb.WriteString("\n")
		sb.WriteString(formatOptimal(report.Optimal))
	}

	return sb.String()
}

// FormatJSON returns the JSON representation of the report
func FormatJSON(report Report) string {
	jsonBytes, _ := json.MarshalIndent(report, "", "  ")
	return string(jsonBytes)
}

var csvHeader = []string{
	"Scenario", "Kind", "Agents", "Sales", "Total CAC", "Lead CAC", "Agent CAC",
	"Handled Leads", "Total Leads", "Total Cost", "Lead Cost", "Agent Cost",
}

// FormatCSV returns the CSV representation of the report, one row per scenario.
func FormatCSV(report Report) string {
	data := prepareReportData(report)
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write(csvHeader)
	for _, group := range [][]models.ScenarioResult{data.Candidates, data.Leads, data.Agents} {
		for _, s := range group {
			writer.Write(scenarioRow(s))
		}
	}

	writer.Flush()
	return sb.String()
}

func scenarioRow(s models.ScenarioResult) []string {
	return []string{
		s.Scenario,
		string(s.Kind),
		strconv.Itoa(s.Agents),
		decimal(s.Sales),
		s.TotalCAC.String(),
		s.LeadCAC.String(),
		s.AgentCAC.String(),
		decimal(s.HandledLeads),
		decimal(s.TotalLeads),
		decimal(s.TotalCost),
		decimal(s.LeadCost),
		decimal(s.AgentCost),
	}
}

func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatRecommendation(rec *models.Recommendation) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Investment Recommendation for %s:\n", money(rec.Investment, 2)))
	sb.WriteString(fmt.Sprintf("  Recommendation: %s\n", strings.ToUpper(strings.ReplaceAll(string(rec.Action), "_", " "))))
	sb.WriteString(fmt.Sprintf("  Reason: %s\n", rec.Reason))
	sb.WriteString("\n")
	sb.WriteString("  Current metrics:\n")
	sb.WriteString(fmt.Sprintf("    - CAC: %s\n", rec.CurrentCAC.Currency()))
	sb.WriteString(fmt.Sprintf("    - Sales: %.0f\n", rec.Baseline.Sales))
	sb.WriteString("\n")
	sb.WriteString("  Potential outcomes:\n")
	sb.WriteString(fmt.Sprintf("    - Leads scenario (%s): CAC %s, additional sales %.0f (ROI %s)\n",
		rec.Leads.Scenario, rec.LeadsCAC.Currency(), rec.LeadsIncremental, rec.LeadsROI.Percent()))
	sb.WriteString(fmt.Sprintf("    - People scenario (%s): CAC %s, additional sales %.0f (ROI %s)\n",
		rec.People.Scenario, rec.PeopleCAC.Currency(), rec.PeopleIncremental, rec.PeopleROI.Percent()))

	return sb.String()
}

func formatOptimal(points *scenario.OptimalPoints) string {
	var sb strings.Builder

	sb.WriteString("Optimal Points:\n")
	sb.WriteString(fmt.Sprintf("  Maximum Sales at %s:\n", points.MaxSales.Scenario))
	sb.WriteString(fmt.Sprintf("    - Sales: %.0f\n", points.MaxSales.Sales))
	sb.WriteString(fmt.Sprintf("    - CAC: %s\n", points.MaxSales.TotalCAC.Currency()))
	sb.WriteString(fmt.Sprintf("  Minimum CAC at %s:\n", points.MinCAC.Scenario))
	sb.WriteString(fmt.Sprintf("    - Sales: %.0f\n", points.MinCAC.Sales))
	sb.WriteString(fmt.Sprintf("    - CAC: %s\n", points.MinCAC.TotalCAC.Currency()))

	return sb.String()
}

// formatTable renders scenarios as a fixed-width table
func formatTable(title string, scenarios []models.ScenarioResult) string {
	var sb strings.Builder
	rowFormat := "  %-14s %8s %12s %12s %12s %10s %10s %14s %14s %14s\n"

	sb.WriteString(title + ":\n")
	sb.WriteString(fmt.Sprintf(rowFormat,
		"scenario", "sales", "total_cac", "lead_cac", "agent_cac",
		"handled", "leads", "total_cost", "lead_cost", "agent_cost"))

	for _, s := range scenarios {
		sb.WriteString(fmt.Sprintf(rowFormat,
			s.Scenario,
			fmt.Sprintf("%.0f", s.Sales),
			s.TotalCAC.Currency(),
			s.LeadCAC.Currency(),
			s.AgentCAC.Currency(),
			fmt.Sprintf("%.0f", s.HandledLeads),
			fmt.Sprintf("%.0f", s.TotalLeads),
			money(s.TotalCost, 0),
			money(s.LeadCost, 0),
			money(s.AgentCost, 0),
		))
	}

	return sb.String()
}

// money formats v as dollars with thousands separators
func money(v float64, digits int) string {
	return "$" + humanize.CommafWithDigits(v, digits)
}
