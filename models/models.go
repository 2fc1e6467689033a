package models

// QualityTier is a bucket of leads sharing a conversion rate and a share of
// the total lead volume.
type QualityTier struct {
	Name string `json:"name"`
	// Rank orders tiers for capacity allocation (1 = served first)
	Rank           int     `json:"rank"`
	ConversionRate float64 `json:"conversion_rate"`
	Distribution   float64 `json:"distribution"`
}

// CostTier prices the leads falling between the previous tier's ceiling and
// this one. Ceiling is cumulative; math.Inf(1) marks the unbounded tier.
type CostTier struct {
	Ceiling  float64 `json:"ceiling"`
	UnitCost float64 `json:"unit_cost"`
}

// ScenarioKind tells which lever produced a scenario.
type ScenarioKind string

const (
	KindBaseline ScenarioKind = "baseline"
	KindLeads    ScenarioKind = "leads"
	KindAgents   ScenarioKind = "agents"
)

// TierAllocation is the part of a scenario handled within one quality tier.
type TierAllocation struct {
	Tier    string  `json:"tier"`
	Offered float64 `json:"offered"`
	Handled float64 `json:"handled"`
	Sales   float64 `json:"sales"`
}

// ScenarioResult is the outcome of evaluating one lead volume against one
// agent headcount.
type ScenarioResult struct {
	Scenario     string           `json:"scenario"`
	Kind         ScenarioKind     `json:"kind"`
	Agents       int              `json:"agents"`
	Capacity     float64          `json:"capacity"`
	TotalLeads   float64          `json:"total_leads"`
	HandledLeads float64          `json:"handled_leads"`
	Sales        float64          `json:"sales"`
	TotalCost    float64          `json:"total_cost"`
	LeadCost     float64          `json:"lead_cost"`
	AgentCost    float64          `json:"agent_cost"`
	TotalCAC     Ratio            `json:"total_cac"`
	LeadCAC      Ratio            `json:"lead_cac"`
	AgentCAC     Ratio            `json:"agent_cac"`
	Tiers        []TierAllocation `json:"tiers"`
}

// Action is the investment lever a recommendation picks.
type Action string

const (
	ActionPeople        Action = "people"
	ActionLeads         Action = "leads"
	ActionDoNothing     Action = "do_nothing"
	ActionOptimizeCosts Action = "optimize_costs"
)

// Recommendation compares buying leads against hiring agents for one
// investment amount.
type Recommendation struct {
	Action     Action  `json:"recommendation"`
	Reason     string  `json:"reason"`
	Investment float64 `json:"investment"`

	Baseline ScenarioResult `json:"base_metrics"`
	Leads    ScenarioResult `json:"leads_metrics"`
	People   ScenarioResult `json:"people_metrics"`

	AdditionalLeads  float64 `json:"additional_leads"`
	LeadMultiplier   float64 `json:"lead_multiplier"`
	AdditionalAgents int     `json:"additional_agents"`

	CurrentCAC Ratio `json:"current_cac"`
	LeadsCAC   Ratio `json:"leads_cac"`
	PeopleCAC  Ratio `json:"people_cac"`

	// Incremental sales after the CAC gate; a candidate over the ceiling
	// counts as zero.
	LeadsIncremental  float64 `json:"leads_incremental"`
	PeopleIncremental float64 `json:"people_incremental"`

	LeadsRawIncremental  float64 `json:"leads_raw_incremental"`
	PeopleRawIncremental float64 `json:"people_raw_incremental"`

	LeadsROI  Ratio `json:"leads_roi"`
	PeopleROI Ratio `json:"people_roi"`
}
