// Package config loads calculator parameters from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	customerrors "call-center-calculator/errors"
	"call-center-calculator/metrics"
	"call-center-calculator/models"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a calculator configuration.
type File struct {
	BaseLeads        float64       `yaml:"base_leads"`
	BaseAgents       int           `yaml:"base_agents"`
	MaxLeadsPerAgent float64       `yaml:"max_leads_per_agent"`
	AgentCost        float64       `yaml:"agent_cost"`
	MaxCAC           float64       `yaml:"max_cac"`
	Investment       float64       `yaml:"investment"`
	QualityTiers     []QualityTier `yaml:"quality_tiers"`
	CostTiers        []CostTier    `yaml:"cost_tiers"`
}

// QualityTier is a quality tier entry. Rates are decimals.
type QualityTier struct {
	Name           string  `yaml:"name"`
	Rank           int     `yaml:"rank"`
	ConversionRate float64 `yaml:"conversion_rate"`
	Distribution   float64 `yaml:"distribution"`
}

// CostTier is a cost tier entry. A missing up_to (or .inf) is unbounded.
type CostTier struct {
	UpTo     *float64 `yaml:"up_to,omitempty"`
	UnitCost float64  `yaml:"unit_cost"`
}

// Default returns the stock model: 1000 leads, 10 agents at $4000 handling
// 150 leads each, a $1000 CAC ceiling and A/B/C quality tiers.
func Default() File {
	return File{
		BaseLeads:        1000,
		BaseAgents:       10,
		MaxLeadsPerAgent: 150,
		AgentCost:        4000,
		MaxCAC:           1000,
		Investment:       50000,
		QualityTiers: []QualityTier{
			{Name: "A", Rank: 1, ConversionRate: 0.15, Distribution: 0.20},
			{Name: "B", Rank: 2, ConversionRate: 0.10, Distribution: 0.30},
			{Name: "C", Rank: 3, ConversionRate: 0.05, Distribution: 0.50},
		},
		CostTiers: []CostTier{
			{UpTo: ptr(1000), UnitCost: 40},
			{UpTo: ptr(2000), UnitCost: 52},
			{UpTo: ptr(5000), UnitCost: 64},
			{UnitCost: 80},
		},
	}
}

func ptr(v float64) *float64 { return &v }

// Load reads a YAML configuration from path. Keys absent from the file keep
// their Default values.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("error opening config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a YAML configuration from r, rejecting unknown keys.
func Decode(r io.Reader) (File, error) {
	file := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("error decoding config: %w", err)
	}
	return file, nil
}

// SetTiers replaces both tier tables, e.g. with ones read from a CSV file.
func (f *File) SetTiers(quality []models.QualityTier, cost []models.CostTier) {
	f.QualityTiers = make([]QualityTier, 0, len(quality))
	for _, qt := range quality {
		f.QualityTiers = append(f.QualityTiers, QualityTier(qt))
	}

	f.CostTiers = make([]CostTier, 0, len(cost))
	for _, ct := range cost {
		entry := CostTier{UnitCost: ct.UnitCost}
		if !math.IsInf(ct.Ceiling, 1) {
			entry.UpTo = ptr(ct.Ceiling)
		}
		f.CostTiers = append(f.CostTiers, entry)
	}
}

// Params converts the file into model parameters.
func (f File) Params() models.Params {
	p := models.Params{
		BaseLeads:        f.BaseLeads,
		BaseAgents:       f.BaseAgents,
		MaxLeadsPerAgent: f.MaxLeadsPerAgent,
		AgentCost:        f.AgentCost,
		MaxCAC:           f.MaxCAC,
		QualityTiers:     make([]models.QualityTier, 0, len(f.QualityTiers)),
		CostTiers:        make([]models.CostTier, 0, len(f.CostTiers)),
	}
	for _, qt := range f.QualityTiers {
		p.QualityTiers = append(p.QualityTiers, models.QualityTier(qt))
	}
	for _, ct := range f.CostTiers {
		ceiling := math.Inf(1)
		if ct.UpTo != nil {
			ceiling = *ct.UpTo
		}
		p.CostTiers = append(p.CostTiers, models.CostTier{Ceiling: ceiling, UnitCost: ct.UnitCost})
	}
	return p
}

// Build validates the file and returns the model configuration.
func (f File) Build() (*models.Configuration, error) {
	cfg, err := models.NewConfiguration(f.Params())
	if err != nil {
		var cfgErr *customerrors.ConfigurationError
		if errors.As(err, &cfgErr) {
			metrics.ConfigErrorsTotal.WithLabelValues(cfgErr.Field).Inc()
		}
		return nil, err
	}
	return cfg, nil
}
