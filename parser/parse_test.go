package parser_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	customerrors "call-center-calculator/errors"
	"call-center-calculator/models"
	"call-center-calculator/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		input         string
		expectedData  *parser.TierTable
		expectedError error
	}{
		"ValidInput_Decimals": {
			input: `
quality, A, 1, 0.15, 0.20
cost, inf, 40
`,
			expectedData: &parser.TierTable{
				Quality: []models.QualityTier{
					{Name: "A", Rank: 1, ConversionRate: 0.15, Distribution: 0.20},
				},
				Cost: []models.CostTier{
					{Ceiling: math.Inf(1), UnitCost: 40},
				},
			},
		},
		"ValidInput_Percentages_WithComments": {
			input: `
# Quality tiers: kind, name, rank, conversion, distribution
quality, A, 1, 20%, 20%
quality, B, 2, 4%, 30%
# Cost tiers: kind, ceiling, unit cost
cost, 7300, $7
cost, 14600, 10
cost, , 13
`,
			expectedData: &parser.TierTable{
				Quality: []models.QualityTier{
					{Name: "A", Rank: 1, ConversionRate: 0.20, Distribution: 0.20},
					{Name: "B", Rank: 2, ConversionRate: 0.04, Distribution: 0.30},
				},
				Cost: []models.CostTier{
					{Ceiling: 7300, UnitCost: 7},
					{Ceiling: 14600, UnitCost: 10},
					{Ceiling: math.Inf(1), UnitCost: 13},
				},
			},
		},
		"EmptyInput": {
			input:        ``,
			expectedData: &parser.TierTable{},
		},
		"InvalidFieldCount_Quality": {
			input:         `quality, A, 1, 0.15`,
			expectedError: customerrors.ErrInvalidFieldCount,
		},
		"InvalidFieldCount_Cost": {
			input:         `cost, 1000`,
			expectedError: customerrors.ErrInvalidFieldCount,
		},
		"UnknownKind": {
			input:         `agents, 10, 4000`,
			expectedError: customerrors.ErrUnknownRecordKind,
		},
		"InvalidRank": {
			input:         `quality, A, first, 0.15, 0.20`,
			expectedError: customerrors.ErrInvalidRank,
		},
		"InvalidRate": {
			input:         `quality, A, 1, high, 0.20`,
			expectedError: customerrors.ErrInvalidRate,
		},
		"InvalidPercent": {
			input:         `quality, A, 1, 0.15, lots%`,
			expectedError: customerrors.ErrInvalidRate,
		},
		"InvalidCeiling": {
			input:         `cost, many, 40`,
			expectedError: customerrors.ErrInvalidCeiling,
		},
		"InvalidUnitCost": {
			input:         `cost, 1000, forty`,
			expectedError: customerrors.ErrInvalidUnitCost,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			table, err := parser.Parse(strings.NewReader(tt.input))

			if tt.expectedError != nil {
				assert.Nil(t, table)
				assert.True(t, errors.Is(err, tt.expectedError), "expected %v, got %v", tt.expectedError, err)
				return
			}

			require.NoError(t, err)
			require.Len(t, table.Quality, len(tt.expectedData.Quality))
			for i, qt := range tt.expectedData.Quality {
				assert.Equal(t, qt.Name, table.Quality[i].Name)
				assert.Equal(t, qt.Rank, table.Quality[i].Rank)
				assert.InDelta(t, qt.ConversionRate, table.Quality[i].ConversionRate, 1e-12)
				assert.InDelta(t, qt.Distribution, table.Quality[i].Distribution, 1e-12)
			}
			assert.Equal(t, tt.expectedData.Cost, table.Cost)
		})
	}
}

func TestParse_ErrorLine(t *testing.T) {
	input := `# header
quality, A, 1, 0.15, 0.20
cost, 1000, forty
`
	_, err := parser.Parse(strings.NewReader(input))

	var parseErr *customerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, []string{"cost", "1000", "forty"}, parseErr.Record)
}
