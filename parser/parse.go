package parser

import (
	"call-center-calculator/errors"
	"call-center-calculator/metrics"
	"call-center-calculator/models"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// TierTable holds the quality and cost tiers read from a CSV file.
type TierTable struct {
	Quality []models.QualityTier
	Cost    []models.CostTier
}

// Parse reads a tier table from r. Lines starting with '#' are comments.
// Each record starts with its kind:
//
//	quality, <name>, <rank>, <conversion rate>, <distribution>
//	cost, <ceiling>, <unit cost>
//
// Rates accept decimals ("0.15") or percentages ("15%"). A ceiling of "inf"
// (or empty) marks the unbounded tier. Records are returned in file order;
// validation of the tables is left to models.NewConfiguration.
func Parse(r io.Reader) (*TierTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	table := &TierTable{}
	lineNum := 0

	for {
		record, err := reader.Read()
		lineNum++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNum, err)
		}

		// Skip comments
		if len(record) > 0 && strings.HasPrefix(strings.TrimSpace(record[0]), "#") {
			continue
		}

		switch kind := strings.ToLower(strings.TrimSpace(record[0])); kind {
		case "quality":
			qt, err := parseQuality(record)
			if err != nil {
				return nil, fail(lineNum, record, err)
			}
			table.Quality = append(table.Quality, qt)
		case "cost":
			ct, err := parseCost(record)
			if err != nil {
				return nil, fail(lineNum, record, err)
			}
			table.Cost = append(table.Cost, ct)
		default:
			return nil, fail(lineNum, record, fmt.Errorf("%w: %q", errors.ErrUnknownRecordKind, kind))
		}
		metrics.ParserRecordsTotal.Inc()
	}

	return table, nil
}

func fail(line int, record []string, err error) error {
	metrics.ConfigErrorsTotal.WithLabelValues("tier_table").Inc()
	return &errors.ParseError{
		Line:   line,
		Record: record,
		Err:    err,
	}
}

func parseQuality(record []string) (models.QualityTier, error) {
	if len(record) != 5 {
		return models.QualityTier{}, errors.ErrInvalidFieldCount
	}

	qt := models.QualityTier{Name: strings.TrimSpace(record[1])}

	var err error
	qt.Rank, err = strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return models.QualityTier{}, fmt.Errorf("%w: %v", errors.ErrInvalidRank, err)
	}

	qt.ConversionRate, err = parseRate(record[3])
	if err != nil {
		return models.QualityTier{}, fmt.Errorf("%w: %v", errors.ErrInvalidRate, err)
	}

	qt.Distribution, err = parseRate(record[4])
	if err != nil {
		return models.QualityTier{}, fmt.Errorf("%w: %v", errors.ErrInvalidRate, err)
	}

	return qt, nil
}

func parseCost(record []string) (models.CostTier, error) {
	if len(record) != 3 {
		return models.CostTier{}, errors.ErrInvalidFieldCount
	}

	ct := models.CostTier{Ceiling: math.Inf(1)}

	switch ceiling := strings.ToLower(strings.TrimSpace(record[1])); ceiling {
	case "", "inf", "infinity", "unbounded":
	default:
		v, err := strconv.ParseFloat(strings.ReplaceAll(ceiling, "_", ""), 64)
		if err != nil {
			return models.CostTier{}, fmt.Errorf("%w: %v", errors.ErrInvalidCeiling, err)
		}
		ct.Ceiling = v
	}

	unitCost := strings.TrimPrefix(strings.TrimSpace(record[2]), "$")
	v, err := strconv.ParseFloat(unitCost, 64)
	if err != nil {
		return models.CostTier{}, fmt.Errorf("%w: %v", errors.ErrInvalidUnitCost, err)
	}
	ct.UnitCost = v

	return ct, nil
}

// parseRate converts "15%" to 0.15 and passes decimals through.
func parseRate(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if pct, ok := strings.CutSuffix(value, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return 0, err
		}
		return v / 100, nil
	}
	return strconv.ParseFloat(value, 64)
}
