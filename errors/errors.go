package errors

import "fmt"

// ParseError wraps a specific error with context about where it occurred.
type ParseError struct {
	Line   int
	Record []string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %v (record: %v)", e.Line, e.Err, e.Record)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports an invalid model parameter. It is returned when
// a configuration is constructed, never during evaluation.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Configuration errors
var (
	ErrNegativeValue        = fmt.Errorf("value must not be negative")
	ErrRateOutOfRange       = fmt.Errorf("conversion rate must be between 0 and 1")
	ErrShareOutOfRange      = fmt.Errorf("distribution share must be between 0 and 1")
	ErrNonAscendingCeilings = fmt.Errorf("cost tier ceilings must strictly increase")
	ErrUnboundedTierMissing = fmt.Errorf("last cost tier must be unbounded")
	ErrNoQualityTiers       = fmt.Errorf("at least one quality tier is required")
	ErrNoCostTiers          = fmt.Errorf("at least one cost tier is required")
	ErrDuplicateTier        = fmt.Errorf("duplicate quality tier")
)

// Investment errors, returned when a recommendation is requested for an
// unusable amount.
var (
	ErrNegativeInvestment = fmt.Errorf("investment amount must not be negative")
	ErrInvalidInvestment  = fmt.Errorf("investment amount must be a finite number")
)

// Tier table parse errors
var (
	ErrInvalidFieldCount = fmt.Errorf("invalid field count")
	ErrUnknownRecordKind = fmt.Errorf("unknown record kind")
	ErrInvalidRank       = fmt.Errorf("invalid rank")
	ErrInvalidRate       = fmt.Errorf("invalid rate")
	ErrInvalidCeiling    = fmt.Errorf("invalid ceiling")
	ErrInvalidUnitCost   = fmt.Errorf("invalid unit cost")
)
