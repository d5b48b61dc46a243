package model

import "github.com/shopspring/decimal"

// RateUnavailable is rendered for a rate the backend did not return.
const RateUnavailable = "n/a"

// FormatRate renders a 0..1 rate as a percentage with up to two decimals, e.g. 0.125 as "12.5%".
func FormatRate(rate *float64) string {
	if rate == nil {
		return RateUnavailable
	}
	return decimal.NewFromFloat(*rate).Shift(2).Round(2).String() + "%"
}

// FalsePositivePercent renders the false-positive rate.
func (a AuditResult) FalsePositivePercent() string {
	return FormatRate(a.FalsePositiveRate)
}

// FalseNegativePercent renders the false-negative rate.
func (a AuditResult) FalseNegativePercent() string {
	return FormatRate(a.FalseNegativeRate)
}
