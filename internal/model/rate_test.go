package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRate(t *testing.T) {
	tests := []struct {
		rate *float64
		want string
		name string
	}{
		{name: "missing", want: RateUnavailable},
		{name: "zero", rate: ptr(0), want: "0%"},
		{name: "fraction", rate: ptr(0.125), want: "12.5%"},
		{name: "rounded", rate: ptr(0.033333333), want: "3.33%"},
		{name: "float noise", rate: ptr(0.1 + 0.2), want: "30%"},
		{name: "whole", rate: ptr(1), want: "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRate(tt.rate))
		})
	}
}

func TestAuditResult_Percents(t *testing.T) {
	var result AuditResult
	require.NoError(t, json.Unmarshal([]byte(`{"false_positive_rate":0.02}`), &result))

	assert.Equal(t, "2%", result.FalsePositivePercent())
	assert.Equal(t, RateUnavailable, result.FalseNegativePercent())
}

func ptr(v float64) *float64 {
	return &v
}
