// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sellora/sellora/pkg/money"
)

/*
TestRound2 verifies the half-away-from-zero rounding policy at 2 decimals.
*/
func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"no_rounding_needed", "180.40", "180.4"},
		{"half_rounds_up", "10.005", "10.01"},
		{"half_rounds_away_negative", "-10.005", "-10.01"},
		{"truncates_extra_digits", "33.3333", "33.33"},
		{"rounds_up_extra_digits", "33.3367", "33.34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := decimal.RequireFromString(tt.in)
			assert.Equal(t, tt.expected, money.Round2(in).String())
		})
	}
}

/*
TestRoundWhole verifies snapping to the nearest whole unit.
*/
func TestRoundWhole(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"rounds_down", "180.40", "180"},
		{"rounds_up", "180.50", "181"},
		{"already_whole", "200.00", "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := decimal.RequireFromString(tt.in)
			assert.Equal(t, tt.expected, money.RoundWhole(in).String())
		})
	}
}

/*
TestFloor0 verifies negative amounts clamp to zero.
*/
func TestFloor0(t *testing.T) {
	assert.True(t, money.Floor0(decimal.RequireFromString("-10")).IsZero())
	assert.Equal(t, "12.5", money.Floor0(decimal.RequireFromString("12.5")).String())
	assert.True(t, money.Floor0(decimal.Zero).IsZero())
}

/*
TestPercent verifies the exact (unrounded) percentage computation.
*/
func TestPercent(t *testing.T) {
	base := decimal.RequireFromString("200")
	rate := decimal.RequireFromString("10")
	assert.Equal(t, "20", money.Percent(base, rate).String())
}

/*
TestHasMaxScale verifies sub-cent precision detection.
*/
func TestHasMaxScale(t *testing.T) {
	assert.True(t, money.HasMaxScale(decimal.RequireFromString("10.25"), 2))
	assert.True(t, money.HasMaxScale(decimal.RequireFromString("10"), 2))
	assert.False(t, money.HasMaxScale(decimal.RequireFromString("10.255"), 2))
}
